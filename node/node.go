// Package node wires one client process together: the Lamport clock, the
// Ricart-Agrawala coordinator, the gRPC server answering peers, the client
// stubs toward the printer and every peer, and the job loop that produces
// print jobs. Each node is simultaneously a server and a client.
package node

import (
	"context"
	"fmt"
	"net"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
	"github.com/j0taaa/tp1-CD/lamport"
	"github.com/j0taaa/tp1-CD/logger"
	"github.com/j0taaa/tp1-CD/mutex"
	"github.com/j0taaa/tp1-CD/transport"
)

// Node represents one client of the distributed printing system.
type Node struct {
	config *Config
	clock  *lamport.Clock
	coord  *mutex.Coordinator

	grpcServer *transport.GRPC
	fanout     *transport.Fanout
	printer    *transport.PrinterClient
	conns      []*grpc.ClientConn
	jobs       *JobLoop

	// Lifecycle management
	ctx     context.Context
	cancel  context.CancelFunc
	mu      sync.RWMutex
	started bool
}

// New creates a new node with the given configuration.
func New(config *Config) (*Node, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	clock := lamport.New()
	logf := clientLogf(config.NodeID)
	coord := mutex.NewCoordinator(config.NodeID, clock, logf)

	ctx, cancel := context.WithCancel(context.Background())

	return &Node{
		config: config,
		clock:  clock,
		coord:  coord,
		ctx:    ctx,
		cancel: cancel,
	}, nil
}

// Start dials the printer and every peer, starts the gRPC server answering
// peers, and launches the job loop and status reporter.
func (n *Node) Start() error {
	return n.start(nil)
}

// StartWithListener is Start on an already-bound listener, used when all
// cluster addresses must be known before any node runs.
func (n *Node) StartWithListener(lis net.Listener) error {
	return n.start(lis)
}

func (n *Node) start(lis net.Listener) error {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.started {
		return ErrAlreadyStarted
	}

	if err := n.startClients(); err != nil {
		n.closeConns()
		return fmt.Errorf("failed to start clients: %w", err)
	}

	if err := n.startServer(lis); err != nil {
		n.closeConns()
		return fmt.Errorf("failed to start server: %w", err)
	}

	n.jobs = NewJobLoop(n.config.NodeID, n.coord, n.fanout, n.printer, n.config)
	if n.config.AutoJobs {
		go n.jobs.Run(n.ctx)
		n.logf("automatic job generation enabled (interval %v-%v)",
			n.config.JobIntervalMin, n.config.JobIntervalMax)
	} else {
		n.logf("manual job mode enabled")
	}

	if n.config.StatusInterval > 0 {
		go n.statusReporter()
	}

	n.started = true
	n.logf("client %d started on %s, printer at %s, %d peer(s)",
		n.config.NodeID, n.grpcServer.Addr(), n.config.PrinterAddr, len(n.config.Peers))
	return nil
}

// startClients dials the printer and all peers. gRPC dials lazily, so peers
// that are not up yet are fine: connections establish on first call.
func (n *Node) startClients() error {
	printerConn, err := grpc.NewClient(
		n.config.PrinterAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return fmt.Errorf("failed to connect to printer %s: %w", n.config.PrinterAddr, err)
	}
	n.conns = append(n.conns, printerConn)
	n.printer = transport.NewPrinterClient(
		n.config.NodeID, n.clock,
		printingv1.NewPrintingServiceClient(printerConn),
		n.config.PrintTimeout, n.logf,
	)

	peers := make([]transport.Peer, 0, len(n.config.Peers))
	for _, addr := range n.config.Peers {
		conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
		if err != nil {
			return fmt.Errorf("failed to connect to peer %s: %w", addr, err)
		}
		n.conns = append(n.conns, conn)
		peers = append(peers, transport.Peer{
			Addr:   addr,
			Client: printingv1.NewMutualExclusionServiceClient(conn),
		})
	}
	n.fanout = transport.NewFanout(n.clock, peers, n.config.Retry, n.config.CallTimeout, n.logf)
	return nil
}

// startServer starts the gRPC server answering peer requests.
func (n *Node) startServer(lis net.Listener) error {
	register := func(srv *grpc.Server) {
		printingv1.RegisterMutualExclusionServiceServer(srv, transport.NewMutexService(n.coord))
	}

	if lis != nil {
		n.grpcServer = transport.NewGRPCFromListener(lis, register)
	} else {
		grpcServer, err := transport.NewGRPC(n.config.GetAddress(), register)
		if err != nil {
			return fmt.Errorf("failed to create gRPC transport: %w", err)
		}
		n.grpcServer = grpcServer
	}

	if err := n.grpcServer.Start(); err != nil {
		return fmt.Errorf("failed to bind gRPC server: %w", err)
	}
	return nil
}

// TriggerJob runs one print job immediately. Used by the interactive console
// and by tests; works in both auto and manual mode.
func (n *Node) TriggerJob() error {
	n.mu.RLock()
	jobs := n.jobs
	ctx := n.ctx
	n.mu.RUnlock()

	if jobs == nil {
		return ErrNotStarted
	}
	return jobs.RunOnce(ctx)
}

// Snapshot returns the coordinator's observable state.
func (n *Node) Snapshot() mutex.Snapshot {
	return n.coord.Snapshot()
}

// Clock returns the node's Lamport clock.
func (n *Node) Clock() *lamport.Clock {
	return n.clock
}

// GetConfig returns the node configuration.
func (n *Node) GetConfig() *Config {
	n.mu.RLock()
	defer n.mu.RUnlock()
	return n.config
}

// Addr returns the bound server address once started.
func (n *Node) Addr() string {
	n.mu.RLock()
	defer n.mu.RUnlock()
	if n.grpcServer == nil {
		return n.config.GetAddress()
	}
	return n.grpcServer.Addr()
}

// Stop stops the node gracefully: cancel the job loop and in-flight
// broadcasts, complete every suspended inbound call so peers are not left
// deferred, then stop the server and close client connections.
func (n *Node) Stop() error {
	n.mu.Lock()
	grpcServer := n.grpcServer
	n.started = false
	// Lock released before stopping so handlers unblocking via the
	// coordinator can finish without deadlocking against Node accessors.
	n.cancel()
	n.mu.Unlock()

	n.logf("stopping client %d...", n.config.NodeID)

	n.coord.Close()

	if grpcServer != nil {
		if err := grpcServer.Stop(); err != nil {
			n.logf("error stopping gRPC server: %v", err)
		}
	}

	n.mu.Lock()
	n.closeConns()
	n.mu.Unlock()

	n.logf("client %d stopped", n.config.NodeID)
	return nil
}

// closeConns closes all outbound connections. Caller holds n.mu.
func (n *Node) closeConns() {
	for _, conn := range n.conns {
		if err := conn.Close(); err != nil {
			n.logf("error closing connection: %v", err)
		}
	}
	n.conns = nil
}

// statusReporter periodically logs the node's observable state.
func (n *Node) statusReporter() {
	ticker := time.NewTicker(n.config.StatusInterval)
	defer ticker.Stop()
	for {
		select {
		case <-n.ctx.Done():
			return
		case <-ticker.C:
			snap := n.coord.Snapshot()
			n.logf("status - clock: %d, state: %s, deferred: %d, requests: %d",
				n.clock.Peek(), snap.State, snap.Deferred, snap.Seq)
		}
	}
}

// logf logs through the global logger with the client prefix.
func (n *Node) logf(format string, args ...interface{}) {
	clientLogf(n.config.NodeID)(format, args...)
}

func clientLogf(nodeID int32) func(string, ...interface{}) {
	prefix := fmt.Sprintf("client-%d", nodeID)
	return func(format string, args ...interface{}) {
		logger.Printf("[%s] %s", prefix, fmt.Sprintf(format, args...))
	}
}
