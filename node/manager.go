package node

import (
	"fmt"
	"net"
	"sync"
	"time"

	"github.com/j0taaa/tp1-CD/printer"
)

// Manager runs a whole cluster in one process: a printer plus N client nodes
// wired as a full mesh. Membership is fixed at cluster creation: every
// listener is bound before any node starts so each node knows the complete
// peer set up front.
type Manager struct {
	mu      sync.RWMutex
	printer *printer.Server
	nodes   []*Node
}

// NewManager creates an empty manager.
func NewManager() *Manager {
	return &Manager{}
}

// ClusterOptions tune the in-process cluster.
type ClusterOptions struct {
	Size           int
	AutoJobs       bool
	JobIntervalMin time.Duration
	JobIntervalMax time.Duration
	PrintDelayMin  time.Duration
	PrintDelayMax  time.Duration
}

// DefaultClusterOptions mirrors the standalone defaults with three nodes.
func DefaultClusterOptions() ClusterOptions {
	return ClusterOptions{
		Size:           3,
		AutoJobs:       true,
		JobIntervalMin: 5 * time.Second,
		JobIntervalMax: 10 * time.Second,
		PrintDelayMin:  2 * time.Second,
		PrintDelayMax:  3 * time.Second,
	}
}

// StartCluster binds one listener per process on loopback, starts the
// printer and then every node with the full peer list.
func (m *Manager) StartCluster(opts ClusterOptions) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.nodes) > 0 || m.printer != nil {
		return fmt.Errorf("cluster already running")
	}
	if opts.Size <= 0 {
		return fmt.Errorf("cluster size must be positive, got %d", opts.Size)
	}

	listeners := make([]net.Listener, 0, opts.Size+1)
	cleanup := func() {
		for _, lis := range listeners {
			lis.Close()
		}
	}
	for i := 0; i < opts.Size+1; i++ {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			cleanup()
			return fmt.Errorf("failed to bind cluster listener: %w", err)
		}
		listeners = append(listeners, lis)
	}

	printerLis, nodeLis := listeners[0], listeners[1:]

	printerCfg := printer.DefaultConfig()
	printerCfg.DelayMin = opts.PrintDelayMin
	printerCfg.DelayMax = opts.PrintDelayMax
	srv, err := printer.New(printerCfg, nil)
	if err != nil {
		cleanup()
		return fmt.Errorf("failed to create printer: %w", err)
	}
	if err := srv.StartWithListener(printerLis); err != nil {
		cleanup()
		return fmt.Errorf("failed to start printer: %w", err)
	}
	m.printer = srv

	addrs := make([]string, len(nodeLis))
	for i, lis := range nodeLis {
		addrs[i] = lis.Addr().String()
	}

	for i, lis := range nodeLis {
		config := DefaultConfig(int32(i + 1))
		config.PrinterAddr = srv.Addr()
		config.Peers = otherAddrs(addrs, i)
		config.AutoJobs = opts.AutoJobs
		config.JobIntervalMin = opts.JobIntervalMin
		config.JobIntervalMax = opts.JobIntervalMax

		n, err := New(config)
		if err != nil {
			m.stopLocked()
			return fmt.Errorf("failed to create node %d: %w", i+1, err)
		}
		if err := n.StartWithListener(lis); err != nil {
			m.stopLocked()
			return fmt.Errorf("failed to start node %d: %w", i+1, err)
		}
		m.nodes = append(m.nodes, n)
	}

	return nil
}

// TriggerJob runs one print job on the node at index, asynchronously.
func (m *Manager) TriggerJob(index int) error {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if index < 0 || index >= len(m.nodes) {
		return fmt.Errorf("invalid node index: %d", index)
	}
	n := m.nodes[index]
	go func() {
		if err := n.TriggerJob(); err != nil {
			clientLogf(n.GetConfig().NodeID)("manual job failed: %v", err)
		}
	}()
	return nil
}

// GetNodes returns all nodes in creation order.
func (m *Manager) GetNodes() []*Node {
	m.mu.RLock()
	defer m.mu.RUnlock()
	nodes := make([]*Node, len(m.nodes))
	copy(nodes, m.nodes)
	return nodes
}

// PrinterAddr returns the printer's bound address, or "" before StartCluster.
func (m *Manager) PrinterAddr() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.printer == nil {
		return ""
	}
	return m.printer.Addr()
}

// StopAll stops every node and then the printer.
func (m *Manager) StopAll() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stopLocked()
}

func (m *Manager) stopLocked() error {
	var errs []error
	for _, n := range m.nodes {
		if err := n.Stop(); err != nil {
			errs = append(errs, err)
		}
	}
	m.nodes = nil

	if m.printer != nil {
		if err := m.printer.Stop(); err != nil {
			errs = append(errs, err)
		}
		m.printer = nil
	}

	if len(errs) > 0 {
		return fmt.Errorf("errors stopping cluster: %v", errs)
	}
	return nil
}

func otherAddrs(addrs []string, self int) []string {
	out := make([]string, 0, len(addrs)-1)
	for i, a := range addrs {
		if i != self {
			out = append(out, a)
		}
	}
	return out
}
