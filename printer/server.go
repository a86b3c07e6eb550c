// Package printer implements the shared printing server. It is deliberately
// dumb: it takes no part in the mutual exclusion protocol. It keeps its own
// Lamport clock, merges the timestamp of each request, prints the document
// line, sleeps a simulated delay and replies with a confirmation.
package printer

import (
	"context"
	"fmt"
	"io"
	"math/rand"
	"net"
	"os"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
	"github.com/j0taaa/tp1-CD/lamport"
	"github.com/j0taaa/tp1-CD/logger"
	"github.com/j0taaa/tp1-CD/transport"
)

// Server is the PrintingService implementation plus its gRPC lifecycle.
type Server struct {
	printingv1.UnimplementedPrintingServiceServer

	config *Config
	clock  *lamport.Clock
	out    io.Writer
	logf   func(format string, args ...interface{})

	grpcServer *transport.GRPC
}

// New creates a printer server. out receives the printed document lines; nil
// means os.Stdout.
func New(config *Config, out io.Writer) (*Server, error) {
	if config == nil {
		return nil, fmt.Errorf("config is required")
	}
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if out == nil {
		out = os.Stdout
	}
	return &Server{
		config: config,
		clock:  lamport.New(),
		out:    out,
		logf: func(format string, args ...interface{}) {
			logger.Printf("[printer] %s", fmt.Sprintf(format, args...))
		},
	}, nil
}

// SendToPrinter handles a print request: merge the client's timestamp, print
// the document line, simulate the printing delay and confirm with a fresh
// timestamp.
func (s *Server) SendToPrinter(ctx context.Context, req *printingv1.PrintRequest) (*printingv1.PrintResponse, error) {
	if req.GetClientId() <= 0 {
		return nil, status.Error(codes.InvalidArgument, "client_id must be positive")
	}
	if req.GetLamportTimestamp() < 0 {
		return nil, status.Error(codes.InvalidArgument, "lamport_timestamp must be non-negative")
	}
	if req.GetMessageContent() == "" {
		return nil, status.Error(codes.InvalidArgument, "message_content is required")
	}

	s.clock.Observe(req.GetLamportTimestamp())

	// The document line carries the client's timestamp, not the printer's.
	fmt.Fprintf(s.out, "[TS: %d] CLIENTE %d: %s\n",
		req.GetLamportTimestamp(), req.GetClientId(), req.GetMessageContent())

	if err := s.sleepPrintDelay(ctx); err != nil {
		return nil, status.FromContextError(err).Err()
	}

	ts := s.clock.Tick()
	s.logf("confirmation sent to client %d (TS: %d)", req.GetClientId(), ts)

	return &printingv1.PrintResponse{
		Success:             true,
		ConfirmationMessage: fmt.Sprintf("Documento do cliente %d impresso com sucesso", req.GetClientId()),
		LamportTimestamp:    ts,
	}, nil
}

// sleepPrintDelay blocks for a uniform random duration within the configured
// range, aborting early if the caller goes away.
func (s *Server) sleepPrintDelay(ctx context.Context) error {
	delay := s.config.DelayMin
	if span := s.config.DelayMax - s.config.DelayMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// Start binds the configured address and serves in the background.
func (s *Server) Start() error {
	grpcServer, err := transport.NewGRPC(s.config.GetAddress(), func(srv *grpc.Server) {
		printingv1.RegisterPrintingServiceServer(srv, s)
	})
	if err != nil {
		return fmt.Errorf("failed to create gRPC transport: %w", err)
	}
	s.grpcServer = grpcServer

	if err := grpcServer.Start(); err != nil {
		return fmt.Errorf("failed to bind printer server: %w", err)
	}
	s.logf("printing server started on %s (delay %v-%v)",
		grpcServer.Addr(), s.config.DelayMin, s.config.DelayMax)
	return nil
}

// StartWithListener serves on an already-bound listener.
func (s *Server) StartWithListener(lis net.Listener) error {
	s.grpcServer = transport.NewGRPCFromListener(lis, func(srv *grpc.Server) {
		printingv1.RegisterPrintingServiceServer(srv, s)
	})
	if err := s.grpcServer.Start(); err != nil {
		return fmt.Errorf("failed to start printer server: %w", err)
	}
	s.logf("printing server started on %s (delay %v-%v)",
		s.grpcServer.Addr(), s.config.DelayMin, s.config.DelayMax)
	return nil
}

// Addr returns the bound address once started.
func (s *Server) Addr() string {
	if s.grpcServer == nil {
		return s.config.GetAddress()
	}
	return s.grpcServer.Addr()
}

// Stop shuts the server down.
func (s *Server) Stop() error {
	if s.grpcServer == nil {
		return nil
	}
	s.logf("printing server stopping")
	return s.grpcServer.Stop()
}
