package transport

import (
	"fmt"
	"net"
	"strings"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/reflection"

	"github.com/j0taaa/tp1-CD/logger"
)

// GRPC wraps a grpc.Server with synchronous binding and graceful shutdown.
type GRPC struct {
	addr string
	srv  *grpc.Server
	lis  net.Listener
}

// NewGRPC creates a server that will bind addr on Start. register is called
// once to attach the service implementations.
func NewGRPC(addr string, register func(*grpc.Server)) (*GRPC, error) {
	if addr == "" || !strings.Contains(addr, ":") {
		return nil, fmt.Errorf("invalid address: %s", addr)
	}

	srv := grpc.NewServer()
	register(srv)

	// Register reflection service for gRPC tools (grpcurl, grpcui, etc.)
	reflection.Register(srv)

	return &GRPC{addr: addr, srv: srv}, nil
}

// NewGRPCFromListener wraps an already-bound listener. Used when the caller
// must know every address before any node starts (static peer sets).
func NewGRPCFromListener(lis net.Listener, register func(*grpc.Server)) *GRPC {
	srv := grpc.NewServer()
	register(srv)
	reflection.Register(srv)

	return &GRPC{addr: lis.Addr().String(), srv: srv, lis: lis}
}

// Start performs binding synchronously and returns an error immediately if
// binding fails (e.g. port already in use). On success the server serves in
// a background goroutine.
func (g *GRPC) Start() error {
	if g.lis == nil {
		lis, err := net.Listen("tcp", g.addr)
		if err != nil {
			return fmt.Errorf("failed to listen on %s: %w", g.addr, err)
		}
		g.lis = lis
	}

	go func() {
		if err := g.srv.Serve(g.lis); err != nil && err != grpc.ErrServerStopped {
			logger.Errorf("gRPC server on %s: %v", g.addr, err)
		}
	}()
	return nil
}

// Addr returns the bound address, which differs from the configured one when
// the listener was created with port 0.
func (g *GRPC) Addr() string {
	if g.lis != nil {
		return g.lis.Addr().String()
	}
	return g.addr
}

// Stop shuts the server down gracefully, falling back to a hard stop if
// in-flight handlers do not drain in time.
func (g *GRPC) Stop() error {
	if g.srv == nil {
		return nil
	}
	done := make(chan struct{})
	go func() {
		g.srv.GracefulStop()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		g.srv.Stop()
	}
	return nil
}
