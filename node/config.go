package node

import (
	"time"

	"github.com/j0taaa/tp1-CD/transport"
)

// Default configuration constants
const (
	DefaultAddress     = "127.0.0.1"
	DefaultPort        = "50052"
	DefaultPrinterAddr = "127.0.0.1:50051"
)

// Config holds the configuration for a client node. The peer set is fixed at
// startup: membership never changes while the node runs.
type Config struct {
	// Node identification. IDs break logical-clock ties, so they must be
	// unique and positive across the cluster.
	NodeID int32

	// Server configuration
	Address string
	Port    string

	// External collaborators
	PrinterAddr string
	Peers       []string // peer client addresses, e.g. ["127.0.0.1:50053"]

	// Job generation
	JobIntervalMin time.Duration
	JobIntervalMax time.Duration
	AutoJobs       bool

	// Periodic status line; zero disables it.
	StatusInterval time.Duration

	// Remote-call bounds
	Retry        transport.RetryPolicy
	CallTimeout  time.Duration // caps one RequestAccess attempt to a peer
	PrintTimeout time.Duration // caps one SendToPrinter attempt
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig(nodeID int32) *Config {
	return &Config{
		NodeID:         nodeID,
		Address:        DefaultAddress,
		Port:           DefaultPort,
		PrinterAddr:    DefaultPrinterAddr,
		Peers:          []string{},
		JobIntervalMin: 5 * time.Second,
		JobIntervalMax: 10 * time.Second,
		AutoJobs:       true,
		StatusInterval: 5 * time.Second,
		Retry:          transport.DefaultRetryPolicy(),
		CallTimeout:    30 * time.Second,
		PrintTimeout:   10 * time.Second,
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.NodeID <= 0 {
		return ErrInvalidNodeID
	}
	if c.Port == "" {
		return ErrPortRequired
	}
	if c.PrinterAddr == "" {
		return ErrPrinterRequired
	}
	if c.JobIntervalMin < 0 || c.JobIntervalMax < 0 || c.JobIntervalMin > c.JobIntervalMax {
		return ErrInvalidJobInterval
	}
	return nil
}

// GetAddress returns the full address (address:port).
func (c *Config) GetAddress() string {
	return c.Address + ":" + c.Port
}
