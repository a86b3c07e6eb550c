package printer

import (
	"errors"
	"time"
)

// Default configuration constants
const (
	DefaultAddress = "127.0.0.1"
	DefaultPort    = "50051"
)

var (
	ErrPortRequired    = errors.New("port is required")
	ErrInvalidDelay    = errors.New("print delays must be non-negative")
	ErrDelayMinOverMax = errors.New("delay-min must be less than or equal to delay-max")
)

// Config holds the printer server configuration.
type Config struct {
	Address string
	Port    string

	// Simulated printing delay, drawn uniformly from [DelayMin, DelayMax].
	DelayMin time.Duration
	DelayMax time.Duration
}

// DefaultConfig returns a config with a 2-3 second simulated print delay.
func DefaultConfig() *Config {
	return &Config{
		Address:  DefaultAddress,
		Port:     DefaultPort,
		DelayMin: 2 * time.Second,
		DelayMax: 3 * time.Second,
	}
}

// Validate checks if the config is valid.
func (c *Config) Validate() error {
	if c.Port == "" {
		return ErrPortRequired
	}
	if c.DelayMin < 0 || c.DelayMax < 0 {
		return ErrInvalidDelay
	}
	if c.DelayMin > c.DelayMax {
		return ErrDelayMinOverMax
	}
	return nil
}

// GetAddress returns the full address (address:port).
func (c *Config) GetAddress() string {
	return c.Address + ":" + c.Port
}
