package node

import (
	"errors"
	"testing"
	"time"
)

func TestDefaultConfigIsValid(t *testing.T) {
	config := DefaultConfig(1)
	if err := config.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if config.NodeID != 1 {
		t.Errorf("NodeID = %d, want 1", config.NodeID)
	}
	if got := config.GetAddress(); got != "127.0.0.1:50052" {
		t.Errorf("GetAddress() = %q", got)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"zero node id", func(c *Config) { c.NodeID = 0 }, ErrInvalidNodeID},
		{"negative node id", func(c *Config) { c.NodeID = -4 }, ErrInvalidNodeID},
		{"missing port", func(c *Config) { c.Port = "" }, ErrPortRequired},
		{"missing printer", func(c *Config) { c.PrinterAddr = "" }, ErrPrinterRequired},
		{"negative interval", func(c *Config) { c.JobIntervalMin = -time.Second }, ErrInvalidJobInterval},
		{"min over max", func(c *Config) {
			c.JobIntervalMin = 10 * time.Second
			c.JobIntervalMax = 5 * time.Second
		}, ErrInvalidJobInterval},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig(1)
			tt.mutate(config)
			if err := config.Validate(); !errors.Is(err, tt.wantErr) {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
	if _, err := New(DefaultConfig(0)); err == nil {
		t.Fatal("expected error for invalid node id")
	}
}
