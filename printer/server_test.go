package printer

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
)

func fastConfig() *Config {
	config := DefaultConfig()
	config.DelayMin = 0
	config.DelayMax = 0
	return config
}

func TestSendToPrinter(t *testing.T) {
	var out bytes.Buffer
	srv, err := New(fastConfig(), &out)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	resp, err := srv.SendToPrinter(context.Background(), &printingv1.PrintRequest{
		ClientId:         2,
		MessageContent:   "Documento #1 do cliente 2",
		LamportTimestamp: 5,
		RequestNumber:    1,
	})
	if err != nil {
		t.Fatalf("send: %v", err)
	}

	if !resp.GetSuccess() {
		t.Fatal("expected success")
	}
	if got, want := resp.GetConfirmationMessage(), "Documento do cliente 2 impresso com sucesso"; got != want {
		t.Errorf("confirmation = %q, want %q", got, want)
	}
	// Merge to 6, confirmation tick to 7.
	if got := resp.GetLamportTimestamp(); got != 7 {
		t.Errorf("confirmation timestamp = %d, want 7", got)
	}

	// The document line carries the client's timestamp.
	if got, want := out.String(), "[TS: 5] CLIENTE 2: Documento #1 do cliente 2\n"; got != want {
		t.Errorf("printed %q, want %q", got, want)
	}
}

func TestSendToPrinterClockMerges(t *testing.T) {
	var out bytes.Buffer
	srv, err := New(fastConfig(), &out)
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	first, err := srv.SendToPrinter(context.Background(), &printingv1.PrintRequest{
		ClientId: 1, MessageContent: "a", LamportTimestamp: 100,
	})
	if err != nil {
		t.Fatalf("first send: %v", err)
	}
	second, err := srv.SendToPrinter(context.Background(), &printingv1.PrintRequest{
		ClientId: 2, MessageContent: "b", LamportTimestamp: 3,
	})
	if err != nil {
		t.Fatalf("second send: %v", err)
	}

	// The printer's clock never regresses, even for a stale request.
	if second.GetLamportTimestamp() <= first.GetLamportTimestamp() {
		t.Fatalf("clock regressed: %d then %d",
			first.GetLamportTimestamp(), second.GetLamportTimestamp())
	}
}

func TestSendToPrinterValidation(t *testing.T) {
	srv, err := New(fastConfig(), &bytes.Buffer{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	tests := []struct {
		name string
		req  *printingv1.PrintRequest
	}{
		{"zero client id", &printingv1.PrintRequest{MessageContent: "x", LamportTimestamp: 1}},
		{"negative client id", &printingv1.PrintRequest{ClientId: -1, MessageContent: "x"}},
		{"negative timestamp", &printingv1.PrintRequest{ClientId: 1, MessageContent: "x", LamportTimestamp: -2}},
		{"empty message", &printingv1.PrintRequest{ClientId: 1, LamportTimestamp: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := srv.SendToPrinter(context.Background(), tt.req)
			if status.Code(err) != codes.InvalidArgument {
				t.Errorf("expected InvalidArgument, got %v", err)
			}
		})
	}
}

func TestSendToPrinterAbortsOnCancelledContext(t *testing.T) {
	config := DefaultConfig()
	config.DelayMin = time.Minute
	config.DelayMax = time.Minute
	srv, err := New(config, &bytes.Buffer{})
	if err != nil {
		t.Fatalf("new: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err = srv.SendToPrinter(ctx, &printingv1.PrintRequest{
		ClientId: 1, MessageContent: "x", LamportTimestamp: 1,
	})
	if status.Code(err) != codes.DeadlineExceeded {
		t.Fatalf("expected DeadlineExceeded, got %v", err)
	}
	if time.Since(start) > 5*time.Second {
		t.Fatal("print delay did not abort on context cancellation")
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{"defaults", func(*Config) {}, nil},
		{"missing port", func(c *Config) { c.Port = "" }, ErrPortRequired},
		{"negative delay", func(c *Config) { c.DelayMin = -time.Second }, ErrInvalidDelay},
		{"min over max", func(c *Config) { c.DelayMin = 5 * time.Second; c.DelayMax = time.Second }, ErrDelayMinOverMax},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config := DefaultConfig()
			tt.mutate(config)
			err := config.Validate()
			if tt.wantErr == nil && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
			if tt.wantErr != nil && err != tt.wantErr {
				t.Errorf("expected %v, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestGetAddress(t *testing.T) {
	config := DefaultConfig()
	if got := config.GetAddress(); !strings.Contains(got, ":") || got != "127.0.0.1:50051" {
		t.Errorf("GetAddress() = %q", got)
	}
}
