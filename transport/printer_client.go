package transport

import (
	"context"
	"errors"
	"fmt"
	"time"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
	"github.com/j0taaa/tp1-CD/lamport"
)

// ErrPrinterFailure is returned when the printer answers but reports an
// unsuccessful print. It is not a transport error and is never retried here.
var ErrPrinterFailure = errors.New("printer reported failure")

// PrinterClient is the thin client for the shared printer. It ticks the
// clock before each call and merges the printer's timestamp on completion.
// Retrying is the caller's concern: the printer is slow by simulation, not
// unreliable by protocol.
type PrinterClient struct {
	nodeID  int32
	clock   *lamport.Clock
	client  printingv1.PrintingServiceClient
	timeout time.Duration
	logf    func(format string, args ...interface{})
}

// NewPrinterClient wraps a dialed printer stub. timeout caps each call; zero
// means no deadline. logf may be nil.
func NewPrinterClient(nodeID int32, clock *lamport.Clock, client printingv1.PrintingServiceClient, timeout time.Duration, logf func(string, ...interface{})) *PrinterClient {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &PrinterClient{
		nodeID:  nodeID,
		clock:   clock,
		client:  client,
		timeout: timeout,
		logf:    logf,
	}
}

// Print sends one document to the printer and returns its confirmation.
func (p *PrinterClient) Print(ctx context.Context, message string, seq int32) (string, error) {
	ts := p.clock.Tick()
	req := &printingv1.PrintRequest{
		ClientId:         p.nodeID,
		MessageContent:   message,
		LamportTimestamp: ts,
		RequestNumber:    seq,
	}

	callCtx := ctx
	if p.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}

	p.logf("sending document to printer: %s (TS: %d)", message, ts)
	resp, err := p.client.SendToPrinter(callCtx, req)
	if err != nil {
		p.clock.Tick()
		return "", fmt.Errorf("send to printer: %w", err)
	}

	p.clock.Observe(resp.GetLamportTimestamp())
	if !resp.GetSuccess() {
		return "", ErrPrinterFailure
	}
	return resp.GetConfirmationMessage(), nil
}
