package transport

import (
	"context"
	"errors"
	"testing"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
	"github.com/j0taaa/tp1-CD/lamport"
)

type fakePrinter struct {
	resp    *printingv1.PrintResponse
	err     error
	lastReq *printingv1.PrintRequest
}

func (f *fakePrinter) SendToPrinter(ctx context.Context, req *printingv1.PrintRequest, opts ...grpc.CallOption) (*printingv1.PrintResponse, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

func TestPrintSuccess(t *testing.T) {
	clock := lamport.New()
	fake := &fakePrinter{resp: &printingv1.PrintResponse{
		Success:             true,
		ConfirmationMessage: "Documento do cliente 3 impresso com sucesso",
		LamportTimestamp:    25,
	}}
	pc := NewPrinterClient(3, clock, fake, 0, nil)

	confirmation, err := pc.Print(context.Background(), "Documento #1 do cliente 3", 1)
	if err != nil {
		t.Fatalf("print: %v", err)
	}
	if confirmation != "Documento do cliente 3 impresso com sucesso" {
		t.Errorf("confirmation = %q", confirmation)
	}

	if fake.lastReq.GetClientId() != 3 {
		t.Errorf("request client id = %d", fake.lastReq.GetClientId())
	}
	if fake.lastReq.GetLamportTimestamp() != 1 {
		t.Errorf("request stamped %d, want 1 (tick before send)", fake.lastReq.GetLamportTimestamp())
	}
	if got := clock.Peek(); got <= 25 {
		t.Errorf("confirmation timestamp not merged, clock at %d", got)
	}
}

func TestPrintTransportError(t *testing.T) {
	clock := lamport.New()
	fake := &fakePrinter{err: status.Error(codes.Unavailable, "printer down")}
	pc := NewPrinterClient(1, clock, fake, 0, nil)

	_, err := pc.Print(context.Background(), "x", 1)
	if status.Code(err) != codes.Unavailable {
		t.Fatalf("expected the transport error back, got %v", err)
	}
}

func TestPrintReportedFailure(t *testing.T) {
	fake := &fakePrinter{resp: &printingv1.PrintResponse{Success: false, LamportTimestamp: 2}}
	pc := NewPrinterClient(1, lamport.New(), fake, 0, nil)

	_, err := pc.Print(context.Background(), "x", 1)
	if !errors.Is(err, ErrPrinterFailure) {
		t.Fatalf("expected ErrPrinterFailure, got %v", err)
	}
}
