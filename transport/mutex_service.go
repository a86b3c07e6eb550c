package transport

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
	"github.com/j0taaa/tp1-CD/mutex"
)

// MutexService adapts a mutex.Coordinator to the MutualExclusionService wire
// contract. RequestAccess blocks inside the handler while the coordinator
// defers; the held call is completed by the local release.
type MutexService struct {
	printingv1.UnimplementedMutualExclusionServiceServer
	coord *mutex.Coordinator
}

// NewMutexService wraps a coordinator.
func NewMutexService(coord *mutex.Coordinator) *MutexService {
	return &MutexService{coord: coord}
}

// RequestAccess handles an access request from a peer. It returns only when
// the grant can be delivered; there is no denial outcome.
func (s *MutexService) RequestAccess(ctx context.Context, req *printingv1.AccessRequest) (*printingv1.AccessResponse, error) {
	ts, err := s.coord.HandleRequest(ctx, mutex.Request{
		NodeID:    req.GetClientId(),
		Timestamp: req.GetLamportTimestamp(),
		Seq:       req.GetRequestNumber(),
	})
	if err != nil {
		return nil, accessError(err)
	}

	return &printingv1.AccessResponse{
		AccessGranted:    true,
		LamportTimestamp: ts,
	}, nil
}

// ReleaseAccess acknowledges a peer's release notification. The grant for a
// deferred request travels through the suspended RequestAccess call, so this
// only merges the timestamp.
func (s *MutexService) ReleaseAccess(ctx context.Context, rel *printingv1.AccessRelease) (*printingv1.Empty, error) {
	if err := s.coord.ObserveRelease(rel.GetClientId(), rel.GetLamportTimestamp()); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	return &printingv1.Empty{}, nil
}

// accessError maps coordinator errors onto gRPC status codes at the service
// boundary.
func accessError(err error) error {
	switch {
	case errors.Is(err, mutex.ErrInvalidRequest):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, mutex.ErrShuttingDown):
		return status.Error(codes.Unavailable, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
