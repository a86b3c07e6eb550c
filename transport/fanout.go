package transport

import (
	"context"
	"fmt"
	"sync"
	"time"

	printingv1 "github.com/j0taaa/tp1-CD/api/printing/v1"
	"github.com/j0taaa/tp1-CD/lamport"
	"github.com/j0taaa/tp1-CD/mutex"
)

// Peer is one entry of the static peer registry: an address and the stub
// dialed for it at startup.
type Peer struct {
	Addr   string
	Client printingv1.MutualExclusionServiceClient
}

// Fanout broadcasts mutual-exclusion calls to every peer concurrently and
// joins the replies. It implements mutex.Broadcaster.
type Fanout struct {
	clock       *lamport.Clock
	peers       []Peer
	policy      RetryPolicy
	callTimeout time.Duration
	logf        func(format string, args ...interface{})
}

// NewFanout builds a fanout over a fixed peer set. callTimeout caps each
// individual RequestAccess attempt; combined with the retry policy it bounds
// the total wait on an unresponsive peer. logf may be nil.
func NewFanout(clock *lamport.Clock, peers []Peer, policy RetryPolicy, callTimeout time.Duration, logf func(string, ...interface{})) *Fanout {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Fanout{
		clock:       clock,
		peers:       peers,
		policy:      policy,
		callTimeout: callTimeout,
		logf:        logf,
	}
}

// BroadcastRequest sends the access request to all peers concurrently and
// blocks until every peer has granted. Each goroutine writes to its own
// error slot; there is no shared accumulator. The first failure (after the
// per-call retries are exhausted) fails the whole broadcast.
func (f *Fanout) BroadcastRequest(ctx context.Context, req mutex.Request) error {
	if len(f.peers) == 0 {
		return nil
	}

	msg := &printingv1.AccessRequest{
		ClientId:         req.NodeID,
		LamportTimestamp: req.Timestamp,
		RequestNumber:    req.Seq,
	}

	errs := make([]error, len(f.peers))
	var wg sync.WaitGroup
	for i, p := range f.peers {
		wg.Add(1)
		go func(i int, p Peer) {
			defer wg.Done()
			errs[i] = f.requestAccess(ctx, p, msg)
		}(i, p)
	}
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return fmt.Errorf("peer %s: %w", f.peers[i].Addr, err)
		}
	}
	return nil
}

func (f *Fanout) requestAccess(ctx context.Context, p Peer, msg *printingv1.AccessRequest) error {
	return f.policy.Do(ctx, func(ctx context.Context) error {
		callCtx := ctx
		if f.callTimeout > 0 {
			var cancel context.CancelFunc
			callCtx, cancel = context.WithTimeout(ctx, f.callTimeout)
			defer cancel()
		}

		resp, err := p.Client.RequestAccess(callCtx, msg)
		if err != nil {
			f.logf("RequestAccess to %s failed: %v", p.Addr, err)
			return err
		}

		f.clock.Observe(resp.GetLamportTimestamp())
		if !resp.GetAccessGranted() {
			// The protocol has no denial outcome; an ungranted reply is a
			// peer-side bug, not something to retry.
			return fmt.Errorf("peer answered without granting access")
		}
		f.logf("reply received from %s (granted, TS: %d)", p.Addr, resp.GetLamportTimestamp())
		return nil
	})
}

// NotifyRelease fire-and-forgets a release notification to every peer.
// Deferred peers were already woken by held-call completion; this only lets
// everyone merge the release timestamp, so failures are logged and never
// retried.
func (f *Fanout) NotifyRelease(ctx context.Context, nodeID, seq int32) {
	if len(f.peers) == 0 {
		return
	}

	ts := f.clock.Tick()
	msg := &printingv1.AccessRelease{
		ClientId:         nodeID,
		LamportTimestamp: ts,
		RequestNumber:    seq,
	}

	for _, p := range f.peers {
		go func(p Peer) {
			callCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			if _, err := p.Client.ReleaseAccess(callCtx, msg); err != nil {
				f.logf("ReleaseAccess to %s failed: %v", p.Addr, err)
				return
			}
			f.logf("ReleaseAccess sent to %s (TS: %d)", p.Addr, ts)
		}(p)
	}
}

// PeerCount returns the size of the static peer set.
func (f *Fanout) PeerCount() int {
	return len(f.peers)
}
