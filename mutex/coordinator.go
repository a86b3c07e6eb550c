// Package mutex implements the Ricart-Agrawala distributed mutual exclusion
// algorithm on top of Lamport logical clocks.
//
// Each node broadcasts a timestamped access request and may enter its
// critical section only after every peer has replied. A peer that does not
// want to grant yet does not answer "no": it suspends the inbound call and
// completes it when its own release fires.
//
// Reference: Ricart, Glenn, and Ashok K. Agrawala. "An optimal algorithm for
// mutual exclusion in computer networks." Communications of the ACM 24.1
// (1981): 9-17.
package mutex

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/j0taaa/tp1-CD/lamport"
)

// State is the coordinator's position in the acquire/release cycle.
type State int32

const (
	StateIdle State = iota
	StateRequesting
	StateHolding
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRequesting:
		return "requesting"
	case StateHolding:
		return "holding"
	default:
		return fmt.Sprintf("state(%d)", int32(s))
	}
}

var (
	// ErrNotHolding is returned by Release when the node does not hold access.
	ErrNotHolding = errors.New("not holding access")
	// ErrBusy is returned by Acquire while another acquire is in flight.
	ErrBusy = errors.New("an access request is already in flight")
	// ErrShuttingDown is returned to suspended handlers when the coordinator
	// closes, so peers are never left waiting on a dead node.
	ErrShuttingDown = errors.New("coordinator is shutting down")
	// ErrInvalidRequest is returned for malformed inbound requests.
	ErrInvalidRequest = errors.New("invalid access request")
)

// Broadcaster delivers an access request to every peer concurrently and
// returns once all of them have granted.
type Broadcaster interface {
	BroadcastRequest(ctx context.Context, req Request) error
}

// Snapshot is a copy of the coordinator's observable state, safe to read
// without holding its lock.
type Snapshot struct {
	State    State
	Seq      int32
	Deferred int
}

// Coordinator is the per-node Ricart-Agrawala state machine. One mutex guards
// the state, the current request and the deferred set together so that an
// inbound handler's priority decision and a local acquire never interleave
// inconsistently.
type Coordinator struct {
	nodeID int32
	clock  *lamport.Clock
	logf   func(format string, args ...interface{})

	mu     sync.Mutex
	state  State
	ledger *ledger

	closed    chan struct{}
	closeOnce sync.Once
}

// NewCoordinator creates an idle coordinator. logf may be nil.
func NewCoordinator(nodeID int32, clock *lamport.Clock, logf func(string, ...interface{})) *Coordinator {
	if logf == nil {
		logf = func(string, ...interface{}) {}
	}
	return &Coordinator{
		nodeID: nodeID,
		clock:  clock,
		logf:   logf,
		state:  StateIdle,
		ledger: newLedger(),
		closed: make(chan struct{}),
	}
}

// Acquire runs the requesting side of the algorithm: tick the clock, record
// the claim, broadcast to every peer and block until all grants are in. On
// success the coordinator is Holding. If the broadcast fails the claim is
// abandoned and any peers deferred in the meantime are granted, so nobody
// starves on a request that will never be released.
func (c *Coordinator) Acquire(ctx context.Context, b Broadcaster) error {
	select {
	case <-c.closed:
		return ErrShuttingDown
	default:
	}

	c.mu.Lock()
	if c.state != StateIdle {
		c.mu.Unlock()
		return ErrBusy
	}
	ts := c.clock.Tick()
	req := c.ledger.open(c.nodeID, ts)
	c.state = StateRequesting
	c.mu.Unlock()

	c.logf("requesting access (request #%d, TS: %d)", req.Seq, req.Timestamp)

	if err := b.BroadcastRequest(ctx, req); err != nil {
		c.abandon(req)
		return fmt.Errorf("broadcast request #%d: %w", req.Seq, err)
	}

	c.mu.Lock()
	c.state = StateHolding
	c.mu.Unlock()
	c.logf("access granted, all replies received (TS: %d)", c.clock.Peek())
	return nil
}

// HandleRequest runs the receiving side. It merges the peer's timestamp,
// decides against the current local state and either grants immediately or
// suspends until the local release (or shutdown) completes the call. The
// returned timestamp goes into the grant reply.
func (c *Coordinator) HandleRequest(ctx context.Context, peer Request) (int64, error) {
	if peer.NodeID <= 0 || peer.Timestamp < 0 || peer.Seq < 0 {
		return 0, ErrInvalidRequest
	}

	// Lamport receive rule: merge before any decision uses the value.
	c.clock.Observe(peer.Timestamp)

	c.mu.Lock()
	grant, reason := c.decide(peer)
	if grant {
		ts := c.clock.Tick()
		c.mu.Unlock()
		c.logf("request from client %d granted (%s)", peer.NodeID, reason)
		return ts, nil
	}
	wait := c.ledger.waitChan(peer.NodeID)
	c.mu.Unlock()

	c.logf("request from client %d deferred (%s)", peer.NodeID, reason)

	select {
	case <-wait:
		// Released: the withheld reply is sent unconditionally.
		ts := c.clock.Tick()
		c.logf("deferred request from client %d granted after release (TS: %d)", peer.NodeID, ts)
		return ts, nil
	case <-ctx.Done():
		// The caller gave up (timeout or shutdown on its side). Drop this
		// handler's claim on the wait channel so the deferred count stays
		// accurate; a retry from the same peer that is still blocked keeps
		// the entry alive.
		c.mu.Lock()
		c.ledger.forget(peer.NodeID, wait)
		c.mu.Unlock()
		return 0, ctx.Err()
	case <-c.closed:
		return 0, ErrShuttingDown
	}
}

// decide evaluates the Ricart-Agrawala rule against the current snapshot of
// local state. Caller holds c.mu.
func (c *Coordinator) decide(peer Request) (grant bool, reason string) {
	switch c.state {
	case StateIdle:
		return true, "not competing"
	case StateHolding:
		return false, fmt.Sprintf("holding access, peer TS: %d", peer.Timestamp)
	case StateRequesting:
		if c.ledger.current == nil {
			panic("mutex: requesting state without a current request")
		}
		own := *c.ledger.current
		if peer.Before(own) {
			return true, fmt.Sprintf("peer (TS %d, id %d) precedes ours (TS %d, id %d)",
				peer.Timestamp, peer.NodeID, own.Timestamp, own.NodeID)
		}
		return false, fmt.Sprintf("our request (TS %d, id %d) precedes peer (TS %d, id %d)",
			own.Timestamp, own.NodeID, peer.Timestamp, peer.NodeID)
	default:
		panic(fmt.Sprintf("mutex: unknown state %d", c.state))
	}
}

// Release leaves the critical section: tick the clock, drain the deferred
// set (completing every suspended call with a grant) and return to Idle.
func (c *Coordinator) Release() error {
	c.mu.Lock()
	if c.state != StateHolding {
		c.mu.Unlock()
		c.logf("release called while %s, ignoring", c.state)
		return ErrNotHolding
	}
	ts := c.clock.Tick()
	waiters := c.ledger.drain()
	c.ledger.discard()
	c.state = StateIdle
	c.mu.Unlock()

	for _, w := range waiters {
		close(w)
	}
	c.logf("released access, completed %d deferred replies (TS: %d)", len(waiters), ts)
	return nil
}

// ObserveRelease processes a peer's release notification. The grant itself
// arrives by held-call completion; this only merges the release timestamp.
func (c *Coordinator) ObserveRelease(peerID int32, timestamp int64) error {
	if peerID <= 0 || timestamp < 0 {
		return ErrInvalidRequest
	}
	ts := c.clock.Observe(timestamp)
	c.logf("release notification from client %d (peer TS: %d, TS: %d)", peerID, timestamp, ts)
	return nil
}

// abandon drops a claim whose broadcast failed. Deferred peers collected
// while requesting are granted so their calls do not hang forever.
func (c *Coordinator) abandon(req Request) {
	c.mu.Lock()
	waiters := c.ledger.drain()
	c.ledger.discard()
	c.state = StateIdle
	c.mu.Unlock()

	for _, w := range waiters {
		close(w)
	}
	c.logf("abandoned request #%d, completed %d deferred replies", req.Seq, len(waiters))
}

// Snapshot returns the current observable state for status reporting.
func (c *Coordinator) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{State: c.state, Seq: c.ledger.seq, Deferred: c.ledger.deferredCount()}
}

// State returns the current state.
func (c *Coordinator) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Close wakes every suspended handler with a terminal error so a node
// shutting down never leaves peers permanently deferred. Idempotent.
func (c *Coordinator) Close() {
	c.closeOnce.Do(func() {
		close(c.closed)
	})
}
