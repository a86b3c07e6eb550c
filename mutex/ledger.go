package mutex

// Request identifies one bid for the critical section. It is immutable once
// created and discarded on release.
type Request struct {
	NodeID    int32
	Timestamp int64
	Seq       int32
}

// Before reports whether r wins priority over other under the total order
// (timestamp, nodeId), where node ID breaks ties.
func (r Request) Before(other Request) bool {
	if r.Timestamp != other.Timestamp {
		return r.Timestamp < other.Timestamp
	}
	return r.NodeID < other.NodeID
}

// waiter is one deferred peer: the channel its suspended handlers block on
// and how many handlers are blocked. Retried requests from the same peer
// share the channel, so refs can exceed one.
type waiter struct {
	ch   chan struct{}
	refs int
}

// ledger records the node's current claim and the set of peers whose replies
// are being withheld. Each deferred peer maps to a wait channel that the
// suspended inbound handler blocks on; closing the channel delivers the
// grant. All access happens under the Coordinator mutex.
type ledger struct {
	current  *Request
	seq      int32
	deferred map[int32]*waiter
}

func newLedger() *ledger {
	return &ledger{deferred: make(map[int32]*waiter)}
}

// open starts a new claim: bumps the sequence counter and records the
// request as current.
func (l *ledger) open(nodeID int32, timestamp int64) Request {
	l.seq++
	req := Request{NodeID: nodeID, Timestamp: timestamp, Seq: l.seq}
	l.current = &req
	return req
}

// discard drops the current claim.
func (l *ledger) discard() {
	l.current = nil
}

// waitChan returns the wait channel for peerID, creating it if the peer is
// not deferred yet. A retried request from the same peer shares the channel.
func (l *ledger) waitChan(peerID int32) chan struct{} {
	w, ok := l.deferred[peerID]
	if !ok {
		w = &waiter{ch: make(chan struct{})}
		l.deferred[peerID] = w
	}
	w.refs++
	return w.ch
}

// forget drops one handler's claim on peerID's wait channel after its caller
// went away. The entry is removed once no handler is blocked on it, keeping
// the deferred count honest; a stale ch (already drained) is a no-op.
func (l *ledger) forget(peerID int32, ch chan struct{}) {
	w, ok := l.deferred[peerID]
	if !ok || w.ch != ch {
		return
	}
	w.refs--
	if w.refs <= 0 {
		delete(l.deferred, peerID)
	}
}

// drain empties the deferred set and returns the wait channels so the caller
// can complete them outside the lock.
func (l *ledger) drain() []chan struct{} {
	if len(l.deferred) == 0 {
		return nil
	}
	waiters := make([]chan struct{}, 0, len(l.deferred))
	for _, w := range l.deferred {
		waiters = append(waiters, w.ch)
	}
	l.deferred = make(map[int32]*waiter)
	return waiters
}

func (l *ledger) deferredCount() int {
	return len(l.deferred)
}
