package node

import (
	"bytes"
	"errors"
	"fmt"
	"net"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/j0taaa/tp1-CD/mutex"
	"github.com/j0taaa/tp1-CD/printer"
)

// syncWriter makes a bytes.Buffer safe for writes from gRPC handler
// goroutines.
type syncWriter struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (w *syncWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.Write(p)
}

func (w *syncWriter) String() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.buf.String()
}

func TestStartClusterAndStop(t *testing.T) {
	m := NewManager()
	opts := DefaultClusterOptions()
	opts.Size = 3
	opts.AutoJobs = false
	opts.PrintDelayMin = 0
	opts.PrintDelayMax = 0

	if err := m.StartCluster(opts); err != nil {
		t.Fatalf("start cluster: %v", err)
	}
	defer m.StopAll()

	if got := len(m.GetNodes()); got != 3 {
		t.Fatalf("expected 3 nodes, got %d", got)
	}
	if m.PrinterAddr() == "" {
		t.Fatal("printer address not bound")
	}
	for i, n := range m.GetNodes() {
		if got := len(n.GetConfig().Peers); got != 2 {
			t.Errorf("node %d has %d peers, want 2", i+1, got)
		}
	}

	if err := m.StartCluster(opts); err == nil {
		t.Fatal("expected error starting a running cluster")
	}

	if err := m.StopAll(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if got := len(m.GetNodes()); got != 0 {
		t.Fatalf("expected no nodes after stop, got %d", got)
	}
}

func TestManagerTriggerJobBounds(t *testing.T) {
	m := NewManager()
	if err := m.TriggerJob(0); err == nil {
		t.Fatal("expected error before cluster start")
	}
	opts := DefaultClusterOptions()
	opts.Size = 1
	opts.AutoJobs = false
	opts.PrintDelayMin = 0
	opts.PrintDelayMax = 0
	if err := m.StartCluster(opts); err != nil {
		t.Fatalf("start cluster: %v", err)
	}
	defer m.StopAll()

	if err := m.TriggerJob(-1); err == nil {
		t.Fatal("expected error for negative index")
	}
	if err := m.TriggerJob(1); err == nil {
		t.Fatal("expected error for out-of-range index")
	}
	if err := m.TriggerJob(0); err != nil {
		t.Fatalf("trigger: %v", err)
	}
}

func TestTriggerJobBeforeStart(t *testing.T) {
	n, err := New(DefaultConfig(1))
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	if err := n.TriggerJob(); !errors.Is(err, ErrNotStarted) {
		t.Fatalf("expected ErrNotStarted, got %v", err)
	}
}

// startTestCluster assembles a printer writing into out plus size manual-mode
// nodes, all on loopback listeners bound up front.
func startTestCluster(t *testing.T, size int, out *syncWriter) (*printer.Server, []*Node) {
	t.Helper()

	listeners := make([]net.Listener, 0, size+1)
	for i := 0; i < size+1; i++ {
		lis, err := net.Listen("tcp", "127.0.0.1:0")
		if err != nil {
			t.Fatalf("bind: %v", err)
		}
		listeners = append(listeners, lis)
	}

	printerCfg := printer.DefaultConfig()
	printerCfg.DelayMin = 5 * time.Millisecond
	printerCfg.DelayMax = 10 * time.Millisecond
	srv, err := printer.New(printerCfg, out)
	if err != nil {
		t.Fatalf("new printer: %v", err)
	}
	if err := srv.StartWithListener(listeners[0]); err != nil {
		t.Fatalf("start printer: %v", err)
	}
	t.Cleanup(func() { srv.Stop() })

	addrs := make([]string, size)
	for i, lis := range listeners[1:] {
		addrs[i] = lis.Addr().String()
	}

	nodes := make([]*Node, 0, size)
	for i, lis := range listeners[1:] {
		config := DefaultConfig(int32(i + 1))
		config.PrinterAddr = srv.Addr()
		config.Peers = otherAddrs(addrs, i)
		config.AutoJobs = false
		config.StatusInterval = 0

		n, err := New(config)
		if err != nil {
			t.Fatalf("new node %d: %v", i+1, err)
		}
		if err := n.StartWithListener(lis); err != nil {
			t.Fatalf("start node %d: %v", i+1, err)
		}
		t.Cleanup(func() { n.Stop() })
		nodes = append(nodes, n)
	}
	return srv, nodes
}

func TestSingleNodePrintJob(t *testing.T) {
	var out syncWriter
	_, nodes := startTestCluster(t, 1, &out)

	if err := nodes[0].TriggerJob(); err != nil {
		t.Fatalf("job: %v", err)
	}

	want := regexp.MustCompile(`^\[TS: \d+\] CLIENTE 1: Documento #1 do cliente 1\n$`)
	if got := out.String(); !want.MatchString(got) {
		t.Fatalf("printer output %q does not match %v", got, want)
	}
	if got := nodes[0].Snapshot().State; got != mutex.StateIdle {
		t.Fatalf("node not idle after job, state %s", got)
	}
	if got := nodes[0].Clock().Peek(); got == 0 {
		t.Fatal("clock did not advance")
	}
}

func TestConcurrentJobsAcrossCluster(t *testing.T) {
	const size = 3
	const rounds = 3

	var out syncWriter
	_, nodes := startTestCluster(t, size, &out)

	for r := 0; r < rounds; r++ {
		var wg sync.WaitGroup
		errs := make([]error, size)
		for i, n := range nodes {
			wg.Add(1)
			go func(i int, n *Node) {
				defer wg.Done()
				errs[i] = n.TriggerJob()
			}(i, n)
		}
		wg.Wait()
		for i, err := range errs {
			if err != nil {
				t.Fatalf("round %d node %d: %v", r, i+1, err)
			}
		}
	}

	lines := regexp.MustCompile(`\n`).Split(out.String(), -1)
	lines = lines[:len(lines)-1] // trailing newline
	if got := len(lines); got != size*rounds {
		t.Fatalf("expected %d printed documents, got %d:\n%s", size*rounds, got, out.String())
	}
	lineFormat := regexp.MustCompile(fmt.Sprintf(`^\[TS: \d+\] CLIENTE [1-%d]: Documento #\d+ do cliente [1-%d]$`, size, size))
	for _, line := range lines {
		if !lineFormat.MatchString(line) {
			t.Errorf("malformed document line %q", line)
		}
	}

	for i, n := range nodes {
		snap := n.Snapshot()
		if snap.State != mutex.StateIdle {
			t.Errorf("node %d not idle after jobs, state %s", i+1, snap.State)
		}
		if snap.Deferred != 0 {
			t.Errorf("node %d left %d peers deferred", i+1, snap.Deferred)
		}
		if snap.Seq != rounds {
			t.Errorf("node %d made %d requests, want %d", i+1, snap.Seq, rounds)
		}
	}
}

func TestNodeDoubleStart(t *testing.T) {
	var out syncWriter
	_, nodes := startTestCluster(t, 1, &out)

	if err := nodes[0].Start(); !errors.Is(err, ErrAlreadyStarted) {
		t.Fatalf("expected ErrAlreadyStarted, got %v", err)
	}
}
