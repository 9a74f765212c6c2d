// Package leaktest checks that background goroutines exit once their owner shuts down.
package leaktest

import (
	"runtime"
	"testing"
	"time"
)

// DefaultSettleTimeout bounds how long a check waits for goroutines to exit
const DefaultSettleTimeout = 2 * time.Second

const pollInterval = 10 * time.Millisecond

// GoroutineChecker compares the goroutine count against a baseline taken at creation
type GoroutineChecker struct {
	t       testing.TB
	before  int
	timeout time.Duration
}

// NewGoroutineChecker records the current goroutine count as the baseline
func NewGoroutineChecker(t testing.TB) *GoroutineChecker {
	t.Helper()
	runtime.Gosched()
	return &GoroutineChecker{t: t, before: runtime.NumGoroutine(), timeout: DefaultSettleTimeout}
}

// WithTimeout overrides how long Check waits before reporting a leak
func (g *GoroutineChecker) WithTimeout(d time.Duration) *GoroutineChecker {
	g.timeout = d
	return g
}

// Check polls until at most tolerance goroutines above the baseline remain.
// On timeout it fails the test and dumps every goroutine stack.
func (g *GoroutineChecker) Check(tolerance int) {
	g.t.Helper()
	after, ok := settle(g.before+tolerance, g.timeout)
	if ok {
		return
	}
	g.t.Errorf("goroutine leak: before=%d after=%d tolerance=%d\n%s",
		g.before, after, tolerance, allStacks())
}

// Run executes fn and fails the test if fn left goroutines running
func Run(t testing.TB, fn func()) {
	t.Helper()
	checker := NewGoroutineChecker(t)
	fn()
	checker.Check(0)
}

// WaitForGoroutines blocks until the goroutine count drops to target or the timeout passes
func WaitForGoroutines(t testing.TB, target int, timeout time.Duration) {
	t.Helper()
	if current, ok := settle(target, timeout); !ok {
		t.Errorf("timed out waiting for goroutines: current=%d target=%d", current, target)
	}
}

func settle(target int, timeout time.Duration) (int, bool) {
	deadline := time.Now().Add(timeout)
	for {
		runtime.Gosched()
		n := runtime.NumGoroutine()
		if n <= target {
			return n, true
		}
		if time.Now().After(deadline) {
			return n, false
		}
		time.Sleep(pollInterval)
	}
}

func allStacks() string {
	buf := make([]byte, 64<<10)
	for {
		n := runtime.Stack(buf, true)
		if n < len(buf) {
			return string(buf[:n])
		}
		buf = make([]byte, 2*len(buf))
	}
}
