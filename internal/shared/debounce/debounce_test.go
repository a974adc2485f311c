package debounce

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls until cond returns true or the deadline passes.
func waitFor(t *testing.T, d time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(d)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(5 * time.Millisecond)
	}
	return cond()
}

func TestDebouncer_CoalescesBurst(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(30 * time.Millisecond)
	defer d.Stop()

	// 連続呼び出しは1回にまとめられる
	for i := 0; i < 10; i++ {
		d.Do(func() { calls.Add(1) })
		time.Sleep(2 * time.Millisecond)
	}

	if !waitFor(t, time.Second, func() bool { return calls.Load() == 1 }) {
		t.Fatalf("expected exactly 1 call, got %d", calls.Load())
	}

	// 静止期間経過後も追加実行されない
	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 1 {
		t.Fatalf("expected still 1 call, got %d", calls.Load())
	}
}

func TestDebouncer_SeparateBurstsFireSeparately(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)
	defer d.Stop()

	d.Do(func() { calls.Add(1) })
	if !waitFor(t, time.Second, func() bool { return calls.Load() == 1 }) {
		t.Fatalf("first burst did not fire")
	}

	d.Do(func() { calls.Add(1) })
	if !waitFor(t, time.Second, func() bool { return calls.Load() == 2 }) {
		t.Fatalf("second burst did not fire, got %d calls", calls.Load())
	}
}

func TestDebouncer_Stop(t *testing.T) {
	var calls atomic.Int32
	d := NewDebouncer(20 * time.Millisecond)

	d.Do(func() { calls.Add(1) })
	d.Stop()

	time.Sleep(60 * time.Millisecond)
	if calls.Load() != 0 {
		t.Fatalf("stopped reservation must not fire, got %d calls", calls.Load())
	}
}

func TestDebouncer_Flush(t *testing.T) {
	var calls atomic.Int32
	// 長い静止期間でもFlushで即座に実行される
	d := NewDebouncer(10 * time.Second)
	defer d.Stop()

	d.Do(func() { calls.Add(1) })
	d.Flush()

	if !waitFor(t, time.Second, func() bool { return calls.Load() == 1 }) {
		t.Fatalf("flush did not run the pending call")
	}
}

func TestNewDebouncer_DefaultQuietPeriod(t *testing.T) {
	d := NewDebouncer(0)
	if d.quiet != 300*time.Millisecond {
		t.Errorf("expected 300ms default, got %v", d.quiet)
	}
	d = NewDebouncer(-time.Second)
	if d.quiet != 300*time.Millisecond {
		t.Errorf("expected 300ms default for negative input, got %v", d.quiet)
	}
}
