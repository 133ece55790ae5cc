package trip

import (
	"sync/atomic"
	"testing"
	"time"
)

func TestSchedulerRunsTask(t *testing.T) {
	s := newScheduler()
	defer s.Stop()

	done := make(chan struct{})
	s.Schedule("trip-1", 5*time.Millisecond, func() { close(done) })

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Scheduled task never ran")
	}
}

func TestSchedulerCancel(t *testing.T) {
	s := newScheduler()
	defer s.Stop()

	var fired atomic.Bool
	s.Schedule("trip-1", 20*time.Millisecond, func() { fired.Store(true) })

	if !s.Cancel("trip-1") {
		t.Error("Expected Cancel to report a pending task")
	}
	if s.Cancel("trip-1") {
		t.Error("Expected the second Cancel to find nothing")
	}

	time.Sleep(60 * time.Millisecond)
	if fired.Load() {
		t.Error("Cancelled task still ran")
	}
}

func TestSchedulerReplacesPendingTask(t *testing.T) {
	s := newScheduler()
	defer s.Stop()

	var first, second atomic.Bool
	s.Schedule("trip-1", 20*time.Millisecond, func() { first.Store(true) })
	s.Schedule("trip-1", 5*time.Millisecond, func() { second.Store(true) })

	time.Sleep(80 * time.Millisecond)
	if first.Load() {
		t.Error("Replaced task still ran")
	}
	if !second.Load() {
		t.Error("Replacement task never ran")
	}
}

func TestSchedulerStopCancelsEverything(t *testing.T) {
	s := newScheduler()

	var fired atomic.Int32
	s.Schedule("a", 20*time.Millisecond, func() { fired.Add(1) })
	s.Schedule("b", 20*time.Millisecond, func() { fired.Add(1) })
	s.Stop()

	time.Sleep(60 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Errorf("Expected no tasks to run after Stop, got %d", n)
	}
}
