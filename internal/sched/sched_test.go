package sched

import (
	"os"
	"slices"
	"testing"
	"time"

	"github.com/zhubert/ragchat/internal/logger"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	// Keep test runs out of /tmp/ragchat-debug.log
	logger.Reset()
	logger.Init(os.DevNull)

	goleak.VerifyTestMain(m)
}

func TestManual_FiresInDueOrder(t *testing.T) {
	s := NewManual()
	var got []string

	s.Schedule(3*time.Second, func() { got = append(got, "c") })
	s.Schedule(1*time.Second, func() { got = append(got, "a") })
	s.Schedule(2*time.Second, func() { got = append(got, "b") })

	if n := s.Advance(500 * time.Millisecond); n != 0 {
		t.Fatalf("Advance(500ms) fired %d tasks, want 0", n)
	}
	if n := s.Advance(10 * time.Second); n != 3 {
		t.Fatalf("Advance(10s) fired %d tasks, want 3", n)
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
	if s.Now() != 10500*time.Millisecond {
		t.Errorf("Now() = %v, want 10.5s", s.Now())
	}
}

func TestManual_SameDueKeepsScheduleOrder(t *testing.T) {
	s := NewManual()
	var got []int
	for i := 0; i < 5; i++ {
		s.Schedule(time.Second, func() { got = append(got, i) })
	}
	s.Advance(time.Second)
	if want := []int{0, 1, 2, 3, 4}; !slices.Equal(got, want) {
		t.Errorf("order = %v, want %v", got, want)
	}
}

func TestManual_NestedScheduleWithinWindow(t *testing.T) {
	s := NewManual()
	var firedAt []time.Duration

	s.Schedule(2*time.Second, func() {
		firedAt = append(firedAt, s.Now())
		s.Schedule(3*time.Second, func() {
			firedAt = append(firedAt, s.Now())
		})
	})

	s.Advance(4 * time.Second)
	if len(firedAt) != 1 {
		t.Fatalf("after 4s fired %d callbacks, want 1", len(firedAt))
	}
	s.Advance(time.Second)
	if want := []time.Duration{2 * time.Second, 5 * time.Second}; !slices.Equal(firedAt, want) {
		t.Errorf("fired at %v, want %v", firedAt, want)
	}
}

func TestManual_Cancel(t *testing.T) {
	s := NewManual()
	ran := false
	task := s.Schedule(time.Second, func() { ran = true })

	if s.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", s.Pending())
	}
	if !task.Cancel() {
		t.Fatal("first Cancel should report the task was pending")
	}
	if task.Cancel() {
		t.Error("second Cancel should report false")
	}
	if !task.Done() {
		t.Error("cancelled task should be Done")
	}
	if s.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", s.Pending())
	}

	s.Advance(2 * time.Second)
	if ran {
		t.Error("cancelled task must not run")
	}
}

func TestManual_CancelAfterFire(t *testing.T) {
	s := NewManual()
	task := s.Schedule(0, func() {})
	s.Advance(0)
	if task.Cancel() {
		t.Error("Cancel after fire should report false")
	}
	if !task.Done() {
		t.Error("fired task should be Done")
	}
}

func TestManual_NegativeDelay(t *testing.T) {
	s := NewManual()
	ran := false
	s.Schedule(-time.Second, func() { ran = true })
	s.Advance(0)
	if !ran {
		t.Error("negative delay should be treated as zero")
	}
}

func TestLoop_ScheduleQueuesTick(t *testing.T) {
	l := NewLoop()
	if l.Cmd() != nil {
		t.Fatal("Cmd() should be nil before anything is scheduled")
	}

	ran := false
	task := l.Schedule(time.Millisecond, func() { ran = true })

	cmd := l.Cmd()
	if cmd == nil {
		t.Fatal("Cmd() should return the queued tick")
	}
	if l.Cmd() != nil {
		t.Error("Cmd() should drain the queue")
	}

	msg, ok := cmd().(FireMsg)
	if !ok {
		t.Fatalf("tick produced %T, want FireMsg", msg)
	}
	if msg.ID != task.ID() {
		t.Errorf("FireMsg.ID = %q, want %q", msg.ID, task.ID())
	}
	if ran {
		t.Fatal("callback must not run until Fire")
	}

	if !l.Fire(msg) {
		t.Fatal("Fire should run a pending task")
	}
	if !ran {
		t.Error("callback did not run")
	}
	if l.Fire(msg) {
		t.Error("Fire twice should not run the task again")
	}
}

func TestLoop_CancelledTaskDoesNotFire(t *testing.T) {
	l := NewLoop()
	ran := false
	task := l.Schedule(time.Millisecond, func() { ran = true })
	cmd := l.Cmd()

	if l.Pending() != 1 {
		t.Fatalf("Pending() = %d, want 1", l.Pending())
	}
	task.Cancel()
	if l.Pending() != 0 {
		t.Errorf("Pending() = %d, want 0", l.Pending())
	}

	if l.Fire(cmd().(FireMsg)) {
		t.Error("Fire should report false for a cancelled task")
	}
	if ran {
		t.Error("cancelled task must not run")
	}
}

func TestLoop_UnknownFire(t *testing.T) {
	l := NewLoop()
	if l.Fire(FireMsg{ID: "nope"}) {
		t.Error("Fire for unknown id should report false")
	}
}

func TestLoop_MultipleScheduledBatch(t *testing.T) {
	l := NewLoop()
	l.Schedule(time.Millisecond, func() {})
	l.Schedule(time.Millisecond, func() {})
	if l.Cmd() == nil {
		t.Error("Cmd() should batch multiple ticks")
	}
	if l.Pending() != 2 {
		t.Errorf("Pending() = %d, want 2", l.Pending())
	}
}
