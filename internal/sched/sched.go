// Package sched runs deferred callbacks on a single event loop.
//
// A Scheduler hands out Tasks. A Task fires at most once and can be
// cancelled until it fires. Two implementations are provided:
//
//   - Loop schedules through Bubble Tea ticks. The tick delivers a FireMsg
//     back to the program, and the model calls Loop.Fire from Update so the
//     callback runs on the UI goroutine.
//   - Manual is a virtual clock. Nothing fires until Advance is called,
//     which makes timing-dependent behavior deterministic in tests and in
//     the headless demo.
package sched

import (
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// Scheduler defers work.
type Scheduler interface {
	// Schedule arranges for fn to run once after delay.
	Schedule(delay time.Duration, fn func()) Task
}

// Task is a handle to one scheduled callback.
type Task interface {
	ID() string
	// Cancel prevents the callback from running. It reports whether the
	// task was still pending.
	Cancel() bool
	// Done reports whether the task has fired or been cancelled.
	Done() bool
}

const (
	statePending int32 = iota
	stateFired
	stateCancelled
)

type task struct {
	id    string
	delay time.Duration
	due   time.Duration // only meaningful for Manual
	seq   uint64
	fn    func()
	state atomic.Int32
}

func newTask(delay time.Duration, fn func()) *task {
	return &task{
		id:    uuid.New().String(),
		delay: delay,
		fn:    fn,
	}
}

func (t *task) ID() string { return t.id }

func (t *task) Cancel() bool {
	return t.state.CompareAndSwap(statePending, stateCancelled)
}

func (t *task) Done() bool {
	return t.state.Load() != statePending
}

func (t *task) pending() bool {
	return t.state.Load() == statePending
}

// fire runs the callback if the task is still pending.
func (t *task) fire() bool {
	if !t.state.CompareAndSwap(statePending, stateFired) {
		return false
	}
	if t.fn != nil {
		t.fn()
	}
	return true
}
