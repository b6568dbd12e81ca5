package sched

import (
	"sync"
	"time"
)

// Manual is a Scheduler driven by a virtual clock.
type Manual struct {
	mu    sync.Mutex
	now   time.Duration
	seq   uint64
	tasks []*task
}

// NewManual returns a Manual scheduler with its clock at zero.
func NewManual() *Manual {
	return &Manual{}
}

// Schedule implements Scheduler. The callback only runs from Advance.
func (m *Manual) Schedule(delay time.Duration, fn func()) Task {
	if delay < 0 {
		delay = 0
	}
	t := newTask(delay, fn)

	m.mu.Lock()
	defer m.mu.Unlock()
	m.seq++
	t.seq = m.seq
	t.due = m.now + delay
	m.tasks = append(m.tasks, t)
	return t
}

// Now returns the virtual time elapsed since the scheduler was created.
func (m *Manual) Now() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// Advance moves the clock forward by d, firing every task that comes due
// in order of due time, then scheduling order. Tasks scheduled by a
// callback fire in the same call if they come due within the window.
// It returns the number of callbacks run.
func (m *Manual) Advance(d time.Duration) int {
	m.mu.Lock()
	target := m.now + d
	m.mu.Unlock()

	fired := 0
	for {
		t := m.popDue(target)
		if t == nil {
			break
		}
		if t.fire() {
			fired++
		}
	}
	return fired
}

// popDue removes and returns the earliest task due at or before target,
// moving the clock to its due time. With nothing due the clock is moved
// to target and nil is returned.
func (m *Manual) popDue(target time.Duration) *task {
	m.mu.Lock()
	defer m.mu.Unlock()

	best := -1
	for i, t := range m.tasks {
		if t.due > target {
			continue
		}
		if best < 0 || t.due < m.tasks[best].due ||
			(t.due == m.tasks[best].due && t.seq < m.tasks[best].seq) {
			best = i
		}
	}
	if best < 0 {
		m.now = target
		return nil
	}

	t := m.tasks[best]
	m.tasks = append(m.tasks[:best], m.tasks[best+1:]...)
	if t.due > m.now {
		m.now = t.due
	}
	return t
}

// Pending returns the number of tasks that have neither fired nor been cancelled.
func (m *Manual) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	n := 0
	for _, t := range m.tasks {
		if t.pending() {
			n++
		}
	}
	return n
}
