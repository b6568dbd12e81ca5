package sched

import (
	"sync"
	"time"

	tea "charm.land/bubbletea/v2"
	"github.com/zhubert/ragchat/internal/logger"
)

// FireMsg is delivered to the Bubble Tea program when a Loop task is due.
// The model must hand it back to Loop.Fire.
type FireMsg struct {
	ID string
}

// Loop is a Scheduler backed by Bubble Tea ticks.
//
// Schedule only queues a tick command; the caller must return Cmd() from
// Update so the runtime starts the timer.
type Loop struct {
	mu    sync.Mutex
	tasks map[string]*task
	queue []tea.Cmd
}

// NewLoop creates an empty Loop.
func NewLoop() *Loop {
	return &Loop{tasks: make(map[string]*task)}
}

// Schedule implements Scheduler.
func (l *Loop) Schedule(delay time.Duration, fn func()) Task {
	if delay < 0 {
		delay = 0
	}
	t := newTask(delay, fn)
	id := t.id

	l.mu.Lock()
	defer l.mu.Unlock()
	l.tasks[id] = t
	l.queue = append(l.queue, tea.Tick(delay, func(time.Time) tea.Msg {
		return FireMsg{ID: id}
	}))
	return t
}

// Cmd drains the ticks queued since the last call. It returns nil when
// nothing was scheduled.
func (l *Loop) Cmd() tea.Cmd {
	l.mu.Lock()
	queued := l.queue
	l.queue = nil
	l.mu.Unlock()

	switch len(queued) {
	case 0:
		return nil
	case 1:
		return queued[0]
	default:
		return tea.Batch(queued...)
	}
}

// Fire runs the task named by msg if it is still pending. It must be
// called from the Bubble Tea Update goroutine.
func (l *Loop) Fire(msg FireMsg) bool {
	l.mu.Lock()
	t, ok := l.tasks[msg.ID]
	delete(l.tasks, msg.ID)
	l.mu.Unlock()

	if !ok {
		logger.ComponentLogger("sched").Debug("fire for unknown task", "id", msg.ID)
		return false
	}
	return t.fire()
}

// Pending returns the number of tasks still waiting to fire.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	n := 0
	for _, t := range l.tasks {
		if t.pending() {
			n++
		}
	}
	return n
}
