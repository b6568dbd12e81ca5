// Package widget holds the chat widget's state and operations independent
// of any terminal. Rendering goes through an injected Surface and all
// delays go through an injected sched.Scheduler, so the same widget runs
// inside the Bubble Tea program, the headless demo, and unit tests.
package widget

import (
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/sched"
)

// Surface renders widget state. Every method is called from the goroutine
// that drives the widget.
type Surface interface {
	RenderMessages(messages []Message)
	RenderFiles(files []PendingFile)
	RenderStatus(status string)
	// ClearInput empties the text input and shrinks it back to one line.
	ClearInput()
}

// Option configures a Widget.
type Option func(*Widget)

// WithReply sets the canned assistant reply.
func WithReply(text string) Option {
	return func(w *Widget) {
		if text != "" {
			w.reply = text
		}
	}
}

// WithDelays overrides the simulated delays. Negative values keep the default.
func WithDelays(reply, processing, clear time.Duration) Option {
	return func(w *Widget) {
		if reply >= 0 {
			w.replyDelay = reply
		}
		if processing >= 0 {
			w.processingDelay = processing
		}
		if clear >= 0 {
			w.clearDelay = clear
		}
	}
}

// WithCountMode selects when the success status counts files.
func WithCountMode(mode CountMode) Option {
	return func(w *Widget) { w.countMode = mode }
}

// WithIngestedHook registers fn to run when the success status is shown.
func WithIngestedHook(fn func(count int)) Option {
	return func(w *Widget) { w.onIngested = fn }
}

// WithClock overrides the timestamp source for new messages.
func WithClock(now func() time.Time) Option {
	return func(w *Widget) { w.now = now }
}

// Widget is the chat widget: an append-only message thread, a set of
// pending files keyed by name, and a single upload status line.
type Widget struct {
	surface   Surface
	scheduler sched.Scheduler
	log       *slog.Logger

	reply           string
	replyDelay      time.Duration
	processingDelay time.Duration
	clearDelay      time.Duration
	countMode       CountMode
	onIngested      func(count int)
	now             func() time.Time

	messages []Message
	pending  []PendingFile
	status   string
	inflight map[string]sched.Task
}

// New creates a widget drawing to surface and deferring work on scheduler.
func New(surface Surface, scheduler sched.Scheduler, opts ...Option) *Widget {
	w := &Widget{
		surface:         surface,
		scheduler:       scheduler,
		log:             logger.ComponentLogger("widget"),
		reply:           DefaultReply,
		replyDelay:      DefaultReplyDelay,
		processingDelay: DefaultProcessingDelay,
		clearDelay:      DefaultClearDelay,
		now:             time.Now,
		inflight:        make(map[string]sched.Task),
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// SubmitText sends raw as a user message. Whitespace-only input is
// ignored and leaves the input untouched. Otherwise the input is cleared
// and the canned reply is scheduled; every call gets its own reply.
func (w *Widget) SubmitText(raw string) bool {
	text := strings.TrimSpace(raw)
	if text == "" {
		return false
	}

	w.addMessage(text, SenderUser)
	w.surface.ClearInput()

	w.after(w.replyDelay, func() {
		w.addMessage(w.reply, SenderAssistant)
	})
	return true
}

// SelectFiles adds every file whose name is not already pending, then
// starts ingestion. Ingestion starts even when nothing new was added.
func (w *Widget) SelectFiles(files []PendingFile) {
	added := 0
	for _, f := range files {
		if w.indexOf(f.Name) >= 0 {
			w.log.Debug("duplicate file dropped", "name", f.Name)
			continue
		}
		w.pending = append(w.pending, f)
		added++
	}
	w.log.Debug("files selected", "offered", len(files), "added", added, "pending", len(w.pending))

	w.surface.RenderFiles(w.PendingFiles())
	w.BeginIngestion()
}

// RemoveFile drops the pending file at index. Out-of-range indexes are
// ignored; the return value reports whether a file was removed.
func (w *Widget) RemoveFile(index int) bool {
	if index < 0 || index >= len(w.pending) {
		w.log.Debug("remove ignored: index out of range", "index", index, "pending", len(w.pending))
		return false
	}
	removed := w.pending[index]
	w.pending = slices.Delete(w.pending, index, index+1)
	w.log.Debug("file removed", "index", index, "name", removed.Name)

	w.surface.RenderFiles(w.PendingFiles())
	return true
}

// BeginIngestion simulates adding the pending files to the knowledge
// base. The status reads "processing", then reports success after the
// processing delay, then clears together with the whole pending set after
// the clear delay. Files added meanwhile are cleared too.
func (w *Widget) BeginIngestion() {
	if len(w.pending) == 0 {
		return
	}
	startCount := len(w.pending)
	w.setStatus(StatusProcessing)

	w.after(w.processingDelay, func() {
		count := len(w.pending)
		if w.countMode == CountAtStart {
			count = startCount
		}
		w.setStatus(SuccessStatus(count))
		if w.onIngested != nil {
			w.onIngested(count)
		}

		w.after(w.clearDelay, func() {
			w.setStatus(StatusIdle)
			w.pending = nil
			w.surface.RenderFiles(nil)
		})
	})
}

// Reset cancels every deferred callback and empties the widget.
func (w *Widget) Reset() {
	for id, t := range w.inflight {
		t.Cancel()
		delete(w.inflight, id)
	}
	w.messages = nil
	w.pending = nil
	w.status = StatusIdle

	w.surface.RenderMessages(nil)
	w.surface.RenderFiles(nil)
	w.surface.RenderStatus(StatusIdle)
	w.surface.ClearInput()
}

// Messages returns a copy of the thread in display order.
func (w *Widget) Messages() []Message {
	return slices.Clone(w.messages)
}

// LastReply returns the most recent assistant message text.
func (w *Widget) LastReply() (string, bool) {
	for i := len(w.messages) - 1; i >= 0; i-- {
		if w.messages[i].Sender == SenderAssistant {
			return w.messages[i].Text, true
		}
	}
	return "", false
}

// PendingFiles returns a copy of the pending set in insertion order.
func (w *Widget) PendingFiles() []PendingFile {
	return slices.Clone(w.pending)
}

// Status returns the current upload status, empty when idle.
func (w *Widget) Status() string {
	return w.status
}

// InFlight returns how many deferred callbacks have not run yet.
func (w *Widget) InFlight() int {
	return len(w.inflight)
}

func (w *Widget) addMessage(text string, sender Sender) {
	w.messages = append(w.messages, Message{
		ID:        uuid.New().String(),
		Text:      text,
		Sender:    sender,
		CreatedAt: w.now(),
	})
	w.surface.RenderMessages(w.Messages())
}

func (w *Widget) setStatus(status string) {
	w.status = status
	w.surface.RenderStatus(status)
}

func (w *Widget) indexOf(name string) int {
	return slices.IndexFunc(w.pending, func(f PendingFile) bool {
		return f.Name == name
	})
}

// after schedules fn and tracks it until it runs so Reset can cancel it.
func (w *Widget) after(delay time.Duration, fn func()) {
	var t sched.Task
	t = w.scheduler.Schedule(delay, func() {
		delete(w.inflight, t.ID())
		fn()
	})
	w.inflight[t.ID()] = t
}
