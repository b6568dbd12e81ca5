package demo

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/app"
	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/files"
	"github.com/zhubert/ragchat/internal/keys"
	"github.com/zhubert/ragchat/internal/sched"
	"github.com/zhubert/ragchat/internal/widget"
)

// Frame represents a captured frame from the demo.
type Frame struct {
	Content    string        // ANSI-encoded terminal content
	Delay      time.Duration // Delay before this frame
	Annotation string        // Optional annotation/caption
	StepIndex  int           // Index of the step that produced this frame
	At         time.Duration // Virtual time of the capture
}

// Event is one line of the transcript: a visible change in the widget.
type Event struct {
	At   time.Duration
	Kind string // you, assistant, files, status or reset
	Text string
}

func (ev Event) String() string {
	return fmt.Sprintf("[%7.3fs] %-9s %s", ev.At.Seconds(), ev.Kind, ev.Text)
}

// ExecutorConfig configures the demo executor.
type ExecutorConfig struct {
	// CaptureEveryStep captures a frame after every step (default: false)
	CaptureEveryStep bool

	// TypeDelay is the virtual time between characters when typing (default: 50ms)
	TypeDelay time.Duration

	// KeyDelay is the virtual time after key presses (default: 100ms)
	KeyDelay time.Duration

	// Resolution is the clock granularity of waits; changes inside one
	// tick share a timestamp (default: 100ms)
	Resolution time.Duration

	// Start is the wall-clock time the virtual clock starts at
	Start time.Time
}

// DefaultExecutorConfig returns the default executor configuration.
func DefaultExecutorConfig() ExecutorConfig {
	return ExecutorConfig{
		CaptureEveryStep: false,
		TypeDelay:        50 * time.Millisecond,
		KeyDelay:         100 * time.Millisecond,
		Resolution:       100 * time.Millisecond,
		Start:            time.Date(2025, time.January, 6, 9, 0, 0, 0, time.UTC),
	}
}

// Executor runs demo scenarios and captures frames.
type Executor struct {
	config ExecutorConfig
	model  *app.Model
	clock  *sched.Manual

	frames     []Frame
	transcript []Event
	last       snapshot

	currentAnnotation string
}

type snapshot struct {
	messages int
	files    string
	status   string
}

// NewExecutor creates a new demo executor.
func NewExecutor(cfg ExecutorConfig) *Executor {
	if cfg.Resolution <= 0 {
		cfg.Resolution = 100 * time.Millisecond
	}
	if cfg.Start.IsZero() {
		cfg.Start = DefaultExecutorConfig().Start
	}
	return &Executor{config: cfg}
}

// Run executes a scenario and returns the captured frames.
func (e *Executor) Run(scenario *Scenario) ([]Frame, error) {
	if err := scenario.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	e.setup(scenario)
	defer e.model.Close()

	// Capture initial frame
	e.captureFrame(0, 500*time.Millisecond)

	for i, step := range scenario.Steps {
		if err := e.executeStep(i, step); err != nil {
			return nil, fmt.Errorf("step %d failed: %w", i, err)
		}
	}

	return e.frames, nil
}

// Transcript returns the changes observed during the last Run.
func (e *Executor) Transcript() []Event {
	return e.transcript
}

// setup initializes the model for the scenario.
func (e *Executor) setup(scenario *Scenario) {
	e.frames = nil
	e.transcript = nil
	e.last = snapshot{files: describeFiles(nil)}
	e.currentAnnotation = ""

	e.clock = sched.NewManual()
	clock, start := e.clock, e.config.Start
	now := func() time.Time { return start.Add(clock.Now()) }

	cfg := &config.Config{ReplyText: scenario.Setup.Reply}
	e.model = app.New(cfg, "demo",
		app.WithScheduler(e.clock),
		app.WithClock(now),
		app.WithInitialFiles(scenario.Setup.Files),
	)
	e.update(tea.WindowSizeMsg{Width: scenario.Width, Height: scenario.Height})
	e.model.Init()

	if scenario.Setup.Focus == "files" {
		e.update(keyPress(keys.Tab))
	}
	e.record()
}

func (e *Executor) executeStep(index int, step Step) error {
	switch step.Type {
	case StepWait:
		e.advance(step.Duration)
		e.captureFrame(index, step.Duration)

	case StepKey:
		e.update(keyPress(step.Key))
		e.record()
		e.advance(e.config.KeyDelay)
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepTypeText:
		for _, ch := range step.Text {
			e.update(keyPress(string(ch)))
			e.advance(e.config.TypeDelay)
			if e.config.CaptureEveryStep {
				e.captureFrame(index, e.config.TypeDelay)
			}
		}

	case StepPaste:
		cmd := e.update(tea.PasteMsg{Content: step.Text})
		if _, ok := files.PastedPaths(step.Text); ok && cmd != nil {
			// Dragged files are described by a command; run it inline
			e.update(cmd())
		}
		e.record()
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepSelect:
		if len(step.Files) == 0 {
			return fmt.Errorf("select step has no files")
		}
		e.update(app.FilesResolvedMsg{Files: step.Files, Source: app.SourceDrop})
		e.record()
		if e.config.CaptureEveryStep {
			e.captureFrame(index, e.config.KeyDelay)
		}

	case StepAnnotate:
		e.currentAnnotation = step.Annotation

	case StepCapture:
		e.captureFrame(index, 0)

	default:
		return fmt.Errorf("unknown step type %d", step.Type)
	}

	return nil
}

// advance moves the virtual clock forward in Resolution ticks, recording
// what changed after each one.
func (e *Executor) advance(d time.Duration) {
	for d > 0 {
		tick := min(d, e.config.Resolution)
		e.clock.Advance(tick)
		d -= tick
		e.record()
	}
}

func (e *Executor) update(msg tea.Msg) tea.Cmd {
	result, cmd := e.model.Update(msg)
	e.model = result.(*app.Model)
	return cmd
}

// record appends transcript events for everything that changed since the
// previous call.
func (e *Executor) record() {
	w := e.model.Widget()
	at := e.clock.Now()

	messages := w.Messages()
	if len(messages) < e.last.messages {
		e.emit(at, "reset", "conversation cleared")
		e.last.messages = 0
	}
	for _, msg := range messages[e.last.messages:] {
		kind := "you"
		if msg.Sender == widget.SenderAssistant {
			kind = "assistant"
		}
		e.emit(at, kind, msg.Text)
	}

	files := describeFiles(w.PendingFiles())
	if files != e.last.files {
		e.emit(at, "files", files)
	}

	status := w.Status()
	if status != e.last.status {
		text := status
		if text == widget.StatusIdle {
			text = "(idle)"
		}
		e.emit(at, "status", text)
	}

	e.last = snapshot{messages: len(messages), files: files, status: status}
}

func (e *Executor) emit(at time.Duration, kind, text string) {
	e.transcript = append(e.transcript, Event{At: at, Kind: kind, Text: text})
}

func describeFiles(files []widget.PendingFile) string {
	if len(files) == 0 {
		return "(none)"
	}
	parts := make([]string, len(files))
	for i, f := range files {
		parts[i] = fmt.Sprintf("%s (%s)", f.Name, widget.FormatSize(f.Size))
	}
	return strings.Join(parts, ", ")
}

func (e *Executor) captureFrame(stepIndex int, delay time.Duration) {
	e.frames = append(e.frames, Frame{
		Content:    e.model.RenderToString(),
		Delay:      delay,
		Annotation: e.currentAnnotation,
		StepIndex:  stepIndex,
		At:         e.clock.Now(),
	})
	e.currentAnnotation = ""
}

// keyPress converts a key name as written in scenarios into a key press.
func keyPress(key string) tea.KeyPressMsg {
	switch key {
	case keys.Enter:
		return tea.KeyPressMsg{Code: tea.KeyEnter}
	case keys.ShiftEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModShift}
	case keys.AltEnter:
		return tea.KeyPressMsg{Code: tea.KeyEnter, Mod: tea.ModAlt}
	case keys.Tab:
		return tea.KeyPressMsg{Code: tea.KeyTab}
	case keys.ShiftTab:
		return tea.KeyPressMsg{Code: tea.KeyTab, Mod: tea.ModShift}
	case keys.Escape:
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case keys.Backspace:
		return tea.KeyPressMsg{Code: tea.KeyBackspace}
	case keys.Delete:
		return tea.KeyPressMsg{Code: tea.KeyDelete}
	case keys.Up:
		return tea.KeyPressMsg{Code: tea.KeyUp}
	case keys.Down:
		return tea.KeyPressMsg{Code: tea.KeyDown}
	case keys.CtrlL:
		return tea.KeyPressMsg{Code: 'l', Mod: tea.ModCtrl}
	case keys.CtrlO:
		return tea.KeyPressMsg{Code: 'o', Mod: tea.ModCtrl}
	case keys.CtrlT:
		return tea.KeyPressMsg{Code: 't', Mod: tea.ModCtrl}
	case keys.CtrlY:
		return tea.KeyPressMsg{Code: 'y', Mod: tea.ModCtrl}
	default:
		if r := []rune(key); len(r) == 1 {
			return tea.KeyPressMsg{Code: r[0], Text: key}
		}
		return tea.KeyPressMsg{Text: key}
	}
}
