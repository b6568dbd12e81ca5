package app

import (
	"context"
	"log/slog"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/zhubert/ragchat/internal/config"
	"github.com/zhubert/ragchat/internal/files"
	"github.com/zhubert/ragchat/internal/logger"
	"github.com/zhubert/ragchat/internal/notification"
	"github.com/zhubert/ragchat/internal/sched"
	"github.com/zhubert/ragchat/internal/ui"
	"github.com/zhubert/ragchat/internal/widget"
)

// Model is the main Bubble Tea model
type Model struct {
	config  *config.Config
	version string // App version (injected at build time)
	layout  *ui.ViewContext
	header  *ui.Header
	footer  *ui.Footer
	chat    *ui.Chat
	files   *ui.FilesPanel
	modal   *ui.Modal

	widget    *widget.Widget
	scheduler sched.Scheduler
	loop      *sched.Loop // nil when an external scheduler drives time

	width  int
	height int
	focus  ui.Focus

	flashTask sched.Task

	initialFiles []widget.PendingFile
	watchDir     string
	watcher      *files.Watcher
	drops        <-chan []string

	ctx    context.Context
	cancel context.CancelFunc
	log    *slog.Logger
}

// Option configures a Model.
type Option func(*options)

type options struct {
	initialFiles []widget.PendingFile
	watchDir     string
	scheduler    sched.Scheduler
	now          func() time.Time
}

// WithInitialFiles preselects files once the program starts.
func WithInitialFiles(f []widget.PendingFile) Option {
	return func(o *options) { o.initialFiles = f }
}

// WithWatchDir overrides the configured drop folder.
func WithWatchDir(dir string) Option {
	return func(o *options) { o.watchDir = dir }
}

// WithScheduler replaces the Bubble Tea tick scheduler. Callers own the
// clock; FireMsg values are ignored.
func WithScheduler(s sched.Scheduler) Option {
	return func(o *options) { o.scheduler = s }
}

// WithClock sets the time source for message timestamps and their
// relative labels.
func WithClock(now func() time.Time) Option {
	return func(o *options) { o.now = now }
}

// FilesResolvedMsg carries the outcome of resolving a file selection off
// the event loop.
type FilesResolvedMsg struct {
	Files  []widget.PendingFile
	Err    error
	Source SelectionSource
}

// DropBatchMsg is sent when the drop folder reports new files.
type DropBatchMsg struct {
	Paths []string
}

// PasteResolvedMsg carries the result of checking whether pasted text
// named files. When OK is false the text belongs in the input.
type PasteResolvedMsg struct {
	Text  string
	Files []widget.PendingFile
	OK    bool
}

// SelectionSource says where a file selection came from.
type SelectionSource int

const (
	SourceDialog SelectionSource = iota
	SourceDrop
)

// New creates a new app model
func New(cfg *config.Config, version string, opts ...Option) *Model {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	// Load saved theme from config, or use default
	if savedTheme := cfg.GetTheme(); savedTheme != "" {
		ui.SetThemeByName(savedTheme)
	}

	ctx, cancel := context.WithCancel(context.Background())
	m := &Model{
		config:       cfg,
		version:      version,
		layout:       ui.NewViewContext(),
		header:       ui.NewHeader(),
		footer:       ui.NewFooter(),
		chat:         ui.NewChat(),
		files:        ui.NewFilesPanel(),
		modal:        ui.NewModal(),
		focus:        ui.FocusChat,
		initialFiles: o.initialFiles,
		watchDir:     o.watchDir,
		ctx:          ctx,
		cancel:       cancel,
		log:          logger.ComponentLogger("app"),
	}
	if m.watchDir == "" {
		m.watchDir = cfg.GetWatchDir()
	}

	m.scheduler = o.scheduler
	if m.scheduler == nil {
		m.loop = sched.NewLoop()
		m.scheduler = m.loop
	}

	widgetOpts := append(cfg.WidgetOptions(), widget.WithIngestedHook(m.notifyIngested))
	if o.now != nil {
		widgetOpts = append(widgetOpts, widget.WithClock(o.now))
		m.chat.SetClock(o.now)
	}
	m.widget = widget.New(surface{m}, m.scheduler, widgetOpts...)

	m.chat.SetFocused(true)
	m.header.SetCounts(0, 0)
	return m
}

// Init initializes the model
func (m *Model) Init() tea.Cmd {
	if len(m.initialFiles) > 0 {
		m.log.Info("preselecting files", "count", len(m.initialFiles))
		m.widget.SelectFiles(m.initialFiles)
		m.initialFiles = nil
	}

	cmds := []tea.Cmd{m.chat.SetFocused(true), m.startDropFolder()}
	if m.loop != nil {
		cmds = append(cmds, m.loop.Cmd())
	}
	return tea.Batch(cmds...)
}

// Close stops the drop folder watcher and cancels pending file lookups.
func (m *Model) Close() {
	m.cancel()
	if m.watcher != nil {
		if err := m.watcher.Close(); err != nil {
			m.log.Warn("failed to close watcher", "error", err)
		}
		m.watcher = nil
	}
}

// Widget returns the chat widget the model drives.
func (m *Model) Widget() *widget.Widget {
	return m.widget
}

// Focus returns the focused panel.
func (m *Model) Focus() ui.Focus {
	return m.focus
}

func (m *Model) setFocus(focus ui.Focus) tea.Cmd {
	if m.focus != focus {
		m.log.Debug("focus changed", "from", m.focus, "to", focus)
	}
	m.focus = focus
	m.files.SetFocused(focus == ui.FocusFiles)
	return m.chat.SetFocused(focus == ui.FocusChat)
}

func (m *Model) notifyIngested(count int) {
	if !m.config.GetNotificationsEnabled() {
		return
	}
	go func() {
		_ = notification.IngestionCompleted(count)
	}()
}

// surface forwards widget renders to the UI components.
type surface struct {
	m *Model
}

func (s surface) RenderMessages(messages []widget.Message) {
	s.m.chat.SetMessages(messages)
	s.m.header.SetCounts(len(messages), len(s.m.files.Files()))
}

func (s surface) RenderFiles(pending []widget.PendingFile) {
	s.m.files.SetFiles(pending)
	s.m.header.SetCounts(s.m.chat.MessageCount(), len(pending))
}

func (s surface) RenderStatus(status string) {
	s.m.files.SetStatus(status)
}

func (s surface) ClearInput() {
	s.m.chat.ClearInput()
}
