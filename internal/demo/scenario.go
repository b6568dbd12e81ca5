// Package demo replays scripted ragchat sessions headlessly. Scenarios run
// against the real app model on a virtual clock, so simulated delays cost
// nothing and every run produces the same frames and transcript.
package demo

import (
	"strconv"
	"time"

	"github.com/zhubert/ragchat/internal/widget"
)

// StepType represents the type of action in a demo step.
type StepType int

const (
	// StepWait advances the virtual clock.
	StepWait StepType = iota
	// StepKey sends a single key press.
	StepKey
	// StepTypeText types a string character by character.
	StepTypeText
	// StepPaste pastes text as a terminal would.
	StepPaste
	// StepSelect selects files as if picked from the filesystem.
	StepSelect
	// StepCapture captures the current frame.
	StepCapture
	// StepAnnotate adds an annotation/caption to the next frame.
	StepAnnotate
)

// Step represents a single action in a demo scenario.
type Step struct {
	Type        StepType
	Description string // Human-readable description of what this step does

	// For StepKey
	Key string

	// For StepTypeText and StepPaste
	Text string

	// For StepWait
	Duration time.Duration

	// For StepSelect
	Files []widget.PendingFile

	// For StepAnnotate
	Annotation string
}

// Scenario defines a complete demo scenario.
type Scenario struct {
	Name        string
	Description string
	Width       int // Terminal width (default 120)
	Height      int // Terminal height (default 40)
	Setup       *ScenarioSetup
	Steps       []Step
}

// ScenarioSetup defines the initial state for a demo.
type ScenarioSetup struct {
	// Files selected before the first step
	Files []widget.PendingFile

	// Reply overrides the canned assistant reply
	Reply string

	// Initial focus ("chat" or "files")
	Focus string
}

// DefaultSetup returns a minimal setup for demos.
func DefaultSetup() *ScenarioSetup {
	return &ScenarioSetup{Focus: "chat"}
}

// Validate checks that the scenario is valid and fills in defaults.
func (s *Scenario) Validate() error {
	if s.Name == "" {
		return &ValidationError{Field: "Name", Message: "scenario name is required"}
	}
	if s.Width <= 0 {
		s.Width = 120
	}
	if s.Height <= 0 {
		s.Height = 40
	}
	if s.Setup == nil {
		s.Setup = DefaultSetup()
	}
	switch s.Setup.Focus {
	case "", "chat", "files":
	default:
		return &ValidationError{Field: "Setup.Focus", Message: "must be chat or files"}
	}
	for i, step := range s.Steps {
		if step.Type == StepWait && step.Duration < 0 {
			return &ValidationError{Field: "Steps", Message: "negative wait at step " + strconv.Itoa(i)}
		}
	}
	return nil
}

// ValidationError represents a scenario validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return "validation error: " + e.Field + ": " + e.Message
}

// Step builder functions for fluent scenario construction

// Wait creates a wait step.
func Wait(d time.Duration) Step {
	return Step{
		Type:     StepWait,
		Duration: d,
	}
}

// Key creates a key press step.
func Key(key string) Step {
	return Step{
		Type: StepKey,
		Key:  key,
	}
}

// KeyWithDesc creates a key press step with a description.
func KeyWithDesc(key, description string) Step {
	return Step{
		Type:        StepKey,
		Key:         key,
		Description: description,
	}
}

// Type creates a text typing step.
func Type(text string) Step {
	return Step{
		Type: StepTypeText,
		Text: text,
	}
}

// Paste creates a paste step.
func Paste(text string) Step {
	return Step{
		Type: StepPaste,
		Text: text,
	}
}

// Select creates a file selection step.
func Select(files ...widget.PendingFile) Step {
	return Step{
		Type:  StepSelect,
		Files: files,
	}
}

// File is shorthand for a pending file descriptor.
func File(name string, size int64) widget.PendingFile {
	return widget.PendingFile{Name: name, Size: size}
}

// Annotate creates an annotation step.
func Annotate(text string) Step {
	return Step{
		Type:       StepAnnotate,
		Annotation: text,
	}
}

// Capture creates a frame capture step.
func Capture() Step {
	return Step{
		Type: StepCapture,
	}
}
