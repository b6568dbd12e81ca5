package demo

import (
	"testing"
	"time"
)

func TestScenarioValidate(t *testing.T) {
	tests := []struct {
		name     string
		scenario Scenario
		wantErr  bool
	}{
		{"valid", Scenario{Name: "test", Width: 80, Height: 24}, false},
		{"missing name", Scenario{Width: 80}, true},
		{"defaults filled", Scenario{Name: "test"}, false},
		{"bad focus", Scenario{Name: "test", Setup: &ScenarioSetup{Focus: "sidebar"}}, true},
		{"negative wait", Scenario{Name: "test", Steps: []Step{Wait(-time.Second)}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.scenario.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestScenarioValidate_Defaults(t *testing.T) {
	s := &Scenario{Name: "test"}
	if err := s.Validate(); err != nil {
		t.Fatalf("Validate() error = %v", err)
	}
	if s.Width != 120 || s.Height != 40 {
		t.Errorf("size = %dx%d, want 120x40", s.Width, s.Height)
	}
	if s.Setup == nil || s.Setup.Focus != "chat" {
		t.Errorf("Setup = %+v, want default setup", s.Setup)
	}
}

func TestValidationError(t *testing.T) {
	err := &ValidationError{Field: "Name", Message: "required"}
	if got, want := err.Error(), "validation error: Name: required"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}

func TestStepBuilders(t *testing.T) {
	tests := []struct {
		name string
		step Step
		want StepType
	}{
		{"wait", Wait(time.Second), StepWait},
		{"key", Key("enter"), StepKey},
		{"key with desc", KeyWithDesc("tab", "Focus files"), StepKey},
		{"type", Type("hello"), StepTypeText},
		{"paste", Paste("/tmp/a.pdf"), StepPaste},
		{"select", Select(File("a.pdf", 1)), StepSelect},
		{"annotate", Annotate("note"), StepAnnotate},
		{"capture", Capture(), StepCapture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.step.Type != tt.want {
				t.Errorf("Type = %v, want %v", tt.step.Type, tt.want)
			}
		})
	}

	if s := KeyWithDesc("tab", "Focus files"); s.Key != "tab" || s.Description != "Focus files" {
		t.Errorf("KeyWithDesc = %+v", s)
	}
	if s := Select(File("a.pdf", 1), File("b.pdf", 2)); len(s.Files) != 2 || s.Files[1].Size != 2 {
		t.Errorf("Select = %+v", s)
	}
}
