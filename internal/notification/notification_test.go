package notification

import (
	"errors"
	"os"
	"testing"

	"github.com/zhubert/ragchat/internal/logger"
)

func TestMain(m *testing.M) {
	logger.Reset()
	logger.Init(os.DevNull)

	code := m.Run()

	logger.Reset()
	os.Exit(code)
}

// mockNotification records calls to the notification function
type mockNotification struct {
	calls []struct {
		title   string
		message string
		icon    any
	}
	err error
}

func (m *mockNotification) notify(title, message string, icon any) error {
	m.calls = append(m.calls, struct {
		title   string
		message string
		icon    any
	}{title, message, icon})
	return m.err
}

func TestSend(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		message     string
		mockErr     error
		expectError bool
	}{
		{
			name:    "successful notification",
			title:   "Test Title",
			message: "Test Message",
		},
		{
			name:        "notification error",
			title:       "Test Title",
			message:     "Test Message",
			mockErr:     errors.New("notification failed"),
			expectError: true,
		},
		{
			name:    "empty message",
			title:   "Title",
			message: "",
		},
		{
			name:    "unicode content",
			title:   "通知",
			message: "🎉 done",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := &mockNotification{err: tt.mockErr}
			SetNotifier(mock.notify)
			defer ResetNotifier()

			err := Send(tt.title, tt.message)

			if tt.expectError && err == nil {
				t.Error("expected error but got nil")
			}
			if !tt.expectError && err != nil {
				t.Errorf("unexpected error: %v", err)
			}

			if len(mock.calls) != 1 {
				t.Fatalf("expected 1 call, got %d", len(mock.calls))
			}
			call := mock.calls[0]
			if call.title != tt.title {
				t.Errorf("title = %q, want %q", call.title, tt.title)
			}
			if call.message != tt.message {
				t.Errorf("message = %q, want %q", call.message, tt.message)
			}
			if call.icon != "" {
				t.Errorf("icon = %v, want platform default", call.icon)
			}
		})
	}
}

func TestIngestionCompleted(t *testing.T) {
	tests := []struct {
		count   int
		message string
	}{
		{0, "Added 0 files to the knowledge base"},
		{1, "Added 1 file to the knowledge base"},
		{12, "Added 12 files to the knowledge base"},
	}

	for _, tt := range tests {
		mock := &mockNotification{}
		SetNotifier(mock.notify)

		if err := IngestionCompleted(tt.count); err != nil {
			t.Errorf("IngestionCompleted(%d) error = %v", tt.count, err)
		}
		if len(mock.calls) != 1 {
			t.Fatalf("expected 1 call, got %d", len(mock.calls))
		}
		if mock.calls[0].title != AppName {
			t.Errorf("title = %q, want %q", mock.calls[0].title, AppName)
		}
		if mock.calls[0].message != tt.message {
			t.Errorf("message = %q, want %q", mock.calls[0].message, tt.message)
		}
	}
	ResetNotifier()
}

func TestResetNotifier(t *testing.T) {
	mock := &mockNotification{}
	SetNotifier(mock.notify)
	ResetNotifier()

	mu.Lock()
	defer mu.Unlock()
	if notify == nil {
		t.Fatal("ResetNotifier left no notifier installed")
	}
	if len(mock.calls) != 0 {
		t.Error("mock should not have been called")
	}
}
