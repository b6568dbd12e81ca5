// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"fmt"
	"sync"

	"github.com/gen2brain/beeep"

	"github.com/zhubert/ragchat/internal/logger"
)

// AppName is the title used for every notification.
const AppName = "ragchat"

// notifyFunc matches beeep.Notify so tests can swap it out.
type notifyFunc func(title, message string, icon any) error

var (
	mu     sync.Mutex
	notify notifyFunc = beeep.Notify
)

func init() {
	beeep.AppName = AppName
}

// SetNotifier replaces the function used to deliver notifications.
func SetNotifier(fn func(title, message string, icon any) error) {
	mu.Lock()
	defer mu.Unlock()
	notify = fn
}

// ResetNotifier restores delivery through beeep.
func ResetNotifier() {
	SetNotifier(beeep.Notify)
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	mu.Lock()
	fn := notify
	mu.Unlock()

	logger.Debug("notification: sending title=%q message=%q", title, message)
	// Empty icon lets beeep pick the platform default
	if err := fn(title, message, ""); err != nil {
		logger.Warn("notification: failed to send: %v", err)
		return err
	}
	return nil
}

// IngestionCompleted announces that count files were added to the
// knowledge base.
func IngestionCompleted(count int) error {
	noun := "files"
	if count == 1 {
		noun = "file"
	}
	return Send(AppName, fmt.Sprintf("Added %d %s to the knowledge base", count, noun))
}
