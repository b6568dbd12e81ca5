// Package clipboard copies text to the system clipboard.
package clipboard

import (
	"strings"
	"sync"

	"golang.design/x/clipboard"

	"github.com/zhubert/ragchat/internal/errors"
	"github.com/zhubert/ragchat/internal/logger"
)

var (
	mu          sync.Mutex
	initialized bool
	initErr     error

	// initFn and writeFn are replaced in tests.
	initFn  = clipboard.Init
	writeFn = func(data []byte) { clipboard.Write(clipboard.FmtText, data) }
)

// Init initializes the clipboard. Must be called before other functions.
// This is safe to call multiple times; a failure is remembered.
func Init() error {
	mu.Lock()
	defer mu.Unlock()
	return initLocked()
}

func initLocked() error {
	if initialized {
		return initErr
	}
	initialized = true

	if err := initFn(); err != nil {
		logger.Warn("clipboard: failed to initialize: %v", err)
		initErr = errors.ClipboardUnavailable(err)
		return initErr
	}
	logger.Debug("clipboard: initialized")
	return nil
}

// WriteText places text on the clipboard. Blank text is rejected.
func WriteText(text string) error {
	if strings.TrimSpace(text) == "" {
		return errors.NothingToCopy()
	}

	mu.Lock()
	defer mu.Unlock()
	if err := initLocked(); err != nil {
		return err
	}

	writeFn([]byte(text))
	logger.Debug("clipboard: wrote %d bytes", len(text))
	return nil
}
