package files

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"testing"
	"time"
)

func TestNewWatcher_NormalizesExtensions(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"defaults", nil, DefaultWatchExtensions},
		{"adds dot and lowercases", []string{"PDF", ".Txt"}, []string{".pdf", ".txt"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := NewWatcher(tt.in, 0)
			if err != nil {
				t.Fatalf("NewWatcher() error = %v", err)
			}
			defer w.Close()

			if !slices.Equal(w.extensions, tt.want) {
				t.Errorf("extensions = %v, want %v", w.extensions, tt.want)
			}
			if w.debounce != DefaultDebounce {
				t.Errorf("debounce = %v, want %v", w.debounce, DefaultDebounce)
			}
		})
	}
}

func TestWatcher_Matches(t *testing.T) {
	w, err := NewWatcher([]string{".pdf"}, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	for path, want := range map[string]bool{
		"/x/a.pdf":  true,
		"/x/A.PDF":  true,
		"/x/a.txt":  false,
		"/x/pdf":    false,
		"/x/.pdf.x": false,
	} {
		if got := w.matches(path); got != want {
			t.Errorf("matches(%q) = %v, want %v", path, got, want)
		}
	}
}

func TestWatcher_BatchesDroppedFiles(t *testing.T) {
	dir := t.TempDir()

	w, err := NewWatcher([]string{".txt"}, 100*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	batches, err := w.Watch(ctx, dir)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	for _, name := range []string{"one.txt", "two.txt", "skip.json"} {
		if err := os.WriteFile(filepath.Join(dir, name), []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	select {
	case batch := <-batches:
		want := []string{filepath.Join(dir, "one.txt"), filepath.Join(dir, "two.txt")}
		if !slices.Equal(batch, want) {
			t.Errorf("batch = %v, want %v", batch, want)
		}
	case <-ctx.Done():
		t.Fatal("timeout waiting for drop batch")
	}
}

func TestWatcher_IgnoresEditsToExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "old.txt")
	if err := os.WriteFile(existing, []byte("v1"), 0644); err != nil {
		t.Fatal(err)
	}

	w, err := NewWatcher([]string{".txt"}, 50*time.Millisecond)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	batches, err := w.Watch(ctx, dir)
	if err != nil {
		t.Fatalf("Watch() error = %v", err)
	}

	f, err := os.OpenFile(existing, os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := f.WriteString("v2"); err != nil {
		t.Fatal(err)
	}
	f.Close()

	select {
	case batch := <-batches:
		t.Errorf("editing an existing file produced batch %v", batch)
	case <-time.After(500 * time.Millisecond):
	}

	// A new file still arrives after the ignored edit
	fresh := filepath.Join(dir, "new.txt")
	if err := os.WriteFile(fresh, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}
	select {
	case batch := <-batches:
		if !slices.Equal(batch, []string{fresh}) {
			t.Errorf("batch = %v, want [%s]", batch, fresh)
		}
	case <-time.After(3 * time.Second):
		t.Fatal("timeout waiting for new file")
	}
}

func TestWatcher_ClosesChannelOnCancel(t *testing.T) {
	w, err := NewWatcher(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	batches, err := w.Watch(ctx, t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	cancel()

	select {
	case _, ok := <-batches:
		if ok {
			t.Error("expected closed channel")
		}
	case <-time.After(2 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}

func TestWatcher_MissingDirectory(t *testing.T) {
	w, err := NewWatcher(nil, 0)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if _, err := w.Watch(context.Background(), filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("Watch() should fail for a missing directory")
	}
}
