package demo

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// WriteTranscript writes one line per event.
func WriteTranscript(w io.Writer, events []Event) error {
	for _, ev := range events {
		if _, err := fmt.Fprintln(w, ev.String()); err != nil {
			return err
		}
	}
	return nil
}

// castHeader is the first line of an asciicast v2 file.
type castHeader struct {
	Version int               `json:"version"`
	Width   int               `json:"width"`
	Height  int               `json:"height"`
	Title   string            `json:"title,omitempty"`
	Env     map[string]string `json:"env,omitempty"`
}

// clearScreen homes the cursor and clears the screen before each frame.
const clearScreen = "\x1b[H\x1b[2J"

// GenerateASCIICast writes frames as an asciicast v2 recording. Each
// frame is shown after its Delay.
func GenerateASCIICast(w io.Writer, frames []Frame, width, height int, title string) error {
	enc := json.NewEncoder(w)
	header := castHeader{
		Version: 2,
		Width:   width,
		Height:  height,
		Title:   title,
		Env:     map[string]string{"TERM": "xterm-256color"},
	}
	if err := enc.Encode(header); err != nil {
		return fmt.Errorf("writing cast header: %w", err)
	}

	var elapsed float64
	for i, f := range frames {
		elapsed += f.Delay.Seconds()
		data := clearScreen + strings.ReplaceAll(f.Content, "\n", "\r\n")
		if err := enc.Encode([]any{elapsed, "o", data}); err != nil {
			return fmt.Errorf("writing frame %d: %w", i, err)
		}
	}
	return nil
}
