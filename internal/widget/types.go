package widget

import (
	"fmt"
	"time"
)

// Sender identifies who authored a message.
type Sender int

const (
	SenderUser Sender = iota
	SenderAssistant
)

// String returns the lowercase sender name
func (s Sender) String() string {
	switch s {
	case SenderUser:
		return "user"
	case SenderAssistant:
		return "assistant"
	default:
		return "unknown"
	}
}

// Message is one entry in the conversation thread. Messages are never
// modified after they are appended.
type Message struct {
	ID        string
	Text      string
	Sender    Sender
	CreatedAt time.Time
}

// PendingFile is a file selected for ingestion but not yet ingested.
// Name is the identity within the pending set.
type PendingFile struct {
	Name string
	Size int64
	Path string // Where the file was found, empty when unknown
	Type string // Detected MIME type, empty when unknown
}

// Status texts shown while ingestion is simulated.
const (
	StatusIdle       = ""
	StatusProcessing = "Processing files for database..."
)

// SuccessStatus is the status shown once ingestion of n files completes.
func SuccessStatus(n int) string {
	return fmt.Sprintf("Successfully added %d file(s) to the knowledge base.", n)
}

// DefaultReply is the canned assistant response.
const DefaultReply = "I received your message. This is where the RAG system would process your query and provide a response based on the uploaded documents."

// Default simulated delays.
const (
	DefaultReplyDelay      = 1 * time.Second
	DefaultProcessingDelay = 2 * time.Second
	DefaultClearDelay      = 3 * time.Second
)

// CountMode selects when the success status counts pending files.
type CountMode int

const (
	// CountAtCompletion counts files when the processing delay elapses,
	// so removals made while processing lower the reported number.
	CountAtCompletion CountMode = iota
	// CountAtStart counts files when ingestion begins.
	CountAtStart
)

// ParseCountMode maps a config value to a CountMode.
func ParseCountMode(s string) (CountMode, bool) {
	switch s {
	case "", "completion":
		return CountAtCompletion, true
	case "start":
		return CountAtStart, true
	default:
		return CountAtCompletion, false
	}
}

// String returns the config spelling of the mode
func (c CountMode) String() string {
	if c == CountAtStart {
		return "start"
	}
	return "completion"
}
