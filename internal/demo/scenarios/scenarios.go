// Package scenarios contains built-in demo scenarios for ragchat.
package scenarios

import (
	"time"

	"github.com/zhubert/ragchat/internal/demo"
	"github.com/zhubert/ragchat/internal/widget"
)

// Chat sends one question and waits for the canned reply.
var Chat = &demo.Scenario{
	Name:        "chat",
	Description: "Ask a question and receive the reply",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Type("hello"),
		demo.Annotate("Enter sends the message"),
		demo.KeyWithDesc("enter", "Send"),
		demo.Capture(),

		demo.Annotate("The reply arrives after one second"),
		demo.Wait(1 * time.Second),
	},
}

// Upload selects files, including a duplicate name, and follows the
// upload status until it clears.
var Upload = &demo.Scenario{
	Name:        "upload",
	Description: "Select files and watch them get processed",
	Width:       100,
	Height:      30,
	Steps: []demo.Step{
		demo.Annotate("The second a.txt is dropped: names are unique"),
		demo.Select(demo.File("a.txt", 100), demo.File("a.txt", 200), demo.File("b.txt", 50)),
		demo.Capture(),

		demo.Annotate("Processing finishes after two seconds"),
		demo.Wait(2 * time.Second),

		demo.Annotate("Three seconds later the list clears"),
		demo.Wait(3 * time.Second),
	},
}

// Overview walks through every control of the widget.
var Overview = &demo.Scenario{
	Name:        "overview",
	Description: "Files, removal, multi-line input and reset",
	Width:       120,
	Height:      40,
	Setup: &demo.ScenarioSetup{
		Files: []widget.PendingFile{
			demo.File("quarterly-report.pdf", 2_457_600),
		},
		Focus: "chat",
	},
	Steps: []demo.Step{
		demo.Wait(500 * time.Millisecond),

		demo.Select(
			demo.File("contract.pdf", 1_048_576),
			demo.File("meeting-notes.md", 18_432),
			demo.File("budget.csv", 4_096),
		),
		demo.Annotate("Tab moves to the files panel; x removes the selected file"),
		demo.KeyWithDesc("tab", "Focus files"),
		demo.Key("down"),
		demo.Key("x"),
		demo.Capture(),

		demo.KeyWithDesc("tab", "Back to chat"),
		demo.Type("Summarize the contract"),
		demo.KeyWithDesc("shift+enter", "New line"),
		demo.Type("in three bullet points"),
		demo.Capture(),
		demo.Key("enter"),

		demo.Wait(5 * time.Second),

		demo.Annotate("ctrl+l starts over"),
		demo.KeyWithDesc("ctrl+l", "Reset"),
		demo.Capture(),
	},
}

// All returns all available scenarios.
func All() []*demo.Scenario {
	return []*demo.Scenario{
		Chat,
		Upload,
		Overview,
	}
}

// Get returns a scenario by name, or nil if not found.
func Get(name string) *demo.Scenario {
	for _, s := range All() {
		if s.Name == name {
			return s
		}
	}
	return nil
}
