// Package output provides formatters for menu and task output.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	// RuleWidth is the width of the menu separator rule.
	RuleWidth = 40

	// StatusDone and StatusPending label a task's completion state.
	StatusDone    = "✓ Done"
	StatusPending = "☐ Pending"
)

// MenuEntry is one numbered menu line.
type MenuEntry struct {
	Key   string
	Label string
}

// Status returns the label for a completion state.
func Status(completed bool) string {
	if completed {
		return StatusDone
	}
	return StatusPending
}

// FormatTask writes a task as
// "ID: {N} | {STATUS} | Title: {TITLE}\n" followed by
// "   Description: {DESC}\n" when a description is present.
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "ID: %d | %s | Title: %s\n", task.ID, Status(task.Completed), task.Title)
	if task.HasDescription() {
		fmt.Fprintf(w, "   Description: %s\n", task.Description)
	}
}

// FormatMenu writes the menu box: rules, centred title, then the entries in order.
func FormatMenu(w io.Writer, title string, entries []MenuEntry) {
	rule := strings.Repeat("=", RuleWidth)
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", titleIndent(title)), title)
	fmt.Fprintln(w, rule)
	for _, e := range entries {
		fmt.Fprintf(w, "%s. %s\n", e.Key, e.Label)
	}
	fmt.Fprintln(w, rule)
}

// titleIndent is the left padding for a title inside the rule.
func titleIndent(title string) int {
	n := (RuleWidth - len([]rune(title))) / 2
	if n < 0 {
		return 0
	}
	return n
}
