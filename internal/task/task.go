// Package task defines the task record and the helpers that operate on a
// loaded task list.
package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Status is the lifecycle state of a task.
type Status string

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusTodo, StatusInProgress, StatusDone}

// statusWidth is the column width the status is padded to in output lines.
const statusWidth = 11

// Task is a single trackable unit of work.
type Task struct {
	ID          int    `json:"id"`
	Description string `json:"description"`
	Status      Status `json:"status"`
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusTodo, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// ParseStatus case-folds s and returns the matching status.
func ParseStatus(s string) (Status, error) {
	status := Status(strings.ToLower(s))
	if !status.Valid() {
		return "", fmt.Errorf("%w: %s", ErrUnknownStatus, s)
	}

	return status, nil
}

// ValidStatusList returns the statuses joined for messages, e.g. "todo, in-progress, done".
func ValidStatusList() string {
	names := make([]string, len(Statuses))
	for i, s := range Statuses {
		names[i] = string(s)
	}

	return strings.Join(names, ", ")
}

// ParseID parses a task id. Only ASCII decimal digits are accepted.
func ParseID(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: (empty)", ErrInvalidID)
	}

	for _, r := range s {
		if r < '0' || r > '9' {
			return 0, fmt.Errorf("%w: %s", ErrInvalidID, s)
		}
	}

	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidID, s)
	}

	return id, nil
}

// CleanDescription joins tokens with single spaces, trims surrounding
// whitespace, then strips surrounding double quotes and then single quotes.
func CleanDescription(tokens []string) string {
	desc := strings.TrimSpace(strings.Join(tokens, " "))
	desc = strings.Trim(desc, `"`)

	return strings.Trim(desc, `'`)
}

// FormatLine renders a task as "[<id>] <status> <description>" with the
// status padded to a fixed column.
func FormatLine(t Task) string {
	return fmt.Sprintf("[%d] %-*s %s", t.ID, statusWidth, t.Status, t.Description)
}
