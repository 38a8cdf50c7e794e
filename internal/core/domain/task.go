package domain

import (
	"errors"
	"time"
)

// TaskStatus is the column a task sits in on the board.
type TaskStatus string

const (
	StatusToDo       TaskStatus = "To Do"
	StatusInProgress TaskStatus = "In Progress"
	StatusDone       TaskStatus = "Done"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrEmptyTitle = errors.New("title is required")
var ErrNotAuthorized = errors.New("not authorized")
var ErrInvalidStatus = errors.New("invalid task status")

// IsValid reports whether s is one of the three board columns.
func (s TaskStatus) IsValid() bool {
	switch s {
	case StatusToDo, StatusInProgress, StatusDone:
		return true
	}
	return false
}

// SortKey selects the ordering of a task listing. Values match the labels
// the client sends verbatim.
type SortKey string

const (
	SortRecent       SortKey = "Recent"       // createdAt descending
	SortDueDate      SortKey = "Due Date"     // dueDate ascending
	SortAlphabetical SortKey = "Alphabetical" // title ascending
)

// ParseSortKey maps a raw sortBy query value to a SortKey. Unrecognized
// values fall back to SortRecent.
func ParseSortKey(raw string) SortKey {
	switch SortKey(raw) {
	case SortDueDate:
		return SortDueDate
	case SortAlphabetical:
		return SortAlphabetical
	default:
		return SortRecent
	}
}

// Task is a single to-do item. Owner is set at creation time and never
// changes afterwards.
type Task struct {
	ID          string
	Title       string
	Description string
	Status      TaskStatus
	DueDate     *time.Time
	Order       int
	Owner       string
	CreatedAt   time.Time
}
