package domain

import "time"

type Priority string

const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

func (p Priority) Valid() bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// Task positions are zero-based and dense within a column, mirroring the
// column-in-project invariant.
type Task struct {
	ID          uint64
	Title       string
	Description *string
	ColumnID    uint64
	Position    int
	Priority    Priority
	AssigneeID  *uint64
	DueDate     *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateTaskInput struct {
	Title       string
	Description *string
	Priority    Priority
	AssigneeID  *uint64
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title          *string
	Description    *string
	DescriptionSet bool
	Priority       *Priority
	AssigneeID     *uint64
	AssigneeIDSet  bool
	DueDate        *time.Time
	DueDateSet     bool
}

// TaskFilter narrows the tasks returned on a board. Zero value matches all.
type TaskFilter struct {
	Keyword    string
	AssigneeID *uint64
	Priority   *Priority
	DueFrom    *time.Time
	DueTo      *time.Time
}

func (f TaskFilter) Empty() bool {
	return f.Keyword == "" && f.AssigneeID == nil && f.Priority == nil &&
		f.DueFrom == nil && f.DueTo == nil
}
