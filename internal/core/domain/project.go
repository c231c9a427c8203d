package domain

import "time"

// DefaultColumnNames are created with every new project, at positions 0..2.
var DefaultColumnNames = []string{"To Do", "In Progress", "Done"}

type Project struct {
	ID          uint64
	Name        string
	Description *string
	OwnerID     uint64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type CreateProjectInput struct {
	Name        string
	Description *string
}

type UpdateProjectInput struct {
	Name        *string
	Description *string
}

// Board is a project with its columns and their tasks in position order.
type Board struct {
	Project Project
	Columns []BoardColumn
}

type BoardColumn struct {
	Column Column
	Tasks  []Task
}
