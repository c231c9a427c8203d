package domain

import "time"

// Column positions are zero-based and dense within a project: after any
// mutation the positions of a project's columns are exactly 0..n-1.
type Column struct {
	ID        uint64
	Name      string
	ProjectID uint64
	Position  int
	CreatedAt time.Time
	UpdatedAt time.Time
}
