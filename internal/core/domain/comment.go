package domain

import "time"

// Comment is immutable after creation except for deletion by its author.
type Comment struct {
	ID        uint64
	TaskID    uint64
	UserID    uint64
	Content   string
	CreatedAt time.Time
}
