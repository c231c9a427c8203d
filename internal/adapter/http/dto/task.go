package dto

type TaskItem struct {
	ID          uint64  `json:"id"`
	Title       string  `json:"title"`
	Description *string `json:"description,omitempty"`
	ColumnID    uint64  `json:"column_id"`
	Position    int     `json:"position"`
	Priority    string  `json:"priority"`
	AssigneeID  *uint64 `json:"assignee_id,omitempty"`
	DueDate     *string `json:"due_date,omitempty"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title       string  `json:"title" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	AssigneeID  *uint64 `json:"assignee_id" binding:"omitempty,gt=0"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

// UpdateTaskRequest distinguishes absent fields from explicit nulls; the
// handler inspects the raw body to tell the two apart for the nullable ones.
type UpdateTaskRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
	Priority    *string `json:"priority" binding:"omitempty,oneof=high medium low"`
	AssigneeID  *uint64 `json:"assignee_id" binding:"omitempty,gt=0"`
	DueDate     *string `json:"due_date" binding:"omitempty,datetime=2006-01-02"`
}

type MoveTaskRequest struct {
	ColumnID uint64 `json:"column_id" binding:"required,gt=0"`
	Position *int   `json:"position" binding:"required,gte=0"`
}
