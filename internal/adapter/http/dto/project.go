package dto

type ProjectItem struct {
	ID          uint64  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	OwnerID     uint64  `json:"owner_id"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

type CreateProjectRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type UpdateProjectRequest struct {
	Name        *string `json:"name" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=65535"`
}

type ProjectList struct {
	Items    []ProjectItem `json:"items"`
	Total    int           `json:"total"`
	Page     int           `json:"page"`
	PageSize int           `json:"page_size"`
}

type BoardResponse struct {
	Project ProjectItem       `json:"project"`
	Columns []BoardColumnItem `json:"columns"`
}

type BoardColumnItem struct {
	ColumnItem
	Tasks []TaskItem `json:"tasks"`
}
