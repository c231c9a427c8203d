package dto

type ColumnItem struct {
	ID        uint64 `json:"id"`
	Name      string `json:"name"`
	ProjectID uint64 `json:"project_id"`
	Position  int    `json:"position"`
}

type CreateColumnRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type RenameColumnRequest struct {
	Name string `json:"name" binding:"required,max=100"`
}

type ReorderColumnsRequest struct {
	ColumnIDs []uint64 `json:"column_ids" binding:"required,min=1,dive,gt=0"`
}
