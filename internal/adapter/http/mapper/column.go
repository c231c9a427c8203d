package mapper

import (
	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/core/domain"
)

func ToColumnItems(columns []domain.Column) []dto.ColumnItem {
	items := make([]dto.ColumnItem, 0, len(columns))
	for _, column := range columns {
		items = append(items, ToColumnItem(column))
	}
	return items
}

func ToColumnItem(column domain.Column) dto.ColumnItem {
	return dto.ColumnItem{
		ID:        column.ID,
		Name:      column.Name,
		ProjectID: column.ProjectID,
		Position:  column.Position,
	}
}
