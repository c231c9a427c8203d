package mapper

import (
	"time"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/core/domain"
)

func ToProjectItems(projects []domain.Project) []dto.ProjectItem {
	items := make([]dto.ProjectItem, 0, len(projects))
	for _, project := range projects {
		items = append(items, ToProjectItem(project))
	}
	return items
}

func ToProjectItem(project domain.Project) dto.ProjectItem {
	item := dto.ProjectItem{
		ID:        project.ID,
		Name:      project.Name,
		OwnerID:   project.OwnerID,
		CreatedAt: project.CreatedAt.Format(time.RFC3339),
		UpdatedAt: project.UpdatedAt.Format(time.RFC3339),
	}

	if project.Description != nil {
		value := *project.Description
		item.Description = &value
	}

	return item
}

func ToBoardResponse(board domain.Board) dto.BoardResponse {
	response := dto.BoardResponse{
		Project: ToProjectItem(board.Project),
		Columns: make([]dto.BoardColumnItem, 0, len(board.Columns)),
	}
	for _, boardColumn := range board.Columns {
		response.Columns = append(response.Columns, dto.BoardColumnItem{
			ColumnItem: ToColumnItem(boardColumn.Column),
			Tasks:      ToTaskItems(boardColumn.Tasks),
		})
	}
	return response
}
