package mapper

import (
	"time"

	"github.com/Jupiter-12/kanban/internal/adapter/http/dto"
	"github.com/Jupiter-12/kanban/internal/core/domain"
)

func ToUserItems(users []domain.User) []dto.UserItem {
	items := make([]dto.UserItem, 0, len(users))
	for _, user := range users {
		items = append(items, ToUserItem(user))
	}
	return items
}

func ToUserItem(user domain.User) dto.UserItem {
	item := dto.UserItem{
		ID:        user.ID,
		Username:  user.Username,
		Email:     user.Email,
		Role:      string(user.Role),
		Active:    user.Active,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}

	if user.DisplayName != nil {
		value := *user.DisplayName
		item.DisplayName = &value
	}
	if user.AvatarURL != nil {
		value := *user.AvatarURL
		item.AvatarURL = &value
	}

	return item
}
