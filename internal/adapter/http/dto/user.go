package dto

type UserItem struct {
	ID          uint64  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	DisplayName *string `json:"display_name,omitempty"`
	AvatarURL   *string `json:"avatar_url,omitempty"`
	Role        string  `json:"role"`
	Active      bool    `json:"active"`
	CreatedAt   string  `json:"created_at"`
}

type ChangeRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=admin user"`
}

type SetActiveRequest struct {
	Active *bool `json:"active" binding:"required"`
}
