package domain

import "time"

type Role string

const (
	RoleOwner Role = "owner"
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleUser:
		return true
	}
	return false
}

type User struct {
	ID           uint64
	Username     string
	Email        string
	PasswordHash string
	DisplayName  *string
	AvatarURL    *string
	Role         Role
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterUserInput struct {
	Username    string
	Email       string
	Password    string
	DisplayName *string
}
