package service

import (
	"context"

	"github.com/Jupiter-12/kanban/internal/core/domain"
	"github.com/Jupiter-12/kanban/internal/core/ports"
)

type UserService struct {
	users ports.UserRepository
}

var _ ports.UserService = (*UserService)(nil)

func NewUserService(users ports.UserRepository) *UserService {
	return &UserService{users: users}
}

// ListActive returns active users, for assignee selection.
func (s *UserService) ListActive(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx, true)
}

// ListAll returns every account. Owner only.
func (s *UserService) ListAll(ctx context.Context, actor domain.User) ([]domain.User, error) {
	if !domain.IsOwner(actor) {
		return nil, domain.ErrPermissionDenied
	}
	return s.users.List(ctx, false)
}

func (s *UserService) ChangeRole(ctx context.Context, actor domain.User, id uint64, role domain.Role) (domain.User, error) {
	if !domain.IsOwner(actor) {
		return domain.User{}, domain.ErrPermissionDenied
	}
	if id == actor.ID {
		return domain.User{}, domain.ErrOwnerSelfUpdate
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return domain.User{}, err
	}
	if err := s.users.UpdateRole(ctx, id, role); err != nil {
		return domain.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) SetActive(ctx context.Context, actor domain.User, id uint64, active bool) (domain.User, error) {
	if !domain.IsOwner(actor) {
		return domain.User{}, domain.ErrPermissionDenied
	}
	if id == actor.ID {
		return domain.User{}, domain.ErrOwnerSelfUpdate
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return domain.User{}, err
	}
	if err := s.users.SetActive(ctx, id, active); err != nil {
		return domain.User{}, err
	}
	return s.users.GetByID(ctx, id)
}

func (s *UserService) Delete(ctx context.Context, actor domain.User, id uint64) error {
	if !domain.IsOwner(actor) {
		return domain.ErrPermissionDenied
	}
	if id == actor.ID {
		return domain.ErrOwnerSelfUpdate
	}
	if _, err := s.users.GetByID(ctx, id); err != nil {
		return err
	}
	return s.users.Delete(ctx, id)
}
