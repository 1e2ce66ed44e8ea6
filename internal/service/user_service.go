package service

import (
	"context"
	"errors"
	"time"

	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/repository"
	apperrors "github.com/civichub/mts/pkg/util"
)

// UserService covers user administration. It performs no authorization of
// its own; access control is the transport layer's concern.
type UserService struct {
	users repository.UserRepository
}

// UserDependencies bundles requirements for the user service.
type UserDependencies struct {
	UserRepo repository.UserRepository
}

// NewUserService constructs the service.
func NewUserService(deps UserDependencies) *UserService {
	return &UserService{users: deps.UserRepo}
}

// List returns every account. Password hashes are included; redaction
// happens in the response DTOs.
func (s *UserService) List(ctx context.Context) ([]domain.User, error) {
	return s.users.List(ctx)
}

// UpdateRole assigns a new role to the user.
func (s *UserService) UpdateRole(ctx context.Context, userID string, role domain.Role) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Role = role
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateDepartment sets or clears the user's department reference. The code
// is not checked against the department catalog; a nonexistent code sticks.
func (s *UserService) UpdateDepartment(ctx context.Context, userID string, departmentID *string) (*domain.User, error) {
	user, err := s.getUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	user.Department = departmentID
	user.UpdatedAt = time.Now()
	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) getUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("user", map[string]any{"id": userID})
		}
		return nil, err
	}
	return user, nil
}
