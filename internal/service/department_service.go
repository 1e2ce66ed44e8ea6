package service

import (
	"context"
	"errors"

	"github.com/civichub/mts/internal/cache"
	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/repository"
	apperrors "github.com/civichub/mts/pkg/util"
)

// DepartmentService manages the department catalog.
type DepartmentService struct {
	departments repository.DepartmentRepository
	cache       *cache.DepartmentCache
}

// DepartmentDependencies bundles requirements for the department service.
type DepartmentDependencies struct {
	DepartmentRepo repository.DepartmentRepository
	Cache          *cache.DepartmentCache
}

// NewDepartmentService constructs the service.
func NewDepartmentService(deps DepartmentDependencies) *DepartmentService {
	return &DepartmentService{
		departments: deps.DepartmentRepo,
		cache:       deps.Cache,
	}
}

// Create stores a department under its caller-supplied code. There is no
// uniqueness pre-check; creating with an existing code follows the store's
// upsert semantics.
func (s *DepartmentService) Create(ctx context.Context, id, name string) (*domain.Department, error) {
	dept := &domain.Department{ID: id, Name: name}
	if err := s.departments.Save(ctx, dept); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return dept, nil
}

// Update replaces the display name only; the code is immutable.
func (s *DepartmentService) Update(ctx context.Context, id, newName string) (*domain.Department, error) {
	dept, err := s.departments.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("department", map[string]any{"id": id})
		}
		return nil, err
	}
	dept.Name = newName
	if err := s.departments.Save(ctx, dept); err != nil {
		return nil, err
	}
	s.cache.Invalidate(ctx)
	return dept, nil
}

// Delete removes a department and reports whether it existed. Users and
// tickets referencing the code keep their dangling reference; there is no
// cascade.
func (s *DepartmentService) Delete(ctx context.Context, id string) (bool, error) {
	deleted, err := s.departments.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.cache.Invalidate(ctx)
	}
	return deleted, nil
}

// List returns all departments, serving from the cache when possible.
func (s *DepartmentService) List(ctx context.Context) ([]domain.Department, error) {
	if depts, ok := s.cache.Get(ctx); ok {
		return depts, nil
	}
	depts, err := s.departments.List(ctx)
	if err != nil {
		return nil, err
	}
	s.cache.Set(ctx, depts)
	return depts, nil
}
