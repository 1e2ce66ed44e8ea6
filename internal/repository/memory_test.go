package repository_test

import (
	"context"
	"errors"
	"testing"

	"github.com/civichub/mts/internal/domain"
	"github.com/civichub/mts/internal/repository"
)

func TestMemoryUserRepository_GetByUsername(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	ctx := context.Background()

	user := &domain.User{Username: "citizen1", Name: "John Doe", Role: domain.RoleCitizen}
	if err := repo.Create(ctx, user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if user.ID == "" {
		t.Fatal("expected id to be assigned")
	}

	got, err := repo.GetByUsername(ctx, "citizen1")
	if err != nil {
		t.Fatalf("GetByUsername: %v", err)
	}
	if got.ID != user.ID {
		t.Fatalf("expected id %s, got %s", user.ID, got.ID)
	}

	if _, err := repo.GetByUsername(ctx, "nobody"); !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryUserRepository_UpdateMissing(t *testing.T) {
	repo := repository.NewMemoryUserRepository()
	err := repo.Update(context.Background(), &domain.User{ID: "missing"})
	if !errors.Is(err, repository.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryTicketRepository_Filters(t *testing.T) {
	repo := repository.NewMemoryTicketRepository()
	ctx := context.Background()

	tickets := []domain.Ticket{
		{Title: "a", CreatedBy: "u1", Department: "SANITATION"},
		{Title: "b", CreatedBy: "u2", Department: "SANITATION"},
		{Title: "c", CreatedBy: "u1", Department: "ELECTRICITY"},
	}
	for i := range tickets {
		if err := repo.Create(ctx, &tickets[i]); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	byCreator, err := repo.ListByCreator(ctx, "u1")
	if err != nil {
		t.Fatalf("ListByCreator: %v", err)
	}
	if len(byCreator) != 2 {
		t.Fatalf("expected 2 tickets for u1, got %d", len(byCreator))
	}

	byDept, err := repo.ListByDepartment(ctx, "SANITATION")
	if err != nil {
		t.Fatalf("ListByDepartment: %v", err)
	}
	if len(byDept) != 2 {
		t.Fatalf("expected 2 SANITATION tickets, got %d", len(byDept))
	}

	none, err := repo.ListByDepartment(ctx, "WATER_SUPPLY")
	if err != nil {
		t.Fatalf("ListByDepartment: %v", err)
	}
	if len(none) != 0 {
		t.Fatalf("expected no tickets, got %d", len(none))
	}

	all, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 tickets, got %d", len(all))
	}
}

func TestMemoryDepartmentRepository_SaveIsUpsert(t *testing.T) {
	repo := repository.NewMemoryDepartmentRepository()
	ctx := context.Background()

	first := &domain.Department{ID: "SANITATION", Name: "Sanitation"}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("Save: %v", err)
	}

	second := &domain.Department{ID: "SANITATION", Name: "Sanitation Department"}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if !second.CreatedAt.Equal(first.CreatedAt) {
		t.Fatal("expected upsert to preserve CreatedAt")
	}

	count, err := repo.Count(ctx)
	if err != nil {
		t.Fatalf("Count: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected 1 department after upsert, got %d", count)
	}

	got, err := repo.GetByID(ctx, "SANITATION")
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Sanitation Department" {
		t.Fatalf("expected updated name, got %s", got.Name)
	}
}

func TestMemoryDepartmentRepository_Delete(t *testing.T) {
	repo := repository.NewMemoryDepartmentRepository()
	ctx := context.Background()

	if err := repo.Save(ctx, &domain.Department{ID: "WATER_SUPPLY", Name: "Water Supply"}); err != nil {
		t.Fatalf("Save: %v", err)
	}

	deleted, err := repo.Delete(ctx, "WATER_SUPPLY")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if !deleted {
		t.Fatal("expected delete to report true")
	}

	deleted, err = repo.Delete(ctx, "WATER_SUPPLY")
	if err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if deleted {
		t.Fatal("expected second delete to report false")
	}

	depts, err := repo.List(ctx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(depts) != 0 {
		t.Fatalf("expected empty list, got %d", len(depts))
	}
}
