package database

import (
	"context"
	"testing"

	"github.com/fleetdeck/fleetdeck/internal/store"
)

func TestBranchLifecycle(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	created, err := repo.InsertBranch(ctx, "Cape Town")
	if err != nil {
		t.Fatalf("Failed to insert branch: %v", err)
	}
	if created.ID <= 0 {
		t.Errorf("Expected positive id, got %d", created.ID)
	}
	if created.Name != "Cape Town" {
		t.Errorf("Expected name Cape Town, got %q", created.Name)
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected created_at to be populated")
	}

	fetched, err := repo.GetBranchByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Failed to get branch: %v", err)
	}
	if fetched == nil || fetched.Name != "Cape Town" {
		t.Fatalf("Expected Cape Town back, got %+v", fetched)
	}

	renamed, err := repo.UpdateBranchName(ctx, created.ID, "Cape Town North")
	if err != nil {
		t.Fatalf("Failed to rename branch: %v", err)
	}
	if renamed == nil || renamed.Name != "Cape Town North" {
		t.Fatalf("Expected renamed branch, got %+v", renamed)
	}

	if err := repo.DeleteBranch(ctx, created.ID); err != nil {
		t.Fatalf("Failed to delete branch: %v", err)
	}
	gone, err := repo.GetBranchByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("Get after delete failed: %v", err)
	}
	if gone != nil {
		t.Errorf("Expected branch gone, got %+v", gone)
	}
}

func TestGetAllBranchesOrderedByName(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Durban", "Bloemfontein", "Cape Town"} {
		if _, err := repo.InsertBranch(ctx, name); err != nil {
			t.Fatalf("Failed to insert %s: %v", name, err)
		}
	}

	branches, err := repo.GetAllBranches(ctx)
	if err != nil {
		t.Fatalf("Failed to list branches: %v", err)
	}
	if len(branches) != 3 {
		t.Fatalf("Expected 3 branches, got %d", len(branches))
	}
	want := []string{"Bloemfontein", "Cape Town", "Durban"}
	for i, name := range want {
		if branches[i].Name != name {
			t.Errorf("Position %d: expected %s, got %s", i, name, branches[i].Name)
		}
	}
}

func TestGetBranchByIDMissingIsNil(t *testing.T) {
	repo := setupTestRepo(t)

	branch, err := repo.GetBranchByID(context.Background(), 404)
	if err != nil {
		t.Fatalf("Expected no error for missing branch, got: %v", err)
	}
	if branch != nil {
		t.Errorf("Expected nil for missing branch, got %+v", branch)
	}
}

func TestUpdateBranchNameMissingIsNil(t *testing.T) {
	repo := setupTestRepo(t)

	branch, err := repo.UpdateBranchName(context.Background(), 404, "Ghost")
	if err != nil {
		t.Fatalf("Expected no error for missing branch, got: %v", err)
	}
	if branch != nil {
		t.Errorf("Expected nil for missing branch, got %+v", branch)
	}
}

func TestInsertDuplicateBranchNameIsUniqueViolation(t *testing.T) {
	repo := setupTestRepo(t)
	ctx := context.Background()

	if _, err := repo.InsertBranch(ctx, "Gqeberha"); err != nil {
		t.Fatalf("First insert failed: %v", err)
	}

	_, err := repo.InsertBranch(ctx, "Gqeberha")
	if err == nil {
		t.Fatal("Expected unique violation on duplicate name")
	}
	if !store.IsUnique(err) {
		t.Errorf("Expected IsUnique to report true, got: %v", err)
	}
}
