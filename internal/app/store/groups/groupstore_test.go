package groupstore_test

import (
	"errors"
	"testing"

	groupstore "github.com/Ms-Nafiz/Event-Registration-sub000/internal/app/store/groups"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/domain/models"
	"github.com/Ms-Nafiz/Event-Registration-sub000/internal/testutil"
)

func TestStore_CreateAndGet(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{Name: "Alpha", Description: "first cohort"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID.IsZero() {
		t.Fatal("expected ID to be assigned")
	}
	if created.NameCI != "alpha" {
		t.Errorf("name_ci = %q, want %q", created.NameCI, "alpha")
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Alpha" {
		t.Errorf("name = %q, want %q", got.Name, "Alpha")
	}
}

func TestStore_GetByName_CaseInsensitive(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Group{Name: "Beta"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	for _, name := range []string{"Beta", "beta", "BETA"} {
		got, err := store.GetByName(ctx, name)
		if err != nil {
			t.Fatalf("GetByName(%q) failed: %v", name, err)
		}
		if got.Name != "Beta" {
			t.Errorf("GetByName(%q) = %q, want Beta", name, got.Name)
		}
	}
}

func TestStore_Create_DuplicateName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	if _, err := store.Create(ctx, models.Group{Name: "Gamma"}); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}
	_, err := store.Create(ctx, models.Group{Name: "GAMMA"})
	if !errors.Is(err, groupstore.ErrDuplicateGroupName) {
		t.Errorf("err = %v, want ErrDuplicateGroupName", err)
	}
}

func TestStore_UpdateInfo(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{Name: "Delta"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if err := store.UpdateInfo(ctx, created.ID, "Delta Prime", "renamed"); err != nil {
		t.Fatalf("UpdateInfo failed: %v", err)
	}

	got, err := store.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if got.Name != "Delta Prime" || got.NameCI != "delta prime" {
		t.Errorf("name = %q / name_ci = %q, want Delta Prime / delta prime", got.Name, got.NameCI)
	}
	if got.Description != "renamed" {
		t.Errorf("description = %q, want renamed", got.Description)
	}
}

func TestStore_All_SortedByName(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	for _, name := range []string{"zeta", "Alpha", "Mu"} {
		if _, err := store.Create(ctx, models.Group{Name: name}); err != nil {
			t.Fatalf("Create(%q) failed: %v", name, err)
		}
	}

	all, err := store.All(ctx)
	if err != nil {
		t.Fatalf("All failed: %v", err)
	}
	want := []string{"Alpha", "Mu", "zeta"}
	if len(all) != len(want) {
		t.Fatalf("len = %d, want %d", len(all), len(want))
	}
	for i, g := range all {
		if g.Name != want[i] {
			t.Errorf("all[%d] = %q, want %q", i, g.Name, want[i])
		}
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := groupstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	created, err := store.Create(ctx, models.Group{Name: "Epsilon"})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	n, err := store.Delete(ctx, created.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
}
