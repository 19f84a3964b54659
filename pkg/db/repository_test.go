package db

import "testing"

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	database, err := NewDB(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	if err := database.InitSchema(); err != nil {
		t.Fatalf("failed to init schema: %v", err)
	}
	return NewRepository(database)
}

func TestSlotRoundTrip(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.Put("theme", "dark"); err != nil {
		t.Fatalf("put: %v", err)
	}

	value, ok, err := repo.Get("theme")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("expected slot to exist")
	}
	if value != "dark" {
		t.Errorf("value = %q, want %q", value, "dark")
	}
}

func TestSlotOverwrite(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.Put("theme", "dark"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Put("theme", "light"); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, ok, err := repo.Get("theme")
	if err != nil || !ok {
		t.Fatalf("get after overwrite: ok=%v err=%v", ok, err)
	}
	if value != "light" {
		t.Errorf("value = %q, want %q", value, "light")
	}
}

func TestSlotMissing(t *testing.T) {
	repo := setupTestRepo(t)

	_, ok, err := repo.Get("nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected missing slot")
	}
}

func TestSlotDelete(t *testing.T) {
	repo := setupTestRepo(t)

	if err := repo.Put("hero", "data:image/png;base64,AAAA"); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := repo.Delete("hero"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, ok, _ := repo.Get("hero"); ok {
		t.Error("expected slot gone after delete")
	}

	// Deleting again is a no-op.
	if err := repo.Delete("hero"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
}
