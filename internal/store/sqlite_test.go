package store

import (
	"errors"
	"fmt"
	"strings"
	"sync/atomic"
	"testing"

	apperrors "pocketledger/internal/errors"
	"pocketledger/internal/models"
)

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func setupSQLiteBackend(t *testing.T, quota int64) *SQLiteBackend {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:testdb%d?mode=memory&cache=shared", n)
	backend, err := NewSQLiteBackend(dsn, quota)
	if err != nil {
		t.Fatalf("failed to open test backend: %v", err)
	}
	t.Cleanup(func() { backend.Close() })
	return backend
}

func TestSQLiteBackendRoundTrip(t *testing.T) {
	backend := setupSQLiteBackend(t, 0)

	if _, ok, err := backend.Get("missing"); err != nil || ok {
		t.Fatalf("expected absent key, got ok=%v err=%v", ok, err)
	}

	if err := backend.Set("k", "v1"); err != nil {
		t.Fatalf("set failed: %v", err)
	}
	if err := backend.Set("k", "v2"); err != nil {
		t.Fatalf("overwrite failed: %v", err)
	}

	got, ok, err := backend.Get("k")
	if err != nil || !ok {
		t.Fatalf("get failed: ok=%v err=%v", ok, err)
	}
	if got != "v2" {
		t.Errorf("expected v2, got %s", got)
	}

	if err := backend.Delete("k"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, ok, _ := backend.Get("k"); ok {
		t.Error("expected key gone after delete")
	}
	// Deleting an absent key is not an error.
	if err := backend.Delete("k"); err != nil {
		t.Errorf("second delete failed: %v", err)
	}
}

func TestSQLiteBackendQuota(t *testing.T) {
	backend := setupSQLiteBackend(t, 100)

	if err := backend.Set("k", strings.Repeat("a", 90)); err != nil {
		t.Fatalf("set within quota failed: %v", err)
	}
	// Replacing frees the old bytes first.
	if err := backend.Set("k", strings.Repeat("b", 95)); err != nil {
		t.Fatalf("replacement within quota failed: %v", err)
	}

	err := backend.Set("k2", strings.Repeat("c", 20))
	if !errors.Is(err, apperrors.ErrStorageQuotaExceeded) {
		t.Fatalf("expected STORAGE_QUOTA_EXCEEDED, got %v", err)
	}

	used, err := backend.UsedBytes()
	if err != nil {
		t.Fatalf("used bytes failed: %v", err)
	}
	if used != 95 {
		t.Errorf("expected 95 used bytes, got %d", used)
	}
}

func TestSQLiteBackendWithCollections(t *testing.T) {
	backend := setupSQLiteBackend(t, 0)
	s := New(backend)

	category := models.NewCategory(models.Category{Name: "Food"})
	if err := s.Categories.Add(category); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	got, ok := s.Categories.GetByID(category.ID)
	if !ok || got.Name != "Food" {
		t.Errorf("expected category persisted through sqlite, got ok=%v %+v", ok, got)
	}
}
