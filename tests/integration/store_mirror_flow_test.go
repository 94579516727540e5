package integration

import (
	"net/http"
	"testing"
)

func TestStoreMirrorFlow(t *testing.T) {
	app := setupApp(t)

	// Liveness
	rec := app.request("GET", "/store/ping", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("ping failed: %d %s", rec.Code, rec.Body.String())
	}

	// Add a raw record
	rec = app.request("POST", "/store/categories", `{"id":"cat-1","name":"Food","color":"#111111"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("add failed: %d %s", rec.Code, rec.Body.String())
	}

	// Fetch the collection and the record
	rec = app.request("GET", "/store/categories", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get collection failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/store/categories/cat-1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get record failed: %d %s", rec.Code, rec.Body.String())
	}
	record := parseJSON(t, rec)
	if record["name"].(string) != "Food" {
		t.Errorf("expected Food, got %v", record["name"])
	}

	// Patch merges fields and restamps updatedAt
	rec = app.request("PATCH", "/store/categories/cat-1", `{"name":"Groceries"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("patch failed: %d %s", rec.Code, rec.Body.String())
	}
	record = parseJSON(t, rec)
	if record["name"].(string) != "Groceries" {
		t.Errorf("expected patched name, got %v", record["name"])
	}
	if record["color"].(string) != "#111111" {
		t.Errorf("expected unpatched field kept, got %v", record["color"])
	}
	if _, ok := record["updatedAt"]; !ok {
		t.Error("expected updatedAt restamped")
	}

	// Sync replaces the whole collection
	rec = app.request("POST", "/store/categories/sync", `[{"id":"cat-2","name":"Rent"}]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/store/categories/cat-1", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected old record replaced by sync, got %d", rec.Code)
	}
	rec = app.request("GET", "/store/categories/cat-2", "")
	if rec.Code != http.StatusOK {
		t.Errorf("expected synced record present, got %d", rec.Code)
	}

	// Delete
	rec = app.request("DELETE", "/store/categories/cat-2", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("delete failed: %d %s", rec.Code, rec.Body.String())
	}
	rec = app.request("GET", "/store/categories/cat-2", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected 404 after delete, got %d", rec.Code)
	}
}

func TestStoreMirrorValidation(t *testing.T) {
	app := setupApp(t)

	t.Run("unknown_collection", func(t *testing.T) {
		rec := app.request("GET", "/store/widgets", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})

	t.Run("record_without_id", func(t *testing.T) {
		rec := app.request("POST", "/store/categories", `{"name":"no id"}`)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("settings_is_not_a_collection", func(t *testing.T) {
		rec := app.request("GET", "/store/settings", "")
		if rec.Code != http.StatusNotFound {
			t.Errorf("expected 404, got %d", rec.Code)
		}
	})
}

// The mirror and the typed API share one backend, so a record written
// through the mirror is visible to the typed routes.
func TestStoreMirrorSharesBackend(t *testing.T) {
	app := setupApp(t)

	rec := app.request("POST", "/store/categories/sync", `[{"id":"cat-9","name":"Synced","color":"#222222","icon":"default","subcategories":[]}]`)
	if rec.Code != http.StatusOK {
		t.Fatalf("sync failed: %d %s", rec.Code, rec.Body.String())
	}

	rec = app.request("GET", "/api/v1/categories/cat-9", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected typed API to see mirrored record: %d %s", rec.Code, rec.Body.String())
	}
	category := parseJSON(t, rec)["category"].(map[string]interface{})
	if category["name"].(string) != "Synced" {
		t.Errorf("expected Synced, got %v", category["name"])
	}
}
