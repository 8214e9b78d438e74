package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"bistro-pos-service/internal/config"
	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"

	"go.uber.org/zap"
)

func newTestServer(t *testing.T) (http.Handler, *store.Store) {
	t.Helper()

	st := store.New(filepath.Join(t.TempDir(), "db.json"))
	err := st.Update(func(d *store.Data) error {
		d.Users = []models.User{
			{ID: "user1", Username: "admin_user", Role: models.RoleAdmin},
			{ID: "user2", Username: "cashier_user", Role: models.RoleCashier},
		}
		d.Categories = []models.Category{{ID: "cat1", Name: "Drinks"}}
		d.MenuItems = []models.MenuItem{
			{ID: "m1", Name: "Flat White", Price: 4.50, SubCategory: "1", IsAvailable: true},
		}
		d.AreaTables = []models.AreaTable{{ID: "a1", Name: "Main Room", Tables: []string{"t1"}}}
		d.Tables = []models.Table{{ID: "t1", TableName: "MainRoom1", Status: "free", AreaID: "a1"}}
		return nil
	})
	if err != nil {
		t.Fatalf("seed test store: %v", err)
	}

	cfg := config.Config{Env: "test", BestSellerLimit: 5}
	return NewRouter(st, zap.NewNop(), cfg, nil), st
}

func request(t *testing.T, handler http.Handler, method, target, userID string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode request body: %v", err)
		}
	}
	req := httptest.NewRequest(method, target, &buf)
	if userID != "" {
		req.Header.Set("userid", userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestCatalogReadsArePublic(t *testing.T) {
	r, _ := newTestServer(t)

	for _, target := range []string{"/categories", "/menuItems", "/tables", "/areas-with-tables", "/menuItems/m1"} {
		rec := request(t, r, http.MethodGet, target, "", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s: status = %d, want 200", target, rec.Code)
		}
	}

	rec := request(t, r, http.MethodGet, "/menuItems/nope", "", nil)
	if rec.Code != http.StatusNotFound {
		t.Fatalf("point lookup of unknown id: status = %d, want 404", rec.Code)
	}
}

func TestAuthenticatedReadsNeedUserHeader(t *testing.T) {
	r, _ := newTestServer(t)

	for _, target := range []string{"/users", "/orders", "/statistics", "/statisticsYears"} {
		rec := request(t, r, http.MethodGet, target, "", nil)
		if rec.Code != http.StatusUnauthorized {
			t.Fatalf("GET %s without header: status = %d, want 401", target, rec.Code)
		}
		rec = request(t, r, http.MethodGet, target, "user2", nil)
		if rec.Code != http.StatusOK {
			t.Fatalf("GET %s as cashier: status = %d, want 200", target, rec.Code)
		}
	}
}

func TestCatalogWritesAreAdminOnly(t *testing.T) {
	r, st := newTestServer(t)
	item := models.MenuItem{ID: "m2", Name: "Espresso", Price: 2.80, SubCategory: "1", IsAvailable: true}

	rec := request(t, r, http.MethodPost, "/menuItems", "user2", item)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("cashier create: status = %d, want 403", rec.Code)
	}

	// A header naming no stored user passes the auth gate but holds no role.
	rec = request(t, r, http.MethodPost, "/menuItems", "ghost", item)
	if rec.Code != http.StatusForbidden {
		t.Fatalf("unknown user create: status = %d, want 403", rec.Code)
	}

	rec = request(t, r, http.MethodPost, "/menuItems", "user1", item)
	if rec.Code != http.StatusCreated {
		t.Fatalf("admin create: status = %d, body %s", rec.Code, rec.Body.String())
	}

	st.View(func(d *store.Data) {
		if len(d.MenuItems) != 2 {
			t.Fatalf("menu has %d items after create", len(d.MenuItems))
		}
	})
}

func TestCatalogPatchMergesOverStoredRecord(t *testing.T) {
	r, st := newTestServer(t)

	rec := request(t, r, http.MethodPatch, "/menuItems/m1", "user1", map[string]any{"price": 5.00})
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	st.View(func(d *store.Data) {
		item := d.MenuItems[0]
		if item.Price != 5.00 {
			t.Fatalf("price = %v, want 5.00", item.Price)
		}
		if item.Name != "Flat White" || !item.IsAvailable {
			t.Fatalf("absent patch fields overwritten: %+v", item)
		}
	})
}

func TestCatalogDeleteReturnsRemovedRecord(t *testing.T) {
	r, st := newTestServer(t)

	rec := request(t, r, http.MethodDelete, "/menuItems/m1", "user1", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}

	var removed models.MenuItem
	if err := json.Unmarshal(rec.Body.Bytes(), &removed); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if removed.ID != "m1" {
		t.Fatalf("removed = %+v", removed)
	}

	st.View(func(d *store.Data) {
		if len(d.MenuItems) != 0 {
			t.Fatal("record still present after delete")
		}
	})
}

func TestAreasWithTablesJoinsFloorPlan(t *testing.T) {
	r, _ := newTestServer(t)

	rec := request(t, r, http.MethodGet, "/areas-with-tables", "", nil)
	var out []struct {
		ID     string         `json:"id"`
		Name   string         `json:"name"`
		Tables []models.Table `json:"tables"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(out) != 1 || out[0].Name != "Main Room" || len(out[0].Tables) != 1 || out[0].Tables[0].ID != "t1" {
		t.Fatalf("areas = %+v", out)
	}
}

func TestFeedbackIsPublic(t *testing.T) {
	r, st := newTestServer(t)

	rec := request(t, r, http.MethodPost, "/feedback", "", map[string]any{"rating": 5, "comment": "great"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, body %s", rec.Code, rec.Body.String())
	}

	var created models.Feedback
	if err := json.Unmarshal(rec.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" || created.Rating != 5 || created.Timestamp == "" {
		t.Fatalf("feedback = %+v", created)
	}

	st.View(func(d *store.Data) {
		if len(d.Feedback) != 1 {
			t.Fatal("feedback not persisted")
		}
	})

	rec = request(t, r, http.MethodGet, "/feedback", "", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
}
