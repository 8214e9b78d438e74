package handlers

import (
	"encoding/json"
	"net/http"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/pkg/response"

	"github.com/go-chi/chi/v5"
	"github.com/lucsky/cuid"
)

// Collection adapts one store slice to the generic CRUD routes. The REST
// layer is a thin document router; anything with lifecycle rules (orders,
// statistics) has dedicated handlers instead.
type Collection[T any] struct {
	Name  string
	Get   func(d *store.Data) []T
	Set   func(d *store.Data, records []T)
	ID    func(record T) string
	SetID func(record *T, id string)
}

// RegisterRead mounts list and point-lookup routes for the collection.
func RegisterRead[T any](r chi.Router, h *Handler, col Collection[T]) {
	r.Get("/"+col.Name, func(w http.ResponseWriter, req *http.Request) {
		out := []T{}
		h.Store.View(func(d *store.Data) {
			out = append(out, col.Get(d)...)
		})
		response.JSON(w, http.StatusOK, out)
	})

	r.Get("/"+col.Name+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := readPathString(req, "id")
		var record T
		var found bool
		h.Store.View(func(d *store.Data) {
			record, found = store.Find(col.Get(d), func(r T) bool { return col.ID(r) == id })
		})
		if !found {
			response.Message(w, http.StatusNotFound, "Not found")
			return
		}
		response.JSON(w, http.StatusOK, record)
	})
}

// RegisterWrite mounts create, replace, partial-update and delete routes.
func RegisterWrite[T any](r chi.Router, h *Handler, col Collection[T]) {
	r.Post("/"+col.Name, func(w http.ResponseWriter, req *http.Request) {
		var record T
		if err := decodeJSON(req, &record); err != nil {
			response.Message(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		if col.ID(record) == "" {
			col.SetID(&record, cuid.New())
		}

		err := h.Store.Update(func(d *store.Data) error {
			records := col.Get(d)
			if _, ok := store.Find(records, func(r T) bool { return col.ID(r) == col.ID(record) }); ok {
				return &apiError{status: http.StatusBadRequest, message: "Duplicate id"}
			}
			col.Set(d, append(records, record))
			return nil
		})
		if err != nil {
			h.respondStoreError(w, err)
			return
		}
		response.JSON(w, http.StatusCreated, record)
	})

	r.Put("/"+col.Name+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := readPathString(req, "id")
		var record T
		if err := decodeJSON(req, &record); err != nil {
			response.Message(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		col.SetID(&record, id)

		err := h.Store.Update(func(d *store.Data) error {
			records := col.Get(d)
			idx := store.FindIndex(records, func(r T) bool { return col.ID(r) == id })
			if idx < 0 {
				return models.ErrNotFound
			}
			records[idx] = record
			col.Set(d, records)
			return nil
		})
		if err != nil {
			h.respondStoreError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, record)
	})

	r.Patch("/"+col.Name+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := readPathString(req, "id")
		var patch json.RawMessage
		if err := decodeJSON(req, &patch); err != nil {
			response.Message(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		var updated T
		err := h.Store.Update(func(d *store.Data) error {
			records := col.Get(d)
			idx := store.FindIndex(records, func(r T) bool { return col.ID(r) == id })
			if idx < 0 {
				return models.ErrNotFound
			}
			// Merge the patch over the stored record; absent fields keep
			// their current values.
			merged := records[idx]
			if err := json.Unmarshal(patch, &merged); err != nil {
				return &apiError{status: http.StatusBadRequest, message: "Invalid request body"}
			}
			col.SetID(&merged, id)
			records[idx] = merged
			col.Set(d, records)
			updated = merged
			return nil
		})
		if err != nil {
			h.respondStoreError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, updated)
	})

	r.Delete("/"+col.Name+"/{id}", func(w http.ResponseWriter, req *http.Request) {
		id := readPathString(req, "id")
		var removed T
		err := h.Store.Update(func(d *store.Data) error {
			records := col.Get(d)
			idx := store.FindIndex(records, func(r T) bool { return col.ID(r) == id })
			if idx < 0 {
				return models.ErrNotFound
			}
			removed = records[idx]
			col.Set(d, append(records[:idx], records[idx+1:]...))
			return nil
		})
		if err != nil {
			h.respondStoreError(w, err)
			return
		}
		response.JSON(w, http.StatusOK, removed)
	})
}

// The collection adapters used by the router.

func UsersCollection() Collection[models.User] {
	return Collection[models.User]{
		Name:  "users",
		Get:   func(d *store.Data) []models.User { return d.Users },
		Set:   func(d *store.Data, records []models.User) { d.Users = records },
		ID:    func(r models.User) string { return r.ID },
		SetID: func(r *models.User, id string) { r.ID = id },
	}
}

func CategoriesCollection() Collection[models.Category] {
	return Collection[models.Category]{
		Name:  "categories",
		Get:   func(d *store.Data) []models.Category { return d.Categories },
		Set:   func(d *store.Data, records []models.Category) { d.Categories = records },
		ID:    func(r models.Category) string { return r.ID },
		SetID: func(r *models.Category, id string) { r.ID = id },
	}
}

func SubCategoriesCollection() Collection[models.SubCategory] {
	return Collection[models.SubCategory]{
		Name:  "subCategories",
		Get:   func(d *store.Data) []models.SubCategory { return d.SubCategories },
		Set:   func(d *store.Data, records []models.SubCategory) { d.SubCategories = records },
		ID:    func(r models.SubCategory) string { return r.ID },
		SetID: func(r *models.SubCategory, id string) { r.ID = id },
	}
}

func MenuItemsCollection() Collection[models.MenuItem] {
	return Collection[models.MenuItem]{
		Name:  "menuItems",
		Get:   func(d *store.Data) []models.MenuItem { return d.MenuItems },
		Set:   func(d *store.Data, records []models.MenuItem) { d.MenuItems = records },
		ID:    func(r models.MenuItem) string { return r.ID },
		SetID: func(r *models.MenuItem, id string) { r.ID = id },
	}
}

func AreaTablesCollection() Collection[models.AreaTable] {
	return Collection[models.AreaTable]{
		Name:  "areaTables",
		Get:   func(d *store.Data) []models.AreaTable { return d.AreaTables },
		Set:   func(d *store.Data, records []models.AreaTable) { d.AreaTables = records },
		ID:    func(r models.AreaTable) string { return r.ID },
		SetID: func(r *models.AreaTable, id string) { r.ID = id },
	}
}

func TablesCollection() Collection[models.Table] {
	return Collection[models.Table]{
		Name:  "tables",
		Get:   func(d *store.Data) []models.Table { return d.Tables },
		Set:   func(d *store.Data, records []models.Table) { d.Tables = records },
		ID:    func(r models.Table) string { return r.ID },
		SetID: func(r *models.Table, id string) { r.ID = id },
	}
}

func OrderHistoryCollection() Collection[models.OrderHistoryEntry] {
	return Collection[models.OrderHistoryEntry]{
		Name:  "orderHistory",
		Get:   func(d *store.Data) []models.OrderHistoryEntry { return d.OrderHistory },
		Set:   func(d *store.Data, records []models.OrderHistoryEntry) { d.OrderHistory = records },
		ID:    func(r models.OrderHistoryEntry) string { return r.Order.ID },
		SetID: func(r *models.OrderHistoryEntry, id string) { r.Order.ID = id },
	}
}
