package handlers

import (
	"net/http"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/pkg/response"
)

type areaWithTables struct {
	ID     string         `json:"id"`
	Name   string         `json:"name"`
	Tables []models.Table `json:"tables"`
}

// AreasWithTables joins each area with its table records, for the floor
// overview screen.
func (h *Handler) AreasWithTables(w http.ResponseWriter, r *http.Request) {
	out := []areaWithTables{}
	h.Store.View(func(d *store.Data) {
		for _, area := range d.AreaTables {
			areaID := area.ID
			tables := store.Filter(d.Tables, func(t models.Table) bool {
				return t.AreaID == areaID
			})
			out = append(out, areaWithTables{ID: area.ID, Name: area.Name, Tables: tables})
		}
	})
	response.JSON(w, http.StatusOK, out)
}
