package handlers

import (
	"net/http"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/pkg/response"

	"golang.org/x/crypto/bcrypt"
)

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginUser struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// Login resolves a username/password pair against the users collection.
// Passwords are stored as bcrypt hashes by the seeder.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Message(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	var user models.User
	var found bool
	h.Store.View(func(d *store.Data) {
		user, found = store.Find(d.Users, func(u models.User) bool {
			return u.Username == req.Username
		})
	})

	if !found || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		response.Message(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	response.JSON(w, http.StatusOK, map[string]any{
		"user": loginUser{ID: user.ID, Username: user.Username, Role: user.Role},
	})
}
