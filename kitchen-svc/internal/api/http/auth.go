package httpapi

import (
	"encoding/json"
	"net/http"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/token"
)

type credentials struct {
	Email    string              `json:"email"`
	Password string              `json:"password"`
	Data     domain.UserMetadata `json:"data"`
}

func (h *Handler) signUp(w http.ResponseWriter, r *http.Request) {
	var payload credentials
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.Auth.SignUp(r.Context(), payload.Email, payload.Password, payload.Data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, result)
}

func (h *Handler) signIn(w http.ResponseWriter, r *http.Request) {
	var payload credentials
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	result, err := h.Auth.SignIn(r.Context(), payload.Email, payload.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) refresh(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		RefreshToken string `json:"refresh_token"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.RefreshToken == "" {
		http.Error(w, "refresh_token is required", http.StatusBadRequest)
		return
	}
	result, err := h.Auth.Refresh(r.Context(), payload.RefreshToken)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) signOut(w http.ResponseWriter, r *http.Request) {
	claims, _ := token.FromContext(r.Context())
	if err := h.Auth.SignOut(r.Context(), claims); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// session echoes the caller's access token alongside the current profile.
func (h *Handler) session(w http.ResponseWriter, r *http.Request) {
	claims, _ := token.FromContext(r.Context())
	user, err := h.Auth.CurrentUser(r.Context(), claims.UserID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	accessToken, _ := token.ExtractBearer(r)
	var expiresAt time.Time
	if claims.ExpiresAt != nil {
		expiresAt = claims.ExpiresAt.Time
	}
	writeJSON(w, http.StatusOK, domain.AuthResult{
		User: user,
		Session: &domain.Session{
			AccessToken: accessToken,
			ExpiresAt:   expiresAt,
		},
	})
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Data domain.UserMetadata `json:"data"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	claims, _ := token.FromContext(r.Context())
	user, err := h.Auth.UpdateProfile(r.Context(), claims.UserID, payload.Data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
