package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"tiffin-finder/kitchen-svc/internal/domain"
	"tiffin-finder/kitchen-svc/internal/service"
	"tiffin-finder/token"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Auth     service.AuthServiceInterface
	Kitchens service.KitchenServiceInterface
	Menu     service.MenuServiceInterface
	Orders   service.OrderServiceInterface
	Notifier service.Notifier
	Tokens   *token.Issuer
	Sessions token.Revocations
	Log      logrus.FieldLogger

	// UploadDir, when set, is served under /uploads/.
	UploadDir string
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")

	r.HandleFunc("/api/auth/signup", h.signUp).Methods("POST")
	r.HandleFunc("/api/auth/signin", h.signIn).Methods("POST")
	r.HandleFunc("/api/auth/refresh", h.refresh).Methods("POST")
	r.Handle("/api/auth/signout", h.protect(h.signOut)).Methods("POST")
	r.Handle("/api/auth/session", h.protect(h.session)).Methods("GET")
	r.Handle("/api/auth/user", h.protect(h.updateUser)).Methods("PUT")

	r.HandleFunc("/api/kitchens/nearby", h.nearbyKitchens).Methods("GET")
	r.Handle("/api/kitchens", h.protect(h.createKitchen, string(domain.RoleHomeKitchen), string(domain.RoleAdmin))).Methods("POST")
	r.HandleFunc("/api/kitchens/{id}", h.getKitchen).Methods("GET")
	r.Handle("/api/kitchens/{id}/status", h.protect(h.setKitchenStatus, string(domain.RoleAdmin))).Methods("PUT")
	r.Handle("/api/kitchens/{id}/image", h.protect(h.uploadKitchenImage)).Methods("POST")

	r.HandleFunc("/api/kitchens/{id}/menu", h.getMenu).Methods("GET")
	r.Handle("/api/kitchens/{id}/menu", h.protect(h.createMenuItem)).Methods("POST")
	r.Handle("/api/kitchens/{id}/menu/{itemId}", h.protect(h.updateMenuItem)).Methods("PUT")
	r.Handle("/api/kitchens/{id}/menu/{itemId}", h.protect(h.deleteMenuItem)).Methods("DELETE")

	r.Handle("/api/orders", h.protect(h.createOrder)).Methods("POST")
	r.Handle("/api/orders", h.protect(h.getOrders)).Methods("GET")
	r.Handle("/api/orders/{id}", h.protect(h.getOrder)).Methods("GET")
	r.Handle("/api/orders/{id}/status", h.protect(h.updateOrderStatus)).Methods("PUT")
	r.HandleFunc("/api/orders/{id}/qrcode", h.getOrderQRCode).Methods("GET")

	r.Handle("/api/realtime/orders/{id}", h.protect(h.streamOrder)).Methods("GET")
	r.Handle("/api/realtime/kitchens/{id}", h.protect(h.streamKitchen)).Methods("GET")
	r.Handle("/api/realtime/auth", h.protect(h.streamAuth)).Methods("GET")

	if h.UploadDir != "" {
		r.PathPrefix("/uploads/").Handler(http.StripPrefix("/uploads/", http.FileServer(http.Dir(h.UploadDir))))
	}
}

// protect requires a valid access token and, when roles are given, one of them.
func (h *Handler) protect(fn http.HandlerFunc, roles ...string) http.Handler {
	var next http.Handler = fn
	if len(roles) > 0 {
		next = token.RequireRole(roles...)(next)
	}
	return token.Middleware(h.Tokens, h.Sessions)(next)
}

func actorFrom(r *http.Request) domain.Actor {
	claims, _ := token.FromContext(r.Context())
	if claims == nil {
		return domain.Actor{}
	}
	return domain.Actor{UserID: claims.UserID, Role: domain.Role(claims.Role)}
}

func pathID(r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)[name])
	return id, err == nil
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrKitchenNotFound),
		errors.Is(err, domain.ErrMenuItemNotFound),
		errors.Is(err, domain.ErrOrderNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidCredentials):
		http.Error(w, err.Error(), http.StatusUnauthorized)
	case errors.Is(err, domain.ErrForbidden):
		http.Error(w, err.Error(), http.StatusForbidden)
	case errors.Is(err, domain.ErrEmailTaken):
		http.Error(w, err.Error(), http.StatusConflict)
	case errors.Is(err, domain.ErrInvalidSignup),
		errors.Is(err, domain.ErrInvalidRole),
		errors.Is(err, domain.ErrInvalidKitchen),
		errors.Is(err, domain.ErrKitchenUnavailable),
		errors.Is(err, domain.ErrInvalidMenuItem),
		errors.Is(err, domain.ErrInvalidOrder),
		errors.Is(err, domain.ErrInvalidTransition):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		h.Log.WithError(err).WithField("path", r.URL.Path).Error("request failed")
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":    "healthy",
		"service":   "kitchen-svc",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

func (h *Handler) nearbyKitchens(w http.ResponseWriter, r *http.Request) {
	kitchens, err := h.Kitchens.Nearby(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if kitchens == nil {
		kitchens = []domain.Kitchen{}
	}
	writeJSON(w, http.StatusOK, kitchens)
}

func (h *Handler) getKitchen(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}
	kitchen, err := h.Kitchens.Get(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, kitchen)
}

func (h *Handler) createKitchen(w http.ResponseWriter, r *http.Request) {
	var kitchen domain.Kitchen
	if err := json.NewDecoder(r.Body).Decode(&kitchen); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := h.Kitchens.Create(r.Context(), actorFrom(r), &kitchen); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, kitchen)
}

func (h *Handler) setKitchenStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}
	var payload struct {
		Status   domain.KitchenStatus `json:"status"`
		IsActive *bool                `json:"is_active"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	active := payload.Status == domain.KitchenApproved
	if payload.IsActive != nil {
		active = *payload.IsActive
	}
	if err := h.Kitchens.SetStatus(r.Context(), id, payload.Status, active); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) uploadKitchenImage(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		http.Error(w, "File too large", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "Error retrieving the file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	imageURL, err := h.Kitchens.UploadCover(r.Context(), actorFrom(r), id, header.Filename, header.Header.Get("Content-Type"), file)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"message":   "Image uploaded successfully",
		"image_url": imageURL,
	})
}

func (h *Handler) getMenu(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}
	items, err := h.Menu.List(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *Handler) createMenuItem(w http.ResponseWriter, r *http.Request) {
	kitchenID, ok := pathID(r, "id")
	if !ok {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.KitchenID = kitchenID
	if err := h.Menu.Create(r.Context(), actorFrom(r), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, item)
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	kitchenID, ok := pathID(r, "id")
	itemID, itemOK := pathID(r, "itemId")
	if !ok || !itemOK {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	var item domain.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&item); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	item.ID = itemID
	item.KitchenID = kitchenID
	if err := h.Menu.Update(r.Context(), actorFrom(r), &item); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	kitchenID, ok := pathID(r, "id")
	itemID, itemOK := pathID(r, "itemId")
	if !ok || !itemOK {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}
	if err := h.Menu.Delete(r.Context(), actorFrom(r), kitchenID, itemID); err != nil {
		h.writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
