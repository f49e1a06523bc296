package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"tiffin-finder/rate-svc/internal/domain"
	"tiffin-finder/rate-svc/internal/service"
	"tiffin-finder/token"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Handler struct {
	Reviews  service.ReviewServiceInterface
	Tokens   *token.Issuer
	Sessions token.Revocations
	Log      logrus.FieldLogger
}

func NewHandler(reviews service.ReviewServiceInterface, tokens *token.Issuer, sessions token.Revocations, log logrus.FieldLogger) *Handler {
	return &Handler{Reviews: reviews, Tokens: tokens, Sessions: sessions, Log: log}
}

func (h *Handler) RegisterRoutes(r *mux.Router) {
	r.HandleFunc("/health", h.healthCheck).Methods("GET")
	r.Handle("/api/kitchens/{kitchenId}/reviews", token.Middleware(h.Tokens, h.Sessions)(http.HandlerFunc(h.createReview))).Methods("POST")
	r.HandleFunc("/api/kitchens/{kitchenId}/reviews", h.getKitchenReviews).Methods("GET")
	r.HandleFunc("/api/kitchens/{kitchenId}/reviews/distribution", h.getRatingDistribution).Methods("GET")
}

func (h *Handler) healthCheck(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy", "service": "rate-svc"})
}

func (h *Handler) createReview(w http.ResponseWriter, r *http.Request) {
	kitchenID, err := uuid.Parse(mux.Vars(r)["kitchenId"])
	if err != nil {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}

	var review domain.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	claims, _ := token.FromContext(r.Context())
	review.UserID = claims.UserID
	review.KitchenID = kitchenID

	if err := h.Reviews.CreateOrUpdate(r.Context(), &review); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidRating), errors.Is(err, domain.ErrOrderNotForKitchen):
			http.Error(w, err.Error(), http.StatusBadRequest)
		case errors.Is(err, domain.ErrDuplicateReview):
			http.Error(w, err.Error(), http.StatusConflict)
		default:
			h.Log.WithError(err).WithField("kitchen_id", kitchenID).Error("failed to save review")
			http.Error(w, "internal server error", http.StatusInternalServerError)
		}
		return
	}

	writeJSON(w, http.StatusCreated, review)
}

func (h *Handler) getKitchenReviews(w http.ResponseWriter, r *http.Request) {
	kitchenID, err := uuid.Parse(mux.Vars(r)["kitchenId"])
	if err != nil {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}

	reviews, err := h.Reviews.ListKitchenReviews(r.Context(), kitchenID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *Handler) getRatingDistribution(w http.ResponseWriter, r *http.Request) {
	kitchenID, err := uuid.Parse(mux.Vars(r)["kitchenId"])
	if err != nil {
		http.Error(w, "invalid kitchen id", http.StatusBadRequest)
		return
	}

	distribution, err := h.Reviews.RatingDistribution(r.Context(), kitchenID)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"kitchen_id":   kitchenID,
		"distribution": distribution,
	})
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
