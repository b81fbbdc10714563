package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/service"
)

// AdoptionHandler handles adoption-application submission and listing.
type AdoptionHandler struct {
	adoptionService service.AdoptionService
}

// NewAdoptionHandler creates an AdoptionHandler with the given service.
func NewAdoptionHandler(adoptionService service.AdoptionService) *AdoptionHandler {
	return &AdoptionHandler{adoptionService: adoptionService}
}

// submitAdoptionRequest is the expected JSON body for POST /api/adoptions.
type submitAdoptionRequest struct {
	DogID         string `json:"dogId"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	HomeOwnership string `json:"homeOwnership"`
	FencedYard    string `json:"fencedYard"`
	OtherPets     string `json:"otherPets"`
	Environment   string `json:"environment"`
	Motivation    string `json:"motivation"`
}

// Submit handles POST /api/adoptions. The referenced dog must exist.
func (h *AdoptionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitAdoptionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid request body"})
		return
	}

	app := &model.AdoptionApplication{
		DogID:         req.DogID,
		Name:          req.Name,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
		HomeOwnership: req.HomeOwnership,
		FencedYard:    req.FencedYard,
		OtherPets:     req.OtherPets,
		Environment:   req.Environment,
		Motivation:    req.Motivation,
	}

	if err := h.adoptionService.Submit(r.Context(), app); err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": vErr.Error()})
		case errors.Is(err, service.ErrUnknownDog):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Dog not found"})
		default:
			slog.Error("adoption submit failed", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"message":     "Application submitted successfully",
		"application": app,
	})
}

// List handles GET /api/adoptions for admin review.
func (h *AdoptionHandler) List(w http.ResponseWriter, r *http.Request) {
	apps, err := h.adoptionService.List(r.Context())
	if err != nil {
		slog.Error("list adoptions failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		return
	}
	if apps == nil {
		apps = []*model.AdoptionApplication{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(apps)
}
