package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/fourpaws/backend/internal/model"
	"github.com/fourpaws/backend/internal/repository"
	"github.com/fourpaws/backend/internal/service"
	"github.com/google/uuid"
)

// DogHandler handles dog-listing CRUD.
type DogHandler struct {
	dogService service.DogService
}

// NewDogHandler creates a DogHandler with the given service.
func NewDogHandler(dogService service.DogService) *DogHandler {
	return &DogHandler{dogService: dogService}
}

// createDogRequest is the expected JSON body for POST /api/dogs. Age is a
// pointer so that a zero age can be told apart from an absent one.
type createDogRequest struct {
	Name            string                `json:"name"`
	Subheading      string                `json:"subheading"`
	PhotoURL        string                `json:"photoUrl"`
	Age             *float64              `json:"age"`
	Gender          string                `json:"gender"`
	Breed           string                `json:"breed"`
	Size            string                `json:"size"`
	Story           *model.StorySection   `json:"story"`
	Gallery         *model.GallerySection `json:"gallery"`
	AdoptionProcess *model.ProcessSection `json:"adoptionProcess"`
}

// Create handles POST /api/dogs.
func (h *DogHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid request body"})
		return
	}

	dog, err := h.dogService.Create(r.Context(), service.DogInput{
		Name:            req.Name,
		Subheading:      req.Subheading,
		PhotoURL:        req.PhotoURL,
		Age:             req.Age,
		Gender:          req.Gender,
		Breed:           req.Breed,
		Size:            req.Size,
		Story:           req.Story,
		Gallery:         req.Gallery,
		AdoptionProcess: req.AdoptionProcess,
	})
	if err != nil {
		var vErr *service.ValidationError
		if errors.As(err, &vErr) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": vErr.Error()})
			return
		}
		slog.Error("create dog failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Location", "/api/dogs/"+dog.ID)
	w.WriteHeader(http.StatusCreated)
	_ = json.NewEncoder(w).Encode(dog)
}

// List handles GET /api/dogs.
func (h *DogHandler) List(w http.ResponseWriter, r *http.Request) {
	dogs, err := h.dogService.List(r.Context())
	if err != nil {
		slog.Error("list dogs failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		return
	}
	if dogs == nil {
		dogs = []*model.Dog{}
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dogs)
}

// Get handles GET /api/dogs/{id}. A malformed identity yields 400, distinct
// from 404 for a well-formed identity with no record.
func (h *DogHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid dog ID"})
		return
	}

	dog, err := h.dogService.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Dog not found"})
			return
		}
		slog.Error("get dog failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dog)
}

// updateDogRequest is the expected JSON body for PUT /api/dogs/{id}.
// Nil fields are left untouched.
type updateDogRequest struct {
	Name            *string               `json:"name"`
	Subheading      *string               `json:"subheading"`
	PhotoURL        *string               `json:"photoUrl"`
	Age             *float64              `json:"age"`
	Gender          *string               `json:"gender"`
	Breed           *string               `json:"breed"`
	Size            *string               `json:"size"`
	Story           *model.StorySection   `json:"story"`
	Gallery         *model.GallerySection `json:"gallery"`
	AdoptionProcess *model.ProcessSection `json:"adoptionProcess"`
}

// Update handles PUT /api/dogs/{id}.
func (h *DogHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid dog ID"})
		return
	}

	var req updateDogRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid request body"})
		return
	}

	dog, err := h.dogService.Update(r.Context(), id, model.DogPatch{
		Name:            req.Name,
		Subheading:      req.Subheading,
		PhotoURL:        req.PhotoURL,
		Age:             req.Age,
		Gender:          req.Gender,
		Breed:           req.Breed,
		Size:            req.Size,
		Story:           req.Story,
		Gallery:         req.Gallery,
		AdoptionProcess: req.AdoptionProcess,
	})
	if err != nil {
		var vErr *service.ValidationError
		switch {
		case errors.As(err, &vErr):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": vErr.Error()})
		case errors.Is(err, repository.ErrNotFound):
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Dog not found"})
		default:
			slog.Error("update dog failed", "error", err)
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		}
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(dog)
}

// Delete handles DELETE /api/dogs/{id}.
func (h *DogHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if _, err := uuid.Parse(id); err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Invalid dog ID"})
		return
	}

	if err := h.dogService.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusNotFound)
			_ = json.NewEncoder(w).Encode(map[string]string{"message": "Dog not found"})
			return
		}
		slog.Error("delete dog failed", "error", err)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{"message": "Dog deleted successfully"})
}
