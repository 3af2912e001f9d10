package pets

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/pets", func(pr chi.Router) {
		// Listado y detalle son públicos (el catálogo se ve sin login).
		pr.Get("/", listPetsHandler(svc))
		pr.Get("/{petID}", getPetHandler(svc))

		// Mutaciones: solo admin.
		pr.Post("/", createPetHandler(svc))
		pr.Put("/{petID}", updatePetHandler(svc))
		pr.Delete("/{petID}", deletePetHandler(svc))
	})
}

type petPayload struct {
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Size        string `json:"size"`
	Gender      string `json:"gender"`
	AgeCategory string `json:"ageCategory"`
	Description string `json:"description"`
	ImageURL    string `json:"imageUrl"`

	ActivityLevel    string   `json:"activityLevel"`
	NeedsYard        bool     `json:"needsYard"`
	GoodForFirstTime bool     `json:"goodForFirstTime"`
	NeedsExperienced bool     `json:"needsExperienced"`
	TimeRequirement  string   `json:"timeRequirement"`
	GoodWith         []string `json:"goodWith"`
	SpecialNeeds     bool     `json:"specialNeeds"`
}

// updatePetRequest usa punteros para merge parcial: nil = no tocar.
type updatePetRequest struct {
	Name        *string `json:"name"`
	Species     *string `json:"species"`
	Breed       *string `json:"breed"`
	Size        *string `json:"size"`
	Gender      *string `json:"gender"`
	AgeCategory *string `json:"ageCategory"`
	Description *string `json:"description"`
	ImageURL    *string `json:"imageUrl"`

	ActivityLevel    *string   `json:"activityLevel"`
	NeedsYard        *bool     `json:"needsYard"`
	GoodForFirstTime *bool     `json:"goodForFirstTime"`
	NeedsExperienced *bool     `json:"needsExperienced"`
	TimeRequirement  *string   `json:"timeRequirement"`
	GoodWith         *[]string `json:"goodWith"`
	SpecialNeeds     *bool     `json:"specialNeeds"`
	Status           *string   `json:"status"`
}

type listPetsResponse struct {
	Pets        []Pet `json:"pets"`
	TotalCount  int   `json:"totalCount"`
	CurrentPage int   `json:"currentPage"`
	TotalPages  int   `json:"totalPages"`
}

func listPetsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		params := ListParams{
			Species:      q.Get("species"),
			Age:          q.Get("age"),
			Size:         q.Get("size"),
			Gender:       q.Get("gender"),
			SpecialNeeds: q.Get("specialNeeds"),
			GoodWith:     q.Get("goodWith"),
			Search:       q.Get("search"),
			Status:       q.Get("status"),
			Page:         intParam(q.Get("page"), 1),
			Limit:        intParam(q.Get("limit"), DefaultLimit),
			SortBy:       q.Get("sortBy"),
			SortOrder:    q.Get("sortOrder"),
		}

		res, err := svc.List(r.Context(), params)
		if err != nil {
			if errors.Is(err, ErrSearchTooLong) {
				web.WriteError(w, http.StatusBadRequest, "Search query too long")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, listPetsResponse{
			Pets:        res.Pets,
			TotalCount:  res.TotalCount,
			CurrentPage: res.CurrentPage,
			TotalPages:  res.TotalPages,
		})
	}
}

func getPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		p, err := svc.GetByID(r.Context(), chi.URLParam(r, "petID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, "Pet not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, p)
	}
}

func createPetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req petPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Create(r.Context(), CreateInput{
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			Size:        req.Size,
			Gender:      req.Gender,
			AgeCategory: req.AgeCategory,
			Description: req.Description,
			ImageURL:    req.ImageURL,

			ActivityLevel:    req.ActivityLevel,
			NeedsYard:        req.NeedsYard,
			GoodForFirstTime: req.GoodForFirstTime,
			NeedsExperienced: req.NeedsExperienced,
			TimeRequirement:  req.TimeRequirement,
			GoodWith:         req.GoodWith,
			SpecialNeeds:     req.SpecialNeeds,
		})
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusCreated, p)
	}
}

func updatePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		var req updatePetRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		p, err := svc.Update(r.Context(), chi.URLParam(r, "petID"), UpdateInput{
			Name:        req.Name,
			Species:     req.Species,
			Breed:       req.Breed,
			Size:        req.Size,
			Gender:      req.Gender,
			AgeCategory: req.AgeCategory,
			Description: req.Description,
			ImageURL:    req.ImageURL,

			ActivityLevel:    req.ActivityLevel,
			NeedsYard:        req.NeedsYard,
			GoodForFirstTime: req.GoodForFirstTime,
			NeedsExperienced: req.NeedsExperienced,
			TimeRequirement:  req.TimeRequirement,
			GoodWith:         req.GoodWith,
			SpecialNeeds:     req.SpecialNeeds,
			Status:           req.Status,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, "Pet not found")
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, p)
	}
}

func deletePetHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !requireAdmin(w, r) {
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "petID")); err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteError(w, http.StatusNotFound, "Pet not found")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]string{"message": "Pet deleted successfully"})
	}
}

// requireAdmin corta con 401/403; devuelve true si puede seguir.
func requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	claims, ok := middleware.GetClaims(r.Context())
	if !ok || strings.TrimSpace(claims.UserID) == "" {
		web.WriteError(w, http.StatusUnauthorized, "unauthorized")
		return false
	}
	if !claims.IsAdmin() {
		web.WriteError(w, http.StatusForbidden, "admin access required")
		return false
	}
	return true
}

func intParam(raw string, def int) int {
	if strings.TrimSpace(raw) == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return def
	}
	return n
}
