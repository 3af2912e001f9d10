package applications

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/applications", func(ar chi.Router) {
		ar.Get("/my-applications", myApplicationsHandler(svc))
		ar.Get("/", listApplicationsHandler(svc))
		ar.Post("/", submitApplicationHandler(svc))
		ar.Get("/{appID}", getApplicationHandler(svc))
		ar.Patch("/{appID}/status", updateStatusHandler(svc))
	})
}

type submitRequest struct {
	PetID       string `json:"petId"`
	Email       string `json:"email"`
	DateOfBirth string `json:"dateOfBirth"`
	FullName    string `json:"fullName"`
	Phone       string `json:"phone"`
	Address     string `json:"address"`
	HousingType string `json:"housingType"`
	Experience  string `json:"experience"`
	Reason      string `json:"reason"`
}

type statusRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

func myApplicationsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		items, err := svc.ListByUser(r.Context(), claims.UserID)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func listApplicationsHandler(svc *Service) http.HandlerFunc {
	// Vista admin con filtro opcional por status.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		if !claims.IsAdmin() {
			web.WriteError(w, http.StatusForbidden, "admin access required")
			return
		}

		items, err := svc.ListAll(r.Context(), r.URL.Query().Get("status"))
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.WriteJSON(w, http.StatusOK, items)
	}
}

func getApplicationHandler(svc *Service) http.HandlerFunc {
	// Solo el dueño de la solicitud o un admin.
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		app, err := svc.GetByID(r.Context(), chi.URLParam(r, "appID"))
		if err != nil {
			web.WriteError(w, http.StatusNotFound, "Application not found")
			return
		}

		if app.UserID != claims.UserID && !claims.IsAdmin() {
			web.WriteError(w, http.StatusForbidden, "access denied")
			return
		}

		web.WriteJSON(w, http.StatusOK, app)
	}
}

func submitApplicationHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req submitRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		app, err := svc.Submit(r.Context(), claims.UserID, SubmitInput{
			PetID:       req.PetID,
			Email:       req.Email,
			DateOfBirth: req.DateOfBirth,
			FullName:    req.FullName,
			Phone:       req.Phone,
			Address:     req.Address,
			HousingType: req.HousingType,
			Experience:  req.Experience,
			Reason:      req.Reason,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrDuplicate):
				web.WriteError(w, http.StatusConflict, err.Error())
			case errors.Is(err, ErrInvalidEmail),
				errors.Is(err, ErrInvalidDOB),
				errors.Is(err, ErrUnderage),
				errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, app)
	}
}

func updateStatusHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}
		if !claims.IsAdmin() {
			web.WriteError(w, http.StatusForbidden, "admin access required")
			return
		}

		var req statusRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		app, err := svc.UpdateStatus(r.Context(), chi.URLParam(r, "appID"), req.Status, req.Notes)
		if err != nil {
			switch {
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, err.Error())
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, "Application not found")
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, app)
	}
}
