package appointments

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/appointments", func(ar chi.Router) {
		// El slot picker del front consulta sin login.
		ar.Get("/available-slots", availableSlotsHandler(svc))

		ar.Get("/my-appointments", myAppointmentsHandler(svc))
		ar.Post("/", scheduleHandler(svc))
		ar.Patch("/{appointmentID}/cancel", cancelHandler(svc))
	})
}

type scheduleRequest struct {
	PetID string `json:"petId"`
	Date  string `json:"date"`
	Time  string `json:"time"`
	Notes string `json:"notes"`
}

type slotsResponse struct {
	Date           string   `json:"date"`
	AvailableSlots []string `json:"availableSlots"`
}

func myAppointmentsHandler(svc *Service) http.HandlerFunc {
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

func scheduleHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var req scheduleRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		a, err := svc.Schedule(r.Context(), claims.UserID, ScheduleInput{
			PetID: req.PetID,
			Date:  req.Date,
			Time:  req.Time,
			Notes: req.Notes,
		})
		if err != nil {
			switch {
			case errors.Is(err, ErrSlotTaken):
				web.WriteError(w, http.StatusConflict, err.Error())
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, a)
	}
}

func cancelHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		a, err := svc.Cancel(r.Context(), chi.URLParam(r, "appointmentID"), claims.UserID)
		if err != nil {
			switch {
			case errors.Is(err, ErrForbidden):
				web.WriteError(w, http.StatusForbidden, err.Error())
			case errors.Is(err, ErrNotFound):
				web.WriteError(w, http.StatusNotFound, "Appointment not found")
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusOK, a)
	}
}

func availableSlotsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		date := r.URL.Query().Get("date")

		slots, err := svc.SlotsFor(r.Context(), date)
		if err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.WriteError(w, http.StatusBadRequest, "date required")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, slotsResponse{
			Date:           date,
			AvailableSlots: slots,
		})
	}
}
