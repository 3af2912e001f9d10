package quiz

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/quiz", func(qr chi.Router) {
		qr.Post("/submit", submitQuizHandler(svc))
		qr.Get("/results", getResultsHandler(svc))
	})
}

type submitResponse struct {
	Matches []Match `json:"matches"`
}

func submitQuizHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		var answers Answers
		if err := json.NewDecoder(r.Body).Decode(&answers); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		res, err := svc.Submit(r.Context(), claims.UserID, answers)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, submitResponse{Matches: res.Matches})
	}
}

func getResultsHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		res, err := svc.ResultsFor(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, ErrNotFound) {
				web.WriteError(w, http.StatusNotFound, "No quiz results found")
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, res)
	}
}
