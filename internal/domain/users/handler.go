package users

import (
	"encoding/json"
	"errors"
	"net/http"

	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes monta /auth. limiter puede ser nil (tests).
func RegisterRoutes(r chi.Router, svc *Service, limiter *middleware.RateLimiter) {
	r.Route("/auth", func(ar chi.Router) {
		if limiter != nil {
			ar.Use(limiter.Middleware)
		}
		ar.Post("/register", registerHandler(svc))
		ar.Post("/login", loginHandler(svc))
		ar.Get("/me", meHandler(svc))
	})
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

func registerHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Register(r.Context(), req.Email, req.Password, req.Name)
		if err != nil {
			switch {
			case errors.Is(err, ErrEmailTaken):
				web.WriteError(w, http.StatusConflict, err.Error())
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, "valid email and password (8+ chars) required")
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, sess)
	}
}

func loginHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req credentialsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			web.WriteError(w, http.StatusBadRequest, "invalid json")
			return
		}

		sess, err := svc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			if errors.Is(err, ErrBadCredentials) {
				web.WriteError(w, http.StatusUnauthorized, err.Error())
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, sess)
	}
}

func meHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		profile, err := svc.GetProfile(r.Context(), claims.UserID)
		if err != nil {
			web.WriteError(w, http.StatusNotFound, "User not found")
			return
		}
		web.WriteJSON(w, http.StatusOK, profile)
	}
}
