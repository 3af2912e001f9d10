package favorites

import (
	"errors"
	"net/http"

	"pet-adoption-portal/internal/middleware"
	"pet-adoption-portal/internal/platform/web"

	"github.com/go-chi/chi/v5"
)

func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/favorites", func(fr chi.Router) {
		fr.Get("/", listFavoritesHandler(svc))
		fr.Post("/{petID}", addFavoriteHandler(svc))
		fr.Delete("/{petID}", removeFavoriteHandler(svc))
	})
}

func listFavoritesHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		ids, err := svc.ListPetIDs(r.Context(), claims.UserID)
		if err != nil {
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}
		web.WriteJSON(w, http.StatusOK, ids)
	}
}

func addFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		if _, err := svc.Add(r.Context(), claims.UserID, petID); err != nil {
			switch {
			case errors.Is(err, ErrDuplicate):
				web.WriteError(w, http.StatusConflict, err.Error())
			case errors.Is(err, ErrInvalidInput):
				web.WriteError(w, http.StatusBadRequest, err.Error())
			default:
				web.WriteError(w, http.StatusInternalServerError, "internal error")
			}
			return
		}

		web.WriteJSON(w, http.StatusCreated, map[string]string{
			"message": "Added to favorites",
			"petId":   petID,
		})
	}
}

func removeFavoriteHandler(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims, ok := middleware.RequireUser(w, r)
		if !ok {
			return
		}

		petID := chi.URLParam(r, "petID")
		if err := svc.Remove(r.Context(), claims.UserID, petID); err != nil {
			if errors.Is(err, ErrInvalidInput) {
				web.WriteError(w, http.StatusBadRequest, err.Error())
				return
			}
			web.WriteError(w, http.StatusInternalServerError, "internal error")
			return
		}

		web.WriteJSON(w, http.StatusOK, map[string]string{
			"message": "Removed from favorites",
			"petId":   petID,
		})
	}
}
