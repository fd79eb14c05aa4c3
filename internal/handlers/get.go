package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

// UserGetter defines the interface that the get service must implement.
type UserGetter interface {
	GetByID(ctx context.Context, id string) (*models.UserDB, error)
}

// GetUserErrorResponse represents an error response for fetching a user
// swagger:model GetUserErrorResponse
type GetUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewGetUserHandler returns an HTTP handler that fetches a single user by id.
// @Summary Get a user by id
// @Description Returns the user with the given id.
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} models.UserDB "The requested user"
// @Failure 404 {object} handlers.GetUserErrorResponse "User not found"
// @Failure 500 {object} handlers.GetUserErrorResponse "Store unavailable"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		user, err := svc.GetByID(r.Context(), id)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(GetUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(user)
	}
}
