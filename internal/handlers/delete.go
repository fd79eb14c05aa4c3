package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

// UserDeleter defines the interface that the delete service must implement.
type UserDeleter interface {
	DeleteByID(ctx context.Context, id string) error
}

// DeleteUserResponse represents a successful delete response
// swagger:model DeleteUserResponse
type DeleteUserResponse struct {
	// Success message
	// default: User deleted successfully
	Message string `json:"message"`
}

// DeleteUserErrorResponse represents an error response for user deletion
// swagger:model DeleteUserErrorResponse
type DeleteUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user by id.
// @Summary Delete a user by id
// @Description Hard-deletes the user with the given id.
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} handlers.DeleteUserResponse "User successfully deleted"
// @Failure 404 {object} handlers.DeleteUserErrorResponse "User not found"
// @Failure 500 {object} handlers.DeleteUserErrorResponse "Store unavailable"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		if err := svc.DeleteByID(r.Context(), id); err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(DeleteUserErrorResponse{
					Error: "User not found",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(DeleteUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(DeleteUserResponse{
			Message: "User deleted successfully",
		})
	}
}
