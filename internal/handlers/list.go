package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
)

// UserLister defines the interface that the list service must implement.
type UserLister interface {
	List(ctx context.Context) ([]models.UserDB, error)
}

// ListUsersErrorResponse represents an error response for listing users
// swagger:model ListUsersErrorResponse
type ListUsersErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// NewListUsersHandler returns an HTTP handler that lists all users.
// @Summary List all users
// @Description Returns every stored user in insertion order. Passwords are bcrypt hashes.
// @Tags users
// @Produce json
// @Success 200 {array} models.UserDB "All stored users"
// @Failure 500 {object} handlers.ListUsersErrorResponse "Store unavailable"
// @Router /users [get]
func NewListUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.List(r.Context())
		if err != nil {
			logger.Log.Errorw("internal server error", "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ListUsersErrorResponse{
				Error: "Internal server error",
			})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(users)
	}
}
