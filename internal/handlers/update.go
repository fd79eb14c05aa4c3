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

// UserUpdater defines the interface that the update service must implement.
type UserUpdater interface {
	UpdateByID(ctx context.Context, id string, update models.UserUpdate) (*models.UserDB, error)
}

// UpdateUserRequest represents the JSON body for a partial user update.
// Absent fields stay untouched; a present password is re-hashed.
// swagger:model UpdateUserRequest
type UpdateUserRequest struct {
	// First name
	FirstName *string `json:"firstName,omitempty"`

	// Last name
	LastName *string `json:"lastName,omitempty"`

	// Email, unique across all users
	Email *string `json:"email,omitempty"`

	// Job title
	JobTitle *string `json:"jobTitle,omitempty"`

	// Gender: male, female or others
	Gender *string `json:"gender,omitempty"`

	// Password, re-hashed when present
	Password *string `json:"password,omitempty"`
}

// UpdateUserResponse represents a successful update response
// swagger:model UpdateUserResponse
type UpdateUserResponse struct {
	// Success message
	// default: User updated successfully
	Message string `json:"message"`

	// The user after the update
	User models.UserDB `json:"user"`
}

// UpdateUserErrorResponse represents an error response for user updates
// swagger:model UpdateUserErrorResponse
type UpdateUserErrorResponse struct {
	// Error message
	// default: User not found
	Error string `json:"error"`
}

// NewUpdateUserHandler returns an HTTP handler for partially updating a user.
// @Summary Update a user by id
// @Description Applies only the fields present in the body. A present password is re-hashed before storage; updatedAt is refreshed.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Param updateUserRequest body handlers.UpdateUserRequest true "Partial user update"
// @Success 200 {object} handlers.UpdateUserResponse "User successfully updated"
// @Failure 400 {object} handlers.UpdateUserErrorResponse "Invalid body or gender"
// @Failure 404 {object} handlers.UpdateUserErrorResponse "User not found"
// @Failure 409 {object} handlers.UpdateUserErrorResponse "Email already exists"
// @Failure 500 {object} handlers.UpdateUserErrorResponse "Hashing or store failure"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")

		var req UpdateUserRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(UpdateUserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.UpdateByID(r.Context(), id, models.UserUpdate{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			JobTitle:  req.JobTitle,
			Gender:    req.Gender,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrUserNotFound):
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "User not found",
				})
			case errors.Is(err, services.ErrInvalidGender):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Gender must be one of: male, female, others",
				})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Email already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(UpdateUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UpdateUserResponse{
			Message: "User updated successfully",
			User:    *user,
		})
	}
}
