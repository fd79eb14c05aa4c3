package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sbilibin2017/gw-user-service/internal/logger"
	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

// UserCreator defines the interface that the create service must implement.
type UserCreator interface {
	Create(ctx context.Context, user models.NewUser) (*models.UserDB, error)
}

// CreateUserRequest represents the JSON body for creating a user
// swagger:model CreateUserRequest
type CreateUserRequest struct {
	// First name
	// required: true
	// default: Ana
	FirstName string `json:"firstName"`

	// Last name
	// default: Lee
	LastName string `json:"lastName"`

	// Email, unique across all users
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// Job title
	// required: true
	// default: Engineer
	JobTitle string `json:"jobTitle"`

	// Gender: male, female or others
	// required: true
	// default: female
	Gender string `json:"gender"`

	// Password, stored as a bcrypt hash
	// required: true
	// default: secret123
	Password string `json:"password"`
}

// CreateUserResponse represents a successful create response
// swagger:model CreateUserResponse
type CreateUserResponse struct {
	// Success message
	// default: User created successfully
	Message string `json:"message"`

	// The created user, including assigned id and timestamps
	User models.UserDB `json:"user"`
}

// CreateUserErrorResponse represents an error response for user creation
// swagger:model CreateUserErrorResponse
type CreateUserErrorResponse struct {
	// Error message
	// default: All fields are required
	Error string `json:"error"`
}

// NewCreateUserHandler returns an HTTP handler for creating a user.
// @Summary Create a new user
// @Description Validates the payload, hashes the password, and stores a new user. Email must be unique.
// @Tags users
// @Accept json
// @Produce json
// @Param createUserRequest body handlers.CreateUserRequest true "User creation request"
// @Success 201 {object} handlers.CreateUserResponse "User successfully created"
// @Failure 400 {object} handlers.CreateUserErrorResponse "Missing or invalid fields"
// @Failure 409 {object} handlers.CreateUserErrorResponse "Email already exists"
// @Failure 500 {object} handlers.CreateUserErrorResponse "Hashing or store failure"
// @Router /users [post]
func NewCreateUserHandler(svc UserCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req CreateUserRequest

		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(CreateUserErrorResponse{
				Error: "Invalid request body",
			})
			return
		}

		user, err := svc.Create(r.Context(), models.NewUser{
			FirstName: req.FirstName,
			LastName:  req.LastName,
			Email:     req.Email,
			JobTitle:  req.JobTitle,
			Gender:    req.Gender,
			Password:  req.Password,
		})
		if err != nil {
			switch {
			case errors.Is(err, services.ErrFieldsRequired):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "All fields are required",
				})
			case errors.Is(err, services.ErrInvalidGender):
				w.WriteHeader(http.StatusBadRequest)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Gender must be one of: male, female, others",
				})
			case errors.Is(err, services.ErrEmailAlreadyExists):
				w.WriteHeader(http.StatusConflict)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Email already exists",
				})
			default:
				logger.Log.Errorw("internal server error", "err", err)
				w.WriteHeader(http.StatusInternalServerError)
				json.NewEncoder(w).Encode(CreateUserErrorResponse{
					Error: "Internal server error",
				})
			}
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(CreateUserResponse{
			Message: "User created successfully",
			User:    *user,
		})
	}
}
