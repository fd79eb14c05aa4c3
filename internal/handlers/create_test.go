package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

func TestCreateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reqBody := CreateUserRequest{
		FirstName: "Ana",
		LastName:  "Lee",
		Email:     "ana@x.com",
		JobTitle:  "Eng",
		Gender:    "female",
		Password:  "secret123",
	}
	asNewUser := models.NewUser{
		FirstName: "Ana",
		LastName:  "Lee",
		Email:     "ana@x.com",
		JobTitle:  "Eng",
		Gender:    "female",
		Password:  "secret123",
	}

	tests := []struct {
		name          string
		mockSetup     func(m *MockUserCreator)
		expectedCode  int
		expectedError string
		rawBody       bool // if true, pass raw body (to simulate invalid JSON)
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), asNewUser).
					Return(&models.UserDB{
						ID:        bson.NewObjectID(),
						FirstName: "Ana",
						LastName:  "Lee",
						Email:     "ana@x.com",
						JobTitle:  "Eng",
						Gender:    "female",
						Password:  "$2a$10$hashed",
					}, nil)
			},
			expectedCode: 201,
		},
		{
			name: "missing fields",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), asNewUser).
					Return(nil, services.ErrFieldsRequired)
			},
			expectedCode:  400,
			expectedError: "All fields are required",
		},
		{
			name: "invalid gender",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), asNewUser).
					Return(nil, services.ErrInvalidGender)
			},
			expectedCode:  400,
			expectedError: "Gender must be one of: male, female, others",
		},
		{
			name: "duplicate email",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), asNewUser).
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode:  409,
			expectedError: "Email already exists",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockUserCreator) {
				m.EXPECT().
					Create(gomock.Any(), asNewUser).
					Return(nil, errors.New("store failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			rawBody:       true,
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserCreator(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewCreateUserHandler(mockSvc)

			var req *http.Request
			if tt.rawBody {
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBufferString("{invalid json}"))
			} else {
				bodyBytes, _ := json.Marshal(reqBody)
				req = httptest.NewRequest(http.MethodPost, "/api/users", bytes.NewBuffer(bodyBytes))
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp CreateUserErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp CreateUserResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "User created successfully", resp.Message)
			assert.Equal(t, "ana@x.com", resp.User.Email)
			assert.NotEqual(t, "secret123", resp.User.Password)
		})
	}
}
