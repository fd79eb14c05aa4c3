package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

func TestUpdateUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oid := bson.NewObjectID()
	jobTitle := "Staff Eng"

	tests := []struct {
		name          string
		body          string
		mockSetup     func(m *MockUserUpdater)
		expectedCode  int
		expectedError string
	}{
		{
			name: "partial update",
			body: `{"jobTitle":"Staff Eng"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateByID(gomock.Any(), oid.Hex(), models.UserUpdate{JobTitle: &jobTitle}).
					Return(&models.UserDB{ID: oid, JobTitle: "Staff Eng"}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			body: `{"jobTitle":"Staff Eng"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateByID(gomock.Any(), oid.Hex(), gomock.Any()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  404,
			expectedError: "User not found",
		},
		{
			name: "invalid gender",
			body: `{"gender":"robot"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateByID(gomock.Any(), oid.Hex(), gomock.Any()).
					Return(nil, services.ErrInvalidGender)
			},
			expectedCode:  400,
			expectedError: "Gender must be one of: male, female, others",
		},
		{
			name: "email conflict",
			body: `{"email":"taken@x.com"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateByID(gomock.Any(), oid.Hex(), gomock.Any()).
					Return(nil, services.ErrEmailAlreadyExists)
			},
			expectedCode:  409,
			expectedError: "Email already exists",
		},
		{
			name: "internal server error",
			body: `{"jobTitle":"Staff Eng"}`,
			mockSetup: func(m *MockUserUpdater) {
				m.EXPECT().
					UpdateByID(gomock.Any(), oid.Hex(), gomock.Any()).
					Return(nil, errors.New("store failure"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
		{
			name:          "invalid json",
			body:          "{invalid json}",
			expectedCode:  400,
			expectedError: "Invalid request body",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserUpdater(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			r := chi.NewRouter()
			r.Patch("/api/users/{id}", NewUpdateUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodPatch, "/api/users/"+oid.Hex(), bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp UpdateUserErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp UpdateUserResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "User updated successfully", resp.Message)
			assert.Equal(t, "Staff Eng", resp.User.JobTitle)
		})
	}
}
