package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/gw-user-service/internal/services"
)

func TestDeleteUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oid := bson.NewObjectID()

	tests := []struct {
		name          string
		mockSetup     func(m *MockUserDeleter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "success",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					DeleteByID(gomock.Any(), oid.Hex()).
					Return(nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					DeleteByID(gomock.Any(), oid.Hex()).
					Return(services.ErrUserNotFound)
			},
			expectedCode:  404,
			expectedError: "User not found",
		},
		{
			name: "internal server error",
			mockSetup: func(m *MockUserDeleter) {
				m.EXPECT().
					DeleteByID(gomock.Any(), oid.Hex()).
					Return(errors.New("no reachable servers"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserDeleter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Delete("/api/users/{id}", NewDeleteUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodDelete, "/api/users/"+oid.Hex(), nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp DeleteUserErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var resp DeleteUserResponse
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
			assert.Equal(t, "User deleted successfully", resp.Message)
		})
	}
}
