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

	"github.com/sbilibin2017/gw-user-service/internal/models"
	"github.com/sbilibin2017/gw-user-service/internal/services"
)

func TestGetUserHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	oid := bson.NewObjectID()

	tests := []struct {
		name          string
		id            string
		mockSetup     func(m *MockUserGetter)
		expectedCode  int
		expectedError string
	}{
		{
			name: "found",
			id:   oid.Hex(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), oid.Hex()).
					Return(&models.UserDB{ID: oid, FirstName: "Ana", Email: "ana@x.com"}, nil)
			},
			expectedCode: 200,
		},
		{
			name: "not found",
			id:   oid.Hex(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), oid.Hex()).
					Return(nil, services.ErrUserNotFound)
			},
			expectedCode:  404,
			expectedError: "User not found",
		},
		{
			name: "internal server error",
			id:   oid.Hex(),
			mockSetup: func(m *MockUserGetter) {
				m.EXPECT().
					GetByID(gomock.Any(), oid.Hex()).
					Return(nil, errors.New("no reachable servers"))
			},
			expectedCode:  500,
			expectedError: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockUserGetter(ctrl)
			tt.mockSetup(mockSvc)

			r := chi.NewRouter()
			r.Get("/api/users/{id}", NewGetUserHandler(mockSvc))

			req := httptest.NewRequest(http.MethodGet, "/api/users/"+tt.id, nil)
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)

			assert.Equal(t, tt.expectedCode, rec.Code)

			if tt.expectedError != "" {
				var resp GetUserErrorResponse
				assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
				assert.Equal(t, tt.expectedError, resp.Error)
				return
			}

			var user models.UserDB
			assert.NoError(t, json.NewDecoder(rec.Body).Decode(&user))
			assert.Equal(t, oid, user.ID)
		})
	}
}
