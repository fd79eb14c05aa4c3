package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/sbilibin2017/gw-user-service/internal/models"
)

func TestListUsersHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns users", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.UserDB{
				{ID: bson.NewObjectID(), FirstName: "Ana", Email: "ana@x.com"},
				{ID: bson.NewObjectID(), FirstName: "Bob", Email: "bob@x.com"},
			}, nil)

		handler := NewListUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)

		var users []models.UserDB
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&users))
		assert.Len(t, users, 2)
		assert.Equal(t, "ana@x.com", users[0].Email)
	})

	t.Run("empty store yields empty array", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return([]models.UserDB{}, nil)

		handler := NewListUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("store unavailable", func(t *testing.T) {
		mockSvc := NewMockUserLister(ctrl)
		mockSvc.EXPECT().
			List(gomock.Any()).
			Return(nil, errors.New("no reachable servers"))

		handler := NewListUsersHandler(mockSvc)
		req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
		rec := httptest.NewRecorder()

		handler(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var resp ListUsersErrorResponse
		assert.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
		assert.Equal(t, "Internal server error", resp.Error)
	})
}
