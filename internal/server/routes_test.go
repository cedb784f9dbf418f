package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/northflank-guides/go-with-postgres/internal/models"
)

func TestSetupRoutes(t *testing.T) {
	t.Run("should dispatch the root path to the full listing", func(t *testing.T) {
		dbManager := new(MockDBManager)
		dbManager.On("GetAllVisitors", mock.Anything).Return([]models.Visitor{}, nil).Once()

		router := SetupRoutes(NewVisitorService(dbManager))

		req := httptest.NewRequest("GET", "/", nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		dbManager.AssertExpectations(t)
	})

	t.Run("should dispatch /read and /add to their handlers", func(t *testing.T) {
		dbManager := new(MockDBManager)
		dbManager.On("GetVisitorsByName", mock.Anything, "bob").Return([]models.Visitor{}, nil).Once()
		dbManager.On("InsertVisitor", mock.Anything, "bob").Return(nil).Once()

		router := SetupRoutes(NewVisitorService(dbManager))

		for _, path := range []string{"/read?name=bob", "/add?name=bob"} {
			req := httptest.NewRequest("GET", path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusOK, rr.Code)
		}

		dbManager.AssertExpectations(t)
	})

	t.Run("should answer any unregistered path with a JSON 404", func(t *testing.T) {
		dbManager := new(MockDBManager)
		router := SetupRoutes(NewVisitorService(dbManager))

		for _, path := range []string{"/delete", "/visitors/1", "/read/extra"} {
			req := httptest.NewRequest("GET", path, nil)
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, req)

			assert.Equal(t, http.StatusNotFound, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

			var message string
			err := json.NewDecoder(rr.Body).Decode(&message)
			assert.NoError(t, err)
			assert.NotEmpty(t, message)
		}
	})
}
