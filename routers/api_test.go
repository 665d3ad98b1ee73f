package routers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"beautystoreapi/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gotest.tools/assert"
)

func TestRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)

	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	router, outdb := Route(&config.Config{Port: "3000"}, logrus.New(), db)
	assert.Equal(t, db, outdb)

	// preflight short-circuits with 204 and open CORS headers
	w := httptest.NewRecorder()
	req, _ := http.NewRequest("OPTIONS", "/products", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	// a registered route reaches its handler through the full chain
	w = httptest.NewRecorder()
	dbMock.ExpectQuery("SELECT id, name FROM categories.*").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Skin Care Products"))

	req, _ = http.NewRequest("GET", "/categories", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Assert(t, w.Header().Get("X-Request-Id") != "")
	assert.Equal(t, nil, dbMock.ExpectationsWereMet())
}
