package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"gotest.tools/assert"
)

func TestExportProducts(t *testing.T) {
	db, dbMock, err := sqlmock.New()
	assert.Equal(t, nil, err)

	api := NewAPI()
	api.Db = db

	var errResp ErrorResponse

	// err select (500)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	dbMock.ExpectQuery("SELECT c.name, b.name.*").WillReturnError(fmt.Errorf("err-select"))

	api.ExportProducts(c)

	err = json.NewDecoder(w.Body).Decode(&errResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", errResp.Error)

	// nothing to export (404)
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)

	dbMock.ExpectQuery("SELECT c.name, b.name.*").WillReturnRows(sqlmock.NewRows(catalogLabel))

	api.ExportProducts(c)

	err = json.NewDecoder(w.Body).Decode(&errResp)
	assert.Equal(t, nil, err)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "No products to export", errResp.Error)

	// 200
	w = httptest.NewRecorder()
	c, _ = gin.CreateTestContext(w)

	dbMock.ExpectQuery("SELECT c.name, b.name.*").
		WillReturnRows(sqlmock.NewRows(catalogLabel).
			AddRow("Skin Care Products", "CeraVe", "Moisturising Cream", 19.5, "https://img.example.com/cream.jpg", "with ceramides").
			AddRow("Hair Products", "Olaplex", "No.3 Hair Perfector", 28.0, "https://img.example.com/no3.jpg", "bond builder"))

	api.ExportProducts(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", w.Header().Get("Content-Type"))
	disposition := w.Header().Get("Content-Disposition")
	assert.Assert(t, strings.HasPrefix(disposition, "attachment;filename=\"products_"))
	assert.Assert(t, strings.HasSuffix(disposition, ".xlsx\""))
	assert.Assert(t, w.Body.Len() > 0)

	assert.Equal(t, nil, dbMock.ExpectationsWereMet())
}
