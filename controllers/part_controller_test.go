package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pitlane-garage/pitlane-api/models"
)

func partRoutes() *gin.Engine {
	router := setupTestRouter()
	router.GET("/parts", ListParts)
	router.GET("/parts/search", SearchParts)
	router.GET("/parts/:id", GetPart)
	router.POST("/parts", CreatePart)
	router.PUT("/parts/:id", UpdatePart)
	router.DELETE("/parts/:id", DeletePart)
	return router
}

func TestCreatePart(t *testing.T) {
	setupTestDB(t)
	router := partRoutes()

	w := doJSON(router, "POST", "/parts", map[string]interface{}{
		"name": "Oil Filter", "part_number": "OF-100", "price": 12.50,
	})
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	assert.EqualValues(t, 0, body["stock_quantity"], "stock defaults to zero")

	// Duplicate part number is rejected
	w = doJSON(router, "POST", "/parts", map[string]interface{}{
		"name": "Another Filter", "part_number": "OF-100", "price": 9.99,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// A free part is allowed, a missing price is not
	w = doJSON(router, "POST", "/parts", map[string]interface{}{
		"name": "Sticker", "part_number": "ST-001", "price": 0,
	})
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = doJSON(router, "POST", "/parts", map[string]interface{}{
		"name": "Mystery", "part_number": "MY-001",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestSearchParts(t *testing.T) {
	db := setupTestDB(t)
	router := partRoutes()

	parts := []models.Part{
		{Name: "Oil Filter", PartNumber: "OF-100", Price: 12},
		{Name: "Air filter", PartNumber: "AF-200", Price: 18},
		{Name: "Spark plug", PartNumber: "SP-300", Price: 6},
	}
	for i := range parts {
		assert.NoError(t, db.Create(&parts[i]).Error)
	}

	tests := []struct {
		name  string
		query string
		want  int
	}{
		{"name substring ignores case", "filter", 2},
		{"part number substring ignores case", "of-1", 1},
		{"no matches", "brake", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "GET", "/parts/search?query="+tt.query, nil)
			assert.Equal(t, http.StatusOK, w.Code)
			assert.Len(t, decodeList(t, w), tt.want)
		})
	}
}

func TestUpdatePartStock(t *testing.T) {
	db := setupTestDB(t)
	router := partRoutes()

	part := models.Part{Name: "Oil Filter", PartNumber: "OF-100", Price: 12, StockQuantity: 4}
	assert.NoError(t, db.Create(&part).Error)

	w := doJSON(router, "PUT", "/parts/1", map[string]interface{}{"stock_quantity": -2})
	assert.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	assert.EqualValues(t, -2, body["stock_quantity"], "no business rule stops negative stock")
	assert.Equal(t, "Oil Filter", body["name"])
}

func TestPartNotFoundDetail(t *testing.T) {
	setupTestDB(t)
	router := partRoutes()

	w := doJSON(router, "GET", "/parts/8", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Part with id 8 not found", decodeBody(t, w)["detail"])
}
