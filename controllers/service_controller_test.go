package controllers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pitlane-garage/pitlane-api/models"
)

func serviceRoutes() *gin.Engine {
	router := setupTestRouter()
	router.GET("/services", ListServices)
	router.GET("/services/:id", GetService)
	router.POST("/services", CreateService)
	router.PUT("/services/:id", UpdateService)
	router.DELETE("/services/:id", DeleteService)
	return router
}

func TestCreateService(t *testing.T) {
	setupTestDB(t)
	router := serviceRoutes()

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
	}{
		{
			name:       "valid service",
			body:       map[string]interface{}{"name": "Oil change", "description": "Full synthetic", "price": 59.99},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "free service is allowed",
			body:       map[string]interface{}{"name": "Visual inspection", "price": 0},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing price",
			body:       map[string]interface{}{"name": "Brake check"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "negative price",
			body:       map[string]interface{}{"name": "Brake check", "price": -1},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "missing name",
			body:       map[string]interface{}{"price": 10},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/services", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, "body: %s", w.Body.String())
		})
	}
}

func TestUpdateServicePrice(t *testing.T) {
	db := setupTestDB(t)
	router := serviceRoutes()

	service := models.Service{Name: "Wheel alignment", Price: 89.00}
	assert.NoError(t, db.Create(&service).Error)

	w := doJSON(router, "PUT", fmt.Sprintf("/services/%d", service.ID), map[string]interface{}{
		"price": 99.00,
	})
	assert.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())
	body := decodeBody(t, w)
	assert.EqualValues(t, 99.00, body["price"])
	assert.Equal(t, "Wheel alignment", body["name"])
}

func TestDeleteServiceCascadesLineItems(t *testing.T) {
	db := setupTestDB(t)
	router := serviceRoutes()

	customer := createTestCustomer(t, db, "a@x.com")
	vehicle := createTestVehicle(t, db, customer.ID, "1HGCM82633A004352")
	order := createTestOrder(t, db, customer.ID, vehicle.ID)

	service := models.Service{Name: "Wheel alignment", Price: 89.00}
	assert.NoError(t, db.Create(&service).Error)
	assert.NoError(t, db.Create(&models.OrderService{OrderID: order.ID, ServiceID: service.ID, Quantity: 1}).Error)

	w := doJSON(router, "DELETE", fmt.Sprintf("/services/%d", service.ID), nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var lines int64
	db.Model(&models.OrderService{}).Count(&lines)
	assert.EqualValues(t, 0, lines)

	w = doJSON(router, "GET", fmt.Sprintf("/services/%d", service.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, fmt.Sprintf("Service with id %d not found", service.ID), decodeBody(t, w)["detail"])
}
