package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pitlane-garage/pitlane-api/models"
)

func mechanicRoutes() *gin.Engine {
	router := setupTestRouter()
	router.GET("/mechanics", ListMechanics)
	router.GET("/mechanics/available", ListAvailableMechanics)
	router.GET("/mechanics/:id", GetMechanic)
	router.POST("/mechanics", CreateMechanic)
	router.PUT("/mechanics/:id", UpdateMechanic)
	router.DELETE("/mechanics/:id", DeleteMechanic)
	return router
}

func TestCreateMechanicDefaultsToActive(t *testing.T) {
	setupTestDB(t)
	router := mechanicRoutes()

	w := doJSON(router, "POST", "/mechanics", map[string]interface{}{
		"first_name": "Lena", "last_name": "Vogel",
	})
	assert.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	assert.Equal(t, true, decodeBody(t, w)["is_active"])

	w = doJSON(router, "POST", "/mechanics", map[string]interface{}{
		"first_name": "Rolf", "last_name": "Berg", "is_active": false,
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, false, decodeBody(t, w)["is_active"], "explicit false is honored")
}

func TestAvailableMechanicsTracksOpenOrders(t *testing.T) {
	db := setupTestDB(t)
	router := mechanicRoutes()

	mechanic := models.Mechanic{FirstName: "Lena", LastName: "Vogel", IsActive: true}
	assert.NoError(t, db.Create(&mechanic).Error)

	customer := createTestCustomer(t, db, "a@x.com")
	vehicle := createTestVehicle(t, db, customer.ID, "1HGCM82633A004352")
	order := models.Order{CustomerID: customer.ID, VehicleID: vehicle.ID, MechanicID: &mechanic.ID}
	assert.NoError(t, db.Create(&order).Error)

	// Assigned to an open order: excluded
	w := doJSON(router, "GET", "/mechanics/available", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 0)

	// Order closed: included again
	assert.NoError(t, db.Model(&models.Order{}).Where("id = ?", order.ID).Update("is_closed", true).Error)

	w = doJSON(router, "GET", "/mechanics/available", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	list := decodeList(t, w)
	assert.Len(t, list, 1)
	assert.EqualValues(t, mechanic.ID, list[0]["id"])
}

func TestDeleteMechanicPreservesOrder(t *testing.T) {
	db := setupTestDB(t)
	router := mechanicRoutes()

	mechanic := models.Mechanic{FirstName: "Lena", LastName: "Vogel", IsActive: true}
	assert.NoError(t, db.Create(&mechanic).Error)

	customer := createTestCustomer(t, db, "a@x.com")
	vehicle := createTestVehicle(t, db, customer.ID, "1HGCM82633A004352")
	order := models.Order{CustomerID: customer.ID, VehicleID: vehicle.ID, MechanicID: &mechanic.ID}
	assert.NoError(t, db.Create(&order).Error)

	w := doJSON(router, "DELETE", "/mechanics/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	var got models.Order
	assert.NoError(t, db.First(&got, order.ID).Error, "order survives mechanic deletion")
	assert.Nil(t, got.MechanicID, "mechanic reference is cleared")
}

func TestUpdateMechanicPartial(t *testing.T) {
	db := setupTestDB(t)
	router := mechanicRoutes()

	mechanic := models.Mechanic{FirstName: "Lena", LastName: "Vogel", Phone: "555-2222", IsActive: true}
	assert.NoError(t, db.Create(&mechanic).Error)

	w := doJSON(router, "PUT", "/mechanics/1", map[string]interface{}{"is_active": false})
	assert.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	body := decodeBody(t, w)
	assert.Equal(t, false, body["is_active"])
	assert.Equal(t, "Lena", body["first_name"])
	assert.Equal(t, "555-2222", body["phone"])
}

func TestGetMechanicNotFound(t *testing.T) {
	setupTestDB(t)
	router := mechanicRoutes()

	w := doJSON(router, "GET", "/mechanics/3", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Mechanic with id 3 not found", decodeBody(t, w)["detail"])
}
