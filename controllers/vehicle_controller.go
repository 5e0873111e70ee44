package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateVehicleRequest represents the request body for creating a vehicle
type CreateVehicleRequest struct {
	Brand      string `json:"brand" binding:"required"`
	Model      string `json:"model" binding:"required"`
	Year       int    `json:"year" binding:"required"`
	VIN        string `json:"vin" binding:"required,max=17"`
	CustomerID uint   `json:"customer_id" binding:"required"`
}

// UpdateVehicleRequest represents the request body for updating a vehicle
type UpdateVehicleRequest struct {
	Brand      *string `json:"brand"`
	Model      *string `json:"model"`
	Year       *int    `json:"year"`
	VIN        *string `json:"vin" binding:"omitempty,max=17"`
	CustomerID *uint   `json:"customer_id"`
}

// ListVehicles handles GET /vehicles
func ListVehicles(c *gin.Context) {
	repo := repositories.NewVehicleRepository(config.GetDB())
	vehicles, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// GetVehicle handles GET /vehicles/:id
func GetVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewVehicleRepository(config.GetDB())
	vehicle, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Vehicle", id)
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// ListVehiclesByCustomer handles GET /vehicles/customer/:id
func ListVehiclesByCustomer(c *gin.Context) {
	customerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewCustomerRepository(db).Get(customerID); err != nil {
		respondGetError(c, err, "Customer", customerID)
		return
	}

	vehicles, err := repositories.NewVehicleRepository(db).ByCustomer(customerID)
	if err != nil {
		serverError(c, "Failed to list vehicles")
		return
	}
	c.JSON(http.StatusOK, vehicles)
}

// CreateVehicle handles POST /vehicles; the owning customer must exist
func CreateVehicle(c *gin.Context) {
	var req CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	if _, err := repositories.NewCustomerRepository(db).Get(req.CustomerID); err != nil {
		respondGetError(c, err, "Customer", req.CustomerID)
		return
	}

	vehicle := models.Vehicle{
		Brand:      req.Brand,
		Model:      req.Model,
		Year:       req.Year,
		VIN:        req.VIN,
		CustomerID: req.CustomerID,
	}

	if err := repositories.NewVehicleRepository(db).Create(&vehicle); err != nil {
		respondWriteError(c, err, "A vehicle with this VIN already exists")
		return
	}
	c.JSON(http.StatusCreated, vehicle)
}

// UpdateVehicle handles PUT /vehicles/:id with partial-update semantics
func UpdateVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	db := config.GetDB()
	updates := make(map[string]interface{})
	if req.Brand != nil {
		updates["brand"] = *req.Brand
	}
	if req.Model != nil {
		updates["model"] = *req.Model
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.VIN != nil {
		updates["vin"] = *req.VIN
	}
	if req.CustomerID != nil {
		if _, err := repositories.NewCustomerRepository(db).Get(*req.CustomerID); err != nil {
			respondGetError(c, err, "Customer", *req.CustomerID)
			return
		}
		updates["customer_id"] = *req.CustomerID
	}

	vehicle, err := repositories.NewVehicleRepository(db).Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Vehicle", id, "A vehicle with this VIN already exists")
		return
	}
	c.JSON(http.StatusOK, vehicle)
}

// DeleteVehicle handles DELETE /vehicles/:id, removing the vehicle's orders
// with it
func DeleteVehicle(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewVehicleRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Vehicle", id)
		return
	}
	c.Status(http.StatusNoContent)
}
