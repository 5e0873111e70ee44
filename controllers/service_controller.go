package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateServiceRequest represents the request body for creating a service
type CreateServiceRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Price       *float64 `json:"price" binding:"required,gte=0"`
}

// UpdateServiceRequest represents the request body for updating a service
type UpdateServiceRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" binding:"omitempty,gte=0"`
}

// ListServices handles GET /services
func ListServices(c *gin.Context) {
	repo := repositories.NewServiceRepository(config.GetDB())
	services, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list services")
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetService handles GET /services/:id
func GetService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewServiceRepository(config.GetDB())
	service, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Service", id)
		return
	}
	c.JSON(http.StatusOK, service)
}

// CreateService handles POST /services
func CreateService(c *gin.Context) {
	var req CreateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	service := models.Service{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
	}

	repo := repositories.NewServiceRepository(config.GetDB())
	if err := repo.Create(&service); err != nil {
		serverError(c, "Failed to create service")
		return
	}
	c.JSON(http.StatusCreated, service)
}

// UpdateService handles PUT /services/:id with partial-update semantics
func UpdateService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}

	repo := repositories.NewServiceRepository(config.GetDB())
	service, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Service", id, "Service update failed")
		return
	}
	c.JSON(http.StatusOK, service)
}

// DeleteService handles DELETE /services/:id, removing line items that use it
func DeleteService(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewServiceRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Service", id)
		return
	}
	c.Status(http.StatusNoContent)
}
