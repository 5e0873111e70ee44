package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateMechanicRequest represents the request body for creating a mechanic
type CreateMechanicRequest struct {
	FirstName string     `json:"first_name" binding:"required"`
	LastName  string     `json:"last_name" binding:"required"`
	Email     string     `json:"email" binding:"omitempty,email"`
	Phone     string     `json:"phone"`
	HireDate  *time.Time `json:"hire_date"`
	IsActive  *bool      `json:"is_active"`
}

// UpdateMechanicRequest represents the request body for updating a mechanic
type UpdateMechanicRequest struct {
	FirstName *string    `json:"first_name"`
	LastName  *string    `json:"last_name"`
	Email     *string    `json:"email" binding:"omitempty,email"`
	Phone     *string    `json:"phone"`
	HireDate  *time.Time `json:"hire_date"`
	IsActive  *bool      `json:"is_active"`
}

// ListMechanics handles GET /mechanics
func ListMechanics(c *gin.Context) {
	repo := repositories.NewMechanicRepository(config.GetDB())
	mechanics, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list mechanics")
		return
	}
	c.JSON(http.StatusOK, mechanics)
}

// ListAvailableMechanics handles GET /mechanics/available - active mechanics
// not tied to any open order
func ListAvailableMechanics(c *gin.Context) {
	repo := repositories.NewMechanicRepository(config.GetDB())
	mechanics, err := repo.Available()
	if err != nil {
		serverError(c, "Failed to list available mechanics")
		return
	}
	c.JSON(http.StatusOK, mechanics)
}

// GetMechanic handles GET /mechanics/:id
func GetMechanic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewMechanicRepository(config.GetDB())
	mechanic, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Mechanic", id)
		return
	}
	c.JSON(http.StatusOK, mechanic)
}

// CreateMechanic handles POST /mechanics
func CreateMechanic(c *gin.Context) {
	var req CreateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	// New mechanics are active unless the caller says otherwise
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	mechanic := models.Mechanic{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		HireDate:  req.HireDate,
		IsActive:  isActive,
	}

	repo := repositories.NewMechanicRepository(config.GetDB())
	if err := repo.Create(&mechanic); err != nil {
		serverError(c, "Failed to create mechanic")
		return
	}
	c.JSON(http.StatusCreated, mechanic)
}

// UpdateMechanic handles PUT /mechanics/:id with partial-update semantics
func UpdateMechanic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateMechanicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.FirstName != nil {
		updates["first_name"] = *req.FirstName
	}
	if req.LastName != nil {
		updates["last_name"] = *req.LastName
	}
	if req.Email != nil {
		updates["email"] = *req.Email
	}
	if req.Phone != nil {
		updates["phone"] = *req.Phone
	}
	if req.HireDate != nil {
		updates["hire_date"] = *req.HireDate
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	repo := repositories.NewMechanicRepository(config.GetDB())
	mechanic, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Mechanic", id, "Mechanic update failed")
		return
	}
	c.JSON(http.StatusOK, mechanic)
}

// DeleteMechanic handles DELETE /mechanics/:id; orders referencing the
// mechanic are preserved with the reference cleared
func DeleteMechanic(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewMechanicRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Mechanic", id)
		return
	}
	c.Status(http.StatusNoContent)
}
