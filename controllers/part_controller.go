package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreatePartRequest represents the request body for creating a part
type CreatePartRequest struct {
	Name          string   `json:"name" binding:"required"`
	PartNumber    string   `json:"part_number" binding:"required"`
	Description   string   `json:"description"`
	Price         *float64 `json:"price" binding:"required,gte=0"`
	StockQuantity *int     `json:"stock_quantity"`
}

// UpdatePartRequest represents the request body for updating a part
type UpdatePartRequest struct {
	Name          *string  `json:"name"`
	PartNumber    *string  `json:"part_number"`
	Description   *string  `json:"description"`
	Price         *float64 `json:"price" binding:"omitempty,gte=0"`
	StockQuantity *int     `json:"stock_quantity"`
}

// ListParts handles GET /parts
func ListParts(c *gin.Context) {
	repo := repositories.NewPartRepository(config.GetDB())
	parts, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list parts")
		return
	}
	c.JSON(http.StatusOK, parts)
}

// SearchParts handles GET /parts/search?query= with a case-insensitive
// substring match on name or part number
func SearchParts(c *gin.Context) {
	query := c.Query("query")

	repo := repositories.NewPartRepository(config.GetDB())
	parts, err := repo.Search(query)
	if err != nil {
		serverError(c, "Failed to search parts")
		return
	}
	c.JSON(http.StatusOK, parts)
}

// GetPart handles GET /parts/:id
func GetPart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewPartRepository(config.GetDB())
	part, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Part", id)
		return
	}
	c.JSON(http.StatusOK, part)
}

// CreatePart handles POST /parts
func CreatePart(c *gin.Context) {
	var req CreatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	stock := 0
	if req.StockQuantity != nil {
		stock = *req.StockQuantity
	}

	part := models.Part{
		Name:          req.Name,
		PartNumber:    req.PartNumber,
		Description:   req.Description,
		Price:         *req.Price,
		StockQuantity: stock,
	}

	repo := repositories.NewPartRepository(config.GetDB())
	if err := repo.Create(&part); err != nil {
		respondWriteError(c, err, "A part with this part number already exists")
		return
	}
	c.JSON(http.StatusCreated, part)
}

// UpdatePart handles PUT /parts/:id with partial-update semantics
func UpdatePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdatePartRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.PartNumber != nil {
		updates["part_number"] = *req.PartNumber
	}
	if req.Description != nil {
		updates["description"] = *req.Description
	}
	if req.Price != nil {
		updates["price"] = *req.Price
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}

	repo := repositories.NewPartRepository(config.GetDB())
	part, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Part", id, "A part with this part number already exists")
		return
	}
	c.JSON(http.StatusOK, part)
}

// DeletePart handles DELETE /parts/:id, removing line items that use it
func DeletePart(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewPartRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Part", id)
		return
	}
	c.Status(http.StatusNoContent)
}
