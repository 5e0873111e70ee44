package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateCustomerRequest represents the request body for creating a customer
type CreateCustomerRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
}

// UpdateCustomerRequest represents the request body for updating a customer.
// Pointer fields distinguish unset fields from zero values so partial
// updates leave omitted fields untouched.
type UpdateCustomerRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email" binding:"omitempty,email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
}

// ListCustomers handles GET /customers
func ListCustomers(c *gin.Context) {
	repo := repositories.NewCustomerRepository(config.GetDB())
	customers, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list customers")
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer handles GET /customers/:id
func GetCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewCustomerRepository(config.GetDB())
	customer, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Customer", id)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer handles POST /customers
func CreateCustomer(c *gin.Context) {
	var req CreateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	customer := models.Customer{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
	}

	repo := repositories.NewCustomerRepository(config.GetDB())
	if err := repo.Create(&customer); err != nil {
		respondWriteError(c, err, "A customer with this email already exists")
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// UpdateCustomer handles PUT /customers/:id with partial-update semantics
func UpdateCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	// Apply only the supplied fields
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
	if req.Address != nil {
		updates["address"] = *req.Address
	}

	repo := repositories.NewCustomerRepository(config.GetDB())
	customer, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Customer", id, "A customer with this email already exists")
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer handles DELETE /customers/:id, removing the customer's
// vehicles and orders with them
func DeleteCustomer(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewCustomerRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Customer", id)
		return
	}
	c.Status(http.StatusNoContent)
}
