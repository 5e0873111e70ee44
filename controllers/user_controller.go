package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateUserRequest represents the request body for creating an account
type CreateUserRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Username  string `json:"username" binding:"required"`
	Email     string `json:"email" binding:"omitempty,email"`
}

// ListUsers handles GET /user
func ListUsers(c *gin.Context) {
	repo := repositories.NewUserRepository(config.GetDB())
	users, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list users")
		return
	}
	c.JSON(http.StatusOK, users)
}

// GetUser handles GET /user/:id
func GetUser(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewUserRepository(config.GetDB())
	user, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "User", id)
		return
	}
	c.JSON(http.StatusOK, user)
}

// CreateUser handles POST /user
func CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	}

	repo := repositories.NewUserRepository(config.GetDB())
	if err := repo.Create(&user); err != nil {
		respondWriteError(c, err, "A user with this username already exists")
		return
	}
	c.JSON(http.StatusCreated, user)
}
