package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
	"github.com/pitlane-garage/pitlane-api/repositories"
)

// CreateNotificationRequest represents the request body for creating a
// notification
type CreateNotificationRequest struct {
	Message string `json:"message" binding:"required"`
}

// UpdateNotificationRequest represents the request body for updating a
// notification
type UpdateNotificationRequest struct {
	Message *string `json:"message"`
}

// ListNotifications handles GET /notifications
func ListNotifications(c *gin.Context) {
	repo := repositories.NewNotificationRepository(config.GetDB())
	notifications, err := repo.List()
	if err != nil {
		serverError(c, "Failed to list notifications")
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetNotification handles GET /notifications/:id
func GetNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewNotificationRepository(config.GetDB())
	notification, err := repo.Get(id)
	if err != nil {
		respondGetError(c, err, "Notification", id)
		return
	}
	c.JSON(http.StatusOK, notification)
}

// CreateNotification handles POST /notifications
func CreateNotification(c *gin.Context) {
	var req CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	notification := models.Notification{Message: req.Message}

	repo := repositories.NewNotificationRepository(config.GetDB())
	if err := repo.Create(&notification); err != nil {
		serverError(c, "Failed to create notification")
		return
	}
	c.JSON(http.StatusCreated, notification)
}

// UpdateNotification handles PUT /notifications/:id
func UpdateNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindingError(c, err)
		return
	}

	updates := make(map[string]interface{})
	if req.Message != nil {
		updates["message"] = *req.Message
	}

	repo := repositories.NewNotificationRepository(config.GetDB())
	notification, err := repo.Update(id, updates)
	if err != nil {
		respondUpdateError(c, err, "Notification", id, "Notification update failed")
		return
	}
	c.JSON(http.StatusOK, notification)
}

// DeleteNotification handles DELETE /notifications/:id
func DeleteNotification(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	repo := repositories.NewNotificationRepository(config.GetDB())
	if err := repo.Delete(id); err != nil {
		respondDeleteError(c, err, "Notification", id)
		return
	}
	c.Status(http.StatusNoContent)
}
