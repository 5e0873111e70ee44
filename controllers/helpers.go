package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// parseIDParam parses an integer path parameter. On failure it writes a 422
// response and reports false.
func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"detail": fmt.Sprintf("Invalid value for parameter %s: %q", name, raw),
		})
		return 0, false
	}
	return uint(id), true
}

// notFound writes the standard lookup-failure response.
func notFound(c *gin.Context, entity string, id uint) {
	c.JSON(http.StatusNotFound, gin.H{
		"detail": fmt.Sprintf("%s with id %d not found", entity, id),
	})
}

// bindingError writes a 422 response for a request body that failed binding.
func bindingError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"detail": "Invalid request data: " + err.Error(),
	})
}

// serverError writes a generic 500 response.
func serverError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"detail": msg})
}

// isUniqueViolation detects a uniqueness constraint error. String matching
// covers both PostgreSQL and SQLite.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "unique")
}

// respondGetError maps a read failure to 404 or 500.
func respondGetError(c *gin.Context, err error, entity string, id uint) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, entity, id)
		return
	}
	serverError(c, fmt.Sprintf("Failed to load %s", strings.ToLower(entity)))
}

// respondWriteError maps a write failure to 400 (uniqueness) or 500.
func respondWriteError(c *gin.Context, err error, detail string) {
	if isUniqueViolation(err) {
		c.JSON(http.StatusBadRequest, gin.H{"detail": detail})
		return
	}
	serverError(c, "Database error")
}

// respondUpdateError maps a partial-update failure to 404, 400 or 500.
func respondUpdateError(c *gin.Context, err error, entity string, id uint, uniqueDetail string) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, entity, id)
		return
	}
	respondWriteError(c, err, uniqueDetail)
}

// respondDeleteError maps a delete failure to 404 or 500.
func respondDeleteError(c *gin.Context, err error, entity string, id uint) {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		notFound(c, entity, id)
		return
	}
	serverError(c, fmt.Sprintf("Failed to delete %s", strings.ToLower(entity)))
}
