package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/pitlane-garage/pitlane-api/models"
)

func userRoutes() *gin.Engine {
	router := setupTestRouter()
	router.GET("/user", ListUsers)
	router.GET("/user/:id", GetUser)
	router.POST("/user", CreateUser)
	return router
}

func TestCreateUser(t *testing.T) {
	db := setupTestDB(t)
	router := userRoutes()

	assert.NoError(t, db.Create(&models.User{Username: "taken", Email: "taken@x.com"}).Error)

	tests := []struct {
		name       string
		body       map[string]interface{}
		wantStatus int
		wantDetail string
	}{
		{
			name:       "valid user",
			body:       map[string]interface{}{"first_name": "Dana", "last_name": "Cruz", "username": "dcruz", "email": "dana@x.com"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "username only",
			body:       map[string]interface{}{"username": "solo"},
			wantStatus: http.StatusCreated,
		},
		{
			name:       "missing username",
			body:       map[string]interface{}{"first_name": "Dana"},
			wantStatus: http.StatusUnprocessableEntity,
		},
		{
			name:       "duplicate username",
			body:       map[string]interface{}{"username": "taken"},
			wantStatus: http.StatusBadRequest,
			wantDetail: "A user with this username already exists",
		},
		{
			name:       "malformed email",
			body:       map[string]interface{}{"username": "bademail", "email": "not-an-email"},
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := doJSON(router, "POST", "/user", tt.body)
			assert.Equal(t, tt.wantStatus, w.Code, "body: %s", w.Body.String())
			if tt.wantDetail != "" {
				assert.Equal(t, tt.wantDetail, decodeBody(t, w)["detail"])
			}
		})
	}
}

func TestGetUser(t *testing.T) {
	db := setupTestDB(t)
	router := userRoutes()

	user := models.User{Username: "dcruz", FirstName: "Dana"}
	assert.NoError(t, db.Create(&user).Error)

	w := doJSON(router, "GET", "/user/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dcruz", decodeBody(t, w)["username"])

	w = doJSON(router, "GET", "/user/7", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "User with id 7 not found", decodeBody(t, w)["detail"])

	w = doJSON(router, "GET", "/user/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListUsers(t *testing.T) {
	db := setupTestDB(t)
	router := userRoutes()

	w := doJSON(router, "GET", "/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "[]", w.Body.String())

	assert.NoError(t, db.Create(&models.User{Username: "one"}).Error)
	assert.NoError(t, db.Create(&models.User{Username: "two"}).Error)

	w = doJSON(router, "GET", "/user", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decodeList(t, w), 2)
}
