package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := db.AutoMigrate(models.All()...); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	config.SetDB(db)
	return db
}

func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// doJSON performs a request with an optional JSON body against the router.
func doJSON(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response should be valid JSON: %v (body %q)", err, w.Body.String())
	}
	return body
}

func decodeList(t *testing.T, w *httptest.ResponseRecorder) []map[string]interface{} {
	var body []map[string]interface{}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("Response should be a JSON array: %v (body %q)", err, w.Body.String())
	}
	return body
}

func createTestCustomer(t *testing.T, db *gorm.DB, email string) models.Customer {
	customer := models.Customer{FirstName: "Jo", LastName: "Meyer", Email: email, Phone: "555-0199", Address: "1 Garage Way"}
	assert.NoError(t, db.Create(&customer).Error)
	return customer
}

func createTestVehicle(t *testing.T, db *gorm.DB, customerID uint, vin string) models.Vehicle {
	vehicle := models.Vehicle{Brand: "Honda", Model: "Accord", Year: 2003, VIN: vin, CustomerID: customerID}
	assert.NoError(t, db.Create(&vehicle).Error)
	return vehicle
}

func createTestOrder(t *testing.T, db *gorm.DB, customerID, vehicleID uint) models.Order {
	order := models.Order{CustomerID: customerID, VehicleID: vehicleID, Description: "check engine light"}
	assert.NoError(t, db.Create(&order).Error)
	return order
}

func createTestInvoice(t *testing.T, db *gorm.DB, orderID uint) models.Invoice {
	invoice := models.Invoice{OrderID: orderID, DueDate: time.Now().AddDate(0, 1, 0), TotalAmount: 150}
	assert.NoError(t, db.Create(&invoice).Error)
	return invoice
}
