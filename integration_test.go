package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/pitlane-garage/pitlane-api/config"
	"github.com/pitlane-garage/pitlane-api/models"
)

func setupApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(models.All()...))
	config.SetDB(db)

	cfg := &config.Config{
		Port:             "8080",
		GoEnv:            "test",
		LogLevel:         "error",
		RateLimitRPS:     1000,
		RateLimitBurst:   1000,
		CORSAllowOrigins: []string{"*"},
	}
	config.SetConfig(cfg)
	return SetupRouter(cfg)
}

func request(router *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), "body: %s", w.Body.String())
	return body
}

func TestHealthEndpoint(t *testing.T) {
	router := setupApp(t)

	w := request(router, "GET", "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Pitlane API is running", body["message"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

// TestRepairWorkflow walks an order from intake to a paid invoice through the
// public API only.
func TestRepairWorkflow(t *testing.T) {
	router := setupApp(t)

	// Intake: customer and their vehicle
	w := request(router, "POST", "/customers", map[string]interface{}{
		"first_name": "Maria", "last_name": "Santos",
		"email": "maria@example.com", "phone": "555-0101",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	customerID := decode(t, w)["id"].(float64)

	w = request(router, "POST", "/vehicles", map[string]interface{}{
		"customer_id": customerID, "vin": "1HGCM82633A004352",
		"brand": "Honda", "model": "Accord", "year": 2019,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	vehicleID := decode(t, w)["id"].(float64)

	// Staff and catalog
	w = request(router, "POST", "/mechanics", map[string]interface{}{
		"first_name": "Jo", "last_name": "Keller", "phone": "555-0199",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	mechanicID := decode(t, w)["id"].(float64)

	w = request(router, "POST", "/services", map[string]interface{}{
		"name": "Timing belt replacement", "price": 450.00,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	serviceID := decode(t, w)["id"].(float64)

	w = request(router, "POST", "/parts", map[string]interface{}{
		"name": "Timing belt kit", "part_number": "TB-9921", "price": 120.00, "stock_quantity": 4,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	partID := decode(t, w)["id"].(float64)

	// Open the order and assign the mechanic
	w = request(router, "POST", "/orders", map[string]interface{}{
		"customer_id": customerID, "vehicle_id": vehicleID,
		"mechanic_id": mechanicID, "description": "Belt noise at cold start",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	order := decode(t, w)
	orderID := order["id"].(float64)
	assert.Equal(t, false, order["is_closed"])

	// The assigned mechanic is no longer available
	w = request(router, "GET", "/mechanics/available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var available []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &available))
	assert.Empty(t, available)

	// Attach work and materials via the convenience routes
	w = request(router, "POST", fmt.Sprintf("/orders/%.0f/add_service/%.0f", orderID, serviceID), nil)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = request(router, "POST", fmt.Sprintf("/orders/%.0f/add_part/%.0f?quantity=2", orderID, partID), nil)
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	assert.EqualValues(t, 2, decode(t, w)["quantity"])

	// Track progress
	w = request(router, "POST", "/orderstatuses", map[string]interface{}{
		"order_id": orderID, "status": "in_progress", "note": "On the lift",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = request(router, "POST", "/orderstatuses", map[string]interface{}{
		"order_id": orderID, "status": "completed",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(router, "GET", fmt.Sprintf("/orders/%.0f/statuses", orderID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var statuses []map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &statuses))
	assert.Len(t, statuses, 2)

	// Bill the work
	due := time.Now().AddDate(0, 0, 14).UTC().Format(time.RFC3339)
	w = request(router, "POST", "/invoices", map[string]interface{}{
		"order_id": orderID, "due_date": due, "total_amount": 690.00,
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())
	invoiceID := decode(t, w)["id"].(float64)

	w = request(router, "POST", "/payments", map[string]interface{}{
		"invoice_id": invoiceID, "amount": 690.00, "payment_method": "card",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	w = request(router, "PUT", fmt.Sprintf("/invoices/%.0f/mark_paid", invoiceID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["is_paid"])

	// Close out the order; the mechanic frees up
	w = request(router, "PUT", fmt.Sprintf("/orders/%.0f", orderID), map[string]interface{}{
		"is_closed": true,
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decode(t, w)["is_closed"])

	w = request(router, "GET", "/mechanics/available", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &available))
	assert.Len(t, available, 1)
}

// TestCustomerDeletionRipplesThroughAPI removes a customer and checks the
// dependent records are gone from every collection endpoint.
func TestCustomerDeletionRipplesThroughAPI(t *testing.T) {
	router := setupApp(t)

	w := request(router, "POST", "/customers", map[string]interface{}{
		"first_name": "Lee", "last_name": "Wong", "email": "lee@example.com",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	customerID := decode(t, w)["id"].(float64)

	w = request(router, "POST", "/vehicles", map[string]interface{}{
		"customer_id": customerID, "vin": "JH4KA8260MC000000",
		"brand": "Acura", "model": "Legend", "year": 1991,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	vehicleID := decode(t, w)["id"].(float64)

	w = request(router, "POST", "/orders", map[string]interface{}{
		"customer_id": customerID, "vehicle_id": vehicleID,
		"description": "Restoration quote",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = request(router, "DELETE", fmt.Sprintf("/customers/%.0f", customerID), nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	for _, path := range []string{"/customers", "/vehicles", "/orders"} {
		w = request(router, "GET", path, nil)
		require.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "[]", w.Body.String(), "expected %s to be empty", path)
	}
}
