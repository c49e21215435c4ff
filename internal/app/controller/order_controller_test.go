package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/internal/app/model"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupOrderControllerTest(t *testing.T) (*gin.Engine, *gorm.DB, *model.Contact, *model.Product) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	orderRepo := repository.NewOrderRepository(testDB)
	orderService := service.NewOrderService(orderRepo, testDB)
	orderController := NewOrderController(orderService)

	contact := &model.Contact{
		Name:  "Test Contact",
		Email: "test@example.com",
	}
	testDB.Create(contact)

	product := &model.Product{
		Name: "Test Product",
	}
	testDB.Create(product)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/order", orderController.CreateOrder)
	router.GET("/order", orderController.GetOrders)

	return router, testDB, contact, product
}

func TestOrderController_CreateOrder_Success(t *testing.T) {
	router, _, contact, product := setupOrderControllerTest(t)

	body := map[string]interface{}{
		"name":       "A",
		"contact_id": contact.ID,
		"order_lines": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 2, "price": 10.0},
		},
		"tag_ids": []uint{},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	assert.NotZero(t, response["id"])
	assert.Equal(t, "A", response["name"])
	assert.Equal(t, float64(20), response["amount_total"])
	lines := response["order_lines"].([]interface{})
	assert.Len(t, lines, 1)
	tags := response["tags"].([]interface{})
	assert.Len(t, tags, 0)
}

func TestOrderController_CreateOrder_UnknownTagIgnored(t *testing.T) {
	router, _, contact, product := setupOrderControllerTest(t)

	body := map[string]interface{}{
		"name":       "Ghost tag",
		"contact_id": contact.ID,
		"order_lines": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1, "price": 5.5},
		},
		"tag_ids": []uint{999},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)

	tags := response["tags"].([]interface{})
	assert.Len(t, tags, 0)
}

func TestOrderController_CreateOrder_InvalidBody(t *testing.T) {
	router, _, _, _ := setupOrderControllerTest(t)

	req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader([]byte(`{"name":""}`)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "VALIDATION_INVALID_INPUT", response["error"])
}

func TestOrderController_CreateOrder_StoreFailure(t *testing.T) {
	router, testDB, contact, product := setupOrderControllerTest(t)

	require.NoError(t, testDB.Migrator().DropTable(&model.OrderLine{}))

	body := map[string]interface{}{
		"name":       "Doomed",
		"contact_id": contact.ID,
		"order_lines": []map[string]interface{}{
			{"product_id": product.ID, "quantity": 1, "price": 1.0},
		},
	}
	payload, _ := json.Marshal(body)

	req := httptest.NewRequest(http.MethodPost, "/order", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Equal(t, "INTERNAL_SERVER_ERROR", response["error"])
	assert.NotEmpty(t, response["message"])
}

func TestOrderController_GetOrders(t *testing.T) {
	router, testDB, contact, product := setupOrderControllerTest(t)

	order := &model.Order{
		Name:      "A",
		ContactID: contact.ID,
	}
	testDB.Create(order)
	testDB.Create(&model.OrderLine{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  2,
		Price:     10.0,
	})
	testDB.Create(&model.OrderLine{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     5.5,
	})

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.Equal(t, float64(25.5), response[0]["amount_total"])
}

func TestOrderController_GetOrders_Empty(t *testing.T) {
	router, _, _, _ := setupOrderControllerTest(t)

	req := httptest.NewRequest(http.MethodGet, "/order", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.Len(t, response, 0)
}
