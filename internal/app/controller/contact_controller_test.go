package controller

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/orderdesk/orderdesk-backend/internal/app/repository"
	"github.com/orderdesk/orderdesk-backend/internal/app/service"
	"github.com/orderdesk/orderdesk-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupContactControllerTest(t *testing.T) *gin.Engine {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})

	contactService := service.NewContactService(repository.NewContactRepository(testDB))
	contactController := NewContactController(contactService)

	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/contact", contactController.CreateContact)
	router.GET("/contact", contactController.GetContacts)

	return router
}

func TestContactController_CreateContact_Success(t *testing.T) {
	router := setupContactControllerTest(t)

	payload := []byte(`{"name":"Ada Lovelace","email":"ada@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	assert.NotZero(t, response["id"])
	assert.Equal(t, "Ada Lovelace", response["name"])
	assert.Equal(t, "ada@example.com", response["email"])
}

func TestContactController_CreateContact_MissingFields(t *testing.T) {
	router := setupContactControllerTest(t)

	payload := []byte(`{"name":"No Email"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestContactController_GetContacts_AfterCreate(t *testing.T) {
	router := setupContactControllerTest(t)

	payload := []byte(`{"name":"Ada Lovelace","email":"ada@example.com"}`)
	req := httptest.NewRequest(http.MethodPost, "/contact", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/contact", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []map[string]interface{}
	err := json.Unmarshal(w.Body.Bytes(), &response)
	require.NoError(t, err)
	require.Len(t, response, 1)
	assert.NotZero(t, response[0]["id"])
	assert.Equal(t, "Ada Lovelace", response[0]["name"])
}
