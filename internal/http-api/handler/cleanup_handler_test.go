package handler_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"gapod/internal/http-api/handler"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockRetentionService mocks the RetentionService interface
type MockRetentionService struct {
	mock.Mock
}

func (m *MockRetentionService) SweepExpired() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockRetentionService) Run(ctx context.Context, interval time.Duration) {
	m.Called(ctx, interval)
}

func setupCleanupRouter(mockService *MockRetentionService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewCleanupHandler(mockService, nil)
	r.POST("/api/cleanup", h.Cleanup)
	return r
}

func TestCleanup_ReportsDeleted(t *testing.T) {
	mockService := new(MockRetentionService)
	router := setupCleanupRouter(mockService)

	mockService.On("SweepExpired").Return(int64(5), nil)

	req, _ := http.NewRequest("POST", "/api/cleanup", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"deleted": 5}`, w.Body.String())
	mockService.AssertExpectations(t)
}

func TestCleanup_StorageError(t *testing.T) {
	mockService := new(MockRetentionService)
	router := setupCleanupRouter(mockService)

	mockService.On("SweepExpired").Return(int64(0), errors.New("connection lost"))

	req, _ := http.NewRequest("POST", "/api/cleanup", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	mockService.AssertExpectations(t)
}
