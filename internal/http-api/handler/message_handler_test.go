package handler_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"gapod/internal/http-api/dto"
	"gapod/internal/http-api/handler"
	"gapod/internal/http-api/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockMessageService mocks the MessageService interface
type MockMessageService struct {
	mock.Mock
}

func (m *MockMessageService) CreateMessage(text, author, category string) (*dto.MessageResponse, error) {
	args := m.Called(text, author, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) ListMessages(category string) ([]dto.MessageResponse, error) {
	args := m.Called(category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]dto.MessageResponse), args.Error(1)
}

func (m *MockMessageService) DeleteAllMessages() (int64, error) {
	args := m.Called()
	return args.Get(0).(int64), args.Error(1)
}

// noLimit stands in for the write rate limiter in handler tests.
func noLimit(c *gin.Context) { c.Next() }

func setupMessageRouter(mockService *MockMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := handler.NewMessageHandler(mockService)
	h.RegisterRoutes(r.Group("/api/messages"), noLimit)
	return r
}

func TestCreateMessage_Created(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	mockService.On("CreateMessage", "hello", "Bob", "General").
		Return(&dto.MessageResponse{ID: 1, Text: "hello", Author: "Bob", Category: "General", Timestamp: 1700000000000}, nil)

	body, _ := json.Marshal(dto.CreateMessageDTO{Text: "hello", Author: "Bob", Category: "General"})
	req, _ := http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var response dto.MessageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(1), response.ID)
	assert.Equal(t, "hello", response.Text)
	mockService.AssertExpectations(t)
}

func TestCreateMessage_MissingCategory(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	body := []byte(`{"text": "hello"}`)
	req, _ := http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertNotCalled(t, "CreateMessage")
}

func TestCreateMessage_WhitespaceTextRejectedByService(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	mockService.On("CreateMessage", "   ", "", "General").Return(nil, service.ErrTextRequired)

	body := []byte(`{"text": "   ", "category": "General"}`)
	req, _ := http.NewRequest("POST", "/api/messages", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	mockService.AssertExpectations(t)
}

func TestListMessages_PassesCategory(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	mockService.On("ListMessages", "General").Return([]dto.MessageResponse{
		{ID: 2, Text: "newer"},
		{ID: 1, Text: "older"},
	}, nil)

	req, _ := http.NewRequest("GET", "/api/messages?category=General", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response []dto.MessageResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Len(t, response, 2)
	assert.Equal(t, int64(2), response[0].ID)
	mockService.AssertExpectations(t)
}

func TestListMessages_NoFilter(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	mockService.On("ListMessages", "").Return([]dto.MessageResponse{}, nil)

	req, _ := http.NewRequest("GET", "/api/messages", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
	mockService.AssertExpectations(t)
}

func TestListMessages_StorageError(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	mockService.On("ListMessages", "").Return(nil, errors.New("connection lost"))

	req, _ := http.NewRequest("GET", "/api/messages", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	// Engine detail must not leak to the caller.
	var response map[string]string
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, "Failed to fetch messages", response["error"])
	mockService.AssertExpectations(t)
}

func TestDeleteAllMessages(t *testing.T) {
	mockService := new(MockMessageService)
	router := setupMessageRouter(mockService)

	mockService.On("DeleteAllMessages").Return(int64(7), nil)

	req, _ := http.NewRequest("DELETE", "/api/messages", nil)
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response dto.DeleteMessagesResponse
	json.Unmarshal(w.Body.Bytes(), &response)
	assert.Equal(t, int64(7), response.Deleted)
	assert.Equal(t, "All messages deleted", response.Message)
	mockService.AssertExpectations(t)
}
