package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockFlightUseCase is a mock implementation of flights.FlightUseCase
type MockFlightUseCase struct {
	mock.Mock
}

func (m *MockFlightUseCase) Create(ctx context.Context, kind domain.FlightKind, input flights.CreateFlightInput) (*domain.Flight, error) {
	args := m.Called(ctx, kind, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) List(ctx context.Context) ([]domain.Flight, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Flight), args.Error(1)
}

func (m *MockFlightUseCase) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Flight), args.Error(1)
}

func TestFlightHandler_list(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	list := []domain.Flight{
		{ID: 1, Kind: domain.FlightKindDomestic, FlightNumber: "OU650", DepartureCity: "Zagreb", ArrivalCity: "Split", TotalSeats: 2, Price: 59.99},
	}

	mockService.On("List", c.Request.Context()).Return(list, nil)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []flightResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Domestic Flight", resp[0].Label)
	assert.Equal(t, 2, resp[0].AvailableSeats)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_listEmpty(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest("GET", "/flights", nil)

	mockService.On("List", c.Request.Context()).Return(nil, domain.ErrNoFlights)

	handler.list(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())
}

func TestFlightHandler_get(t *testing.T) {
	mockService := &MockFlightUseCase{}
	handler := NewFlightHandler(mockService)

	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)

	c.Params = gin.Params{{Key: "id", Value: "1"}}
	c.Request = httptest.NewRequest("GET", "/flights/1", nil)

	flight := &domain.Flight{
		ID: 1, Kind: domain.FlightKindInternational, FlightNumber: "OS770", DepartureCity: "Vienna", ArrivalCity: "Paris", TotalSeats: 3,
	}

	mockService.On("GetByID", c.Request.Context(), int64(1)).Return(flight, nil)

	handler.get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"label":"International Flight"`)

	mockService.AssertExpectations(t)
}

func TestFlightHandler_getErrors(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("bad id", func(t *testing.T) {
		mockService := &MockFlightUseCase{}
		handler := NewFlightHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "abc"}}
		c.Request = httptest.NewRequest("GET", "/flights/abc", nil)

		handler.get(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockService.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("out of range", func(t *testing.T) {
		mockService := &MockFlightUseCase{}
		handler := NewFlightHandler(mockService)

		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Params = gin.Params{{Key: "id", Value: "9"}}
		c.Request = httptest.NewRequest("GET", "/flights/9", nil)

		mockService.On("GetByID", c.Request.Context(), int64(9)).
			Return(nil, fmt.Errorf("flight 9: %w", domain.ErrInvalidFlightSelection))

		handler.get(c)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
