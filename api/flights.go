package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/flights"
	"github.com/gin-gonic/gin"
)

type FlightHandler struct {
	service flights.FlightUseCase
}

type flightResponse struct {
	ID               int64   `json:"id"`
	Kind             string  `json:"kind"`
	Label            string  `json:"label"`
	FlightNumber     string  `json:"flight_number"`
	DepartureCity    string  `json:"departure_city"`
	ArrivalCity      string  `json:"arrival_city"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	Date             string  `json:"date"`
	Price            float64 `json:"price"`
	AvailableSeats   int     `json:"available_seats"`
	BaggageAllowance int     `json:"baggage_allowance_kg"`
}

func NewFlightHandler(service flights.FlightUseCase) *FlightHandler {
	return &FlightHandler{service: service}
}

func (h *FlightHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *FlightHandler) list(c *gin.Context) {
	list, err := h.service.List(c.Request.Context())
	if errors.Is(err, domain.ErrNoFlights) {
		c.JSON(http.StatusOK, []flightResponse{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]flightResponse, 0, len(list))
	for i := range list {
		resp = append(resp, toFlightResponse(&list[i]))
	}
	c.JSON(http.StatusOK, resp)
}

func (h *FlightHandler) get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return
	}
	flight, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toFlightResponse(flight))
}

func toFlightResponse(f *domain.Flight) flightResponse {
	return flightResponse{
		ID:               f.ID,
		Kind:             string(f.Kind),
		Label:            f.Kind.Label(),
		FlightNumber:     f.FlightNumber,
		DepartureCity:    f.DepartureCity,
		ArrivalCity:      f.ArrivalCity,
		DepartureTime:    f.DepartureTime,
		ArrivalTime:      f.ArrivalTime,
		Date:             f.Date,
		Price:            f.Price,
		AvailableSeats:   f.AvailableSeats(),
		BaggageAllowance: f.BaggageAllowance,
	}
}
