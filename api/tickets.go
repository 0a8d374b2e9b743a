package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type TicketHandler struct {
	service booking.BookingUseCase
}

type ticketResponse struct {
	Reference     string `json:"reference"`
	FlightID      int64  `json:"flight_id"`
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	IDNumber      string `json:"id_number"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	PaymentMethod string `json:"payment_method"`
	SeatClass     string `json:"seat_class"`
	CreatedAt     string `json:"created_at"`
}

func NewTicketHandler(service booking.BookingUseCase) *TicketHandler {
	return &TicketHandler{service: service}
}

func (h *TicketHandler) Register(router *gin.RouterGroup) {
	router.GET("/", h.list)
	router.GET("/:id", h.get)
}

func (h *TicketHandler) list(c *gin.Context) {
	tickets, err := h.service.List(c.Request.Context())
	if errors.Is(err, domain.ErrNoBookings) {
		c.JSON(http.StatusOK, []ticketResponse{})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	resp := make([]ticketResponse, 0)
	for ticket := range tickets {
		resp = append(resp, toTicketResponse(&ticket))
	}
	c.JSON(http.StatusOK, resp)
}

// get looks a ticket up by the passenger id number.
func (h *TicketHandler) get(c *gin.Context) {
	ticket, err := h.service.FindByID(c.Request.Context(), c.Param("id"))
	if errors.Is(err, domain.ErrTicketNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, toTicketResponse(ticket))
}

func toTicketResponse(t *domain.Ticket) ticketResponse {
	p := t.Passenger
	return ticketResponse{
		Reference:     t.Reference,
		FlightID:      t.FlightID,
		Name:          p.Name,
		Surname:       p.Surname,
		IDNumber:      p.IDNumber,
		Email:         p.Email,
		PhoneNumber:   p.PhoneNumber,
		PaymentMethod: p.PaymentMethod,
		SeatClass:     p.SeatClass,
		CreatedAt:     t.CreatedAt.Format(time.RFC3339),
	}
}
