package kafka

import (
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
)

const (
	EventTicketBooked    = "ticket_booked"
	EventTicketCancelled = "ticket_cancelled"
)

type TicketEvent struct {
	Type         string    `json:"type"`
	Reference    string    `json:"reference"`
	FlightID     int64     `json:"flight_id"`
	FlightNumber string    `json:"flight_number,omitempty"`
	PassengerID  string    `json:"passenger_id"`
	Name         string    `json:"name"`
	Surname      string    `json:"surname"`
	Email        string    `json:"email"`
	SeatClass    string    `json:"seat_class"`
	OccurredAt   time.Time `json:"occurred_at"`
}

// NewTicketEvent describes what happened to ticket. flight may be nil when the
// flight is no longer known to the caller.
func NewTicketEvent(eventType string, ticket *domain.Ticket, flight *domain.Flight) TicketEvent {
	event := TicketEvent{
		Type:        eventType,
		Reference:   ticket.Reference,
		FlightID:    ticket.FlightID,
		PassengerID: ticket.ID(),
		Name:        ticket.Passenger.Name,
		Surname:     ticket.Passenger.Surname,
		Email:       ticket.Passenger.Email,
		SeatClass:   ticket.Passenger.SeatClass,
		OccurredAt:  time.Now().UTC(),
	}
	if flight != nil {
		event.FlightNumber = flight.FlightNumber
	}
	return event
}
