package domain

import (
	"fmt"
	"strings"
	"time"
)

type Passenger struct {
	Name          string `json:"name"`
	Surname       string `json:"surname"`
	IDNumber      string `json:"id_number"`
	Email         string `json:"email"`
	PhoneNumber   string `json:"phone_number"`
	PaymentMethod string `json:"payment_method"`
	SeatClass     string `json:"seat_class"`
}

// Ticket binds a passenger to a flight of the catalogue. The flight itself is
// not owned by the ticket; FlightID refers to it.
type Ticket struct {
	Reference string    `json:"reference"`
	FlightID  int64     `json:"flight_id"`
	Passenger Passenger `json:"passenger"`
	CreatedAt time.Time `json:"created_at"`
}

// ID is the passenger id number tickets are looked up and cancelled by.
func (t *Ticket) ID() string {
	return t.Passenger.IDNumber
}

func (t *Ticket) Describe(flight *Flight) string {
	p := t.Passenger
	var b strings.Builder
	fmt.Fprintf(&b, "Passenger: %s %s\n", p.Name, p.Surname)
	fmt.Fprintf(&b, "ID: %s, Email: %s, Phone: %s\n", p.IDNumber, p.Email, p.PhoneNumber)
	fmt.Fprintf(&b, "Payment Method: %s, Seat Class: %s\n", p.PaymentMethod, p.SeatClass)
	if flight != nil {
		b.WriteString(flight.Describe())
	}
	return b.String()
}
