package email

import (
	"context"
	"fmt"
	"io"

	"github.com/Domenick1991/airreservation/internal/kafka"
)

// Sender turns ticket events into passenger notifications. Delivery is a line
// written to out.
type Sender struct {
	out io.Writer
}

func NewSender(out io.Writer) *Sender {
	return &Sender{out: out}
}

func (s *Sender) Send(ctx context.Context, event kafka.TicketEvent) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if event.Email == "" {
		return nil
	}

	var subject string
	switch event.Type {
	case kafka.EventTicketBooked:
		subject = "booking confirmed"
	case kafka.EventTicketCancelled:
		subject = "booking cancelled"
	default:
		subject = event.Type
	}

	_, err := fmt.Fprintf(s.out, "send email to %s (%s %s): %s for flight %s, reference %s\n",
		event.Email, event.Name, event.Surname, subject, flightLabel(event), event.Reference)
	return err
}

func flightLabel(event kafka.TicketEvent) string {
	if event.FlightNumber != "" {
		return event.FlightNumber
	}
	return fmt.Sprintf("#%d", event.FlightID)
}
