package kafka

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeTicketEvent(t *testing.T) {
	ticket := &domain.Ticket{
		Reference: "ref-1",
		FlightID:  2,
		Passenger: domain.Passenger{IDNumber: "111", Name: "Ana", Email: "ana@example.com", SeatClass: "Business"},
	}
	flight := &domain.Flight{ID: 2, FlightNumber: "OU650"}
	event := NewTicketEvent(EventTicketBooked, ticket, flight)

	payload, err := json.Marshal(event)
	require.NoError(t, err)

	decoded, ok := DecodeTicketEvent(kafka.Message{Value: payload})
	require.True(t, ok)
	assert.Equal(t, EventTicketBooked, decoded.Type)
	assert.Equal(t, "ref-1", decoded.Reference)
	assert.Equal(t, "OU650", decoded.FlightNumber)
	assert.Equal(t, "111", decoded.PassengerID)
	assert.WithinDuration(t, time.Now(), decoded.OccurredAt, time.Minute)
}

func TestDecodeTicketEvent_Rejects(t *testing.T) {
	_, ok := DecodeTicketEvent(kafka.Message{Value: []byte("not json")})
	assert.False(t, ok)

	_, ok = DecodeTicketEvent(kafka.Message{Value: []byte(`{"reference":"x"}`)})
	assert.False(t, ok)
}

func TestNewTicketEvent_WithoutFlight(t *testing.T) {
	ticket := &domain.Ticket{Reference: "ref-2", FlightID: 7}
	event := NewTicketEvent(EventTicketCancelled, ticket, nil)
	assert.Equal(t, int64(7), event.FlightID)
	assert.Empty(t, event.FlightNumber)
}

func TestProducer_CloseNil(t *testing.T) {
	var p *Producer
	assert.NoError(t, p.Close())
	var c *Consumer
	assert.NoError(t, c.Close())
}
