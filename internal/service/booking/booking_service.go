package booking

import (
	"context"
	"errors"
	"iter"
	"log"
	"slices"
	"time"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/kafka"
	"github.com/Domenick1991/airreservation/internal/repository"
	"github.com/google/uuid"
)

type BookingUseCase interface {
	Book(ctx context.Context, flightID int64, passenger domain.Passenger) (*domain.Ticket, error)
	Cancel(ctx context.Context, idNumber string) ([]domain.Ticket, error)
	List(ctx context.Context) (iter.Seq[domain.Ticket], error)
	FindByID(ctx context.Context, idNumber string) (*domain.Ticket, error)
	Describe(ctx context.Context, ticket *domain.Ticket) (string, error)
}

const (
	defaultPublishRetries = 3
	defaultPublishTimeout = 5 * time.Second
)

type Producer interface {
	PublishWithRetry(ctx context.Context, topic, key string, value interface{}, maxRetries int) error
}

type BookingService struct {
	tickets            repository.TicketRepository
	flights            repository.FlightRepository
	producer           Producer
	ticketTopic        string
	notificationsTopic string
	publishRetries     int
	publishTimeout     time.Duration
	now                func() time.Time
}

type BookingServiceOption func(*BookingService)

// WithProducer publishes ticket events to topic.
func WithProducer(producer Producer, topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.ticketTopic = topic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

// WithPublishPolicy bounds every event publish to timeout across at most
// retries attempts. Non-positive values keep the defaults.
func WithPublishPolicy(retries int, timeout time.Duration) BookingServiceOption {
	return func(s *BookingService) {
		if retries > 0 {
			s.publishRetries = retries
		}
		if timeout > 0 {
			s.publishTimeout = timeout
		}
	}
}

func NewBookingService(
	tickets repository.TicketRepository,
	flights repository.FlightRepository,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		tickets:        tickets,
		flights:        flights,
		publishRetries: defaultPublishRetries,
		publishTimeout: defaultPublishTimeout,
		now:            time.Now,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// Book takes a seat on the flight and registers a ticket for the passenger.
// A full flight yields domain.ErrNoSeatsAvailable and leaves the registry
// untouched.
func (s *BookingService) Book(ctx context.Context, flightID int64, passenger domain.Passenger) (*domain.Ticket, error) {
	flight, err := s.flights.ReserveSeat(ctx, flightID)
	if err != nil {
		return nil, err
	}

	ticket := &domain.Ticket{
		Reference: uuid.NewString(),
		FlightID:  flight.ID,
		Passenger: passenger,
		CreatedAt: s.now(),
	}
	if err := s.tickets.Add(ctx, ticket); err != nil {
		return nil, err
	}

	if err := s.publish(ctx, kafka.EventTicketBooked, ticket, flight); err != nil {
		log.Printf("WARNING: failed to publish %s event for ticket %s: %v", kafka.EventTicketBooked, ticket.Reference, err)
	}
	return ticket, nil
}

// Cancel removes every ticket booked under idNumber. Seats are not given back
// to the flights.
func (s *BookingService) Cancel(ctx context.Context, idNumber string) ([]domain.Ticket, error) {
	removed, err := s.tickets.DeleteByPassengerID(ctx, idNumber)
	if err != nil {
		return nil, err
	}

	for i := range removed {
		ticket := &removed[i]
		flight, _ := s.flights.GetByID(ctx, ticket.FlightID)
		if err := s.publish(ctx, kafka.EventTicketCancelled, ticket, flight); err != nil {
			log.Printf("WARNING: failed to publish %s event for ticket %s: %v", kafka.EventTicketCancelled, ticket.Reference, err)
		}
	}
	return removed, nil
}

// List yields the tickets in booking order. An empty registry is reported as
// domain.ErrNoBookings.
func (s *BookingService) List(ctx context.Context) (iter.Seq[domain.Ticket], error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(tickets) == 0 {
		return nil, domain.ErrNoBookings
	}
	return slices.Values(tickets), nil
}

func (s *BookingService) FindByID(ctx context.Context, idNumber string) (*domain.Ticket, error) {
	return s.tickets.FindByPassengerID(ctx, idNumber)
}

// Describe renders the ticket followed by the current state of its flight.
func (s *BookingService) Describe(ctx context.Context, ticket *domain.Ticket) (string, error) {
	if ticket == nil {
		return "", errors.New("ticket is nil")
	}
	flight, err := s.flights.GetByID(ctx, ticket.FlightID)
	if err != nil {
		return "", err
	}
	return ticket.Describe(flight), nil
}

func (s *BookingService) publish(ctx context.Context, eventType string, ticket *domain.Ticket, flight *domain.Flight) error {
	if s.producer == nil || s.ticketTopic == "" {
		return nil
	}
	event := kafka.NewTicketEvent(eventType, ticket, flight)
	if err := s.publishTo(ctx, s.ticketTopic, ticket.Reference, event); err != nil {
		return err
	}
	if s.notificationsTopic != "" {
		return s.publishTo(ctx, s.notificationsTopic, ticket.Reference, event)
	}
	return nil
}

// publishTo bounds a single publish, retries included, by publishTimeout.
func (s *BookingService) publishTo(ctx context.Context, topic, key string, event kafka.TicketEvent) error {
	timeout := s.publishTimeout
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return s.producer.PublishWithRetry(ctx, topic, key, event, s.publishRetries)
}

var _ BookingUseCase = (*BookingService)(nil)
