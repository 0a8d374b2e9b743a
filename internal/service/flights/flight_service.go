package flights

import (
	"context"
	"fmt"

	"github.com/Domenick1991/airreservation/internal/domain"
	"github.com/Domenick1991/airreservation/internal/repository"
)

type FlightUseCase interface {
	Create(ctx context.Context, kind domain.FlightKind, input CreateFlightInput) (*domain.Flight, error)
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

// InputValidator checks `validate` struct tags.
type InputValidator interface {
	Struct(s any) error
}

// CreateFlightInput carries the fields of a new flight. City names are checked
// while they are collected, not here.
type CreateFlightInput struct {
	DepartureCity    string  `json:"departure_city"`
	ArrivalCity      string  `json:"arrival_city"`
	DepartureTime    string  `json:"departure_time"`
	ArrivalTime      string  `json:"arrival_time"`
	Date             string  `json:"date"`
	Price            float64 `json:"price" validate:"gte=0"`
	FlightNumber     string  `json:"flight_number"`
	TotalSeats       int     `json:"total_seats" validate:"min=0"`
	BaggageAllowance int     `json:"baggage_allowance_kg" validate:"min=0"`
}

type FlightService struct {
	repo      repository.FlightRepository
	validator InputValidator
}

func NewFlightService(repo repository.FlightRepository, validator InputValidator) *FlightService {
	return &FlightService{repo: repo, validator: validator}
}

func (s *FlightService) Create(ctx context.Context, kind domain.FlightKind, input CreateFlightInput) (*domain.Flight, error) {
	if !kind.Valid() {
		return nil, fmt.Errorf("%w: unknown flight kind %q", domain.ErrInvalidFlightInput, kind)
	}
	if s.validator != nil {
		if err := s.validator.Struct(input); err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidFlightInput, err)
		}
	}

	flight := &domain.Flight{
		Kind:             kind,
		FlightNumber:     input.FlightNumber,
		DepartureCity:    input.DepartureCity,
		ArrivalCity:      input.ArrivalCity,
		DepartureTime:    input.DepartureTime,
		ArrivalTime:      input.ArrivalTime,
		Date:             input.Date,
		Price:            input.Price,
		TotalSeats:       input.TotalSeats,
		BaggageAllowance: input.BaggageAllowance,
	}
	if err := s.repo.Create(ctx, flight); err != nil {
		return nil, err
	}
	return flight, nil
}

// List returns the flights in creation order, or domain.ErrNoFlights.
func (s *FlightService) List(ctx context.Context) ([]domain.Flight, error) {
	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(flights) == 0 {
		return nil, domain.ErrNoFlights
	}
	return flights, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
