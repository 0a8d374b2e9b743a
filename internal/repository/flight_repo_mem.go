package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/Domenick1991/airreservation/internal/domain"
)

type FlightRepository interface {
	Create(ctx context.Context, flight *domain.Flight) error
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	ReserveSeat(ctx context.Context, flightID int64) (*domain.Flight, error)
}

// MemFlightRepository keeps flights in creation order. A flight's ID is its
// 1-based position and never changes, flights are never removed.
type MemFlightRepository struct {
	flights []*domain.Flight
	mutex   sync.RWMutex
}

func NewFlightRepository() FlightRepository {
	return &MemFlightRepository{}
}

func (r *MemFlightRepository) Create(_ context.Context, flight *domain.Flight) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	stored := *flight
	stored.ID = int64(len(r.flights) + 1)
	r.flights = append(r.flights, &stored)
	flight.ID = stored.ID
	return nil
}

func (r *MemFlightRepository) List(_ context.Context) ([]domain.Flight, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	flights := make([]domain.Flight, 0, len(r.flights))
	for _, f := range r.flights {
		flights = append(flights, *f)
	}
	return flights, nil
}

func (r *MemFlightRepository) GetByID(_ context.Context, id int64) (*domain.Flight, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	f, err := r.get(id)
	if err != nil {
		return nil, err
	}
	flight := *f
	return &flight, nil
}

// ReserveSeat consumes one seat of the flight and returns its updated state.
func (r *MemFlightRepository) ReserveSeat(_ context.Context, flightID int64) (*domain.Flight, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	f, err := r.get(flightID)
	if err != nil {
		return nil, err
	}
	if f.AvailableSeats() <= 0 {
		return nil, domain.ErrNoSeatsAvailable
	}
	f.ConsumeSeat()

	flight := *f
	return &flight, nil
}

func (r *MemFlightRepository) get(id int64) (*domain.Flight, error) {
	if id < 1 || id > int64(len(r.flights)) {
		return nil, fmt.Errorf("flight %d: %w", id, domain.ErrInvalidFlightSelection)
	}
	return r.flights[id-1], nil
}

var _ FlightRepository = (*MemFlightRepository)(nil)
