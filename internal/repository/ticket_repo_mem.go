package repository

import (
	"context"
	"slices"
	"sync"

	"github.com/Domenick1991/airreservation/internal/domain"
)

type TicketRepository interface {
	Add(ctx context.Context, ticket *domain.Ticket) error
	List(ctx context.Context) ([]domain.Ticket, error)
	FindByPassengerID(ctx context.Context, idNumber string) (*domain.Ticket, error)
	DeleteByPassengerID(ctx context.Context, idNumber string) ([]domain.Ticket, error)
}

// MemTicketRepository keeps tickets in booking order. Passenger id numbers are
// not unique.
type MemTicketRepository struct {
	tickets []domain.Ticket
	mutex   sync.RWMutex
}

func NewTicketRepository() TicketRepository {
	return &MemTicketRepository{}
}

func (r *MemTicketRepository) Add(_ context.Context, ticket *domain.Ticket) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.tickets = append(r.tickets, *ticket)
	return nil
}

func (r *MemTicketRepository) List(_ context.Context) ([]domain.Ticket, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	return slices.Clone(r.tickets), nil
}

// FindByPassengerID returns the earliest booked ticket for idNumber.
func (r *MemTicketRepository) FindByPassengerID(_ context.Context, idNumber string) (*domain.Ticket, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for i := range r.tickets {
		if r.tickets[i].ID() == idNumber {
			ticket := r.tickets[i]
			return &ticket, nil
		}
	}
	return nil, domain.ErrTicketNotFound
}

// DeleteByPassengerID removes every ticket booked under idNumber and returns
// the removed tickets in booking order.
func (r *MemTicketRepository) DeleteByPassengerID(_ context.Context, idNumber string) ([]domain.Ticket, error) {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var removed []domain.Ticket
	kept := r.tickets[:0]
	for _, t := range r.tickets {
		if t.ID() == idNumber {
			removed = append(removed, t)
			continue
		}
		kept = append(kept, t)
	}
	if len(removed) == 0 {
		return nil, domain.ErrTicketNotFound
	}
	clear(r.tickets[len(kept):])
	r.tickets = kept
	return removed, nil
}

var _ TicketRepository = (*MemTicketRepository)(nil)
