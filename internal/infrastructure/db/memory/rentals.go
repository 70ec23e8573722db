package memory

import (
	"context"
	"errors"

	"github.com/vidly/rental-system/internal/core/domain"
)

type RentalRepository struct{ s *Store }

func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if rental.ID == "" {
		rental.ID = newID()
	}
	record(ctx, &r.s.data, rentalsOf, rental.ID)
	r.s.data.rentals[rental.ID] = cloneRental(rental)
	return nil
}

func (r *RentalRepository) FindOpen(_ context.Context, customerID, movieID string) (*domain.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rental := range r.s.data.rentals {
		if rental.Customer.ID == customerID && rental.Movie.ID == movieID && !rental.IsReturned() {
			out := cloneRental(&rental)
			return &out, nil
		}
	}
	return nil, domain.ErrRentalNotFound
}

func (r *RentalRepository) HasReturned(_ context.Context, customerID, movieID string) (bool, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	for _, rental := range r.s.data.rentals {
		if rental.Customer.ID == customerID && rental.Movie.ID == movieID && rental.IsReturned() {
			return true, nil
		}
	}
	return false, nil
}

func (r *RentalRepository) MarkReturned(ctx context.Context, rental *domain.Rental) error {
	if rental.DateReturned == nil || rental.RentalFee == nil {
		return errors.New("mark returned: rental is still open")
	}

	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	stored, ok := r.s.data.rentals[rental.ID]
	if !ok {
		return domain.ErrRentalNotFound
	}
	if stored.IsReturned() {
		return domain.ErrReturnAlreadyProcessed
	}
	record(ctx, &r.s.data, rentalsOf, rental.ID)
	returned, fee := *rental.DateReturned, *rental.RentalFee
	stored.DateReturned = &returned
	stored.RentalFee = &fee
	r.s.data.rentals[rental.ID] = stored
	return nil
}

func (r *RentalRepository) List(_ context.Context) ([]*domain.Rental, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedValues(r.s.data.rentals, func(a, b *domain.Rental) bool {
		return a.DateOut.After(b.DateOut)
	}), nil
}

// Get returns the stored rental by id, for assertions.
func (r *RentalRepository) Get(id string) (domain.Rental, bool) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	rental, ok := r.s.data.rentals[id]
	return cloneRental(&rental), ok
}

// cloneRental copies the optional fields so stored state never aliases callers.
func cloneRental(r *domain.Rental) domain.Rental {
	out := *r
	if r.DateReturned != nil {
		t := *r.DateReturned
		out.DateReturned = &t
	}
	if r.RentalFee != nil {
		f := *r.RentalFee
		out.RentalFee = &f
	}
	return out
}
