package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// RentalRepository defines persistence operations for rentals.
type RentalRepository interface {
	// Create inserts a new rental and assigns its ID.
	Create(ctx context.Context, r *domain.Rental) error
	// FindOpen returns the rental for the pair whose dateReturned is absent.
	// Closed rentals are never matched; domain.ErrRentalNotFound when none is open.
	FindOpen(ctx context.Context, customerID, movieID string) (*domain.Rental, error)
	// HasReturned reports whether a closed rental exists for the pair.
	HasReturned(ctx context.Context, customerID, movieID string) (bool, error)
	// MarkReturned persists dateReturned and rentalFee only if the stored rental
	// is still open. domain.ErrReturnAlreadyProcessed when it is not.
	MarkReturned(ctx context.Context, r *domain.Rental) error
	// List returns all rentals, most recent dateOut first.
	List(ctx context.Context) ([]*domain.Rental, error)
}
