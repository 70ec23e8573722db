package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// ReturnInput is the validated body of a return request.
type ReturnInput struct {
	CustomerID string
	MovieID    string
}

// ReturnService runs the return workflow.
type ReturnService interface {
	// LookupOpenRental finds the open rental for the pair. found is false when
	// there is none; that is a valid outcome, not an error.
	LookupOpenRental(ctx context.Context, customerID, movieID string) (rental *domain.Rental, found bool, err error)
	// ProcessReturn closes the open rental, computes its fee and restocks the movie.
	ProcessReturn(ctx context.Context, in ReturnInput) (*domain.Rental, error)
}

// CheckoutInput is the validated body of a rental request.
type CheckoutInput struct {
	CustomerID string
	MovieID    string
}

// RentalService defines the checkout use cases.
type RentalService interface {
	Checkout(ctx context.Context, in CheckoutInput) (*domain.Rental, error)
	List(ctx context.Context) ([]*domain.Rental, error)
}
