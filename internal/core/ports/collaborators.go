package ports

import (
	"context"
	"time"
)

// Transactor runs fn so that every repository write made with the ctx it
// receives commits or aborts together.
type Transactor interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// Clock is the source of "now" for fee calculation.
type Clock interface {
	Now() time.Time
}

// ReturnLocker serializes return requests for one customer/movie pair.
type ReturnLocker interface {
	// Lock returns domain.ErrReturnInProgress when another request holds the pair.
	Lock(ctx context.Context, customerID, movieID string) (unlock func(context.Context) error, err error)
}

// Metrics records business outcomes of the rental workflows.
type Metrics interface {
	ReturnProcessed(fee float64, elapsed time.Duration)
	ReturnRejected(reason string, elapsed time.Duration)
	RentalCreated()
}
