package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

// MovieRepository defines persistence operations for movies.
type MovieRepository interface {
	Create(ctx context.Context, m *domain.Movie) error
	FindByID(ctx context.Context, id string) (*domain.Movie, error)
	// List returns all movies sorted by title.
	List(ctx context.Context) ([]*domain.Movie, error)
	Update(ctx context.Context, m *domain.Movie) error
	Delete(ctx context.Context, id string) (*domain.Movie, error)

	// IncrementStock atomically adds delta to numberInStock.
	IncrementStock(ctx context.Context, id string, delta int) error
	// DecrementStock atomically removes one copy, failing with
	// domain.ErrMovieOutOfStock when numberInStock is already zero.
	DecrementStock(ctx context.Context, id string) error
}
