package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

type GenreService interface {
	List(ctx context.Context) ([]*domain.Genre, error)
	Get(ctx context.Context, id string) (*domain.Genre, error)
	Create(ctx context.Context, name string) (*domain.Genre, error)
	Rename(ctx context.Context, id, name string) (*domain.Genre, error)
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}

// CustomerInput carries the writable fields of a customer.
type CustomerInput struct {
	Name   string
	Phone  string
	IsGold bool
}

type CustomerService interface {
	List(ctx context.Context) ([]*domain.Customer, error)
	Get(ctx context.Context, id string) (*domain.Customer, error)
	Create(ctx context.Context, in CustomerInput) (*domain.Customer, error)
	Update(ctx context.Context, id string, in CustomerInput) (*domain.Customer, error)
	Delete(ctx context.Context, id string) (*domain.Customer, error)
}

// MovieInput carries the writable fields of a movie. GenreID must reference
// an existing genre, whose name is copied into the movie.
type MovieInput struct {
	Title           string
	GenreID         string
	NumberInStock   int
	DailyRentalRate float64
}

type MovieService interface {
	List(ctx context.Context) ([]*domain.Movie, error)
	Get(ctx context.Context, id string) (*domain.Movie, error)
	Create(ctx context.Context, in MovieInput) (*domain.Movie, error)
	Update(ctx context.Context, id string, in MovieInput) (*domain.Movie, error)
	Delete(ctx context.Context, id string) (*domain.Movie, error)
}
