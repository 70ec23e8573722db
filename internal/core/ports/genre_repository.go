package ports

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

type GenreRepository interface {
	Create(ctx context.Context, g *domain.Genre) error
	FindByID(ctx context.Context, id string) (*domain.Genre, error)
	List(ctx context.Context) ([]*domain.Genre, error)
	Update(ctx context.Context, g *domain.Genre) error
	Delete(ctx context.Context, id string) (*domain.Genre, error)
}
