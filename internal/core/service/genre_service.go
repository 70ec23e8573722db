package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type GenreService struct {
	repo   ports.GenreRepository
	logger zerolog.Logger
}

func NewGenreService(repo ports.GenreRepository, logger zerolog.Logger) *GenreService {
	return &GenreService{repo: repo, logger: logger}
}

func (s *GenreService) List(ctx context.Context) ([]*domain.Genre, error) {
	return s.repo.List(ctx)
}

func (s *GenreService) Get(ctx context.Context, id string) (*domain.Genre, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *GenreService) Create(ctx context.Context, name string) (*domain.Genre, error) {
	g := &domain.Genre{Name: name}
	if err := s.repo.Create(ctx, g); err != nil {
		return nil, err
	}
	s.logger.Info().Str("genre_id", g.ID).Msg("genre created")
	return g, nil
}

func (s *GenreService) Rename(ctx context.Context, id, name string) (*domain.Genre, error) {
	g := &domain.Genre{ID: id, Name: name}
	if err := s.repo.Update(ctx, g); err != nil {
		return nil, err
	}
	return g, nil
}

func (s *GenreService) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	g, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("genre_id", id).Msg("genre deleted")
	return g, nil
}
