package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type MovieService struct {
	movies ports.MovieRepository
	genres ports.GenreRepository
	logger zerolog.Logger
}

func NewMovieService(movies ports.MovieRepository, genres ports.GenreRepository, logger zerolog.Logger) *MovieService {
	return &MovieService{movies: movies, genres: genres, logger: logger}
}

func (s *MovieService) List(ctx context.Context) ([]*domain.Movie, error) {
	return s.movies.List(ctx)
}

func (s *MovieService) Get(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.FindByID(ctx, id)
}

func (s *MovieService) Create(ctx context.Context, in ports.MovieInput) (*domain.Movie, error) {
	m, err := s.build(ctx, "", in)
	if err != nil {
		return nil, err
	}
	if err := s.movies.Create(ctx, m); err != nil {
		return nil, err
	}
	s.logger.Info().Str("movie_id", m.ID).Str("genre", m.Genre.Name).Msg("movie created")
	return m, nil
}

func (s *MovieService) Update(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error) {
	m, err := s.build(ctx, id, in)
	if err != nil {
		return nil, err
	}
	if err := s.movies.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MovieService) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	return s.movies.Delete(ctx, id)
}

// build resolves the genre snapshot; an unknown genre is a client error.
func (s *MovieService) build(ctx context.Context, id string, in ports.MovieInput) (*domain.Movie, error) {
	genre, err := s.genres.FindByID(ctx, in.GenreID)
	if err != nil {
		if errors.Is(err, domain.ErrGenreNotFound) {
			return nil, domain.ErrUnknownGenre
		}
		return nil, err
	}

	return &domain.Movie{
		ID:              id,
		Title:           in.Title,
		Genre:           domain.MovieGenre{ID: genre.ID, Name: genre.Name},
		NumberInStock:   in.NumberInStock,
		DailyRentalRate: in.DailyRentalRate,
	}, nil
}
