package memory

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

type MovieRepository struct{ s *Store }

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if m.ID == "" {
		m.ID = newID()
	}
	record(ctx, &r.s.data, moviesOf, m.ID)
	r.s.data.movies[m.ID] = *m
	return nil
}

func (r *MovieRepository) FindByID(_ context.Context, id string) (*domain.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.data.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	return &m, nil
}

func (r *MovieRepository) List(_ context.Context) ([]*domain.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedValues(r.s.data.movies, func(a, b *domain.Movie) bool {
		return a.Title < b.Title
	}), nil
}

func (r *MovieRepository) Update(ctx context.Context, m *domain.Movie) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.movies[m.ID]; !ok {
		return domain.ErrMovieNotFound
	}
	record(ctx, &r.s.data, moviesOf, m.ID)
	r.s.data.movies[m.ID] = *m
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.data.movies[id]
	if !ok {
		return nil, domain.ErrMovieNotFound
	}
	record(ctx, &r.s.data, moviesOf, id)
	delete(r.s.data.movies, id)
	return &m, nil
}

func (r *MovieRepository) IncrementStock(ctx context.Context, id string, delta int) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.FailIncrementStock != nil {
		return r.s.FailIncrementStock
	}
	m, ok := r.s.data.movies[id]
	if !ok {
		return domain.ErrMovieNotFound
	}
	record(ctx, &r.s.data, moviesOf, id)
	m.NumberInStock += delta
	r.s.data.movies[id] = m
	return nil
}

func (r *MovieRepository) DecrementStock(ctx context.Context, id string) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	m, ok := r.s.data.movies[id]
	if !ok {
		return domain.ErrMovieNotFound
	}
	if m.NumberInStock <= 0 {
		return domain.ErrMovieOutOfStock
	}
	record(ctx, &r.s.data, moviesOf, id)
	m.NumberInStock--
	r.s.data.movies[id] = m
	return nil
}
