package memory

import (
	"context"

	"github.com/vidly/rental-system/internal/core/domain"
)

type CustomerRepository struct{ s *Store }

func (r *CustomerRepository) Create(ctx context.Context, c *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if c.ID == "" {
		c.ID = newID()
	}
	record(ctx, &r.s.data, customersOf, c.ID)
	r.s.data.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepository) FindByID(_ context.Context, id string) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	return &c, nil
}

func (r *CustomerRepository) List(_ context.Context) ([]*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedValues(r.s.data.customers, func(a, b *domain.Customer) bool {
		return a.Name < b.Name
	}), nil
}

func (r *CustomerRepository) Update(ctx context.Context, c *domain.Customer) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.customers[c.ID]; !ok {
		return domain.ErrCustomerNotFound
	}
	record(ctx, &r.s.data, customersOf, c.ID)
	r.s.data.customers[c.ID] = *c
	return nil
}

func (r *CustomerRepository) Delete(ctx context.Context, id string) (*domain.Customer, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	c, ok := r.s.data.customers[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}
	record(ctx, &r.s.data, customersOf, id)
	delete(r.s.data.customers, id)
	return &c, nil
}

type GenreRepository struct{ s *Store }

func (r *GenreRepository) Create(ctx context.Context, g *domain.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if g.ID == "" {
		g.ID = newID()
	}
	record(ctx, &r.s.data, genresOf, g.ID)
	r.s.data.genres[g.ID] = *g
	return nil
}

func (r *GenreRepository) FindByID(_ context.Context, id string) (*domain.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.data.genres[id]
	if !ok {
		return nil, domain.ErrGenreNotFound
	}
	return &g, nil
}

func (r *GenreRepository) List(_ context.Context) ([]*domain.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	return sortedValues(r.s.data.genres, func(a, b *domain.Genre) bool {
		return a.Name < b.Name
	}), nil
}

func (r *GenreRepository) Update(ctx context.Context, g *domain.Genre) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.data.genres[g.ID]; !ok {
		return domain.ErrGenreNotFound
	}
	record(ctx, &r.s.data, genresOf, g.ID)
	r.s.data.genres[g.ID] = *g
	return nil
}

func (r *GenreRepository) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	g, ok := r.s.data.genres[id]
	if !ok {
		return nil, domain.ErrGenreNotFound
	}
	record(ctx, &r.s.data, genresOf, id)
	delete(r.s.data.genres, id)
	return &g, nil
}
