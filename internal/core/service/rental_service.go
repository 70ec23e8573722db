package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type RentalService struct {
	rentals   ports.RentalRepository
	movies    ports.MovieRepository
	customers ports.CustomerRepository
	tx        ports.Transactor
	clock     ports.Clock
	metrics   ports.Metrics
	logger    zerolog.Logger
}

func NewRentalService(
	rentals ports.RentalRepository,
	movies ports.MovieRepository,
	customers ports.CustomerRepository,
	tx ports.Transactor,
	clock ports.Clock,
	metrics ports.Metrics,
	logger zerolog.Logger,
) *RentalService {
	if clock == nil {
		clock = SystemClock{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &RentalService{
		rentals:   rentals,
		movies:    movies,
		customers: customers,
		tx:        tx,
		clock:     clock,
		metrics:   metrics,
		logger:    logger,
	}
}

// Checkout takes one copy of the movie out of stock and opens a rental with
// snapshots of the customer and movie as they are now.
func (s *RentalService) Checkout(ctx context.Context, in ports.CheckoutInput) (*domain.Rental, error) {
	customer, err := s.customers.FindByID(ctx, in.CustomerID)
	if err != nil {
		if errors.Is(err, domain.ErrCustomerNotFound) {
			return nil, domain.ErrUnknownCustomer
		}
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, in.MovieID)
	if err != nil {
		if errors.Is(err, domain.ErrMovieNotFound) {
			return nil, domain.ErrUnknownMovie
		}
		return nil, err
	}
	if movie.NumberInStock <= 0 {
		return nil, domain.ErrMovieOutOfStock
	}

	rental := &domain.Rental{
		Customer: customer.Snapshot(),
		Movie:    movie.Snapshot(),
		DateOut:  s.clock.Now(),
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.movies.DecrementStock(ctx, movie.ID); err != nil {
			return err
		}
		return s.rentals.Create(ctx, rental)
	})
	if err != nil {
		if !errors.Is(err, domain.ErrMovieOutOfStock) {
			s.logger.Error().Err(err).Str("movie_id", movie.ID).Msg("failed to create rental")
		}
		return nil, fmt.Errorf("checkout: %w", err)
	}

	s.metrics.RentalCreated()
	s.logger.Info().Str("rental_id", rental.ID).Str("customer_id", customer.ID).Str("movie_id", movie.ID).Msg("rental created")

	return rental, nil
}

func (s *RentalService) List(ctx context.Context) ([]*domain.Rental, error) {
	return s.rentals.List(ctx)
}
