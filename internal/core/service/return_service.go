package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

type returnService struct {
	rentals ports.RentalRepository
	movies  ports.MovieRepository
	tx      ports.Transactor
	locker  ports.ReturnLocker
	clock   ports.Clock
	metrics ports.Metrics
	log     zerolog.Logger
}

// NewReturnService returns a ReturnService. locker may be nil, in which case
// concurrent requests are arbitrated by the conditional update alone.
// A nil clock or metrics falls back to the system clock and no recording.
func NewReturnService(
	rentals ports.RentalRepository,
	movies ports.MovieRepository,
	tx ports.Transactor,
	locker ports.ReturnLocker,
	clock ports.Clock,
	metrics ports.Metrics,
	log zerolog.Logger,
) ports.ReturnService {
	if clock == nil {
		clock = SystemClock{}
	}
	if metrics == nil {
		metrics = nopMetrics{}
	}
	return &returnService{
		rentals: rentals,
		movies:  movies,
		tx:      tx,
		locker:  locker,
		clock:   clock,
		metrics: metrics,
		log:     log,
	}
}

func (s *returnService) LookupOpenRental(ctx context.Context, customerID, movieID string) (*domain.Rental, bool, error) {
	rental, err := s.rentals.FindOpen(ctx, customerID, movieID)
	if errors.Is(err, domain.ErrRentalNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return rental, true, nil
}

// ProcessReturn resolves the open rental, closes it and restocks the movie.
// The rental write always precedes the stock write; both share a transaction
// when the store supports one.
func (s *returnService) ProcessReturn(ctx context.Context, in ports.ReturnInput) (*domain.Rental, error) {
	start := time.Now()

	rental, err := s.processReturn(ctx, in)
	if err != nil {
		s.metrics.ReturnRejected(rejectReason(err), time.Since(start))
		return nil, err
	}

	s.metrics.ReturnProcessed(*rental.RentalFee, time.Since(start))
	return rental, nil
}

func (s *returnService) processReturn(ctx context.Context, in ports.ReturnInput) (*domain.Rental, error) {
	if s.locker != nil {
		unlock, err := s.locker.Lock(ctx, in.CustomerID, in.MovieID)
		switch {
		case errors.Is(err, domain.ErrReturnInProgress):
			return nil, err
		case err != nil:
			s.log.Warn().Err(err).Str("customer_id", in.CustomerID).Str("movie_id", in.MovieID).Msg("return lock unavailable, relying on conditional update")
		default:
			defer func() {
				if err := unlock(context.WithoutCancel(ctx)); err != nil {
					s.log.Warn().Err(err).Str("customer_id", in.CustomerID).Msg("failed to release return lock")
				}
			}()
		}
	}

	// 1. Resolve the open rental.
	rental, found, err := s.LookupOpenRental(ctx, in.CustomerID, in.MovieID)
	if err != nil {
		return nil, fmt.Errorf("process return: lookup: %w", err)
	}
	if !found {
		returned, err := s.rentals.HasReturned(ctx, in.CustomerID, in.MovieID)
		if err != nil {
			return nil, fmt.Errorf("process return: lookup: %w", err)
		}
		if returned {
			return nil, domain.ErrReturnAlreadyProcessed
		}
		return nil, domain.ErrRentalNotFound
	}

	// 2. State guard.
	if rental.IsReturned() {
		return nil, domain.ErrReturnAlreadyProcessed
	}

	// 3 + 4. Close the rental, then restock.
	if err := rental.Return(s.clock.Now()); err != nil {
		return nil, err
	}
	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.rentals.MarkReturned(ctx, rental); err != nil {
			return err
		}
		if err := s.movies.IncrementStock(ctx, rental.Movie.ID, 1); err != nil {
			return fmt.Errorf("restock movie %s: %w", rental.Movie.ID, err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, domain.ErrReturnAlreadyProcessed) {
			s.log.Error().Err(err).Str("rental_id", rental.ID).Str("movie_id", rental.Movie.ID).Msg("return not persisted")
		}
		return nil, fmt.Errorf("process return: %w", err)
	}

	s.log.Info().
		Str("rental_id", rental.ID).
		Str("customer_id", rental.Customer.ID).
		Str("movie_id", rental.Movie.ID).
		Float64("rental_fee", *rental.RentalFee).
		Msg("rental returned")

	return rental, nil
}

func rejectReason(err error) string {
	switch {
	case errors.Is(err, domain.ErrRentalNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrReturnAlreadyProcessed):
		return "already_processed"
	case errors.Is(err, domain.ErrReturnInProgress):
		return "in_progress"
	default:
		return "persistence"
	}
}
