package handler

import (
	"github.com/samber/lo"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
)

// --- Request → Service input ---

func toCustomerInput(req customerRequest) ports.CustomerInput {
	return ports.CustomerInput{Name: req.Name, Phone: req.Phone, IsGold: req.IsGold}
}

func toMovieInput(req movieRequest) ports.MovieInput {
	return ports.MovieInput{
		Title:           req.Title,
		GenreID:         req.GenreID,
		NumberInStock:   req.NumberInStock,
		DailyRentalRate: req.DailyRentalRate,
	}
}

// --- Domain → HTTP response ---

func toRentalResponse(r *domain.Rental) rentalResponse {
	resp := rentalResponse{
		ID: r.ID,
		Customer: rentalCustomerResponse{
			ID:     r.Customer.ID,
			Name:   r.Customer.Name,
			Phone:  r.Customer.Phone,
			IsGold: r.Customer.IsGold,
		},
		Movie: rentalMovieResponse{
			ID:              r.Movie.ID,
			Title:           r.Movie.Title,
			DailyRentalRate: r.Movie.DailyRentalRate,
		},
		DateOut:   r.DateOut.UTC(),
		RentalFee: r.RentalFee,
	}
	if r.DateReturned != nil {
		resp.DateReturned = lo.ToPtr(r.DateReturned.UTC())
	}
	return resp
}

func toGenreResponse(g *domain.Genre) genreResponse {
	return genreResponse{ID: g.ID, Name: g.Name}
}

func toCustomerResponse(c *domain.Customer) customerResponse {
	return customerResponse{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold}
}

func toMovieResponse(m *domain.Movie) movieResponse {
	return movieResponse{
		ID:              m.ID,
		Title:           m.Title,
		Genre:           genreResponse{ID: m.Genre.ID, Name: m.Genre.Name},
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: m.DailyRentalRate,
	}
}

func toUserResponse(u *domain.User) userResponse {
	return userResponse{ID: u.ID, Name: u.Name, Email: u.Email, IsAdmin: u.IsAdmin}
}

// mapAll converts a list with fn; the result is never nil so empty lists
// serialize as [].
func mapAll[T, R any](items []*T, fn func(*T) R) []R {
	return lo.Map(items, func(item *T, _ int) R { return fn(item) })
}
