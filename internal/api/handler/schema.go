package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type returnRequest struct {
	CustomerID string `json:"customerId" validate:"required,objectid"`
	MovieID    string `json:"movieId"    validate:"required,objectid"`
}

type rentalRequest struct {
	CustomerID string `json:"customerId" validate:"required,objectid"`
	MovieID    string `json:"movieId"    validate:"required,objectid"`
}

type genreRequest struct {
	Name string `json:"name" validate:"required,min=5,max=50"`
}

type customerRequest struct {
	Name   string `json:"name"   validate:"required,min=3,max=256"`
	Phone  string `json:"phone"  validate:"required,len=12"`
	IsGold bool   `json:"isGold"`
}

type movieRequest struct {
	Title           string  `json:"title"           validate:"required,min=5,max=255"`
	GenreID         string  `json:"genreId"         validate:"required,objectid"`
	NumberInStock   int     `json:"numberInStock"   validate:"min=0,max=255"`
	DailyRentalRate float64 `json:"dailyRentalRate" validate:"min=0,max=255"`
}

type registerRequest struct {
	Name     string `json:"name"     validate:"required,min=5,max=50"`
	Email    string `json:"email"    validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,min=5,max=255,email"`
	Password string `json:"password" validate:"required,min=5,max=255"`
}

// --- Response types ---
// Field names follow the document shape clients already consume (_id, camelCase).

type rentalCustomerResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

type rentalMovieResponse struct {
	ID              string  `json:"_id"`
	Title           string  `json:"title"`
	DailyRentalRate float64 `json:"dailyRentalRate"`
}

type rentalResponse struct {
	ID           string                 `json:"_id"`
	Customer     rentalCustomerResponse `json:"customer"`
	Movie        rentalMovieResponse    `json:"movie"`
	DateOut      time.Time              `json:"dateOut"`
	DateReturned *time.Time             `json:"dateReturned,omitempty"`
	RentalFee    *float64               `json:"rentalFee,omitempty"`
}

type genreResponse struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

type customerResponse struct {
	ID     string `json:"_id"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	IsGold bool   `json:"isGold"`
}

type movieResponse struct {
	ID              string        `json:"_id"`
	Title           string        `json:"title"`
	Genre           genreResponse `json:"genre"`
	NumberInStock   int           `json:"numberInStock"`
	DailyRentalRate float64       `json:"dailyRentalRate"`
}

type userResponse struct {
	ID      string `json:"_id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
}

type tokenResponse struct {
	Token string `json:"token"`
}
