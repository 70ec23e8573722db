package domain

import "errors"

var ErrRentalNotFound = errors.New("rental not found")
var ErrReturnAlreadyProcessed = errors.New("return already processed")
var ErrReturnInProgress = errors.New("return already in progress")

var ErrMovieNotFound = errors.New("movie not found")
var ErrMovieOutOfStock = errors.New("movie not in stock")
var ErrUnknownMovie = errors.New("invalid movie")

var ErrCustomerNotFound = errors.New("customer not found")
var ErrUnknownCustomer = errors.New("invalid customer")

var ErrGenreNotFound = errors.New("genre not found")
var ErrUnknownGenre = errors.New("invalid genre")

var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already registered")
var ErrInvalidCredentials = errors.New("invalid email or password")

var ErrUnauthenticated = errors.New("access denied: invalid or missing token")
var ErrForbidden = errors.New("access forbidden")

// ErrPersistence marks failures of the backing store. Repositories wrap driver
// errors with it so callers can tell storage outages from domain rejections.
var ErrPersistence = errors.New("persistence failure")
