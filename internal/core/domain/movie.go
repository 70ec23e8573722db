package domain

// MovieGenre is the genre snapshot embedded in a movie.
type MovieGenre struct {
	ID   string
	Name string
}

// Movie is a title in the store's catalog.
type Movie struct {
	ID              string
	Title           string
	Genre           MovieGenre
	NumberInStock   int
	DailyRentalRate float64
}

// Snapshot returns the denormalized copy stored inside a rental.
func (m *Movie) Snapshot() RentalMovie {
	return RentalMovie{ID: m.ID, Title: m.Title, DailyRentalRate: m.DailyRentalRate}
}
