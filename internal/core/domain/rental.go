package domain

import "time"

// RentalCustomer is the customer snapshot embedded in a rental at checkout.
type RentalCustomer struct {
	ID     string
	Name   string
	Phone  string
	IsGold bool
}

// RentalMovie is the movie snapshot embedded in a rental at checkout.
type RentalMovie struct {
	ID              string
	Title           string
	DailyRentalRate float64
}

// Rental is open while DateReturned is nil. DateReturned and RentalFee are set
// together, exactly once, by Return.
type Rental struct {
	ID           string
	Customer     RentalCustomer
	Movie        RentalMovie
	DateOut      time.Time
	DateReturned *time.Time
	RentalFee    *float64
}

// IsReturned reports whether the rental has been closed.
func (r *Rental) IsReturned() bool {
	return r.DateReturned != nil
}

// Return closes the rental at the given instant and computes its fee.
// A closed rental is left untouched and ErrReturnAlreadyProcessed is returned.
func (r *Rental) Return(now time.Time) error {
	if r.IsReturned() {
		return ErrReturnAlreadyProcessed
	}
	returned := now.UTC()
	fee := RentalFee(r.DateOut, returned, r.Movie.DailyRentalRate)
	r.DateReturned = &returned
	r.RentalFee = &fee
	return nil
}

// RentalDays counts the UTC calendar days between out and returned.
// Any rental is charged for at least one day.
func RentalDays(out, returned time.Time) int {
	from := truncateDay(out.UTC())
	to := truncateDay(returned.UTC())
	days := int(to.Sub(from).Hours() / 24)
	if days < 1 {
		return 1
	}
	return days
}

// RentalFee is RentalDays multiplied by the movie's daily rate.
func RentalFee(out, returned time.Time, dailyRate float64) float64 {
	return float64(RentalDays(out, returned)) * dailyRate
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
