package domain

// Customer is a store member who can rent movies.
type Customer struct {
	ID     string
	Name   string
	Phone  string
	IsGold bool
}

// Snapshot returns the denormalized copy stored inside a rental.
func (c *Customer) Snapshot() RentalCustomer {
	return RentalCustomer{ID: c.ID, Name: c.Name, Phone: c.Phone, IsGold: c.IsGold}
}
