package domain

type Genre struct {
	ID   string
	Name string
}
