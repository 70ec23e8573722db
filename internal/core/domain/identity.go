package domain

// Identity is the caller decoded from a verified token. It is immutable for
// the duration of a request.
type Identity struct {
	UserID  string
	IsAdmin bool
}
