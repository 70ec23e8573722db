// Package memory provides an in-memory implementation of the repository
// ports. It backs the service and HTTP tests and mirrors the conditional
// write semantics of the MongoDB repositories.
package memory

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vidly/rental-system/internal/core/domain"
)

type state struct {
	rentals   map[string]domain.Rental
	movies    map[string]domain.Movie
	customers map[string]domain.Customer
	genres    map[string]domain.Genre
	users     map[string]domain.User
}

func rentalsOf(d *state) map[string]domain.Rental     { return d.rentals }
func moviesOf(d *state) map[string]domain.Movie       { return d.movies }
func customersOf(d *state) map[string]domain.Customer { return d.customers }
func genresOf(d *state) map[string]domain.Genre       { return d.genres }
func usersOf(d *state) map[string]domain.User         { return d.users }

type txKey struct{}

// journal holds the undo steps of the writes made inside one transaction.
type journal struct {
	undo []func(*state)
}

// record remembers the current value of table[id] so a rollback can put it
// back. It is a no-op outside a transaction. Callers hold s.mu.
func record[T any](ctx context.Context, d *state, table func(*state) map[string]T, id string) {
	j, ok := ctx.Value(txKey{}).(*journal)
	if !ok {
		return
	}
	prev, existed := table(d)[id]
	j.undo = append(j.undo, func(d *state) {
		if existed {
			table(d)[id] = prev
		} else {
			delete(table(d), id)
		}
	})
}

// Store holds every collection behind one mutex. Transactions are serialized
// and roll back only the records written through their own ctx; writes to
// other records made outside the transaction are kept.
type Store struct {
	mu   sync.Mutex
	txMu sync.Mutex
	data state

	// FailIncrementStock, when set, is returned by IncrementStock.
	FailIncrementStock error
}

func NewStore() *Store {
	return &Store{data: state{
		rentals:   make(map[string]domain.Rental),
		movies:    make(map[string]domain.Movie),
		customers: make(map[string]domain.Customer),
		genres:    make(map[string]domain.Genre),
		users:     make(map[string]domain.User),
	}}
}

func (s *Store) Rentals() *RentalRepository     { return &RentalRepository{s} }
func (s *Store) Movies() *MovieRepository       { return &MovieRepository{s} }
func (s *Store) Customers() *CustomerRepository { return &CustomerRepository{s} }
func (s *Store) Genres() *GenreRepository       { return &GenreRepository{s} }
func (s *Store) Users() *UserRepository         { return &UserRepository{s} }

// WithinTransaction implements ports.Transactor.
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	s.txMu.Lock()
	defer s.txMu.Unlock()

	j := &journal{}
	if err := fn(context.WithValue(ctx, txKey{}, j)); err != nil {
		s.mu.Lock()
		for i := len(j.undo) - 1; i >= 0; i-- {
			j.undo[i](&s.data)
		}
		s.mu.Unlock()
		return err
	}
	return nil
}

func newID() string {
	return primitive.NewObjectID().Hex()
}

// sortedValues returns pointers to copies of m's values ordered by less.
func sortedValues[T any](m map[string]T, less func(a, b *T) bool) []*T {
	out := make([]*T, 0, len(m))
	for _, v := range m {
		v := v
		out = append(out, &v)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}
