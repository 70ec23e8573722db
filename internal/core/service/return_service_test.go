package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
	"github.com/vidly/rental-system/internal/infrastructure/db/memory"
)

type fixedClock struct{ now time.Time }

func (c fixedClock) Now() time.Time { return c.now }

type mockLocker struct {
	mock.Mock
}

func (m *mockLocker) Lock(ctx context.Context, customerID, movieID string) (func(context.Context) error, error) {
	args := m.Called(ctx, customerID, movieID)
	unlock, _ := args.Get(0).(func(context.Context) error)
	return unlock, args.Error(1)
}

type recordingMetrics struct {
	mu       sync.Mutex
	fees     []float64
	rejected []string
	created  int
}

func (m *recordingMetrics) ReturnProcessed(fee float64, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fees = append(m.fees, fee)
}

func (m *recordingMetrics) ReturnRejected(reason string, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rejected = append(m.rejected, reason)
}

func (m *recordingMetrics) RentalCreated() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.created++
}

type returnFixture struct {
	store    *memory.Store
	metrics  *recordingMetrics
	customer domain.Customer
	movie    domain.Movie
	now      time.Time
}

func newReturnFixture(t *testing.T) *returnFixture {
	t.Helper()

	store := memory.NewStore()
	ctx := context.Background()

	customer := domain.Customer{Name: "customer1", Phone: "555123456789"}
	require.NoError(t, store.Customers().Create(ctx, &customer))

	movie := domain.Movie{
		Title:           "movie title",
		Genre:           domain.MovieGenre{ID: "g1", Name: "genre1"},
		NumberInStock:   10,
		DailyRentalRate: 2,
	}
	require.NoError(t, store.Movies().Create(ctx, &movie))

	return &returnFixture{
		store:    store,
		metrics:  &recordingMetrics{},
		customer: customer,
		movie:    movie,
		now:      time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC),
	}
}

func (f *returnFixture) rent(t *testing.T, dateOut time.Time) *domain.Rental {
	t.Helper()
	rental := &domain.Rental{
		Customer: f.customer.Snapshot(),
		Movie:    f.movie.Snapshot(),
		DateOut:  dateOut,
	}
	require.NoError(t, f.store.Rentals().Create(context.Background(), rental))
	return rental
}

func (f *returnFixture) service(locker ports.ReturnLocker) ports.ReturnService {
	return NewReturnService(f.store.Rentals(), f.store.Movies(), f.store, locker, fixedClock{f.now}, f.metrics, zerolog.Nop())
}

func (f *returnFixture) input() ports.ReturnInput {
	return ports.ReturnInput{CustomerID: f.customer.ID, MovieID: f.movie.ID}
}

func (f *returnFixture) stock(t *testing.T) int {
	t.Helper()
	m, err := f.store.Movies().FindByID(context.Background(), f.movie.ID)
	require.NoError(t, err)
	return m.NumberInStock
}

func TestReturnService_ProcessReturn_ComputesFeeAndRestocks(t *testing.T) {
	f := newReturnFixture(t)
	rental := f.rent(t, f.now.AddDate(0, 0, -7))

	got, err := f.service(nil).ProcessReturn(context.Background(), f.input())
	require.NoError(t, err)

	require.NotNil(t, got.DateReturned)
	require.NotNil(t, got.RentalFee)
	assert.Equal(t, rental.ID, got.ID)
	assert.Equal(t, f.now, *got.DateReturned)
	assert.Equal(t, 14.0, *got.RentalFee)
	assert.Equal(t, 11, f.stock(t))

	stored, ok := f.store.Rentals().Get(rental.ID)
	require.True(t, ok)
	assert.True(t, stored.IsReturned())
	assert.Equal(t, 14.0, *stored.RentalFee)
}

func TestReturnService_ProcessReturn_RecordsOutcome(t *testing.T) {
	f := newReturnFixture(t)
	f.rent(t, f.now.AddDate(0, 0, -7))
	svc := f.service(nil)

	_, err := svc.ProcessReturn(context.Background(), f.input())
	require.NoError(t, err)
	_, err = svc.ProcessReturn(context.Background(), f.input())
	require.ErrorIs(t, err, domain.ErrReturnAlreadyProcessed)

	assert.Equal(t, []float64{14}, f.metrics.fees)
	assert.Equal(t, []string{"already_processed"}, f.metrics.rejected)
}

func TestReturnService_ProcessReturn_SecondCallIsRejected(t *testing.T) {
	f := newReturnFixture(t)
	f.rent(t, f.now.AddDate(0, 0, -3))
	svc := f.service(nil)

	_, err := svc.ProcessReturn(context.Background(), f.input())
	require.NoError(t, err)

	_, err = svc.ProcessReturn(context.Background(), f.input())
	assert.ErrorIs(t, err, domain.ErrReturnAlreadyProcessed)
	assert.Equal(t, 11, f.stock(t))
}

func TestReturnService_ProcessReturn_NoRental(t *testing.T) {
	f := newReturnFixture(t)

	_, err := f.service(nil).ProcessReturn(context.Background(), f.input())
	assert.ErrorIs(t, err, domain.ErrRentalNotFound)
	assert.Equal(t, 10, f.stock(t))
}

func TestReturnService_LookupOpenRental(t *testing.T) {
	f := newReturnFixture(t)
	svc := f.service(nil)
	ctx := context.Background()

	_, found, err := svc.LookupOpenRental(ctx, f.customer.ID, f.movie.ID)
	require.NoError(t, err)
	assert.False(t, found)

	closed := f.rent(t, f.now.AddDate(0, 0, -10))
	returned := f.now.AddDate(0, 0, -8)
	fee := 4.0
	closed.DateReturned, closed.RentalFee = &returned, &fee
	require.NoError(t, f.store.Rentals().MarkReturned(ctx, closed))

	_, found, err = svc.LookupOpenRental(ctx, f.customer.ID, f.movie.ID)
	require.NoError(t, err)
	assert.False(t, found, "closed rentals must not match")

	open := f.rent(t, f.now.AddDate(0, 0, -2))
	got, found, err := svc.LookupOpenRental(ctx, f.customer.ID, f.movie.ID)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, open.ID, got.ID)
	assert.Nil(t, got.DateReturned)

	_, found, err = svc.LookupOpenRental(ctx, f.customer.ID, "000000000000000000000000")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestReturnService_ProcessReturn_ConcurrentRequests(t *testing.T) {
	f := newReturnFixture(t)
	f.rent(t, f.now.AddDate(0, 0, -5))
	svc := f.service(nil)

	const workers = 16
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		successes int
		failures  []error
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.ProcessReturn(context.Background(), f.input())
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				successes++
				return
			}
			failures = append(failures, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, successes)
	for _, err := range failures {
		assert.True(t,
			errors.Is(err, domain.ErrReturnAlreadyProcessed) || errors.Is(err, domain.ErrRentalNotFound),
			"unexpected error: %v", err)
	}
	assert.Equal(t, 11, f.stock(t))
}

func TestReturnService_ProcessReturn_RestockFailureRollsBack(t *testing.T) {
	f := newReturnFixture(t)
	rental := f.rent(t, f.now.AddDate(0, 0, -1))
	f.store.FailIncrementStock = errors.New("connection reset")

	_, err := f.service(nil).ProcessReturn(context.Background(), f.input())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrReturnAlreadyProcessed)

	stored, ok := f.store.Rentals().Get(rental.ID)
	require.True(t, ok)
	assert.False(t, stored.IsReturned())
	assert.Equal(t, 10, f.stock(t))
}

func TestReturnService_ProcessReturn_LockHeldElsewhere(t *testing.T) {
	f := newReturnFixture(t)
	f.rent(t, f.now.AddDate(0, 0, -1))

	locker := &mockLocker{}
	locker.On("Lock", mock.Anything, f.customer.ID, f.movie.ID).Return(nil, domain.ErrReturnInProgress)

	_, err := f.service(locker).ProcessReturn(context.Background(), f.input())
	assert.ErrorIs(t, err, domain.ErrReturnInProgress)
	assert.Equal(t, 10, f.stock(t))
	locker.AssertExpectations(t)
}

func TestReturnService_ProcessReturn_ReleasesLock(t *testing.T) {
	f := newReturnFixture(t)
	f.rent(t, f.now.AddDate(0, 0, -1))

	released := 0
	unlock := func(context.Context) error {
		released++
		return nil
	}
	locker := &mockLocker{}
	locker.On("Lock", mock.Anything, f.customer.ID, f.movie.ID).Return(unlock, nil)

	got, err := f.service(locker).ProcessReturn(context.Background(), f.input())
	require.NoError(t, err)
	assert.Equal(t, 2.0, *got.RentalFee)
	assert.Equal(t, 1, released)
	locker.AssertExpectations(t)
}

func TestReturnService_ProcessReturn_LockBackendDown(t *testing.T) {
	f := newReturnFixture(t)
	f.rent(t, f.now.AddDate(0, 0, -2))

	locker := &mockLocker{}
	locker.On("Lock", mock.Anything, f.customer.ID, f.movie.ID).Return(nil, errors.New("dial tcp: connection refused"))

	got, err := f.service(locker).ProcessReturn(context.Background(), f.input())
	require.NoError(t, err)
	assert.Equal(t, 4.0, *got.RentalFee)
	assert.Equal(t, 11, f.stock(t))
}

func TestRejectReason(t *testing.T) {
	tests := []struct {
		err  error
		want string
	}{
		{domain.ErrRentalNotFound, "not_found"},
		{domain.ErrReturnAlreadyProcessed, "already_processed"},
		{domain.ErrReturnInProgress, "in_progress"},
		{errors.New("boom"), "persistence"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rejectReason(tt.err))
	}
}
