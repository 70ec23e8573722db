package service

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vidly/rental-system/internal/core/domain"
	"github.com/vidly/rental-system/internal/core/ports"
	"github.com/vidly/rental-system/internal/infrastructure/db/memory"
)

func TestMovieService_ResolvesGenre(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	genres := NewGenreService(store.Genres(), zerolog.Nop())
	movies := NewMovieService(store.Movies(), store.Genres(), zerolog.Nop())

	drama, err := genres.Create(ctx, "Drama")
	require.NoError(t, err)

	m, err := movies.Create(ctx, ports.MovieInput{Title: "Terminator", GenreID: drama.ID, NumberInStock: 3, DailyRentalRate: 1.5})
	require.NoError(t, err)
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, domain.MovieGenre{ID: drama.ID, Name: "Drama"}, m.Genre)

	_, err = movies.Create(ctx, ports.MovieInput{Title: "Orphan", GenreID: "000000000000000000000000"})
	assert.ErrorIs(t, err, domain.ErrUnknownGenre)

	updated, err := movies.Update(ctx, m.ID, ports.MovieInput{Title: "Terminator 2", GenreID: drama.ID, NumberInStock: 5, DailyRentalRate: 2})
	require.NoError(t, err)
	assert.Equal(t, "Terminator 2", updated.Title)

	_, err = movies.Update(ctx, "000000000000000000000000", ports.MovieInput{Title: "Ghost", GenreID: drama.ID})
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)

	deleted, err := movies.Delete(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, m.ID, deleted.ID)

	_, err = movies.Get(ctx, m.ID)
	assert.ErrorIs(t, err, domain.ErrMovieNotFound)
}

func TestGenreAndCustomerServices(t *testing.T) {
	store := memory.NewStore()
	ctx := context.Background()
	genres := NewGenreService(store.Genres(), zerolog.Nop())
	customers := NewCustomerService(store.Customers(), zerolog.Nop())

	for _, name := range []string{"Thriller", "Comedy"} {
		_, err := genres.Create(ctx, name)
		require.NoError(t, err)
	}
	list, err := genres.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Comedy", list[0].Name)

	renamed, err := genres.Rename(ctx, list[0].ID, "Romance")
	require.NoError(t, err)
	assert.Equal(t, "Romance", renamed.Name)

	_, err = genres.Rename(ctx, "000000000000000000000000", "Horror")
	assert.ErrorIs(t, err, domain.ErrGenreNotFound)

	c, err := customers.Create(ctx, ports.CustomerInput{Name: "Mosh", Phone: "123456789012", IsGold: true})
	require.NoError(t, err)
	got, err := customers.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.True(t, got.IsGold)

	_, err = customers.Delete(ctx, c.ID)
	require.NoError(t, err)
	_, err = customers.Delete(ctx, c.ID)
	assert.ErrorIs(t, err, domain.ErrCustomerNotFound)
}
