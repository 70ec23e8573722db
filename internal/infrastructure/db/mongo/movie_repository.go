package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidly/rental-system/internal/core/domain"
)

const collectionMovies = "movies"

type movieGenreDoc struct {
	ID   primitive.ObjectID `bson:"_id"`
	Name string             `bson:"name"`
}

type movieDoc struct {
	ID              primitive.ObjectID `bson:"_id,omitempty"`
	Title           string             `bson:"title"`
	Genre           movieGenreDoc      `bson:"genre"`
	NumberInStock   int                `bson:"numberInStock"`
	DailyRentalRate float64            `bson:"dailyRentalRate"`
}

// MovieRepository implements ports.MovieRepository using MongoDB.
type MovieRepository struct {
	col *mongo.Collection
}

func NewMovieRepository(db *mongo.Database) *MovieRepository {
	return &MovieRepository{col: db.Collection(collectionMovies)}
}

func (r *MovieRepository) Create(ctx context.Context, m *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc, err := newMovieDoc(m)
	if err != nil {
		return err
	}
	doc.ID = primitive.NewObjectID()
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return persistenceErr("insert movie", err)
	}
	m.ID = doc.ID.Hex()
	return nil
}

func (r *MovieRepository) FindByID(ctx context.Context, id string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrMovieNotFound
	}

	var doc movieDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, persistenceErr("find movie", err)
	}
	return doc.toDomain(), nil
}

func (r *MovieRepository) List(ctx context.Context) ([]*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "title", Value: 1}}))
	if err != nil {
		return nil, persistenceErr("list movies", err)
	}
	var docs []movieDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, persistenceErr("decode movies", err)
	}

	out := make([]*domain.Movie, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

func (r *MovieRepository) Update(ctx context.Context, m *domain.Movie) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(m.ID)
	if !ok {
		return domain.ErrMovieNotFound
	}
	doc, err := newMovieDoc(m)
	if err != nil {
		return err
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{
		"title":           doc.Title,
		"genre":           doc.Genre,
		"numberInStock":   doc.NumberInStock,
		"dailyRentalRate": doc.DailyRentalRate,
	}})
	if err != nil {
		return persistenceErr("update movie", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

func (r *MovieRepository) Delete(ctx context.Context, id string) (*domain.Movie, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrMovieNotFound
	}

	var doc movieDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrMovieNotFound
		}
		return nil, persistenceErr("delete movie", err)
	}
	return doc.toDomain(), nil
}

// IncrementStock applies $inc on numberInStock.
func (r *MovieRepository) IncrementStock(ctx context.Context, id string, delta int) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrMovieNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$inc": bson.M{"numberInStock": delta}})
	if err != nil {
		return persistenceErr("increment stock", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrMovieNotFound
	}
	return nil
}

// DecrementStock removes one copy only while numberInStock is positive.
func (r *MovieRepository) DecrementStock(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return domain.ErrMovieNotFound
	}

	filter := bson.M{"_id": oid, "numberInStock": bson.M{"$gt": 0}}
	res, err := r.col.UpdateOne(ctx, filter, bson.M{"$inc": bson.M{"numberInStock": -1}})
	if err != nil {
		return persistenceErr("decrement stock", err)
	}
	if res.MatchedCount > 0 {
		return nil
	}

	n, err := r.col.CountDocuments(ctx, bson.M{"_id": oid})
	if err != nil {
		return persistenceErr("decrement stock", err)
	}
	if n == 0 {
		return domain.ErrMovieNotFound
	}
	return domain.ErrMovieOutOfStock
}

func newMovieDoc(m *domain.Movie) (movieDoc, error) {
	genreID, ok := objectID(m.Genre.ID)
	if !ok {
		return movieDoc{}, domain.ErrUnknownGenre
	}
	return movieDoc{
		Title:           m.Title,
		Genre:           movieGenreDoc{ID: genreID, Name: m.Genre.Name},
		NumberInStock:   m.NumberInStock,
		DailyRentalRate: m.DailyRentalRate,
	}, nil
}

func (d *movieDoc) toDomain() *domain.Movie {
	return &domain.Movie{
		ID:              d.ID.Hex(),
		Title:           d.Title,
		Genre:           domain.MovieGenre{ID: d.Genre.ID.Hex(), Name: d.Genre.Name},
		NumberInStock:   d.NumberInStock,
		DailyRentalRate: d.DailyRentalRate,
	}
}
