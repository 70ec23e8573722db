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

const collectionGenres = "genres"

type genreDoc struct {
	ID   primitive.ObjectID `bson:"_id,omitempty"`
	Name string             `bson:"name"`
}

type GenreRepository struct {
	col *mongo.Collection
}

func NewGenreRepository(db *mongo.Database) *GenreRepository {
	return &GenreRepository{col: db.Collection(collectionGenres)}
}

func (r *GenreRepository) Create(ctx context.Context, g *domain.Genre) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := genreDoc{ID: primitive.NewObjectID(), Name: g.Name}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return persistenceErr("insert genre", err)
	}
	g.ID = doc.ID.Hex()
	return nil
}

func (r *GenreRepository) FindByID(ctx context.Context, id string) (*domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrGenreNotFound
	}

	var doc genreDoc
	if err := r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, persistenceErr("find genre", err)
	}
	return &domain.Genre{ID: doc.ID.Hex(), Name: doc.Name}, nil
}

// List returns all genres sorted by name.
func (r *GenreRepository) List(ctx context.Context) ([]*domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
	if err != nil {
		return nil, persistenceErr("list genres", err)
	}
	var docs []genreDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, persistenceErr("decode genres", err)
	}

	out := make([]*domain.Genre, len(docs))
	for i, d := range docs {
		out[i] = &domain.Genre{ID: d.ID.Hex(), Name: d.Name}
	}
	return out, nil
}

func (r *GenreRepository) Update(ctx context.Context, g *domain.Genre) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(g.ID)
	if !ok {
		return domain.ErrGenreNotFound
	}

	res, err := r.col.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"name": g.Name}})
	if err != nil {
		return persistenceErr("update genre", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrGenreNotFound
	}
	return nil
}

func (r *GenreRepository) Delete(ctx context.Context, id string) (*domain.Genre, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	oid, ok := objectID(id)
	if !ok {
		return nil, domain.ErrGenreNotFound
	}

	var doc genreDoc
	if err := r.col.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrGenreNotFound
		}
		return nil, persistenceErr("delete genre", err)
	}
	return &domain.Genre{ID: doc.ID.Hex(), Name: doc.Name}, nil
}
