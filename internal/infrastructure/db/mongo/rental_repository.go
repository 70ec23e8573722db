package mongo

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vidly/rental-system/internal/core/domain"
)

const collectionRentals = "rentals"

type rentalCustomerDoc struct {
	ID     primitive.ObjectID `bson:"_id"`
	Name   string             `bson:"name"`
	Phone  string             `bson:"phone"`
	IsGold bool               `bson:"isGold"`
}

type rentalMovieDoc struct {
	ID              primitive.ObjectID `bson:"_id"`
	Title           string             `bson:"title"`
	DailyRentalRate float64            `bson:"dailyRentalRate"`
}

type rentalDoc struct {
	ID           primitive.ObjectID `bson:"_id,omitempty"`
	Customer     rentalCustomerDoc  `bson:"customer"`
	Movie        rentalMovieDoc     `bson:"movie"`
	DateOut      time.Time          `bson:"dateOut"`
	DateReturned *time.Time         `bson:"dateReturned,omitempty"`
	RentalFee    *float64           `bson:"rentalFee,omitempty"`
}

// RentalRepository implements ports.RentalRepository using MongoDB.
type RentalRepository struct {
	col *mongo.Collection
}

func NewRentalRepository(db *mongo.Database) *RentalRepository {
	return &RentalRepository{col: db.Collection(collectionRentals)}
}

// Create inserts a new rental document.
func (r *RentalRepository) Create(ctx context.Context, rental *domain.Rental) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	customerID, ok := objectID(rental.Customer.ID)
	if !ok {
		return domain.ErrUnknownCustomer
	}
	movieID, ok := objectID(rental.Movie.ID)
	if !ok {
		return domain.ErrUnknownMovie
	}

	doc := rentalDoc{
		ID: primitive.NewObjectID(),
		Customer: rentalCustomerDoc{
			ID:     customerID,
			Name:   rental.Customer.Name,
			Phone:  rental.Customer.Phone,
			IsGold: rental.Customer.IsGold,
		},
		Movie: rentalMovieDoc{
			ID:              movieID,
			Title:           rental.Movie.Title,
			DailyRentalRate: rental.Movie.DailyRentalRate,
		},
		DateOut:      rental.DateOut.UTC(),
		DateReturned: rental.DateReturned,
		RentalFee:    rental.RentalFee,
	}
	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return persistenceErr("insert rental", err)
	}
	rental.ID = doc.ID.Hex()
	return nil
}

// FindOpen retrieves the rental of the pair that has not been returned yet.
func (r *RentalRepository) FindOpen(ctx context.Context, customerID, movieID string) (*domain.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, ok := pairFilter(customerID, movieID)
	if !ok {
		return nil, domain.ErrRentalNotFound
	}
	filter["dateReturned"] = nil

	var doc rentalDoc
	if err := r.col.FindOne(ctx, filter).Decode(&doc); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrRentalNotFound
		}
		return nil, persistenceErr("find open rental", err)
	}
	return doc.toDomain(), nil
}

// HasReturned reports whether the pair has at least one closed rental.
func (r *RentalRepository) HasReturned(ctx context.Context, customerID, movieID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	filter, ok := pairFilter(customerID, movieID)
	if !ok {
		return false, nil
	}
	filter["dateReturned"] = bson.M{"$ne": nil}

	n, err := r.col.CountDocuments(ctx, filter, options.Count().SetLimit(1))
	if err != nil {
		return false, persistenceErr("count returned rentals", err)
	}
	return n > 0, nil
}

// MarkReturned closes the rental with a conditional update so that only one
// of several concurrent returns can match the still-open document.
func (r *RentalRepository) MarkReturned(ctx context.Context, rental *domain.Rental) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	if rental.DateReturned == nil || rental.RentalFee == nil {
		return errors.New("mark returned: rental is still open")
	}
	oid, ok := objectID(rental.ID)
	if !ok {
		return domain.ErrRentalNotFound
	}

	filter := bson.M{"_id": oid, "dateReturned": nil}
	update := bson.M{"$set": bson.M{
		"dateReturned": rental.DateReturned.UTC(),
		"rentalFee":    *rental.RentalFee,
	}}

	res, err := r.col.UpdateOne(ctx, filter, update)
	if err != nil {
		return persistenceErr("mark rental returned", err)
	}
	if res.MatchedCount == 0 {
		return domain.ErrReturnAlreadyProcessed
	}
	return nil
}

// List returns all rentals, most recent first.
func (r *RentalRepository) List(ctx context.Context) ([]*domain.Rental, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.col.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "dateOut", Value: -1}}))
	if err != nil {
		return nil, persistenceErr("list rentals", err)
	}
	var docs []rentalDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, persistenceErr("decode rentals", err)
	}

	out := make([]*domain.Rental, len(docs))
	for i := range docs {
		out[i] = docs[i].toDomain()
	}
	return out, nil
}

// EnsureIndexes creates the lookup index used by FindOpen.
func (r *RentalRepository) EnsureIndexes(ctx context.Context) error {
	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "customer._id", Value: 1}, {Key: "movie._id", Value: 1}, {Key: "dateReturned", Value: 1}}},
		{Keys: bson.D{{Key: "dateOut", Value: -1}}},
	}
	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}

func pairFilter(customerID, movieID string) (bson.M, bool) {
	cid, ok := objectID(customerID)
	if !ok {
		return nil, false
	}
	mid, ok := objectID(movieID)
	if !ok {
		return nil, false
	}
	return bson.M{"customer._id": cid, "movie._id": mid}, true
}

func (d *rentalDoc) toDomain() *domain.Rental {
	return &domain.Rental{
		ID: d.ID.Hex(),
		Customer: domain.RentalCustomer{
			ID:     d.Customer.ID.Hex(),
			Name:   d.Customer.Name,
			Phone:  d.Customer.Phone,
			IsGold: d.Customer.IsGold,
		},
		Movie: domain.RentalMovie{
			ID:              d.Movie.ID.Hex(),
			Title:           d.Movie.Title,
			DailyRentalRate: d.Movie.DailyRentalRate,
		},
		DateOut:      d.DateOut.UTC(),
		DateReturned: d.DateReturned,
		RentalFee:    d.RentalFee,
	}
}
