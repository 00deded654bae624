package mongodb

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sugar-studio/booking-api/internal/domain"
)

type BookingRepository struct {
	coll *mongo.Collection
}

func NewBookingRepository(db *mongo.Database) *BookingRepository {
	return &BookingRepository{coll: db.Collection(bookingsCollection)}
}

// bookingDoc is the persisted shape of a booking. Domain structs stay free
// of driver tags; mapping happens here.
type bookingDoc struct {
	ID     primitive.ObjectID `bson:"_id,omitempty"`
	Date   string             `bson:"date"`
	Name   string             `bson:"name"`
	Email  string             `bson:"email"`
	Lesson string             `bson:"lesson"`
	Course string             `bson:"course"`
	Branch string             `bson:"branch"`
}

func (d bookingDoc) toDomain() domain.Booking {
	return domain.Booking{
		ID:     d.ID.Hex(),
		Date:   d.Date,
		Name:   d.Name,
		Email:  d.Email,
		Lesson: d.Lesson,
		Course: d.Course,
		Branch: d.Branch,
	}
}

func bookingFields(b domain.Booking) bson.D {
	return bson.D{
		{Key: "date", Value: b.Date},
		{Key: "name", Value: b.Name},
		{Key: "email", Value: b.Email},
		{Key: "lesson", Value: b.Lesson},
		{Key: "course", Value: b.Course},
		{Key: "branch", Value: b.Branch},
	}
}

func (r *BookingRepository) Create(ctx context.Context, b domain.Booking) (domain.Booking, error) {
	res, err := r.coll.InsertOne(ctx, bookingFields(b))
	if err != nil {
		return domain.Booking{}, fmt.Errorf("insert booking: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.Booking{}, fmt.Errorf("insert booking: unexpected id type %T", res.InsertedID)
	}
	b.ID = oid.Hex()
	return b, nil
}

func (r *BookingRepository) FindAll(ctx context.Context) ([]domain.Booking, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find bookings: %w", err)
	}

	var docs []bookingDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode bookings: %w", err)
	}

	bookings := make([]domain.Booking, 0, len(docs))
	for _, doc := range docs {
		bookings = append(bookings, doc.toDomain())
	}
	return bookings, nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id string) (domain.Booking, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.Booking{}, err
	}

	var doc bookingDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Booking{}, domain.ErrBookingNotFound
		}
		return domain.Booking{}, fmt.Errorf("find booking: %w", err)
	}
	return doc.toDomain(), nil
}

// Update replaces every booking field and returns the post-update document.
func (r *BookingRepository) Update(ctx context.Context, id string, b domain.Booking) (domain.Booking, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.Booking{}, err
	}

	var doc bookingDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bookingFields(b)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Booking{}, domain.ErrBookingNotFound
		}
		return domain.Booking{}, fmt.Errorf("update booking: %w", err)
	}
	return doc.toDomain(), nil
}

// Delete removes a booking and returns the removed document.
func (r *BookingRepository) Delete(ctx context.Context, id string) (domain.Booking, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.Booking{}, err
	}

	var doc bookingDoc
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.Booking{}, domain.ErrBookingNotFound
		}
		return domain.Booking{}, fmt.Errorf("delete booking: %w", err)
	}
	return doc.toDomain(), nil
}

// CountByDate counts bookings whose stored date string equals date exactly.
func (r *BookingRepository) CountByDate(ctx context.Context, date string) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"date": date})
	if err != nil {
		return 0, fmt.Errorf("count bookings: %w", err)
	}
	return count, nil
}
