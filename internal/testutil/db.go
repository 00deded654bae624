package testutil

import (
	"context"
	"os"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/sugar-studio/booking-api/internal/domain"
)

const (
	defaultTestMongoURI = "mongodb://localhost:27017"
	testDatabase        = "booking_api_test"
)

// NewTestDatabase connects to the integration-test MongoDB instance and
// skips the calling test when none is reachable.
func NewTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()
	uri := os.Getenv("TEST_MONGODB_URI")
	if uri == "" {
		uri = defaultTestMongoURI
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Fatalf("failed to create mongo client: %v", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("skipping Mongo integration tests: %v", err)
	}

	t.Cleanup(func() {
		_ = client.Disconnect(context.Background())
	})

	return client.Database(testDatabase)
}

// DropCollections clears both collections so each test starts empty.
func DropCollections(t *testing.T, ctx context.Context, db *mongo.Database) {
	t.Helper()
	for _, name := range []string{"bookings", "users"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			t.Fatalf("drop %s: %v", name, err)
		}
	}
}

// InsertBooking seeds one booking document and returns its assigned hex id.
func InsertBooking(t *testing.T, ctx context.Context, db *mongo.Database, b domain.Booking) string {
	t.Helper()
	res, err := db.Collection("bookings").InsertOne(ctx, bson.D{
		{Key: "date", Value: b.Date},
		{Key: "name", Value: b.Name},
		{Key: "email", Value: b.Email},
		{Key: "lesson", Value: b.Lesson},
		{Key: "course", Value: b.Course},
		{Key: "branch", Value: b.Branch},
	})
	if err != nil {
		t.Fatalf("insert booking: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex()
}

// InsertUser seeds one user document and returns its assigned hex id.
func InsertUser(t *testing.T, ctx context.Context, db *mongo.Database, u domain.User) string {
	t.Helper()
	res, err := db.Collection("users").InsertOne(ctx, bson.D{
		{Key: "username", Value: u.Username},
		{Key: "password", Value: u.Password},
		{Key: "name", Value: u.Name},
		{Key: "email", Value: u.Email},
	})
	if err != nil {
		t.Fatalf("insert user: %v", err)
	}
	return res.InsertedID.(primitive.ObjectID).Hex()
}
