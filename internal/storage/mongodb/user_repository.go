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

type UserRepository struct {
	coll *mongo.Collection
}

func NewUserRepository(db *mongo.Database) *UserRepository {
	return &UserRepository{coll: db.Collection(usersCollection)}
}

type userDoc struct {
	ID       primitive.ObjectID `bson:"_id,omitempty"`
	Username string             `bson:"username"`
	Password string             `bson:"password"`
	Name     string             `bson:"name,omitempty"`
	Email    string             `bson:"email,omitempty"`
}

func (d userDoc) toDomain() domain.User {
	return domain.User{
		ID:       d.ID.Hex(),
		Username: d.Username,
		Password: d.Password,
		Name:     d.Name,
		Email:    d.Email,
	}
}

func userFields(u domain.User) bson.D {
	return bson.D{
		{Key: "username", Value: u.Username},
		{Key: "password", Value: u.Password},
		{Key: "name", Value: u.Name},
		{Key: "email", Value: u.Email},
	}
}

func (r *UserRepository) Create(ctx context.Context, u domain.User) (domain.User, error) {
	res, err := r.coll.InsertOne(ctx, userFields(u))
	if err != nil {
		return domain.User{}, fmt.Errorf("insert user: %w", err)
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return domain.User{}, fmt.Errorf("insert user: unexpected id type %T", res.InsertedID)
	}
	u.ID = oid.Hex()
	return u, nil
}

func (r *UserRepository) FindAll(ctx context.Context) ([]domain.User, error) {
	cursor, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, fmt.Errorf("find users: %w", err)
	}

	var docs []userDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode users: %w", err)
	}

	users := make([]domain.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, doc.toDomain())
	}
	return users, nil
}

func (r *UserRepository) FindByID(ctx context.Context, id string) (domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.User{}, err
	}

	var doc userDoc
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("find user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (domain.User, error) {
	var doc userDoc
	err := r.coll.FindOne(ctx, bson.M{"username": username}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("find user by username: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Update(ctx context.Context, id string, u domain.User) (domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.User{}, err
	}

	var doc userDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": userFields(u)},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("update user: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) (domain.User, error) {
	oid, err := parseObjectID(id)
	if err != nil {
		return domain.User{}, err
	}

	var doc userDoc
	err = r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return domain.User{}, domain.ErrUserNotFound
		}
		return domain.User{}, fmt.Errorf("delete user: %w", err)
	}
	return doc.toDomain(), nil
}

// CredentialsMatch reports whether a user exists whose username and password
// both equal the given values. The stored plain-text password is compared
// exactly; a wrong password and a missing user both report false.
func (r *UserRepository) CredentialsMatch(ctx context.Context, username, password string) (bool, error) {
	err := r.coll.FindOne(ctx, bson.M{"username": username, "password": password}).Err()
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return false, nil
		}
		return false, fmt.Errorf("match credentials: %w", err)
	}
	return true, nil
}
