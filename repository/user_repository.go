package repository

import (
	"context"
	"strings"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type UserRepo struct {
	coll *mongo.Collection
}

func NewUserRepo(db *mongo.Database) *UserRepo {
	return &UserRepo{coll: db.Collection("users")}
}

func (r *UserRepo) Create(ctx context.Context, u *models.User) error {
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	u.Email = normalizeEmail(u.Email)
	_, err := r.coll.InsertOne(ctx, u)
	return translate(err)
}

func (r *UserRepo) FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&u)
	return u, translate(err)
}

// FindByIdentifier looks a user up by email or by phone number.
func (r *UserRepo) FindByIdentifier(ctx context.Context, identifier string) (models.User, error) {
	identifier = strings.TrimSpace(identifier)
	filter := bson.M{"$or": bson.A{
		bson.M{"email": normalizeEmail(identifier)},
		bson.M{"phone": identifier},
	}}
	var u models.User
	err := r.coll.FindOne(ctx, filter).Decode(&u)
	return u, translate(err)
}

// UpdateProfile writes the editable profile fields. Email, password and role are left alone.
func (r *UserRepo) UpdateProfile(ctx context.Context, u models.User) error {
	update := bson.M{
		"$set": bson.M{
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"phone":     u.Phone,
			"address":   u.Address,
			"city":      u.City,
			"state":     u.State,
			"zipcode":   u.Zipcode,
		},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": u.ID}, update)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *UserRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "phone", Value: 1}}},
	})
	return err
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
