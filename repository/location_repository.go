package repository

import (
	"context"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type LocationRepo struct {
	coll *mongo.Collection
}

func NewLocationRepo(db *mongo.Database) *LocationRepo {
	return &LocationRepo{coll: db.Collection("locations")}
}

func (r *LocationRepo) List(ctx context.Context) ([]models.Location, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "state", Value: 1}}))
	if err != nil {
		return nil, err
	}
	locations := []models.Location{}
	if err := cursor.All(ctx, &locations); err != nil {
		return nil, err
	}
	return locations, nil
}

func (r *LocationRepo) FindByState(ctx context.Context, state string) (models.Location, error) {
	var l models.Location
	err := r.coll.FindOne(ctx, bson.M{"state": state}).Decode(&l)
	return l, translate(err)
}

// ReplaceAll swaps the whole lookup table; it is static data owned by the seeder.
func (r *LocationRepo) ReplaceAll(ctx context.Context, locations []models.Location) error {
	if _, err := r.coll.DeleteMany(ctx, bson.M{}); err != nil {
		return err
	}
	if len(locations) == 0 {
		return nil
	}
	docs := make([]interface{}, len(locations))
	for i, l := range locations {
		docs[i] = l
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return translate(err)
}

func (r *LocationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "state", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
