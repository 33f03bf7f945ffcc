package repository

import (
	"context"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CategoryRepo struct {
	coll *mongo.Collection
}

func NewCategoryRepo(db *mongo.Database) *CategoryRepo {
	return &CategoryRepo{coll: db.Collection("categories")}
}

// List returns every category in insertion order.
func (r *CategoryRepo) List(ctx context.Context) ([]models.Category, error) {
	cursor, err := r.coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	categories := []models.Category{}
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, err
	}
	return categories, nil
}

func (r *CategoryRepo) FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error) {
	var c models.Category
	err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&c)
	return c, translate(err)
}

func (r *CategoryRepo) FindBySlug(ctx context.Context, slug string) (models.Category, error) {
	var c models.Category
	err := r.coll.FindOne(ctx, bson.M{"slug": slug}).Decode(&c)
	return c, translate(err)
}

func (r *CategoryRepo) Create(ctx context.Context, c *models.Category) error {
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	_, err := r.coll.InsertOne(ctx, c)
	return translate(err)
}

// InsertMany is used by the seeder; ids are assigned in place.
func (r *CategoryRepo) InsertMany(ctx context.Context, categories []models.Category) error {
	docs := make([]interface{}, len(categories))
	for i := range categories {
		if categories[i].ID.IsZero() {
			categories[i].ID = primitive.NewObjectID()
		}
		docs[i] = categories[i]
	}
	_, err := r.coll.InsertMany(ctx, docs)
	return translate(err)
}

func (r *CategoryRepo) Update(ctx context.Context, c models.Category) error {
	update := bson.M{
		"$set": bson.M{
			"name":      c.Name,
			"slug":      c.Slug,
			"parent":    c.ParentID,
			"icon":      c.Icon,
			"updatedAt": c.UpdatedAt,
		},
	}
	result, err := r.coll.UpdateOne(ctx, bson.M{"_id": c.ID}, update)
	if err != nil {
		return translate(err)
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	result, err := r.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *CategoryRepo) DeleteAll(ctx context.Context) error {
	_, err := r.coll.DeleteMany(ctx, bson.M{})
	return err
}

// CountChildren counts the direct children of a category.
func (r *CategoryRepo) CountChildren(ctx context.Context, id primitive.ObjectID) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{"parent": id})
}

func (r *CategoryRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "name", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "slug", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "parent", Value: 1}}},
	})
	return err
}
