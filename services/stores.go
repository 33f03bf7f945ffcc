package services

import (
	"context"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryStore interface {
	List(ctx context.Context) ([]models.Category, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Category, error)
	Create(ctx context.Context, c *models.Category) error
	Update(ctx context.Context, c models.Category) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	CountChildren(ctx context.Context, id primitive.ObjectID) (int64, error)
}

type ProductStore interface {
	List(ctx context.Context, categoryIDs []primitive.ObjectID) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Product, error)
	Create(ctx context.Context, p *models.Product) error
	Replace(ctx context.Context, p models.Product) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.User, error)
	FindByIdentifier(ctx context.Context, identifier string) (models.User, error)
	UpdateProfile(ctx context.Context, u models.User) error
}

type OrderStore interface {
	Create(ctx context.Context, o *models.Order) error
	FindByID(ctx context.Context, id primitive.ObjectID) (models.Order, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
}

type LocationStore interface {
	List(ctx context.Context) ([]models.Location, error)
	FindByState(ctx context.Context, state string) (models.Location, error)
}
