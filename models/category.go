package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Category struct {
	ID        primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	Name      string              `bson:"name" json:"name"`
	Slug      string              `bson:"slug" json:"slug"`
	ParentID  *primitive.ObjectID `bson:"parent" json:"parent"` // nil for top-level categories
	Icon      string              `bson:"icon,omitempty" json:"icon,omitempty"`
	CreatedAt time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time           `bson:"updatedAt" json:"updatedAt"`
}

func (c Category) IsRoot() bool { return c.ParentID == nil }
