package models

import "go.mongodb.org/mongo-driver/bson/primitive"

type Location struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	State  string             `bson:"state" json:"state"`
	Cities []string           `bson:"cities" json:"cities"`
}
