package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItem struct {
	ProductID       primitive.ObjectID `bson:"productId" json:"productId"`
	SKU             string             `bson:"sku,omitempty" json:"sku,omitempty"`
	Name            string             `bson:"name" json:"name"`
	Quantity        int                `bson:"qty" json:"qty"`
	PriceAtPurchase Money              `bson:"priceAtPurchase" json:"priceAtPurchase"`
}

type ShippingInfo struct {
	Address string `bson:"address" json:"address" validate:"required"`
	City    string `bson:"city" json:"city" validate:"required"`
	State   string `bson:"state" json:"state" validate:"required"`
	Zipcode string `bson:"zipcode" json:"zipcode" validate:"required"`
}

// Order is written once at checkout and never updated.
type Order struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"user" json:"userId"`
	Items        []OrderItem        `bson:"orderItems" json:"orderItems"`
	ShippingInfo ShippingInfo       `bson:"shippingInfo" json:"shippingInfo"`
	TotalPrice   Money              `bson:"totalPrice" json:"totalPrice"`
	IsPaid       bool               `bson:"isPaid" json:"isPaid"`
	PaidAt       time.Time          `bson:"paidAt" json:"paidAt"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
}
