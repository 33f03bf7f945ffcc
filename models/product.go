package models

import (
	"encoding/json"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductType string

const (
	ProductSimple  ProductType = "simple"
	ProductVariant ProductType = "variant"
)

// Offer is what a product sells: a single price/stock pair or a set of SKUs.
// Only SimpleOffer and VariantOffer implement it.
type Offer interface {
	Kind() ProductType
	isOffer()
}

type SimpleOffer struct {
	Price Money
	Stock int
}

type VariantOffer struct {
	OptionNames []string
	Variants    []Variant
}

func (SimpleOffer) Kind() ProductType  { return ProductSimple }
func (VariantOffer) Kind() ProductType { return ProductVariant }
func (SimpleOffer) isOffer()           {}
func (VariantOffer) isOffer()          {}

type VariantOption struct {
	Name  string `bson:"name" json:"name"`
	Value string `bson:"value" json:"value"`
}

type Variant struct {
	SKU     string          `bson:"sku" json:"sku"`
	Options []VariantOption `bson:"options" json:"options"`
	Price   Money           `bson:"price" json:"price"`
	Stock   int             `bson:"stock" json:"stock"`
}

// OptionMap returns the variant's options keyed by option name.
func (v Variant) OptionMap() map[string]string {
	m := make(map[string]string, len(v.Options))
	for _, o := range v.Options {
		m[o.Name] = o.Value
	}
	return m
}

type Product struct {
	ID          primitive.ObjectID
	Name        string
	Description string
	ImageURL    string
	CategoryID  primitive.ObjectID
	Offer       Offer
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ProductDocument is the flat shape a product has on the wire and in the products collection.
type ProductDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	CategoryID  primitive.ObjectID `bson:"category" json:"categoryId"`
	ProductType ProductType        `bson:"productType" json:"productType"`
	Price       Money              `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	OptionNames []string           `bson:"optionNames,omitempty" json:"optionNames,omitempty"`
	Variants    []Variant          `bson:"variants,omitempty" json:"variants,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

func (p Product) Type() ProductType {
	if p.Offer == nil {
		return ""
	}
	return p.Offer.Kind()
}

func (p Product) Document() ProductDocument {
	doc := ProductDocument{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		CategoryID:  p.CategoryID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	switch o := p.Offer.(type) {
	case SimpleOffer:
		doc.ProductType = ProductSimple
		doc.Price = o.Price
		doc.Stock = o.Stock
	case VariantOffer:
		doc.ProductType = ProductVariant
		doc.OptionNames = o.OptionNames
		doc.Variants = o.Variants
	}
	return doc
}

// ProductFromDocument picks the offer named by the productType tag. A missing tag means simple.
func ProductFromDocument(doc ProductDocument) (Product, error) {
	p := Product{
		ID:          doc.ID,
		Name:        doc.Name,
		Description: doc.Description,
		ImageURL:    doc.ImageURL,
		CategoryID:  doc.CategoryID,
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}
	switch doc.ProductType {
	case ProductSimple, "":
		p.Offer = SimpleOffer{Price: doc.Price, Stock: doc.Stock}
	case ProductVariant:
		p.Offer = VariantOffer{OptionNames: doc.OptionNames, Variants: doc.Variants}
	default:
		return Product{}, fmt.Errorf("unknown product type %q", doc.ProductType)
	}
	return p, nil
}

func (p Product) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Document())
}

func (p *Product) UnmarshalJSON(data []byte) error {
	var doc ProductDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := ProductFromDocument(doc)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}

func (p Product) MarshalBSON() ([]byte, error) {
	return bson.Marshal(p.Document())
}

func (p *Product) UnmarshalBSON(data []byte) error {
	var doc ProductDocument
	if err := bson.Unmarshal(data, &doc); err != nil {
		return err
	}
	decoded, err := ProductFromDocument(doc)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
