package services

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/events"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProductInput is the admin form for creating or replacing a product. Fields that
// do not belong to ProductType are ignored.
type ProductInput struct {
	Name        string             `json:"name" validate:"required,max=200"`
	Description string             `json:"description"`
	CategoryID  string             `json:"category" validate:"required"`
	ProductType models.ProductType `json:"productType"`
	Price       models.Money       `json:"price"`
	Stock       int                `json:"stock"`
	OptionNames []string           `json:"optionNames"`
	Variants    []models.Variant   `json:"variants"`
	ImageURL    string             `json:"imageUrl"`
}

// ProductView is a product with its listing summary.
type ProductView struct {
	models.Product
	Listing catalog.Listing
}

func (v ProductView) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		models.ProductDocument
		Listing catalog.Listing `json:"listing"`
	}{v.Product.Document(), v.Listing})
}

func view(p models.Product) ProductView {
	return ProductView{Product: p, Listing: catalog.Summarize(p)}
}

func views(ps []models.Product) []ProductView {
	out := make([]ProductView, len(ps))
	for i, p := range ps {
		out[i] = view(p)
	}
	return out
}

// CategoryProducts is the storefront page of one category.
type CategoryProducts struct {
	Category models.Category
	Products []ProductView
}

type ProductService struct {
	products     ProductStore
	categories   CategoryStore
	events       events.Publisher
	closureDepth int
	now          func() time.Time
}

// NewProductService builds the service. closureDepth is how many category levels
// below a slug ByCategorySlug includes; 1 is the direct children.
func NewProductService(products ProductStore, categories CategoryStore, pub events.Publisher, closureDepth int) *ProductService {
	return &ProductService{
		products:     products,
		categories:   categories,
		events:       pub,
		closureDepth: closureDepth,
		now:          time.Now,
	}
}

// List returns every product, or those in one category when categoryID is set.
func (s *ProductService) List(ctx context.Context, categoryID string) (_ []ProductView, err error) {
	ctx, span := startSpan(ctx, "ProductService.List")
	defer func() { endSpan(span, err) }()

	var filter []primitive.ObjectID
	if categoryID = strings.TrimSpace(categoryID); categoryID != "" {
		id, err := primitive.ObjectIDFromHex(categoryID)
		if err != nil {
			return nil, invalidf("invalid category id")
		}
		filter = append(filter, id)
	}
	ps, err := s.products.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return views(ps), nil
}

func (s *ProductService) Get(ctx context.Context, id primitive.ObjectID) (_ ProductView, err error) {
	ctx, span := startSpan(ctx, "ProductService.Get")
	defer func() { endSpan(span, err) }()

	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return ProductView{}, err
	}
	return view(p), nil
}

// ByCategorySlug lists the products of a category and of the categories beneath it.
func (s *ProductService) ByCategorySlug(ctx context.Context, slug string) (_ CategoryProducts, err error) {
	ctx, span := startSpan(ctx, "ProductService.ByCategorySlug")
	defer func() { endSpan(span, err) }()

	cats, err := s.categories.List(ctx)
	if err != nil {
		return CategoryProducts{}, err
	}
	closure, err := catalog.ResolveClosureDepth(cats, slug, s.closureDepth)
	if err != nil {
		return CategoryProducts{}, err
	}
	ps, err := s.products.List(ctx, closure.IDs)
	if err != nil {
		return CategoryProducts{}, err
	}
	return CategoryProducts{Category: closure.Root, Products: views(ps)}, nil
}

// Availability resolves the shopper's option selection against a product.
func (s *ProductService) Availability(ctx context.Context, id primitive.ObjectID, sel catalog.Selection) (catalog.Availability, error) {
	p, err := s.products.FindByID(ctx, id)
	if err != nil {
		return catalog.Availability{}, err
	}
	return catalog.Resolve(p, sel), nil
}

func (s *ProductService) Create(ctx context.Context, in ProductInput) (_ ProductView, err error) {
	ctx, span := startSpan(ctx, "ProductService.Create")
	defer func() { endSpan(span, err) }()

	p, err := s.fromInput(ctx, in)
	if err != nil {
		return ProductView{}, err
	}
	p.CreatedAt = s.now().UTC()
	p.UpdatedAt = p.CreatedAt
	if err := s.products.Create(ctx, &p); err != nil {
		return ProductView{}, err
	}
	emit(ctx, s.events, events.ProductCreated, p.ID.Hex(), p)
	return view(p), nil
}

// Update replaces a product. An empty ImageURL keeps the current image.
func (s *ProductService) Update(ctx context.Context, id primitive.ObjectID, in ProductInput) (_ ProductView, err error) {
	ctx, span := startSpan(ctx, "ProductService.Update")
	defer func() { endSpan(span, err) }()

	existing, err := s.products.FindByID(ctx, id)
	if err != nil {
		return ProductView{}, err
	}
	p, err := s.fromInput(ctx, in)
	if err != nil {
		return ProductView{}, err
	}
	p.ID = existing.ID
	if p.ImageURL == "" {
		p.ImageURL = existing.ImageURL
	}
	p.CreatedAt = existing.CreatedAt
	p.UpdatedAt = s.now().UTC()
	if err := s.products.Replace(ctx, p); err != nil {
		return ProductView{}, err
	}
	emit(ctx, s.events, events.ProductUpdated, p.ID.Hex(), p)
	return view(p), nil
}

func (s *ProductService) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	ctx, span := startSpan(ctx, "ProductService.Delete")
	defer func() { endSpan(span, err) }()

	if err := s.products.Delete(ctx, id); err != nil {
		return err
	}
	emit(ctx, s.events, events.ProductDeleted, id.Hex(), map[string]string{"id": id.Hex()})
	return nil
}

func (s *ProductService) fromInput(ctx context.Context, in ProductInput) (models.Product, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := check(in); err != nil {
		return models.Product{}, err
	}
	categoryID, err := primitive.ObjectIDFromHex(strings.TrimSpace(in.CategoryID))
	if err != nil {
		return models.Product{}, invalidf("invalid category id")
	}
	if _, err := s.categories.FindByID(ctx, categoryID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return models.Product{}, invalidf("category not found")
		}
		return models.Product{}, err
	}

	p, err := models.ProductFromDocument(models.ProductDocument{
		Name:        in.Name,
		Description: strings.TrimSpace(in.Description),
		ImageURL:    in.ImageURL,
		CategoryID:  categoryID,
		ProductType: in.ProductType,
		Price:       in.Price,
		Stock:       in.Stock,
		OptionNames: in.OptionNames,
		Variants:    in.Variants,
	})
	if err != nil {
		return models.Product{}, &ValidationError{Msg: err.Error(), Err: err}
	}
	if err := catalog.ValidateOffer(p.Offer); err != nil {
		return models.Product{}, &ValidationError{Msg: err.Error(), Err: err}
	}
	return p, nil
}
