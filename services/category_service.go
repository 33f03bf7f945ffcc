package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/events"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryInput struct {
	Name   string `json:"name" form:"name" validate:"required,max=100"`
	Parent string `json:"parent" form:"parent"`
	Icon   string `json:"icon" form:"icon"`
}

type CategoryService struct {
	store  CategoryStore
	events events.Publisher
	now    func() time.Time
}

func NewCategoryService(store CategoryStore, pub events.Publisher) *CategoryService {
	return &CategoryService{store: store, events: pub, now: time.Now}
}

// Tree returns every category nested under its parent.
func (s *CategoryService) Tree(ctx context.Context) ([]*catalog.CategoryNode, error) {
	ctx, span := startSpan(ctx, "CategoryService.Tree")
	cats, err := s.store.List(ctx)
	endSpan(span, err)
	if err != nil {
		return nil, err
	}
	return catalog.BuildTree(cats), nil
}

// Options returns the tree flattened into indented dropdown entries.
func (s *CategoryService) Options(ctx context.Context) ([]catalog.CategoryOption, error) {
	roots, err := s.Tree(ctx)
	if err != nil {
		return nil, err
	}
	return catalog.Flatten(roots), nil
}

func (s *CategoryService) Create(ctx context.Context, in CategoryInput) (c models.Category, err error) {
	ctx, span := startSpan(ctx, "CategoryService.Create")
	defer func() { endSpan(span, err) }()

	c, err = s.fromInput(in)
	if err != nil {
		return models.Category{}, err
	}
	if c.ParentID != nil {
		if err := s.requireParent(ctx, *c.ParentID); err != nil {
			return models.Category{}, err
		}
	}
	c.CreatedAt = s.now().UTC()
	c.UpdatedAt = c.CreatedAt
	if err := s.store.Create(ctx, &c); err != nil {
		return models.Category{}, err
	}
	emit(ctx, s.events, events.CategoryCreated, c.ID.Hex(), c)
	return c, nil
}

// Update renames or moves a category. A category cannot be moved under itself
// or under any of its descendants.
func (s *CategoryService) Update(ctx context.Context, id primitive.ObjectID, in CategoryInput) (c models.Category, err error) {
	ctx, span := startSpan(ctx, "CategoryService.Update")
	defer func() { endSpan(span, err) }()

	existing, err := s.store.FindByID(ctx, id)
	if err != nil {
		return models.Category{}, err
	}
	c, err = s.fromInput(in)
	if err != nil {
		return models.Category{}, err
	}
	if c.ParentID != nil {
		if *c.ParentID == id {
			return models.Category{}, invalidf("a category cannot be its own parent")
		}
		cats, err := s.store.List(ctx)
		if err != nil {
			return models.Category{}, err
		}
		if !contains(cats, *c.ParentID) {
			return models.Category{}, invalidf("parent category not found")
		}
		if catalog.IsAncestor(cats, id, *c.ParentID) {
			return models.Category{}, invalidf("a category cannot be moved under one of its subcategories")
		}
	}

	c.ID = existing.ID
	c.CreatedAt = existing.CreatedAt
	c.UpdatedAt = s.now().UTC()
	if err := s.store.Update(ctx, c); err != nil {
		return models.Category{}, err
	}
	emit(ctx, s.events, events.CategoryUpdated, c.ID.Hex(), c)
	return c, nil
}

// Delete removes a leaf category. Categories with direct children are kept.
func (s *CategoryService) Delete(ctx context.Context, id primitive.ObjectID) (err error) {
	ctx, span := startSpan(ctx, "CategoryService.Delete")
	defer func() { endSpan(span, err) }()

	if _, err := s.store.FindByID(ctx, id); err != nil {
		return err
	}
	n, err := s.store.CountChildren(ctx, id)
	if err != nil {
		return err
	}
	if n > 0 {
		return ErrHasChildren
	}
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	emit(ctx, s.events, events.CategoryDeleted, id.Hex(), map[string]string{"id": id.Hex()})
	return nil
}

func (s *CategoryService) fromInput(in CategoryInput) (models.Category, error) {
	in.Name = strings.TrimSpace(in.Name)
	if err := check(in); err != nil {
		return models.Category{}, err
	}
	c := models.Category{
		Name: in.Name,
		Slug: catalog.Slugify(in.Name),
		Icon: strings.TrimSpace(in.Icon),
	}
	if c.Slug == "" {
		return models.Category{}, invalidf("name must contain letters or digits")
	}
	parent, err := parseOptionalID(in.Parent)
	if err != nil {
		return models.Category{}, invalidf("invalid parent id")
	}
	c.ParentID = parent
	return c, nil
}

func (s *CategoryService) requireParent(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.store.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return invalidf("parent category not found")
	}
	return err
}

func contains(cats []models.Category, id primitive.ObjectID) bool {
	for _, c := range cats {
		if c.ID == id {
			return true
		}
	}
	return false
}

// parseOptionalID treats "", "null" and "none" as no id.
func parseOptionalID(s string) (*primitive.ObjectID, error) {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "null", "none":
		return nil, nil
	}
	id, err := primitive.ObjectIDFromHex(s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
