package database

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
)

type LocationWriter interface {
	ReplaceAll(ctx context.Context, locations []models.Location) error
}

type CategoryWriter interface {
	List(ctx context.Context) ([]models.Category, error)
	InsertMany(ctx context.Context, categories []models.Category) error
	DeleteAll(ctx context.Context) error
}

type ProductWriter interface {
	Create(ctx context.Context, p *models.Product) error
	DeleteAll(ctx context.Context) error
}

// Seeder loads the reference data set. Each step replaces what it seeds.
type Seeder struct {
	Locations  LocationWriter
	Categories CategoryWriter
	Products   ProductWriter
	Now        func() time.Time
}

// Run seeds "locations", "categories", "products" or "all".
func (s *Seeder) Run(ctx context.Context, kind string) error {
	steps := map[string]func(context.Context) error{
		"locations":  s.SeedLocations,
		"categories": s.SeedCategories,
		"products":   s.SeedProducts,
	}
	if kind == "all" {
		for _, k := range []string{"locations", "categories", "products"} {
			if err := steps[k](ctx); err != nil {
				return err
			}
		}
		return nil
	}
	step, ok := steps[kind]
	if !ok {
		return fmt.Errorf("unknown seed type %q", kind)
	}
	return step(ctx)
}

func (s *Seeder) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

func (s *Seeder) SeedLocations(ctx context.Context) error {
	log.Println("Seeding locations...")
	if err := s.Locations.ReplaceAll(ctx, seedLocations()); err != nil {
		return fmt.Errorf("seed locations: %w", err)
	}
	log.Println("Locations seeded")
	return nil
}

// SeedCategories inserts the top-level categories first and then their subcategories.
func (s *Seeder) SeedCategories(ctx context.Context) error {
	log.Println("Seeding categories...")
	if err := s.Categories.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear categories: %w", err)
	}

	now := s.now()
	var parents []models.Category
	for _, group := range seedCategoryGroups {
		parents = append(parents, models.Category{Name: group.Name, Slug: group.Slug, CreatedAt: now, UpdatedAt: now})
	}
	if err := s.Categories.InsertMany(ctx, parents); err != nil {
		return fmt.Errorf("insert top-level categories: %w", err)
	}

	var children []models.Category
	for i, group := range seedCategoryGroups {
		parentID := parents[i].ID
		for _, sub := range group.Children {
			id := parentID
			children = append(children, models.Category{Name: sub.Name, Slug: sub.Slug, ParentID: &id, CreatedAt: now, UpdatedAt: now})
		}
	}
	if err := s.Categories.InsertMany(ctx, children); err != nil {
		return fmt.Errorf("insert subcategories: %w", err)
	}
	log.Printf("Categories seeded: %d top-level, %d subcategories", len(parents), len(children))
	return nil
}

// SeedProducts needs the categories to exist; products whose category is missing are skipped.
func (s *Seeder) SeedProducts(ctx context.Context) error {
	log.Println("Seeding sample products...")
	if err := s.Products.DeleteAll(ctx); err != nil {
		return fmt.Errorf("clear products: %w", err)
	}
	cats, err := s.Categories.List(ctx)
	if err != nil {
		return err
	}
	if len(cats) == 0 {
		return fmt.Errorf("no categories found, seed categories first")
	}
	byName := make(map[string]models.Category, len(cats))
	for _, c := range cats {
		byName[c.Name] = c
	}

	now := s.now()
	for _, sp := range seedProducts() {
		cat, ok := byName[sp.CategoryName]
		if !ok {
			log.Printf("Category %q not found for product %q, skipping", sp.CategoryName, sp.Product.Name)
			continue
		}
		p := sp.Product
		p.CategoryID = cat.ID
		p.CreatedAt, p.UpdatedAt = now, now
		if err := s.Products.Create(ctx, &p); err != nil {
			return fmt.Errorf("create product %q: %w", p.Name, err)
		}
		log.Printf("Created: %s", p.Name)
	}
	return nil
}
