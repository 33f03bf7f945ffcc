package database

import (
	"context"
	"testing"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memLocations struct{ items []models.Location }

func (m *memLocations) ReplaceAll(_ context.Context, locs []models.Location) error {
	m.items = append([]models.Location{}, locs...)
	return nil
}

type memCategories struct{ items []models.Category }

func (m *memCategories) List(context.Context) ([]models.Category, error) {
	return append([]models.Category{}, m.items...), nil
}

func (m *memCategories) InsertMany(_ context.Context, cats []models.Category) error {
	for i := range cats {
		if cats[i].ID.IsZero() {
			cats[i].ID = primitive.NewObjectID()
		}
	}
	m.items = append(m.items, cats...)
	return nil
}

func (m *memCategories) DeleteAll(context.Context) error {
	m.items = nil
	return nil
}

type memProducts struct{ items []models.Product }

func (m *memProducts) Create(_ context.Context, p *models.Product) error {
	p.ID = primitive.NewObjectID()
	m.items = append(m.items, *p)
	return nil
}

func (m *memProducts) DeleteAll(context.Context) error {
	m.items = nil
	return nil
}

func newSeeder() (*Seeder, *memLocations, *memCategories, *memProducts) {
	locs, cats, prods := &memLocations{}, &memCategories{}, &memProducts{}
	s := &Seeder{
		Locations:  locs,
		Categories: cats,
		Products:   prods,
		Now:        func() time.Time { return time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC) },
	}
	return s, locs, cats, prods
}

func TestSeedAll(t *testing.T) {
	s, locs, cats, prods := newSeeder()
	require.NoError(t, s.Run(context.Background(), "all"))

	assert.Len(t, locs.items, 36)
	assert.Len(t, prods.items, 4)

	byID := map[primitive.ObjectID]models.Category{}
	for _, c := range cats.items {
		byID[c.ID] = c
	}
	var roots int
	for _, c := range cats.items {
		if c.IsRoot() {
			roots++
			continue
		}
		_, ok := byID[*c.ParentID]
		assert.True(t, ok, "parent of %s", c.Name)
	}
	assert.Equal(t, len(seedCategoryGroups), roots)

	for _, p := range prods.items {
		cat, ok := byID[p.CategoryID]
		require.True(t, ok, p.Name)
		assert.False(t, cat.IsRoot(), "%s should sit in a subcategory", p.Name)
	}
}

func TestSeedCategoriesReplacesExisting(t *testing.T) {
	s, _, cats, _ := newSeeder()
	ctx := context.Background()
	require.NoError(t, s.SeedCategories(ctx))
	first := len(cats.items)
	require.NoError(t, s.SeedCategories(ctx))
	assert.Equal(t, first, len(cats.items))
}

func TestSeedDataIsConsistent(t *testing.T) {
	slugs := map[string]bool{}
	names := map[string]bool{}
	check := func(c seedCategory) {
		assert.False(t, slugs[c.Slug], "duplicate slug %s", c.Slug)
		assert.False(t, names[c.Name], "duplicate name %s", c.Name)
		assert.Regexp(t, `^[a-z0-9_-]+$`, c.Slug)
		slugs[c.Slug], names[c.Name] = true, true
	}
	for _, g := range seedCategoryGroups {
		check(g.seedCategory)
		for _, c := range g.Children {
			check(c)
		}
	}

	for _, sp := range seedProducts() {
		assert.True(t, names[sp.CategoryName], "unknown category %s", sp.CategoryName)
		assert.NoError(t, catalog.ValidateOffer(sp.Product.Offer), sp.Product.Name)
	}

	states := map[string]bool{}
	for _, l := range seedLocations() {
		assert.False(t, states[l.State], "duplicate state %s", l.State)
		assert.NotEmpty(t, l.Cities, l.State)
		states[l.State] = true
	}
}

func TestSeedProductsNeedsCategories(t *testing.T) {
	s, _, _, prods := newSeeder()
	err := s.SeedProducts(context.Background())
	require.Error(t, err)
	assert.Empty(t, prods.items)
}

func TestSeedUnknownType(t *testing.T) {
	s, _, _, _ := newSeeder()
	assert.Error(t, s.Run(context.Background(), "orders"))
}
