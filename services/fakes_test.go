package services

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/events"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCategories struct {
	items []models.Category
}

func (f *fakeCategories) List(context.Context) ([]models.Category, error) {
	return append([]models.Category{}, f.items...), nil
}

func (f *fakeCategories) FindByID(_ context.Context, id primitive.ObjectID) (models.Category, error) {
	for _, c := range f.items {
		if c.ID == id {
			return c, nil
		}
	}
	return models.Category{}, repository.ErrNotFound
}

func (f *fakeCategories) Create(_ context.Context, c *models.Category) error {
	for _, x := range f.items {
		if x.Slug == c.Slug || x.Name == c.Name {
			return repository.ErrConflict
		}
	}
	if c.ID.IsZero() {
		c.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, *c)
	return nil
}

func (f *fakeCategories) Update(_ context.Context, c models.Category) error {
	for i, x := range f.items {
		if x.ID == c.ID {
			f.items[i] = c
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCategories) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, x := range f.items {
		if x.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeCategories) CountChildren(_ context.Context, id primitive.ObjectID) (int64, error) {
	var n int64
	for _, c := range f.items {
		if c.ParentID != nil && *c.ParentID == id {
			n++
		}
	}
	return n, nil
}

type fakeProducts struct {
	items []models.Product
}

func (f *fakeProducts) List(_ context.Context, ids []primitive.ObjectID) ([]models.Product, error) {
	out := []models.Product{}
	for _, p := range f.items {
		if len(ids) == 0 || hasID(ids, p.CategoryID) {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProducts) FindByID(_ context.Context, id primitive.ObjectID) (models.Product, error) {
	for _, p := range f.items {
		if p.ID == id {
			return p, nil
		}
	}
	return models.Product{}, repository.ErrNotFound
}

func (f *fakeProducts) Create(_ context.Context, p *models.Product) error {
	if p.ID.IsZero() {
		p.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, *p)
	return nil
}

func (f *fakeProducts) Replace(_ context.Context, p models.Product) error {
	for i, x := range f.items {
		if x.ID == p.ID {
			f.items[i] = p
			return nil
		}
	}
	return repository.ErrNotFound
}

func (f *fakeProducts) Delete(_ context.Context, id primitive.ObjectID) error {
	for i, x := range f.items {
		if x.ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeUsers struct {
	items []models.User
}

func (f *fakeUsers) Create(_ context.Context, u *models.User) error {
	for _, x := range f.items {
		if x.Email == u.Email {
			return repository.ErrConflict
		}
	}
	if u.ID.IsZero() {
		u.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, *u)
	return nil
}

func (f *fakeUsers) FindByID(_ context.Context, id primitive.ObjectID) (models.User, error) {
	for _, u := range f.items {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUsers) FindByIdentifier(_ context.Context, identifier string) (models.User, error) {
	for _, u := range f.items {
		if u.Email == strings.ToLower(identifier) || u.Phone == identifier {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (f *fakeUsers) UpdateProfile(_ context.Context, u models.User) error {
	for i, x := range f.items {
		if x.ID == u.ID {
			u.Email, u.Password, u.Role = x.Email, x.Password, x.Role
			f.items[i] = u
			return nil
		}
	}
	return repository.ErrNotFound
}

type fakeOrders struct {
	items []models.Order
}

func (f *fakeOrders) Create(_ context.Context, o *models.Order) error {
	if o.ID.IsZero() {
		o.ID = primitive.NewObjectID()
	}
	f.items = append(f.items, *o)
	return nil
}

func (f *fakeOrders) FindByID(_ context.Context, id primitive.ObjectID) (models.Order, error) {
	for _, o := range f.items {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, repository.ErrNotFound
}

func (f *fakeOrders) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Order, error) {
	out := []models.Order{}
	for _, o := range f.items {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	return out, nil
}

func (f *fakeOrders) ListAll(context.Context) ([]models.Order, error) {
	return append([]models.Order{}, f.items...), nil
}

type fakeLocations struct {
	items []models.Location
}

func (f *fakeLocations) List(context.Context) ([]models.Location, error) {
	out := append([]models.Location{}, f.items...)
	sort.Slice(out, func(i, j int) bool { return out[i].State < out[j].State })
	return out, nil
}

func (f *fakeLocations) FindByState(_ context.Context, state string) (models.Location, error) {
	for _, l := range f.items {
		if l.State == state {
			return l, nil
		}
	}
	return models.Location{}, repository.ErrNotFound
}

type recordingPublisher struct {
	mu  sync.Mutex
	got []events.Envelope
}

func (r *recordingPublisher) Publish(_ context.Context, e events.Envelope) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.got = append(r.got, e)
	return nil
}

func (r *recordingPublisher) Close() error { return nil }

func (r *recordingPublisher) types() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, len(r.got))
	for i, e := range r.got {
		out[i] = e.EventType
	}
	return out
}

func hasID(ids []primitive.ObjectID, id primitive.ObjectID) bool {
	for _, x := range ids {
		if x == id {
			return true
		}
	}
	return false
}

func category(name string, parent *models.Category) models.Category {
	c := models.Category{ID: primitive.NewObjectID(), Name: name, Slug: strings.ToLower(strings.ReplaceAll(name, " ", "-"))}
	if parent != nil {
		id := parent.ID
		c.ParentID = &id
	}
	return c
}
