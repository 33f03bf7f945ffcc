package services

import (
	"context"
	"strings"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ProfileInput holds editable profile fields. Empty fields keep their stored value.
type ProfileInput struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	City      string `json:"city"`
	State     string `json:"state"`
	Zipcode   string `json:"zipcode"`
}

type UserService struct {
	users UserStore
}

func NewUserService(users UserStore) *UserService {
	return &UserService{users: users}
}

func (s *UserService) Profile(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.users.FindByID(ctx, id)
}

func (s *UserService) UpdateProfile(ctx context.Context, id primitive.ObjectID, in ProfileInput) (u models.User, err error) {
	ctx, span := startSpan(ctx, "UserService.UpdateProfile")
	defer func() { endSpan(span, err) }()

	u, err = s.users.FindByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}
	keep(&u.FirstName, in.FirstName)
	keep(&u.LastName, in.LastName)
	keep(&u.Phone, in.Phone)
	keep(&u.Address, in.Address)
	keep(&u.City, in.City)
	keep(&u.State, in.State)
	keep(&u.Zipcode, in.Zipcode)

	if err := s.users.UpdateProfile(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func keep(field *string, v string) {
	if v = strings.TrimSpace(v); v != "" {
		*field = v
	}
}
