package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type RegisterInput struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,email"`
	Phone     string `json:"phone" validate:"required"`
	Password  string `json:"password" validate:"required,min=8"`
	Address   string `json:"address" validate:"required"`
	City      string `json:"city" validate:"required"`
	State     string `json:"state" validate:"required"`
	Zipcode   string `json:"zipcode" validate:"required"`
}

type LoginInput struct {
	Identifier string `json:"identifier" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

type AuthService struct {
	users      UserStore
	tokens     *utils.TokenManager
	bcryptCost int
	now        func() time.Time
}

func NewAuthService(users UserStore, tokens *utils.TokenManager, bcryptCost int) *AuthService {
	return &AuthService{users: users, tokens: tokens, bcryptCost: bcryptCost, now: time.Now}
}

// Register creates a customer account. Accounts created here are never admins.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (u models.User, err error) {
	ctx, span := startSpan(ctx, "AuthService.Register")
	defer func() { endSpan(span, err) }()

	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	if err := check(in); err != nil {
		return models.User{}, err
	}
	return s.createUser(ctx, in, models.RoleUser)
}

// Bootstrap creates an account with the given role. It is used by the seeder
// to provision the first administrator.
func (s *AuthService) Bootstrap(ctx context.Context, in RegisterInput, role models.Role) (models.User, error) {
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if err := check(in); err != nil {
		return models.User{}, err
	}
	return s.createUser(ctx, in, role)
}

func (s *AuthService) createUser(ctx context.Context, in RegisterInput, role models.Role) (models.User, error) {
	hash, err := utils.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return models.User{}, err
	}
	u := models.User{
		FirstName: strings.TrimSpace(in.FirstName),
		LastName:  strings.TrimSpace(in.LastName),
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  hash,
		Address:   in.Address,
		City:      in.City,
		State:     in.State,
		Zipcode:   in.Zipcode,
		Role:      role,
		CreatedAt: s.now().UTC(),
	}
	if err := s.users.Create(ctx, &u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Login checks the password of the account matching identifier (email or phone)
// and returns a signed token.
func (s *AuthService) Login(ctx context.Context, in LoginInput) (token string, err error) {
	ctx, span := startSpan(ctx, "AuthService.Login")
	defer func() { endSpan(span, err) }()

	if err := check(in); err != nil {
		return "", err
	}
	u, err := s.users.FindByIdentifier(ctx, in.Identifier)
	if errors.Is(err, repository.ErrNotFound) {
		return "", ErrInvalidCredentials
	}
	if err != nil {
		return "", err
	}
	if !utils.VerifyPassword(u.Password, in.Password) {
		return "", ErrInvalidCredentials
	}
	return s.tokens.Issue(u.ID.Hex(), string(u.Role), u.FirstName)
}

// Me returns the account behind a session.
func (s *AuthService) Me(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	return s.users.FindByID(ctx, id)
}
