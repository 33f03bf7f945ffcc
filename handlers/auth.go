package handlers

import (
	"context"
	"net/http"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/middleware"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/services"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AuthService interface {
	Register(ctx context.Context, in services.RegisterInput) (models.User, error)
	Login(ctx context.Context, in services.LoginInput) (string, error)
	Me(ctx context.Context, id primitive.ObjectID) (models.User, error)
}

type AuthHandler struct {
	svc AuthService
}

func NewAuthHandler(svc AuthService) *AuthHandler {
	return &AuthHandler{svc: svc}
}

func (h *AuthHandler) Register(c echo.Context) error {
	var in services.RegisterInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.Register(ctx, in)
	if err != nil {
		return respondError(c, "User", err)
	}
	return c.JSON(http.StatusCreated, envelope{Success: true, Data: user, Msg: "User registered successfully"})
}

// Login accepts an email address or phone number as identifier.
func (h *AuthHandler) Login(c echo.Context) error {
	var in services.LoginInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	token, err := h.svc.Login(ctx, in)
	if err != nil {
		return respondError(c, "User", err)
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Token: token})
}

func (h *AuthHandler) Me(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Not authorized, no token")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.Me(ctx, s.UserID)
	if err != nil {
		return respondError(c, "User", err)
	}
	return respond(c, http.StatusOK, user)
}
