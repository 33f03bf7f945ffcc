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

type UserService interface {
	Profile(ctx context.Context, id primitive.ObjectID) (models.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, in services.ProfileInput) (models.User, error)
}

type UserHandler struct {
	svc UserService
}

func NewUserHandler(svc UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) GetUserProfile(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Not authorized, no token")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.Profile(ctx, s.UserID)
	if err != nil {
		return respondError(c, "User", err)
	}
	return respond(c, http.StatusOK, user)
}

// UpdateUserProfile changes the fields present in the body; empty fields keep their value.
func (h *UserHandler) UpdateUserProfile(c echo.Context) error {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Not authorized, no token")
	}
	var in services.ProfileInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	user, err := h.svc.UpdateProfile(ctx, s.UserID, in)
	if err != nil {
		return respondError(c, "User", err)
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: user, Msg: "Profile updated successfully"})
}
