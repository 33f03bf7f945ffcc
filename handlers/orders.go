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

type OrderService interface {
	Place(ctx context.Context, actor services.Actor, in services.OrderInput) (models.Order, error)
	Get(ctx context.Context, actor services.Actor, id primitive.ObjectID) (models.Order, error)
	Mine(ctx context.Context, actor services.Actor) ([]models.Order, error)
	All(ctx context.Context) ([]models.Order, error)
}

type OrderHandler struct {
	svc OrderService
}

func NewOrderHandler(svc OrderService) *OrderHandler {
	return &OrderHandler{svc: svc}
}

func actorFrom(c echo.Context) (services.Actor, bool) {
	s, ok := middleware.SessionFrom(c)
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{ID: s.UserID, Role: s.Role}, true
}

func (h *OrderHandler) CreateOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Not authorized, no token")
	}
	var in services.OrderInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.svc.Place(ctx, actor, in)
	if err != nil {
		return respondError(c, "Order", err)
	}
	return respond(c, http.StatusCreated, order)
}

func (h *OrderHandler) GetMyOrders(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Not authorized, no token")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := h.svc.Mine(ctx, actor)
	if err != nil {
		return respondError(c, "Order", err)
	}
	return respond(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrders(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	orders, err := h.svc.All(ctx)
	if err != nil {
		return respondError(c, "Order", err)
	}
	return respond(c, http.StatusOK, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	actor, ok := actorFrom(c)
	if !ok {
		return fail(c, http.StatusUnauthorized, "Not authorized, no token")
	}
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid order ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	order, err := h.svc.Get(ctx, actor, id)
	if err != nil {
		return respondError(c, "Order", err)
	}
	return respond(c, http.StatusOK, order)
}
