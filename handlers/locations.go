package handlers

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

type LocationService interface {
	States(ctx context.Context) ([]string, error)
	Cities(ctx context.Context, state string) ([]string, error)
}

type LocationHandler struct {
	svc LocationService
}

func NewLocationHandler(svc LocationService) *LocationHandler {
	return &LocationHandler{svc: svc}
}

func (h *LocationHandler) GetStates(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	states, err := h.svc.States(ctx)
	if err != nil {
		return respondError(c, "State", err)
	}
	return respond(c, http.StatusOK, states)
}

func (h *LocationHandler) GetCities(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	cities, err := h.svc.Cities(ctx, c.Param("state"))
	if err != nil {
		return respondError(c, "State", err)
	}
	return respond(c, http.StatusOK, cities)
}
