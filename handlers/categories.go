package handlers

import (
	"context"
	"net/http"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/services"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CategoryService interface {
	Tree(ctx context.Context) ([]*catalog.CategoryNode, error)
	Options(ctx context.Context) ([]catalog.CategoryOption, error)
	Create(ctx context.Context, in services.CategoryInput) (models.Category, error)
	Update(ctx context.Context, id primitive.ObjectID, in services.CategoryInput) (models.Category, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type CategoryHandler struct {
	svc CategoryService
}

func NewCategoryHandler(svc CategoryService) *CategoryHandler {
	return &CategoryHandler{svc: svc}
}

// GetCategories returns the nested category tree.
func (h *CategoryHandler) GetCategories(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	tree, err := h.svc.Tree(ctx)
	if err != nil {
		return respondError(c, "Category", err)
	}
	return respond(c, http.StatusOK, tree)
}

// GetCategoryOptions returns the indented list used by admin dropdowns.
func (h *CategoryHandler) GetCategoryOptions(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	opts, err := h.svc.Options(ctx)
	if err != nil {
		return respondError(c, "Category", err)
	}
	return respond(c, http.StatusOK, opts)
}

func (h *CategoryHandler) CreateCategory(c echo.Context) error {
	var in services.CategoryInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.svc.Create(ctx, in)
	if err != nil {
		return respondError(c, "Category", err)
	}
	return respond(c, http.StatusCreated, cat)
}

func (h *CategoryHandler) UpdateCategory(c echo.Context) error {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid category ID")
	}
	var in services.CategoryInput
	if err := c.Bind(&in); err != nil {
		return fail(c, http.StatusBadRequest, "Invalid request body")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	cat, err := h.svc.Update(ctx, id, in)
	if err != nil {
		return respondError(c, "Category", err)
	}
	return respond(c, http.StatusOK, cat)
}

func (h *CategoryHandler) DeleteCategory(c echo.Context) error {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid category ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		return respondError(c, "Category", err)
	}
	return respond(c, http.StatusOK, echo.Map{})
}
