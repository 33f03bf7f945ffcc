package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/services"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProductService interface {
	List(ctx context.Context, categoryID string) ([]services.ProductView, error)
	Get(ctx context.Context, id primitive.ObjectID) (services.ProductView, error)
	ByCategorySlug(ctx context.Context, slug string) (services.CategoryProducts, error)
	Availability(ctx context.Context, id primitive.ObjectID, sel catalog.Selection) (catalog.Availability, error)
	Create(ctx context.Context, in services.ProductInput) (services.ProductView, error)
	Update(ctx context.Context, id primitive.ObjectID, in services.ProductInput) (services.ProductView, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ImageStore saves uploaded product images and returns their public URL.
type ImageStore interface {
	Save(fh *multipart.FileHeader) (string, error)
	Remove(url string) error
}

type ProductHandler struct {
	svc    ProductService
	images ImageStore
}

func NewProductHandler(svc ProductService, images ImageStore) *ProductHandler {
	return &ProductHandler{svc: svc, images: images}
}

// GetProducts lists products, optionally filtered with ?category=<id>.
func (h *ProductHandler) GetProducts(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	products, err := h.svc.List(ctx, c.QueryParam("category"))
	if err != nil {
		return respondError(c, "Product", err)
	}
	return respond(c, http.StatusOK, products)
}

func (h *ProductHandler) GetProduct(c echo.Context) error {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.svc.Get(ctx, id)
	if err != nil {
		return respondError(c, "Product", err)
	}
	return respond(c, http.StatusOK, product)
}

// GetProductsByCategory lists the products of the category named by :slug and of
// its subcategories.
func (h *ProductHandler) GetProductsByCategory(c echo.Context) error {
	ctx, cancel := requestContext(c)
	defer cancel()

	res, err := h.svc.ByCategorySlug(ctx, c.Param("slug"))
	if err != nil {
		return respondError(c, "Category", err)
	}
	return c.JSON(http.StatusOK, envelope{Success: true, Data: res.Products, CategoryName: res.Category.Name})
}

// GetAvailability resolves the option values given as query parameters,
// e.g. ?Color=Black&Size=M.
func (h *ProductHandler) GetAvailability(c echo.Context) error {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}
	sel := catalog.Selection{}
	for name, values := range c.QueryParams() {
		if len(values) > 0 {
			sel[name] = values[0]
		}
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	a, err := h.svc.Availability(ctx, id, sel)
	if err != nil {
		return respondError(c, "Product", err)
	}
	return respond(c, http.StatusOK, a)
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	in, uploaded, err := h.bindProduct(c)
	if err != nil {
		return respondError(c, "Product", err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.svc.Create(ctx, in)
	if err != nil {
		h.discardImage(uploaded)
		return respondError(c, "Product", err)
	}
	return respond(c, http.StatusCreated, product)
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}
	in, uploaded, err := h.bindProduct(c)
	if err != nil {
		return respondError(c, "Product", err)
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	product, err := h.svc.Update(ctx, id, in)
	if err != nil {
		h.discardImage(uploaded)
		return respondError(c, "Product", err)
	}
	return respond(c, http.StatusOK, product)
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	id, ok := objectIDParam(c, "id")
	if !ok {
		return fail(c, http.StatusBadRequest, "Invalid product ID")
	}

	ctx, cancel := requestContext(c)
	defer cancel()

	if err := h.svc.Delete(ctx, id); err != nil {
		return respondError(c, "Product", err)
	}
	return respond(c, http.StatusOK, echo.Map{})
}

// bindProduct reads a product from a JSON body or from a multipart form with an
// optional "image" file. In forms, optionNames and variants are JSON strings.
// uploaded is the URL of an image saved for this request, if any.
func (h *ProductHandler) bindProduct(c echo.Context) (in services.ProductInput, uploaded string, err error) {
	ct := c.Request().Header.Get(echo.HeaderContentType)
	if !strings.HasPrefix(ct, echo.MIMEMultipartForm) {
		if err := c.Bind(&in); err != nil {
			return in, "", &services.ValidationError{Msg: "Invalid request body", Err: err}
		}
		return in, "", nil
	}
	if err := readProductForm(c, &in); err != nil {
		return in, "", err
	}

	fh, err := c.FormFile("image")
	switch {
	case errors.Is(err, http.ErrMissingFile):
		return in, "", nil
	case err != nil:
		return in, "", &services.ValidationError{Msg: "Invalid image upload", Err: err}
	}
	url, err := h.images.Save(fh)
	if err != nil {
		return in, "", err
	}
	in.ImageURL = url
	return in, url, nil
}

func readProductForm(c echo.Context, in *services.ProductInput) error {
	in.Name = c.FormValue("name")
	in.Description = c.FormValue("description")
	in.CategoryID = c.FormValue("category")
	in.ProductType = models.ProductType(c.FormValue("productType"))

	if v := strings.TrimSpace(c.FormValue("price")); v != "" {
		price, err := models.ParseMoney(v)
		if err != nil {
			return &services.ValidationError{Msg: "price must be a number", Err: err}
		}
		in.Price = price
	}
	if v := strings.TrimSpace(c.FormValue("stock")); v != "" {
		stock, err := strconv.Atoi(v)
		if err != nil {
			return &services.ValidationError{Msg: "stock must be a whole number", Err: err}
		}
		in.Stock = stock
	}
	if v := c.FormValue("optionNames"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.OptionNames); err != nil {
			return &services.ValidationError{Msg: "optionNames must be a JSON array", Err: err}
		}
	}
	if v := c.FormValue("variants"); v != "" {
		if err := json.Unmarshal([]byte(v), &in.Variants); err != nil {
			return &services.ValidationError{Msg: "variants must be a JSON array", Err: err}
		}
	}
	return nil
}

func (h *ProductHandler) discardImage(url string) {
	if url == "" || h.images == nil {
		return
	}
	if err := h.images.Remove(url); err != nil {
		log.Printf("remove unused image %s: %v", url, err)
	}
}
