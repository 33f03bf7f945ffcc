package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/catalog"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/repository"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/services"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const requestTimeout = 10 * time.Second

// envelope is the body of every API response.
type envelope struct {
	Success      bool   `json:"success"`
	Data         any    `json:"data,omitempty"`
	Msg          string `json:"msg,omitempty"`
	Token        string `json:"token,omitempty"`
	CategoryName string `json:"categoryName,omitempty"`
}

func respond(c echo.Context, status int, data any) error {
	return c.JSON(status, envelope{Success: true, Data: data})
}

func fail(c echo.Context, status int, msg string) error {
	return c.JSON(status, envelope{Success: false, Msg: msg})
}

// respondError maps a service error to a status code. resource names the thing
// that was looked up, for the 404 message. Unexpected errors are logged and
// reported without detail.
func respondError(c echo.Context, resource string, err error) error {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		return fail(c, http.StatusBadRequest, verr.Msg)
	case errors.Is(err, services.ErrHasChildren),
		errors.Is(err, utils.ErrUnsupportedImage),
		errors.Is(err, utils.ErrFileTooLarge):
		return fail(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, catalog.ErrCategoryNotFound):
		return fail(c, http.StatusNotFound, "Category not found")
	case errors.Is(err, repository.ErrNotFound):
		return fail(c, http.StatusNotFound, resource+" not found")
	case errors.Is(err, services.ErrInvalidCredentials):
		return fail(c, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, services.ErrForbidden):
		return fail(c, http.StatusForbidden, "Not authorized")
	case errors.Is(err, repository.ErrConflict):
		return fail(c, http.StatusConflict, resource+" already exists")
	case errors.Is(err, context.DeadlineExceeded):
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return fail(c, http.StatusGatewayTimeout, "Request timed out")
	default:
		log.Printf("%s %s: %v", c.Request().Method, c.Path(), err)
		return fail(c, http.StatusInternalServerError, "Server Error")
	}
}

func requestContext(c echo.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(c.Request().Context(), requestTimeout)
}

func objectIDParam(c echo.Context, name string) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param(name))
	return id, err == nil
}
