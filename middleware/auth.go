package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/Madhav-Gupta-28/sportsmart-backend-go/models"
	"github.com/Madhav-Gupta-28/sportsmart-backend-go/utils"
	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const sessionKey = "session"

// Session is the authenticated caller, built from a verified bearer token.
type Session struct {
	UserID    primitive.ObjectID
	Role      models.Role
	FirstName string
	ExpiresAt time.Time
}

func (s Session) IsAdmin() bool { return s.Role == models.RoleAdmin }

func (s Session) Expired(now time.Time) bool { return !now.Before(s.ExpiresAt) }

// SessionFrom returns the session stored by Authenticate.
func SessionFrom(c echo.Context) (Session, bool) {
	s, ok := c.Get(sessionKey).(Session)
	return s, ok
}

func unauthorized(c echo.Context, msg string) error {
	return c.JSON(http.StatusUnauthorized, echo.Map{"success": false, "msg": msg})
}

// Authenticate requires a valid "Authorization: Bearer <token>" header.
func Authenticate(tokens *utils.TokenManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
			if authHeader == "" {
				return unauthorized(c, "Not authorized, no token")
			}

			tokenParts := strings.Fields(authHeader)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				return unauthorized(c, "Invalid authorization header format")
			}

			claims, err := tokens.Parse(tokenParts[1])
			if err != nil {
				return unauthorized(c, "Not authorized, token failed")
			}
			userID, err := primitive.ObjectIDFromHex(claims.UserID)
			if err != nil {
				return unauthorized(c, "Not authorized, token failed")
			}

			s := Session{
				UserID:    userID,
				Role:      models.Role(claims.Role),
				FirstName: claims.FirstName,
				ExpiresAt: time.Unix(claims.ExpiresAt, 0),
			}
			if s.Expired(time.Now()) {
				return unauthorized(c, "Session expired")
			}
			c.Set(sessionKey, s)
			return next(c)
		}
	}
}

// RequireRole lets the request through only when the session has one of roles.
// It must run after Authenticate.
func RequireRole(roles ...models.Role) echo.MiddlewareFunc {
	allowed := make(map[models.Role]bool, len(roles))
	for _, r := range roles {
		allowed[r] = true
	}
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			s, ok := SessionFrom(c)
			if !ok {
				return unauthorized(c, "Not authorized, no token")
			}
			if !allowed[s.Role] {
				return c.JSON(http.StatusForbidden, echo.Map{
					"success": false,
					"msg":     "User role " + string(s.Role) + " is not authorized to access this route",
				})
			}
			return next(c)
		}
	}
}
