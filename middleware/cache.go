package middleware

import (
	"context"
	"crypto/sha1"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
)

// ResponseCache keeps successful public GET responses in Redis. A nil client
// disables caching.
type ResponseCache struct {
	rdb    *redis.Client
	ttl    time.Duration
	prefix string
}

func NewResponseCache(rdb *redis.Client, ttl time.Duration, prefix string) *ResponseCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &ResponseCache{rdb: rdb, ttl: ttl, prefix: prefix}
}

func (rc *ResponseCache) key(c echo.Context) string {
	sum := sha1.Sum([]byte(c.Request().URL.RequestURI()))
	return fmt.Sprintf("%s:%x", rc.prefix, sum[:])
}

// bodyRecorder copies the response body while it is written to the client.
type bodyRecorder struct {
	http.ResponseWriter
	status int
	body   []byte
}

func (w *bodyRecorder) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *bodyRecorder) Write(b []byte) (int, error) {
	w.body = append(w.body, b...)
	return w.ResponseWriter.Write(b)
}

// Cache serves GET requests from Redis and stores 200 responses on a miss.
func (rc *ResponseCache) Cache() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if rc.rdb == nil || c.Request().Method != http.MethodGet {
				return next(c)
			}
			ctx := c.Request().Context()
			key := rc.key(c)

			if body, err := rc.rdb.Get(ctx, key).Bytes(); err == nil {
				c.Response().Header().Set("X-Cache", "HIT")
				return c.JSONBlob(http.StatusOK, body)
			}

			rec := &bodyRecorder{ResponseWriter: c.Response().Writer, status: http.StatusOK}
			c.Response().Writer = rec
			c.Response().Header().Set("X-Cache", "MISS")
			if err := next(c); err != nil {
				return err
			}
			if rec.status == http.StatusOK && len(rec.body) > 0 {
				if err := rc.rdb.Set(context.Background(), key, rec.body, rc.ttl).Err(); err != nil {
					log.Printf("cache: store %s: %v", key, err)
				}
			}
			return nil
		}
	}
}

// Purge drops every cached response under the cache prefix.
func (rc *ResponseCache) Purge(ctx context.Context) error {
	if rc.rdb == nil {
		return nil
	}
	iter := rc.rdb.Scan(ctx, 0, rc.prefix+":*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return rc.rdb.Del(ctx, keys...).Err()
}

// PurgeOnWrite clears the cache after a successful non-GET request so that
// catalog edits are visible immediately.
func (rc *ResponseCache) PurgeOnWrite() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if rc.rdb == nil || c.Request().Method == http.MethodGet {
				return err
			}
			if err == nil && c.Response().Status < http.StatusBadRequest {
				if perr := rc.Purge(c.Request().Context()); perr != nil {
					log.Printf("cache: purge: %v", perr)
				}
			}
			return err
		}
	}
}
