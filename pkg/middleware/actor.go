package middleware

import (
	"context"

	"github.com/labstack/echo/v4"

	"inventory-system/pkg/contextkeys"
)

// Actor copies the caller-supplied identity headers into the request
// context. Authentication happens outside this service; we only record
// who the caller claims to be for audit attribution.
func Actor() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := req.Context()
			if actorID := req.Header.Get("X-Actor-ID"); actorID != "" {
				ctx = context.WithValue(ctx, contextkeys.ActorIDKey, actorID)
			}
			if actorName := req.Header.Get("X-Actor-Name"); actorName != "" {
				ctx = context.WithValue(ctx, contextkeys.ActorNameKey, actorName)
			}
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
