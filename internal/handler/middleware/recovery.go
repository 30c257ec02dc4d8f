package middleware

import (
	"context"
	"fmt"
	"runtime/debug"

	"urlfetch/internal/handler"
	"urlfetch/internal/observability"
)

func RecoveryMiddleware(logger observability.Logger) handler.Middleware {
	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx context.Context, req handler.Request) (resp handler.Response, err error) {
			defer func() {
				if r := recover(); r != nil {
					logger.Error("Panic recovered",
						"request_id", req.ID,
						"panic", fmt.Sprintf("%v", r),
						"stack", string(debug.Stack()))

					err = fmt.Errorf("panic recovered: %v", r)
					resp = handler.NewErrorResponse(
						req.ID,
						handler.CodeInternal,
						"An internal error occurred",
						"",
					)
				}
			}()

			return next(ctx, req)
		}
	}
}
