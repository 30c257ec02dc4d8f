package middleware

import (
	"context"
	"time"

	"urlfetch/internal/handler"
	"urlfetch/internal/observability"
)

func MetricsMiddleware(metrics observability.Metrics) handler.Middleware {
	return func(next handler.HandlerFunc) handler.HandlerFunc {
		return func(ctx context.Context, req handler.Request) (handler.Response, error) {
			start := time.Now()

			metrics.StartOperation(req.Type)
			defer metrics.EndOperation(req.Type)

			resp, err := next(ctx, req)

			metrics.RecordDuration(req.Type, time.Since(start).Seconds())

			switch {
			case err != nil:
				metrics.RecordError(req.Type, "handler_error")
			case !resp.Success:
				errorType := "unknown"
				if resp.Error != nil {
					errorType = resp.Error.Code
				}
				metrics.RecordError(req.Type, errorType)
			default:
				metrics.RecordSuccess(req.Type)
			}

			return resp, err
		}
	}
}
