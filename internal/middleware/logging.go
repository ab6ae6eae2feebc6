package middleware

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"connectrpc.com/connect"
)

// LoggingInterceptor logs one line per RPC with the caller and outcome.
// Mount it inside the auth interceptor so the session is already set.
func LoggingInterceptor() connect.UnaryInterceptorFunc {
	return func(next connect.UnaryFunc) connect.UnaryFunc {
		return func(ctx context.Context, req connect.AnyRequest) (connect.AnyResponse, error) {
			start := time.Now()
			resp, err := next(ctx, req)

			snap := GetSession(ctx).Snapshot()
			attrs := []any{
				"procedure", req.Spec().Procedure,
				"user_id", snap.UserID(),
				"role", snap.Role(),
				"duration_ms", time.Since(start).Milliseconds(),
			}

			var connectErr *connect.Error
			switch {
			case err == nil:
				slog.Info("RPC ok", attrs...)
			case errors.As(err, &connectErr) && connectErr.Code() != connect.CodeInternal:
				slog.Warn("RPC rejected", append(attrs, "code", connectErr.Code(), "error", connectErr.Message())...)
			default:
				slog.Error("RPC failed", append(attrs, "code", connect.CodeOf(err), "error", err)...)
			}
			return resp, err
		}
	}
}
