package server

import (
	"context"
	"net"
	"net/http"
	"strings"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/middleware"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/google/uuid"

	"github.com/yixianOu/movie-review/internal/service"
)

const requestIDHeader = "X-Request-Id"

// AuthMiddleware validates the admin Bearer token
func AuthMiddleware(token string) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			tr, ok := transport.FromServerContext(ctx)
			if !ok {
				return nil, errors.Unauthorized("UNAUTHORIZED", "missing transport info")
			}

			// Extract Authorization header
			authHeader := tr.RequestHeader().Get("Authorization")
			if authHeader == "" {
				return nil, errors.Unauthorized("UNAUTHORIZED", "missing Authorization header")
			}

			// Check Bearer token format
			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || parts[0] != "Bearer" {
				return nil, errors.Unauthorized("UNAUTHORIZED", "invalid Authorization header format")
			}

			// An empty configured token disables admin access entirely.
			if token == "" || parts[1] != token {
				return nil, errors.Unauthorized("UNAUTHORIZED", "invalid token")
			}

			return handler(ctx, req)
		}
	}
}

// ClientIPMiddleware records the caller address used as rating identity
func ClientIPMiddleware(trustForwarded bool) middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if tr, ok := transport.FromServerContext(ctx); ok {
				var r *http.Request
				if ht, ok := tr.(khttp.Transporter); ok {
					r = ht.Request()
				}
				ctx = service.WithClientIP(ctx, clientIP(tr.RequestHeader(), r, trustForwarded))
			}
			return handler(ctx, req)
		}
	}
}

func clientIP(header transport.Header, r *http.Request, trustForwarded bool) string {
	if trustForwarded {
		if forwarded := header.Get("X-Forwarded-For"); forwarded != "" {
			first := strings.TrimSpace(strings.SplitN(forwarded, ",", 2)[0])
			if first != "" {
				return first
			}
		}
	}
	if r == nil {
		return ""
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RequestIDMiddleware echoes or assigns an X-Request-Id
func RequestIDMiddleware() middleware.Middleware {
	return func(handler middleware.Handler) middleware.Handler {
		return func(ctx context.Context, req interface{}) (interface{}, error) {
			if tr, ok := transport.FromServerContext(ctx); ok {
				id := tr.RequestHeader().Get(requestIDHeader)
				if id == "" {
					if v7, err := uuid.NewV7(); err == nil {
						id = v7.String()
					}
				}
				tr.ReplyHeader().Set(requestIDHeader, id)
			}
			return handler(ctx, req)
		}
	}
}
