package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-kratos/kratos/v2/errors"
	"github.com/go-kratos/kratos/v2/transport"
	khttp "github.com/go-kratos/kratos/v2/transport/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yixianOu/movie-review/internal/service"
)

type headerCarrier http.Header

func (hc headerCarrier) Get(key string) string      { return http.Header(hc).Get(key) }
func (hc headerCarrier) Set(key, value string)      { http.Header(hc).Set(key, value) }
func (hc headerCarrier) Add(key, value string)      { http.Header(hc).Add(key, value) }
func (hc headerCarrier) Values(key string) []string { return http.Header(hc).Values(key) }
func (hc headerCarrier) Keys() []string {
	keys := make([]string, 0, len(hc))
	for k := range hc {
		keys = append(keys, k)
	}
	return keys
}

type testTransport struct {
	operation string
	reqHeader headerCarrier
	repHeader headerCarrier
}

func newTestTransport(operation string) *testTransport {
	return &testTransport{
		operation: operation,
		reqHeader: headerCarrier{},
		repHeader: headerCarrier{},
	}
}

func (tr *testTransport) Kind() transport.Kind            { return transport.KindHTTP }
func (tr *testTransport) Endpoint() string                { return "" }
func (tr *testTransport) Operation() string               { return tr.operation }
func (tr *testTransport) RequestHeader() transport.Header { return tr.reqHeader }
func (tr *testTransport) ReplyHeader() transport.Header   { return tr.repHeader }

func okHandler(context.Context, interface{}) (interface{}, error) { return "ok", nil }

func TestAuthMiddleware(t *testing.T) {
	tests := []struct {
		name    string
		token   string
		header  string
		wantErr bool
	}{
		{"valid token", "secret", "Bearer secret", false},
		{"missing header", "secret", "", true},
		{"wrong scheme", "secret", "Basic secret", true},
		{"wrong token", "secret", "Bearer nope", true},
		{"admin disabled", "", "Bearer ", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := newTestTransport("/api.movie.v1.AdminService/CreateMovie")
			if tt.header != "" {
				tr.reqHeader.Set("Authorization", tt.header)
			}
			ctx := transport.NewServerContext(context.Background(), tr)

			out, err := AuthMiddleware(tt.token)(okHandler)(ctx, nil)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsUnauthorized(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "ok", out)
		})
	}
}

func TestAuthMiddlewareWithoutTransport(t *testing.T) {
	_, err := AuthMiddleware("secret")(okHandler)(context.Background(), nil)
	assert.True(t, errors.IsUnauthorized(err))
}

func TestRequestIDMiddleware(t *testing.T) {
	tr := newTestTransport("op")
	ctx := transport.NewServerContext(context.Background(), tr)
	_, err := RequestIDMiddleware()(okHandler)(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, tr.repHeader.Get(requestIDHeader), 36)

	tr = newTestTransport("op")
	tr.reqHeader.Set(requestIDHeader, "abc-123")
	ctx = transport.NewServerContext(context.Background(), tr)
	_, err = RequestIDMiddleware()(okHandler)(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, "abc-123", tr.repHeader.Get(requestIDHeader))
}

func TestClientIP(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/movies", nil)
	r.RemoteAddr = "192.0.2.10:53211"
	header := headerCarrier{}
	header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")

	assert.Equal(t, "192.0.2.10", clientIP(header, r, false))
	assert.Equal(t, "203.0.113.7", clientIP(header, r, true))
	assert.Equal(t, "192.0.2.10", clientIP(headerCarrier{}, r, true))

	r.RemoteAddr = "192.0.2.10"
	assert.Equal(t, "192.0.2.10", clientIP(headerCarrier{}, r, false))
	assert.Equal(t, "", clientIP(headerCarrier{}, nil, false))
}

func TestMiddlewareChainOverHTTP(t *testing.T) {
	srv := khttp.NewServer(
		khttp.Middleware(RequestIDMiddleware(), ClientIPMiddleware(false)),
		khttp.ResponseEncoder(customResponseEncoder),
	)
	srv.Route("/").GET("/whoami", func(ctx khttp.Context) error {
		khttp.SetOperation(ctx, "/test/WhoAmI")
		h := ctx.Middleware(func(ctx context.Context, _ interface{}) (interface{}, error) {
			return &createdReply{IP: service.ClientIPFromContext(ctx)}, nil
		})
		out, err := h(ctx, nil)
		if err != nil {
			return err
		}
		return ctx.Result(200, out)
	})

	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	req.RemoteAddr = "198.51.100.4:4000"
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(requestIDHeader))
	var body createdReply
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "198.51.100.4", body.IP)
}

type createdReply struct {
	IP string `json:"ip"`
}

func (*createdReply) HTTPStatus() int { return http.StatusCreated }
