package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	kerrors "github.com/go-kratos/kratos/v2/errors"
	"github.com/stretchr/testify/assert"

	"github.com/yixianOu/movie-review/internal/biz"
)

func TestToHTTPError(t *testing.T) {
	ve := &biz.ValidationError{}
	ve.Add("email", "must be a valid email address")
	ve.Add("email", "must be at most 254 characters")

	tests := []struct {
		name   string
		err    error
		code   int32
		reason string
	}{
		{"validation", ve, 422, "VALIDATION_ERROR"},
		{"invalid star", fmt.Errorf("%w: 9", biz.ErrInvalidStar), 422, "INVALID_STAR"},
		{"movie not found", fmt.Errorf("%w: 7", biz.ErrMovieNotFound), 404, "MOVIE_NOT_FOUND"},
		{"not found", fmt.Errorf("get actor: %w", biz.ErrNotFound), 404, "NOT_FOUND"},
		{"conflict", fmt.Errorf("%w: url taken", biz.ErrConflict), 409, "CONFLICT"},
		{"cycle", biz.ErrCycleDetected, 500, "MALFORMED_REVIEW_TREE"},
		{"depth", biz.ErrDepthExceeded, 500, "MALFORMED_REVIEW_TREE"},
		{"unknown", errors.New("boom"), 500, "INTERNAL"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := kerrors.FromError(toHTTPError(tt.err))
			assert.Equal(t, tt.code, e.Code)
			assert.Equal(t, tt.reason, e.Reason)
		})
	}

	e := kerrors.FromError(toHTTPError(ve))
	assert.Equal(t, "must be a valid email address; must be at most 254 characters", e.Metadata["email"])
}

func TestClientIPContext(t *testing.T) {
	assert.Equal(t, "", ClientIPFromContext(context.Background()))
	assert.Equal(t, "1.2.3.4", ClientIPFromContext(WithClientIP(context.Background(), "1.2.3.4")))
}
