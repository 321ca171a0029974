package service

import (
	"errors"

	kerrors "github.com/go-kratos/kratos/v2/errors"

	"github.com/yixianOu/movie-review/internal/biz"
)

// toHTTPError maps biz errors onto API errors. Unknown errors become 500s.
func toHTTPError(err error) error {
	var ve *biz.ValidationError
	switch {
	case errors.As(err, &ve):
		md := make(map[string]string, len(ve.Fields))
		for _, f := range ve.Fields {
			if prev, ok := md[f.Field]; ok {
				md[f.Field] = prev + "; " + f.Reason
				continue
			}
			md[f.Field] = f.Reason
		}
		return kerrors.New(422, "VALIDATION_ERROR", ve.Error()).WithMetadata(md)
	case errors.Is(err, biz.ErrInvalidStar):
		return kerrors.New(422, "INVALID_STAR", err.Error())
	case errors.Is(err, biz.ErrMovieNotFound):
		return kerrors.NotFound("MOVIE_NOT_FOUND", "movie not found")
	case errors.Is(err, biz.ErrNotFound):
		return kerrors.NotFound("NOT_FOUND", "not found")
	case errors.Is(err, biz.ErrConflict):
		return kerrors.Conflict("CONFLICT", err.Error())
	case errIs(err, biz.ErrCycleDetected, biz.ErrDepthExceeded):
		return kerrors.InternalServer("MALFORMED_REVIEW_TREE", err.Error())
	default:
		return kerrors.InternalServer("INTERNAL", "internal error").WithCause(err)
	}
}

// errIs is errors.Is over several targets.
func errIs(err error, targets ...error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
