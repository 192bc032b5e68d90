package http

import (
	"errors"
	"net/http"

	"github.com/couchcryptid/saferoute/internal/domain"
)

type errorResponse struct {
	Error string `json:"error"`
	Kind  string `json:"kind"`
	Field string `json:"field,omitempty"`
}

// classifyError maps an evaluation error to an HTTP status and response body.
func classifyError(err error) (int, errorResponse) {
	var (
		verr *domain.ValidationError
		serr *domain.SchemaError
		cerr *domain.ClassificationError
	)
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, errorResponse{Error: err.Error(), Kind: "validation", Field: verr.Field}
	case errors.As(err, &serr):
		return http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "schema", Field: serr.Field}
	case errors.As(err, &cerr):
		return http.StatusBadGateway, errorResponse{Error: err.Error(), Kind: "classification"}
	default:
		return http.StatusInternalServerError, errorResponse{Error: err.Error(), Kind: "internal"}
	}
}
