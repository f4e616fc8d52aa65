package v1

import (
	"errors"
	"net/http"

	"github.com/fintrack/backend/internal/models"
)

type httpError struct {
	Error string `json:"error" example:"there is no transaction matching your query"`
}

// status returns the appropriate HTTP status for a business rule or
// database error. Everything that is not mapped explicitly is a client
// input problem.
func status(err error) int {
	switch {
	case errors.Is(err, models.ErrGeneral):
		return http.StatusInternalServerError

	case errors.Is(err, models.ErrResourceNotFound):
		return http.StatusNotFound

	// The ownership check intentionally acknowledges that the resource
	// exists. Do not change this to 404 without checking all API consumers.
	case errors.Is(err, models.ErrNoResourceAccess),
		errors.Is(err, models.ErrDefaultCategoryProtected):
		return http.StatusForbidden

	case errors.Is(err, models.ErrUsernameTaken),
		errors.Is(err, models.ErrCategoryNameTaken):
		return http.StatusConflict

	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrNoValidSession):
		return http.StatusUnauthorized
	}

	return http.StatusBadRequest
}
