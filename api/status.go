package api

import (
	"errors"
	"net/http"

	"github.com/dortiz91/aerolinea/internal/domain"
)

// statusFor maps domain errors onto HTTP statuses: missing entities are 404,
// conflicts and oversold flights are 409, bad input is 400.
func statusFor(err error) int {
	var notFound *domain.NotFoundError
	var conflict *domain.ScheduleConflictError
	var oversold *domain.OversoldError
	var inconsistent *domain.InconsistentDataError

	switch {
	case errors.As(err, &notFound):
		return http.StatusNotFound
	case errors.As(err, &conflict), errors.As(err, &oversold):
		return http.StatusConflict
	case errors.As(err, &inconsistent):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
