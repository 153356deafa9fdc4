package http

import (
	"errors"
	"net/http"

	"github.com/mkosarev/keepsake/internal/logger"
	"github.com/mkosarev/keepsake/internal/service"
	"github.com/mkosarev/keepsake/internal/store"
	"github.com/mkosarev/keepsake/internal/utils"
	"github.com/mkosarev/keepsake/internal/validators"
	"github.com/mkosarev/keepsake/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrTooManyAttempts:         http.StatusTooManyRequests,

	validators.ErrEmptyLabel:       http.StatusBadRequest,
	validators.ErrUnknownCategory:  http.StatusBadRequest,
	validators.ErrMissingPayload:   http.StatusBadRequest,
	validators.ErrForeignPayload:   http.StatusBadRequest,
	validators.ErrCategoryRequired: http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate: http.StatusBadRequest,
	validators.ErrEmptyPin:         http.StatusBadRequest,
	validators.ErrPinTooShort:      http.StatusBadRequest,
	validators.ErrPinNotDigits:     http.StatusBadRequest,

	store.ErrItemNotFound: http.StatusNotFound,
	store.ErrItemNotSaved: http.StatusInternalServerError,
	store.ErrPinNotFound:  http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status via the sentinel table and writes a
// JSON error body. A 5xx hides the underlying error text from the client;
// the details stay in the log.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)
	status := statusFromError(err)

	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		message = http.StatusText(status)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
