package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/biz-records/internal/logger"
	"github.com/MKhiriev/biz-records/internal/service"
	"github.com/MKhiriev/biz-records/internal/store"
	"github.com/MKhiriev/biz-records/internal/utils"
	"github.com/MKhiriev/biz-records/internal/validators"
	"github.com/MKhiriev/biz-records/models"
)

const (
	msgInvalidCredentials = "Unable to authenticate with provided credentials"
	msgRestricted         = "Cannot delete this object because other records still reference it"
	msgAlreadyExists      = "An object with this value already exists"
	msgReferenceNotFound  = "Invalid pk, referenced object does not exist"
)

var errorStatusMap = map[error]int{
	service.ErrNoUsernameProvided:      http.StatusBadRequest,
	service.ErrNoPasswordProvided:      http.StatusBadRequest,
	service.ErrInvalidCredentials:      http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrInactiveUser:            http.StatusUnauthorized,

	ErrEmptyAuthorizationHeader:         http.StatusUnauthorized,
	utils.ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrUnauthenticated:                  http.StatusUnauthorized,
	ErrForbidden:                        http.StatusForbidden,
	ErrInvalidJSON:                      http.StatusBadRequest,
	ErrInvalidID:                        http.StatusNotFound,

	validators.ErrRequired:          http.StatusBadRequest,
	validators.ErrTooLong:           http.StatusBadRequest,
	validators.ErrInvalidUsername:   http.StatusBadRequest,
	validators.ErrPasswordTooShort:  http.StatusBadRequest,
	validators.ErrInvalidEmail:      http.StatusBadRequest,
	validators.ErrInvalidReference:  http.StatusBadRequest,
	validators.ErrNoFieldsToUpdate:  http.StatusBadRequest,
	validators.ErrInvalidIdentifier: http.StatusBadRequest,

	store.ErrNotFound:          http.StatusNotFound,
	store.ErrAlreadyExists:     http.StatusBadRequest,
	store.ErrReferenceNotFound: http.StatusBadRequest,
	store.ErrRestricted:        http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorResponse builds the status and JSON body for err. Internal failures
// never leak their message; restrict violations do carry one.
func errorResponse(err error) (int, models.ErrorResponse) {
	status := statusFromError(err)

	var fieldErr *validators.FieldError
	switch {
	case errors.As(err, &fieldErr):
		return status, models.ErrorResponse{
			Detail: "Invalid input",
			Errors: map[string]string{fieldErr.Field: fieldErr.Err.Error()},
		}
	case errors.Is(err, service.ErrInvalidCredentials):
		return status, models.ErrorResponse{Detail: msgInvalidCredentials}
	case errors.Is(err, store.ErrRestricted):
		return status, models.ErrorResponse{Detail: msgRestricted}
	case errors.Is(err, store.ErrAlreadyExists):
		return status, models.ErrorResponse{Detail: msgAlreadyExists}
	case errors.Is(err, store.ErrReferenceNotFound):
		return status, models.ErrorResponse{Detail: msgReferenceNotFound}
	case status == http.StatusNotFound:
		return status, models.ErrorResponse{Detail: "Not found"}
	case status == http.StatusInternalServerError:
		return status, models.ErrorResponse{Detail: http.StatusText(status)}
	}

	for target, s := range errorStatusMap {
		if s == status && errors.Is(err, target) {
			return status, models.ErrorResponse{Detail: target.Error()}
		}
	}

	return status, models.ErrorResponse{Detail: http.StatusText(status)}
}

// writeError logs err with the request logger and writes its JSON response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, body := errorResponse(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if status == http.StatusUnauthorized {
		w.Header().Set("WWW-Authenticate", utils.SchemeToken)
	}

	utils.WriteJSON(w, body, status)
}
