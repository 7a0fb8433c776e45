package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-life-vault/internal/crypto"
	"github.com/MKhiriev/go-life-vault/internal/service"
	"github.com/MKhiriev/go-life-vault/internal/store"
)

type errorStatus struct {
	err    error
	status int
}

// errorStatuses is searched in order, so an error wrapping several of these
// gets the status of the first. Store failures come before crypto ones: a
// record the at-rest cipher cannot open is a server fault, not a bad
// password from the caller.
var errorStatuses = []errorStatus{
	{ErrBodyTooLarge, http.StatusRequestEntityTooLarge},
	{ErrInvalidJSON, http.StatusBadRequest},
	{ErrMissingData, http.StatusBadRequest},
	{ErrInvalidLength, http.StatusBadRequest},

	{store.ErrCorruptedRecord, http.StatusInternalServerError},
	{store.ErrNotFound, http.StatusNotFound},
	{store.ErrInvalidKey, http.StatusBadRequest},
	{store.ErrInvalidRecord, http.StatusBadRequest},
	{store.ErrBuildingSQLQuery, http.StatusInternalServerError},
	{store.ErrExecutingQuery, http.StatusInternalServerError},
	{store.ErrExecutingStatement, http.StatusInternalServerError},
	{store.ErrScanningRow, http.StatusInternalServerError},
	{store.ErrScanningRows, http.StatusInternalServerError},

	{service.ErrCryptoUnavailable, http.StatusServiceUnavailable},
	{service.ErrWeakPassword, http.StatusUnprocessableEntity},

	{crypto.ErrEmptyPassword, http.StatusBadRequest},
	{crypto.ErrPasswordTooShort, http.StatusBadRequest},
	{crypto.ErrPasswordTooLong, http.StatusBadRequest},
	{crypto.ErrUnsupportedPayload, http.StatusBadRequest},
	{crypto.ErrMalformedEnvelope, http.StatusUnprocessableEntity},
	{crypto.ErrDecryptionFailed, http.StatusUnprocessableEntity},

	{context.DeadlineExceeded, http.StatusGatewayTimeout},
}

func statusFromError(err error) int {
	for _, es := range errorStatuses {
		if errors.Is(err, es.err) {
			return es.status
		}
	}
	return http.StatusInternalServerError
}
