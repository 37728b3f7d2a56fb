package handler

import (
	"errors"
	"net/http"

	"github.com/powledger/powledger/internal/ledger"
)

// StatusCode maps node errors to HTTP status codes.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ledger.ErrMalformedInput):
		return http.StatusBadRequest
	case errors.Is(err, ledger.ErrBlockBehindTip):
		return http.StatusConflict
	case errors.Is(err, ledger.ErrBlockAheadOfTip):
		return http.StatusAccepted
	}

	switch ledger.KindOf(err) {
	case ledger.KindValidation:
		return http.StatusUnprocessableEntity
	case ledger.KindNotReady:
		return http.StatusPreconditionFailed
	case ledger.KindSequence:
		return http.StatusConflict
	case ledger.KindInterrupted:
		return http.StatusServiceUnavailable
	case ledger.KindPeerCommunication:
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
