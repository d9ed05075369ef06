package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-nft-keeper/internal/app"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
	"github.com/MKhiriev/go-nft-keeper/internal/store"
)

type errorResponse struct {
	status  int
	message string
}

var errorResponses = []struct {
	target error
	errorResponse
}{
	{ErrInvalidForm, errorResponse{http.StatusBadRequest, app.MsgInvalidForm}},
	{ErrMissingSetField, errorResponse{http.StatusBadRequest, app.MsgMissingSetField}},
	{service.ErrInvalidDataProvided, errorResponse{http.StatusBadRequest, app.MsgInvalidDataProvided}},

	{store.ErrNFTNotFound, errorResponse{http.StatusNotFound, app.MsgNFTNotFound}},
	{store.ErrProfileNotFound, errorResponse{http.StatusNotFound, app.MsgProfileNotFound}},
}

// responseFromError maps a service or store error to the status and body
// sent to the client. Database failures and unknown errors become 500.
func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.target) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}
