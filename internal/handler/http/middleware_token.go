package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/MKhiriev/go-nft-keeper/internal/app"
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/utils"
)

// withToken rejects requests whose X-Practicum-Mobile-Token header does not
// match the configured token with 401. It is a no-op when no token is
// configured.
func (h *Handler) withToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if h.token == "" {
			next.ServeHTTP(w, r)
			return
		}

		log := logger.FromRequest(r)

		token := r.Header.Get(utils.TokenHeader)
		if token == "" {
			log.Err(ErrMissingToken).Send()
			http.Error(w, app.MsgMissingToken, http.StatusUnauthorized)
			return
		}

		if subtle.ConstantTimeCompare([]byte(token), []byte(h.token)) != 1 {
			log.Err(ErrInvalidToken).Send()
			http.Error(w, app.MsgInvalidToken, http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
