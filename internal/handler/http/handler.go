package http

import (
	"github.com/MKhiriev/go-nft-keeper/internal/logger"
	"github.com/MKhiriev/go-nft-keeper/internal/service"
)

type Handler struct {
	services *service.Services
	token    string
	metrics  *httpMetrics

	logger *logger.Logger
}

// NewHandler creates the REST handler. An empty token disables the token
// check.
func NewHandler(services *service.Services, token string, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services: services,
		token:    token,
		metrics:  newHTTPMetrics(),
		logger:   logger,
	}
}
