package handler

import (
	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/handler/http"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

type Handlers struct {
	HTTP *http.Handler
}

// NewHandlers builds the transport handlers enabled by cfg. gatherer backs
// the /metrics endpoint.
func NewHandlers(services *service.Services, cfg config.Server, m *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, validators.NewRequestValidator(), m, gatherer, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
