package http

import (
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/validators"
	"github.com/prometheus/client_golang/prometheus"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator
	metrics   *metrics.Metrics
	gatherer  prometheus.Gatherer

	logger *logger.Logger
}

// NewHandler builds the HTTP handler. A nil gatherer serves the default
// Prometheus registry on /metrics; a nil metrics disables request metrics.
func NewHandler(services *service.Services, validator validators.Validator, metrics *metrics.Metrics, gatherer prometheus.Gatherer, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Handler{
		services:  services,
		validator: validator,
		metrics:   metrics,
		gatherer:  gatherer,
		logger:    logger,
	}
}
