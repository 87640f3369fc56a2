package http

import (
	"context"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/service"
	"github.com/MKhiriev/parts-registry/internal/validators"
	"github.com/MKhiriev/parts-registry/models"
	"github.com/prometheus/client_golang/prometheus"
)

const (
	testToken = "good-token"
	testEmail = "alice@example.org"
)

// ─────────────────────────────────────────────
// Service stubs
// ─────────────────────────────────────────────

type stubAuthService struct{}

func (s *stubAuthService) ParseToken(_ context.Context, tokenString string) (models.Token, error) {
	if tokenString != testToken {
		return models.Token{}, service.ErrTokenIsExpiredOrInvalid
	}
	return models.Token{UserID: testEmail}, nil
}

type stubAppInfoService struct {
	version string
}

func (s *stubAppInfoService) GetAppVersion(context.Context) string {
	return s.version
}

func (s *stubAppInfoService) GetAppInfo(context.Context) models.VersionResponse {
	return models.VersionResponse{Version: s.version, BuildCommit: "abc123"}
}

type stubSelectionService struct {
	workingSet   func(userID string, sel models.SelectionContext, filters []models.QueryFilter) ([]int64, error)
	applyFilters func(userID string, filters []models.QueryFilter) ([]int64, error)
}

func (s *stubSelectionService) Resolve(context.Context, string, models.SelectionContext) ([]int64, error) {
	return nil, errors.New("not used")
}

func (s *stubSelectionService) WorkingSet(_ context.Context, userID string, sel models.SelectionContext, filters []models.QueryFilter) ([]int64, error) {
	return s.workingSet(userID, sel, filters)
}

func (s *stubSelectionService) ApplyFilters(_ context.Context, userID string, filters []models.QueryFilter) ([]int64, error) {
	return s.applyFilters(userID, filters)
}

type stubCSVService struct {
	validate func(userID, body string, matchByName bool) ([]models.ParsedEntryID, error)
}

func (s *stubCSVService) Validate(_ context.Context, userID string, r io.Reader, matchByName bool) ([]models.ParsedEntryID, error) {
	body, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return s.validate(userID, string(body), matchByName)
}

type stubEntryService struct {
	updateVisibility func(userID string, sel models.SelectionContext, filters []models.QueryFilter, visibility models.Visibility) ([]int64, error)
}

func (s *stubEntryService) UpdateVisibility(_ context.Context, userID string, sel models.SelectionContext, filters []models.QueryFilter, visibility models.Visibility) ([]int64, error) {
	return s.updateVisibility(userID, sel, filters, visibility)
}

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

// newTestHandler builds a Handler over services with the real request
// validator and a private metrics registry.
func newTestHandler(t *testing.T, services *service.Services) (*Handler, *prometheus.Registry) {
	t.Helper()

	if services.AuthService == nil {
		services.AuthService = &stubAuthService{}
	}
	if services.AppInfoService == nil {
		services.AppInfoService = &stubAppInfoService{version: "1.0.0"}
	}

	registry := prometheus.NewRegistry()
	return NewHandler(services, validators.NewRequestValidator(), metrics.New(registry), registry, logger.Nop()), registry
}

func authorized(r *http.Request) *http.Request {
	r.Header.Set("Authorization", "Bearer "+testToken)
	return r
}

func jsonBody(s string) io.Reader {
	return strings.NewReader(s)
}
