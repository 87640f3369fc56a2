package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/utils"
	"github.com/MKhiriev/parts-registry/models"
	"github.com/sony/gobreaker"
)

const (
	searchPath = "/api/search"
	// userHeader carries the acting account to the search subsystem, which
	// filters hits by that account's read access.
	userHeader = "X-Registry-User"
)

type httpSearchAdapter struct {
	client  *utils.HTTPClient
	breaker *gobreaker.CircuitBreaker

	logger *logger.Logger
}

// NewHTTPSearchAdapter constructs an HTTP/REST implementation of
// [SearchAdapter] rooted at cfg.Address.
//
// The breaker trips after cfg.BreakerMaxFailures consecutive failures and
// stays open for cfg.BreakerOpenTimeout. Client-side errors (4xx) do not count
// as failures. Requests are never retried.
func NewHTTPSearchAdapter(cfg config.Search, logger *logger.Logger) (SearchAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.Address)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSearchAddress, err)
	}

	maxFailures := cfg.BreakerMaxFailures
	if maxFailures == 0 {
		maxFailures = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "search",
		Timeout: cfg.BreakerOpenTimeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		IsSuccessful: func(err error) bool {
			return err == nil || isClientError(err)
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warn().Str("breaker", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state change")
		},
	})

	return &httpSearchAdapter{
		client:  utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		breaker: breaker,
		logger:  logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// RunSearch implements [SearchAdapter]. It POSTs query to /api/search with the
// acting account in the X-Registry-User header.
func (h *httpSearchAdapter) RunSearch(ctx context.Context, userID string, query models.SearchQuery) (models.SearchResults, error) {
	result, err := h.breaker.Execute(func() (any, error) {
		var results models.SearchResults

		resp, err := h.client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetHeader(userHeader, userID).
			SetBody(query).
			SetResult(&results).
			Post(searchPath)
		if err != nil {
			return nil, fmt.Errorf("search request: %w", err)
		}
		if err = mapHTTPError(resp); err != nil {
			return nil, err
		}

		return results, nil
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			err = fmt.Errorf("%w: %w", ErrSearchUnavailable, err)
		}
		logger.FromContext(ctx).Err(err).Str("func", "*httpSearchAdapter.RunSearch").
			Str("user_id", userID).Msg("search failed")
		return models.SearchResults{}, err
	}

	return result.(models.SearchResults), nil
}

func isClientError(err error) bool {
	return errors.Is(err, ErrBadRequest) ||
		errors.Is(err, ErrUnauthorized) ||
		errors.Is(err, ErrForbidden) ||
		errors.Is(err, ErrNotFound)
}
