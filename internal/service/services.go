package service

import (
	"github.com/MKhiriev/parts-registry/internal/adapter"
	"github.com/MKhiriev/parts-registry/internal/config"
	"github.com/MKhiriev/parts-registry/internal/logger"
	"github.com/MKhiriev/parts-registry/internal/metrics"
	"github.com/MKhiriev/parts-registry/internal/store"
	"github.com/MKhiriev/parts-registry/models"
)

type Services struct {
	AuthService          AuthService
	AppInfoService       AppInfoService
	AuthorizationService AuthorizationService
	FilterService        FilterService
	SelectionService     SelectionService
	CSVService           CSVService
	EntryService         EntryService
}

// NewServices wires the resolution engine over storages. search may be nil
// when no search subsystem is configured.
func NewServices(
	storages *store.Storages,
	search adapter.SearchAdapter,
	cfg config.StructuredConfig,
	build models.AppBuildInfo,
	metrics *metrics.Metrics,
	logger *logger.Logger,
) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, build, logger)
	if err != nil {
		return nil, err
	}

	authorization := NewAuthorizationService(storages.AccountRepository, storages.PermissionRepository, logger)
	universe := NewUniverseService(storages.EntryRepository, storages.FilterRepository, logger)
	filters := NewFilterService(storages.FilterRepository, universe, metrics, logger)
	selection := NewSelectionService(
		storages.Transactor,
		NewFolderResolver(storages.FolderRepository, authorization, logger),
		NewCollectionResolver(storages.EntryRepository, authorization, logger),
		NewSearchBridge(search, metrics, logger),
		filters,
		universe,
		authorization,
		metrics,
		logger,
	)

	return &Services{
		AuthService:          NewAuthService(cfg.App, logger),
		AppInfoService:       appInfo,
		AuthorizationService: authorization,
		FilterService:        filters,
		SelectionService:     selection,
		CSVService:           NewCSVService(storages.Transactor, storages.EntryRepository, authorization, logger),
		EntryService:         NewEntryService(storages.Transactor, storages.EntryRepository, selection, authorization, logger),
	}, nil
}
