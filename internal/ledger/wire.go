package ledger

import (
	"context"

	"go.uber.org/zap"

	"stockdesk/internal/cache"
	"stockdesk/internal/config"
	"stockdesk/internal/domain"
	"stockdesk/internal/infrastructure/metrics"
	"stockdesk/internal/ledger/repository"
	"stockdesk/internal/ledger/service"
	"stockdesk/internal/ledger/usecase"
)

// NewModule wires the ledger: cache repository → mutation service →
// browse/mutate use cases → controller. The returned service is shared
// with the monitor module, which reads the same collection.
func NewModule(
	ctx context.Context,
	store cache.Store,
	cfg *config.Config,
	logger *zap.Logger,
	m *metrics.Metrics,
) (*Controller, *service.LedgerService) {
	repo := repository.NewCacheRepository(store, logger)
	policy := domain.FixedThreshold(cfg.Ledger.LowStockThreshold)

	svc := service.NewLedgerService(repo, logger, m)
	svc.Hydrate(ctx)

	browse := usecase.NewBrowseUseCase(svc, repo, policy, cfg.Ledger.PageSize, logger, m)
	browse.Restore(ctx)

	mutate := usecase.NewMutateUseCase(svc, logger)

	return NewController(browse, mutate, policy, logger), svc
}
