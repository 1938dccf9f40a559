package usecase

import (
	"context"

	"go.uber.org/zap"

	"stockdesk/internal/domain"
	"stockdesk/internal/ledger/service"
)

type MutationService interface {
	AddItems(ctx context.Context, candidates []service.NewItem) (int, error)
	RemoveStock(ctx context.Context, lines []service.RemovalLine) service.RemovalResult
	DeleteItems(ctx context.Context, ids []string) int
	ResolveCode(code string) (domain.InventoryItem, error)
}

// MutateUseCase fronts the mutation service for the presentation layer.
type MutateUseCase struct {
	svc    MutationService
	logger *zap.Logger
}

func NewMutateUseCase(svc MutationService, logger *zap.Logger) *MutateUseCase {
	return &MutateUseCase{svc: svc, logger: logger}
}

func (uc *MutateUseCase) AddItems(ctx context.Context, candidates []service.NewItem) (int, error) {
	uc.logger.Info("batch add requested", zap.Int("candidateCount", len(candidates)))
	return uc.svc.AddItems(ctx, candidates)
}

func (uc *MutateUseCase) RemoveStock(ctx context.Context, lines []service.RemovalLine) service.RemovalResult {
	uc.logger.Info("batch removal requested", zap.Int("lineCount", len(lines)))
	return uc.svc.RemoveStock(ctx, lines)
}

func (uc *MutateUseCase) DeleteItems(ctx context.Context, ids []string) int {
	uc.logger.Info("bulk delete requested", zap.Int("idCount", len(ids)))
	return uc.svc.DeleteItems(ctx, ids)
}

func (uc *MutateUseCase) ResolveCode(code string) (domain.InventoryItem, error) {
	return uc.svc.ResolveCode(code)
}
