package ledger

import (
	"context"

	"stockdesk/internal/domain"
	"stockdesk/internal/ledger/service"
	"stockdesk/internal/ledger/usecase"
)

type Browser interface {
	Browse(ctx context.Context, q usecase.BrowseQuery) usecase.BrowseView
	ToggleSelection(id string) (selected []string, allSelected bool)
	ToggleAll() (selected []string, allSelected bool)
	ClearSelection() (selected []string, allSelected bool)
}

type Mutator interface {
	AddItems(ctx context.Context, candidates []service.NewItem) (int, error)
	RemoveStock(ctx context.Context, lines []service.RemovalLine) service.RemovalResult
	DeleteItems(ctx context.Context, ids []string) int
	ResolveCode(code string) (domain.InventoryItem, error)
}
