package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"stockdesk/internal/domain"
	"stockdesk/internal/infrastructure/metrics"
	"stockdesk/internal/query"
)

type mockLedger struct {
	items []domain.InventoryItem
}

func (m *mockLedger) Snapshot() []domain.InventoryItem {
	out := make([]domain.InventoryItem, len(m.items))
	copy(out, m.items)
	return out
}

type mockMarker struct {
	page       int
	savedPages []int
	saveErr    error
}

func (m *mockMarker) LoadPage(context.Context) int {
	if m.page < 1 {
		return 1
	}
	return m.page
}

func (m *mockMarker) SavePage(_ context.Context, page int) error {
	m.savedPages = append(m.savedPages, page)
	m.page = page
	return m.saveErr
}

func twelveItems() []domain.InventoryItem {
	items := make([]domain.InventoryItem, 12)
	for i := range items {
		items[i] = domain.InventoryItem{
			ID:       string(rune('a' + i)),
			Name:     "Item " + string(rune('A'+i)),
			SKU:      "SKU-" + string(rune('A'+i)),
			Category: "General",
			Stock:    20 + i,
		}
	}
	return items
}

func newTestBrowse(ledger Ledger, marker PageMarker) *BrowseUseCase {
	return NewBrowseUseCase(ledger, marker, domain.FixedThreshold(10), 5, zap.NewNop(), metrics.New())
}

func TestBrowse_DefaultsToFirstPage(t *testing.T) {
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, &mockMarker{})

	view := uc.Browse(context.Background(), BrowseQuery{})

	assert.Equal(t, 1, view.Result.Page)
	assert.Len(t, view.Result.Items, 5)
	assert.Equal(t, 12, view.Result.Total)
	assert.Equal(t, 3, view.Result.TotalPages)
}

func TestBrowse_ExplicitPageIsPersisted(t *testing.T) {
	marker := &mockMarker{}
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, marker)
	uc.Restore(context.Background())

	view := uc.Browse(context.Background(), BrowseQuery{Page: 2})

	assert.Equal(t, 2, view.Result.Page)
	assert.Equal(t, []int{2}, marker.savedPages)
}

func TestBrowse_RestoredPageResumes(t *testing.T) {
	marker := &mockMarker{page: 3}
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, marker)
	uc.Restore(context.Background())

	view := uc.Browse(context.Background(), BrowseQuery{})

	assert.Equal(t, 3, view.Result.Page)
	assert.Len(t, view.Result.Items, 2)
}

func TestBrowse_StaleRestoredPageIsClamped(t *testing.T) {
	// Marker says page 9 but only 3 pages exist now.
	marker := &mockMarker{page: 9}
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, marker)
	uc.Restore(context.Background())

	view := uc.Browse(context.Background(), BrowseQuery{})

	assert.Equal(t, 3, view.Result.Page)
	assert.NotEmpty(t, view.Result.Items)
}

func TestBrowse_ExplicitPageBeyondLastIsEmpty(t *testing.T) {
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, &mockMarker{})

	view := uc.Browse(context.Background(), BrowseQuery{Page: 9})

	assert.Empty(t, view.Result.Items)
	assert.Equal(t, 12, view.Result.Total)
}

func TestBrowse_FilterChangeResetsPage(t *testing.T) {
	marker := &mockMarker{}
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, marker)

	uc.Browse(context.Background(), BrowseQuery{Page: 3})

	view := uc.Browse(context.Background(), BrowseQuery{Search: "Item"})
	assert.Equal(t, 1, view.Result.Page)
}

func TestBrowse_FilterResetIsPersisted(t *testing.T) {
	marker := &mockMarker{}
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, marker)

	uc.Browse(context.Background(), BrowseQuery{Page: 3})
	require.Equal(t, []int{3}, marker.savedPages)

	// The filter-change reset is a page change like any other: a reload
	// must resume at page 1, not at the stale pre-reset page.
	uc.Browse(context.Background(), BrowseQuery{Search: "Item"})
	assert.Equal(t, []int{3, 1}, marker.savedPages)
	assert.Equal(t, 1, marker.page)
}

func TestBrowse_SortChangeKeepsPage(t *testing.T) {
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, &mockMarker{})

	uc.Browse(context.Background(), BrowseQuery{Page: 2})

	view := uc.Browse(context.Background(), BrowseQuery{SortKey: query.SortByStock, Direction: query.Desc})
	assert.Equal(t, 2, view.Result.Page)
}

func TestBrowse_MarkerSaveFailureIsNotFatal(t *testing.T) {
	marker := &mockMarker{saveErr: errors.New("cache unavailable")}
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, marker)

	view := uc.Browse(context.Background(), BrowseQuery{Page: 2})

	assert.Equal(t, 2, view.Result.Page)
}

func TestSelection_SyncsWithPageComposition(t *testing.T) {
	ledger := &mockLedger{items: twelveItems()}
	uc := newTestBrowse(ledger, &mockMarker{})

	view := uc.Browse(context.Background(), BrowseQuery{Page: 1})
	require.Len(t, view.Result.Items, 5)

	_, all := uc.ToggleAll()
	assert.True(t, all)

	// Deleting one of the selected items changes the page composition:
	// the next browse re-syncs and "all selected" is recomputed.
	ledger.items = ledger.items[1:]
	view = uc.Browse(context.Background(), BrowseQuery{Page: 1})
	assert.False(t, view.AllSelected)
	assert.Len(t, view.Selected, 4)
}

func TestToggleSelection(t *testing.T) {
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, &mockMarker{})
	view := uc.Browse(context.Background(), BrowseQuery{Page: 1})
	id := view.Result.Items[0].ID

	selected, all := uc.ToggleSelection(id)
	assert.Equal(t, []string{id}, selected)
	assert.False(t, all)

	selected, _ = uc.ToggleSelection(id)
	assert.Empty(t, selected)
}

func TestClearSelection(t *testing.T) {
	uc := newTestBrowse(&mockLedger{items: twelveItems()}, &mockMarker{})
	uc.Browse(context.Background(), BrowseQuery{Page: 1})
	uc.ToggleAll()

	selected, all := uc.ClearSelection()
	assert.Empty(t, selected)
	assert.False(t, all)
}
