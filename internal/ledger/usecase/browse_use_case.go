package usecase

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"stockdesk/internal/domain"
	"stockdesk/internal/infrastructure/metrics"
	"stockdesk/internal/query"
)

type Ledger interface {
	Snapshot() []domain.InventoryItem
}

type PageMarker interface {
	LoadPage(ctx context.Context) int
	SavePage(ctx context.Context, page int) error
}

type BrowseQuery struct {
	Search     string
	Categories []string
	Statuses   []domain.Status
	Suppliers  []string
	SortKey    query.SortKey
	Direction  query.Direction
	// Page 0 means "resume the stored page".
	Page int
}

type BrowseView struct {
	Result      query.Result
	PageSize    int
	Selected    []string
	AllSelected bool
}

// BrowseUseCase orchestrates the query pipeline for the ledger view: page
// reset when search or filters change, clamping of the restored page
// marker, marker persistence on page change, and the page-scoped selection
// set for batch actions.
type BrowseUseCase struct {
	mu          sync.Mutex
	ledger      Ledger
	marker      PageMarker
	policy      domain.StatusPolicy
	pageSize    int
	logger      *zap.Logger
	metrics     *metrics.Metrics
	selection   *query.Selection
	filterKey   string
	storedPage  int
	lastPageIDs []string
}

func NewBrowseUseCase(
	ledger Ledger,
	marker PageMarker,
	policy domain.StatusPolicy,
	pageSize int,
	logger *zap.Logger,
	m *metrics.Metrics,
) *BrowseUseCase {
	return &BrowseUseCase{
		ledger:     ledger,
		marker:     marker,
		policy:     policy,
		pageSize:   pageSize,
		logger:     logger,
		metrics:    m,
		selection:  query.NewSelection(),
		filterKey:  fingerprint(BrowseQuery{}),
		storedPage: 1,
	}
}

// Restore resumes the page position persisted by a previous session.
func (uc *BrowseUseCase) Restore(ctx context.Context) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.storedPage = uc.marker.LoadPage(ctx)
}

func (uc *BrowseUseCase) Browse(ctx context.Context, q BrowseQuery) BrowseView {
	start := time.Now()

	uc.mu.Lock()
	defer uc.mu.Unlock()

	items := uc.ledger.Snapshot()

	params := query.Params{
		Search:     q.Search,
		Categories: q.Categories,
		Statuses:   q.Statuses,
		Suppliers:  q.Suppliers,
		SortKey:    q.SortKey,
		Direction:  q.Direction,
		PageSize:   uc.pageSize,
	}

	page := q.Page
	if key := fingerprint(q); key != uc.filterKey {
		// Any change to search or filters restarts at page 1. The stored
		// marker is left untouched here so the reset is persisted below
		// like any other page change.
		uc.filterKey = key
		page = 1
	}
	if page < 1 {
		// Resuming a stored marker: clamp it to the last valid page so a
		// shrunken result set never shows a silently empty page.
		page = uc.storedPage
		if last := query.TotalPages(items, uc.policy, params); page > last {
			page = last
		}
	}
	params.Page = page

	result := query.Run(items, uc.policy, params)

	if page != uc.storedPage {
		uc.storedPage = page
		if err := uc.marker.SavePage(ctx, page); err != nil {
			uc.metrics.CacheFailures.Inc()
			uc.logger.Warn("persisting page marker failed", zap.Error(err))
		}
	}

	uc.lastPageIDs = pageIDs(result.Items)
	uc.selection.Prune(uc.lastPageIDs)

	uc.metrics.QueryDuration.Observe(time.Since(start).Seconds())

	return BrowseView{
		Result:      result,
		PageSize:    uc.pageSize,
		Selected:    uc.selection.IDs(),
		AllSelected: uc.selection.AllSelected(uc.lastPageIDs),
	}
}

// ToggleSelection flips one item of the current page in or out of the
// selection set.
func (uc *BrowseUseCase) ToggleSelection(id string) ([]string, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.selection.Toggle(id)
	uc.selection.Prune(uc.lastPageIDs)
	return uc.selection.IDs(), uc.selection.AllSelected(uc.lastPageIDs)
}

// ToggleAll selects or deselects exactly the items of the current page.
func (uc *BrowseUseCase) ToggleAll() ([]string, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.selection.ToggleAll(uc.lastPageIDs)
	return uc.selection.IDs(), uc.selection.AllSelected(uc.lastPageIDs)
}

func (uc *BrowseUseCase) ClearSelection() ([]string, bool) {
	uc.mu.Lock()
	defer uc.mu.Unlock()
	uc.selection.Clear()
	return uc.selection.IDs(), false
}

func pageIDs(items []domain.InventoryItem) []string {
	ids := make([]string, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	return ids
}

// fingerprint identifies a search/filter combination; sort and page are
// deliberately excluded so they never reset the page position.
func fingerprint(q BrowseQuery) string {
	var b strings.Builder
	b.WriteString(strings.ToLower(strings.TrimSpace(q.Search)))
	b.WriteString("|")
	b.WriteString(strings.Join(q.Categories, ","))
	b.WriteString("|")
	for _, s := range q.Statuses {
		b.WriteString(string(s))
		b.WriteString(",")
	}
	b.WriteString("|")
	b.WriteString(strings.Join(q.Suppliers, ","))
	return b.String()
}
