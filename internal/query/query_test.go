package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"stockdesk/internal/domain"
)

var testPolicy = domain.FixedThreshold(10)

func fixture() []domain.InventoryItem {
	return []domain.InventoryItem{
		{ID: "1", Name: "Wireless Mouse", SKU: "MS-2023", Category: "Electronics", Supplier: "TechWare Distribution", Barcode: "8900127487", Stock: 45, SalesVelocity: 2},
		{ID: "2", Name: "Mechanical Keyboard", SKU: "KB-8810", Category: "Electronics", Supplier: "TechWare Distribution", Stock: 8, SalesVelocity: 1.6},
		{ID: "3", Name: "HDMI Cable", SKU: "HD-0020", Category: "Accessories", Supplier: "Cablex Ltd", Stock: 0, SalesVelocity: 1.2},
		{ID: "4", Name: "Notebook", SKU: "NB-1150", Category: "Stationery", Supplier: "PaperHouse Co", Stock: 120, SalesVelocity: 4.5},
		{ID: "5", Name: "Gel Pen", SKU: "PN-0412", Category: "Stationery", Supplier: "PaperHouse Co", Stock: 18},
	}
}

func ids(items []domain.InventoryItem) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.ID
	}
	return out
}

func TestRun_EmptySearchMatchesEverything(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{PageSize: 100})
	assert.Equal(t, 5, res.Total)
}

func TestRun_SearchIsCaseInsensitiveOverAllFields(t *testing.T) {
	cases := map[string][]string{
		"mouse":    {"1"},      // name
		"kb-88":    {"2"},      // sku
		"STATION":  {"4", "5"}, // category
		"89001274": {"1"},      // barcode
	}

	for term, want := range cases {
		res := Run(fixture(), testPolicy, Params{Search: term, PageSize: 100})
		assert.ElementsMatch(t, want, ids(res.Items), "term=%q", term)
	}
}

func TestRun_FacetsCombineWithAND(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{
		Categories: []string{"Electronics"},
		Statuses:   []domain.Status{domain.StatusLowStock},
		PageSize:   100,
	})
	assert.Equal(t, []string{"2"}, ids(res.Items))
}

func TestRun_ValuesWithinFacetCombineWithOR(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{
		Categories: []string{"Electronics", "Accessories"},
		PageSize:   100,
	})
	assert.ElementsMatch(t, []string{"1", "2", "3"}, ids(res.Items))
}

func TestRun_SupplierFacetMatchesFragments(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{
		Suppliers: []string{"techware", "paper"},
		PageSize:  100,
	})
	assert.ElementsMatch(t, []string{"1", "2", "4", "5"}, ids(res.Items))
}

func TestRun_SortByName(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{SortKey: SortByName, Direction: Asc, PageSize: 100})
	assert.Equal(t, []string{"5", "3", "2", "4", "1"}, ids(res.Items))

	res = Run(fixture(), testPolicy, Params{SortKey: SortByName, Direction: Desc, PageSize: 100})
	assert.Equal(t, []string{"1", "4", "2", "3", "5"}, ids(res.Items))
}

func TestRun_SortByStock(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{SortKey: SortByStock, Direction: Asc, PageSize: 100})
	assert.Equal(t, []string{"3", "2", "5", "1", "4"}, ids(res.Items))
}

func TestRun_SortByDepletion_TieBreaks(t *testing.T) {
	items := []domain.InventoryItem{
		{ID: "B", Stock: 5, SalesVelocity: 2},   // 3 days
		{ID: "A", Stock: 0, SalesVelocity: 0},   // exhausted, no numeric forecast
		{ID: "C", Stock: 10, SalesVelocity: 0},  // unbounded
		{ID: "D", Stock: 100, SalesVelocity: 1}, // 100 days
	}

	res := Run(items, testPolicy, Params{SortKey: SortByDepletion, Direction: Asc, PageSize: 100})
	assert.Equal(t, []string{"A", "B", "D", "C"}, ids(res.Items))

	// Descending inverts the whole comparison, tie-break included.
	res = Run(items, testPolicy, Params{SortKey: SortByDepletion, Direction: Desc, PageSize: 100})
	assert.Equal(t, []string{"C", "D", "B", "A"}, ids(res.Items))
}

func TestRun_PagesReconstructFilteredSet(t *testing.T) {
	params := Params{SortKey: SortByName, Direction: Asc, PageSize: 2}

	full := Run(fixture(), testPolicy, Params{SortKey: SortByName, Direction: Asc, PageSize: 100})
	require.Equal(t, 5, full.Total)

	var union []string
	for page := 1; page <= full.Total/2+1; page++ {
		params.Page = page
		res := Run(fixture(), testPolicy, params)
		union = append(union, ids(res.Items)...)
	}

	assert.Equal(t, ids(full.Items), union)
}

func TestRun_PageBeyondLastIsEmpty(t *testing.T) {
	res := Run(fixture(), testPolicy, Params{Page: 99, PageSize: 2})
	assert.Empty(t, res.Items)
	assert.Equal(t, 5, res.Total)
	assert.Equal(t, 3, res.TotalPages)
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 3, TotalPages(fixture(), testPolicy, Params{PageSize: 2}))
	assert.Equal(t, 1, TotalPages(nil, testPolicy, Params{PageSize: 2}))
	assert.Equal(t, 1, TotalPages(fixture(), testPolicy, Params{Search: "no-such-item", PageSize: 2}))
}
