package query

import (
	"sort"
	"strings"

	"stockdesk/internal/domain"
)

type SortKey string

const (
	SortByName      SortKey = "name"
	SortByStock     SortKey = "stock"
	SortByVelocity  SortKey = "salesVelocity"
	SortByDepletion SortKey = "daysUntilOutOfStock"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Params describes one browse request. Facets combine with AND; values
// within a facet combine with OR. Page is 1-indexed.
type Params struct {
	Search     string
	Categories []string
	Statuses   []domain.Status
	Suppliers  []string
	SortKey    SortKey
	Direction  Direction
	Page       int
	PageSize   int
}

type Result struct {
	Items      []domain.InventoryItem
	Total      int
	Page       int
	TotalPages int
}

// Run filters, sorts and paginates a snapshot of the collection. A page
// past the end yields an empty slice, not an error.
func Run(items []domain.InventoryItem, policy domain.StatusPolicy, p Params) Result {
	filtered := make([]domain.InventoryItem, 0, len(items))
	for _, it := range items {
		if Matches(it, policy, p) {
			filtered = append(filtered, it)
		}
	}

	sortItems(filtered, p.SortKey, p.Direction)

	pageSize := p.PageSize
	if pageSize <= 0 {
		pageSize = len(filtered)
		if pageSize == 0 {
			pageSize = 1
		}
	}

	total := len(filtered)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	start := (page - 1) * pageSize
	if start >= total {
		return Result{Items: []domain.InventoryItem{}, Total: total, Page: page, TotalPages: totalPages}
	}
	end := start + pageSize
	if end > total {
		end = total
	}

	return Result{
		Items:      filtered[start:end],
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}
}

// TotalPages reports how many pages the filtered set spans without
// materializing a page, for clamping restored page markers.
func TotalPages(items []domain.InventoryItem, policy domain.StatusPolicy, p Params) int {
	pageSize := p.PageSize
	if pageSize <= 0 {
		return 1
	}
	total := 0
	for _, it := range items {
		if Matches(it, policy, p) {
			total++
		}
	}
	pages := (total + pageSize - 1) / pageSize
	if pages == 0 {
		pages = 1
	}
	return pages
}

func Matches(it domain.InventoryItem, policy domain.StatusPolicy, p Params) bool {
	if term := strings.ToLower(strings.TrimSpace(p.Search)); term != "" {
		haystacks := []string{it.Name, it.SKU, it.Category, it.Barcode}
		hit := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), term) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(p.Categories) > 0 {
		hit := false
		for _, c := range p.Categories {
			if it.Category == c {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(p.Statuses) > 0 {
		status := it.StockStatus(policy)
		hit := false
		for _, s := range p.Statuses {
			if status == s {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	if len(p.Suppliers) > 0 {
		supplier := strings.ToLower(it.Supplier)
		hit := false
		for _, fragment := range p.Suppliers {
			if fragment == "" {
				continue
			}
			if strings.Contains(supplier, strings.ToLower(fragment)) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}

	return true
}

func sortItems(items []domain.InventoryItem, key SortKey, dir Direction) {
	cmp := comparator(key)
	if cmp == nil {
		return
	}

	sort.SliceStable(items, func(i, j int) bool {
		c := cmp(items[i], items[j])
		if dir == Desc {
			c = -c
		}
		return c < 0
	})
}

func comparator(key SortKey) func(a, b domain.InventoryItem) int {
	switch key {
	case SortByName:
		return func(a, b domain.InventoryItem) int {
			if c := strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name)); c != 0 {
				return c
			}
			return strings.Compare(a.Name, b.Name)
		}
	case SortByStock:
		return func(a, b domain.InventoryItem) int {
			return a.Stock - b.Stock
		}
	case SortByVelocity:
		return func(a, b domain.InventoryItem) int {
			switch {
			case a.SalesVelocity < b.SalesVelocity:
				return -1
			case a.SalesVelocity > b.SalesVelocity:
				return 1
			default:
				return 0
			}
		}
	case SortByDepletion:
		return domain.CompareDepletion
	default:
		return nil
	}
}
