package app

import (
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/urban-store/storefront/internal/catalog/domain"
)

const DefaultPageSize = 12

type SortMode string

const (
	SortNone       SortMode = ""
	SortPriceDesc  SortMode = "price-desc"
	SortPriceAsc   SortMode = "price-asc"
	SortRatingDesc SortMode = "rating-desc"
)

// Criteria is the transient filter state of a listing view. It is never
// persisted.
type Criteria struct {
	Query    string
	Category string
	MinPrice *decimal.Decimal
	MaxPrice *decimal.Decimal
	Sort     SortMode
	Page     int
	PageSize int
}

func DefaultCriteria() Criteria {
	return Criteria{Page: 1, PageSize: DefaultPageSize}
}

// Page is one derived slice of the filtered product set. TotalItems
// counts everything that passed the filters, before pagination.
type Page struct {
	Items      []domain.Product
	Number     int
	TotalItems int
	TotalPages int
}

// Filter applies the active predicates in order — category equality,
// min price (inclusive), max price (inclusive), case-insensitive title
// substring — then sorts. SortNone preserves fetch order; all sorts are
// stable.
func Filter(products []domain.Product, c Criteria) []domain.Product {
	query := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if c.Category != "" && p.Category != c.Category {
			continue
		}
		if c.MinPrice != nil && p.Price.LessThan(*c.MinPrice) {
			continue
		}
		if c.MaxPrice != nil && p.Price.GreaterThan(*c.MaxPrice) {
			continue
		}
		if query != "" && !strings.Contains(strings.ToLower(p.Title), query) {
			continue
		}
		out = append(out, p)
	}

	sortProducts(out, c.Sort)
	return out
}

// View runs the full pipeline: filter, sort, slice into the requested
// page. An out-of-range page yields an empty item slice but keeps the
// totals; deriving the same inputs twice gives the same page.
func View(products []domain.Product, c Criteria) Page {
	filtered := Filter(products, c)

	size := c.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := c.Page
	if page < 1 {
		page = 1
	}

	totalPages := (len(filtered) + size - 1) / size

	var items []domain.Product
	if start := (page - 1) * size; start < len(filtered) {
		end := start + size
		if end > len(filtered) {
			end = len(filtered)
		}
		items = filtered[start:end]
	}

	return Page{
		Items:      items,
		Number:     page,
		TotalItems: len(filtered),
		TotalPages: totalPages,
	}
}

// Categories returns the distinct product categories in first-seen
// order.
func Categories(products []domain.Product) []string {
	seen := make(map[string]struct{}, len(products))
	var out []string
	for _, p := range products {
		if p.Category == "" {
			continue
		}
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

func sortProducts(products []domain.Product, mode SortMode) {
	switch mode {
	case SortPriceDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.GreaterThan(products[j].Price)
		})
	case SortPriceAsc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Price.LessThan(products[j].Price)
		})
	case SortRatingDesc:
		sort.SliceStable(products, func(i, j int) bool {
			return products[i].Rating > products[j].Rating
		})
	}
}
