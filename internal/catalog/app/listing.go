package app

import (
	"sync"

	"github.com/shopspring/decimal"

	"github.com/urban-store/storefront/internal/catalog/domain"
)

// Listing tracks the filter criteria over a fetched product set.
// Changing any criterion resets the current page to 1; SetPage moves
// within the derived page range only.
type Listing struct {
	mu       sync.Mutex
	products []domain.Product
	criteria Criteria
}

func NewListing(pageSize int) *Listing {
	c := DefaultCriteria()
	if pageSize > 0 {
		c.PageSize = pageSize
	}
	return &Listing{criteria: c}
}

// Replace swaps in a freshly fetched product set.
func (l *Listing) Replace(products []domain.Product) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.products = products
	l.criteria.Page = 1
}

func (l *Listing) SetQuery(query string) {
	l.update(func(c *Criteria) { c.Query = query })
}

func (l *Listing) SetCategory(category string) {
	l.update(func(c *Criteria) { c.Category = category })
}

func (l *Listing) SetPriceRange(min, max *decimal.Decimal) {
	l.update(func(c *Criteria) {
		c.MinPrice = min
		c.MaxPrice = max
	})
}

func (l *Listing) SetSort(mode SortMode) {
	l.update(func(c *Criteria) { c.Sort = mode })
}

// SetPage moves to the given page if it is within range; otherwise it
// is a no-op.
func (l *Listing) SetPage(page int) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if page < 1 || page > View(l.products, l.criteria).TotalPages {
		return
	}
	l.criteria.Page = page
}

// ResetFilters restores the default criteria, keeping the page size.
func (l *Listing) ResetFilters() {
	l.mu.Lock()
	defer l.mu.Unlock()
	size := l.criteria.PageSize
	l.criteria = DefaultCriteria()
	l.criteria.PageSize = size
}

func (l *Listing) Criteria() Criteria {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.criteria
}

// View derives the current page.
func (l *Listing) View() Page {
	l.mu.Lock()
	defer l.mu.Unlock()
	return View(l.products, l.criteria)
}

// Window derives the pager buttons for the current view.
func (l *Listing) Window() Window {
	l.mu.Lock()
	defer l.mu.Unlock()
	v := View(l.products, l.criteria)
	return PageWindow(v.Number, v.TotalPages)
}

// Categories lists the distinct categories of the current product set.
func (l *Listing) Categories() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return Categories(l.products)
}

func (l *Listing) update(fn func(*Criteria)) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fn(&l.criteria)
	l.criteria.Page = 1
}
