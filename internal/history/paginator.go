package history

import (
	"sort"

	"github.com/rizalfh/payment-sandbox/internal/core/datamodel/payment"
)

// DefaultPageSize matches the history view's initial page size.
const DefaultPageSize = 5

// PageSizeOptions are the page sizes the history view offers.
var PageSizeOptions = []int{5, 10, 20, 50}

// Page is one displayable slice of the payment history.
type Page struct {
	Items      []*payment.Payment
	PageIndex  int
	PageSize   int
	TotalPages int
	TotalItems int
}

// PageNumbers returns [1..TotalPages] for navigation controls.
func (p Page) PageNumbers() []int {
	numbers := make([]int, p.TotalPages)
	for i := range numbers {
		numbers[i] = i + 1
	}
	return numbers
}

// Paginate slices an ordered payment list. pageIndex is 1-based; a value
// past the end is clamped to the last page, and anything below 1 becomes 1.
// TotalPages is at least 1 even for an empty list, so an empty history still
// renders page 1 of 1. A non-positive pageSize falls back to
// DefaultPageSize.
func Paginate(payments []*payment.Payment, pageSize, pageIndex int) Page {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	totalItems := len(payments)
	totalPages := (totalItems + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	if pageIndex > totalPages {
		pageIndex = totalPages
	}
	if pageIndex < 1 {
		pageIndex = 1
	}

	start := (pageIndex - 1) * pageSize
	end := start + pageSize
	if start > totalItems {
		start = totalItems
	}
	if end > totalItems {
		end = totalItems
	}

	return Page{
		Items:      payments[start:end],
		PageIndex:  pageIndex,
		PageSize:   pageSize,
		TotalPages: totalPages,
		TotalItems: totalItems,
	}
}

// SortByDateDesc returns a copy of payments ordered newest first, the order
// the history view displays. The input slice is left untouched.
func SortByDateDesc(payments []*payment.Payment) []*payment.Payment {
	sorted := make([]*payment.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})
	return sorted
}
