package tabular

import (
	"encoding/json"
	"strconv"
)

// Ellipsis is the marker rendered in place of a run of omitted page numbers.
const Ellipsis = "…"

// maxPlainPages is the largest page count rendered without compression.
const maxPlainPages = 7

// PageItem is one entry of the page-number list: a page or an ellipsis.
type PageItem struct {
	Number   int
	Ellipsis bool
}

func pageItem(n int) PageItem { return PageItem{Number: n} }

var ellipsisItem = PageItem{Ellipsis: true}

func (p PageItem) String() string {
	if p.Ellipsis {
		return Ellipsis
	}
	return strconv.Itoa(p.Number)
}

// MarshalJSON renders pages as numbers and the marker as the string "…".
func (p PageItem) MarshalJSON() ([]byte, error) {
	if p.Ellipsis {
		return json.Marshal(Ellipsis)
	}
	return json.Marshal(p.Number)
}

func (p *PageItem) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = ellipsisItem
		return nil
	}
	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*p = pageItem(n)
	return nil
}

// TotalPages is ceil(totalItems/pageSize), never less than 1.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if totalItems <= 0 {
		return 1
	}
	return (totalItems + pageSize - 1) / pageSize
}

// ClampPage bounds page to [1, totalPages].
func ClampPage(page, totalPages int) int {
	if totalPages < 1 {
		totalPages = 1
	}
	if page < 1 {
		return 1
	}
	if page > totalPages {
		return totalPages
	}
	return page
}

// Bounds returns the [start, end) slice indexes of page.
func Bounds(page, pageSize, totalItems int) (start, end int) {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = ClampPage(page, TotalPages(totalItems, pageSize))
	start = (page - 1) * pageSize
	end = min(start+pageSize, totalItems)
	if start > end {
		start = end
	}
	return start, end
}

// Paginate returns the records of page.
func Paginate[T any](records []T, page, pageSize int) []T {
	start, end := Bounds(page, pageSize, len(records))
	out := make([]T, end-start)
	copy(out, records[start:end])
	return out
}

// PageNumbers lists the page buttons to render for current out of
// totalPages. Up to seven pages are listed in full; beyond that the list is
// compressed around the first page, the last page and the current position:
//
//	current <= 4:              1 2 3 4 5 … N
//	current >= N-3:            1 … N-4 N-3 N-2 N-1 N
//	otherwise:                 1 … c-1 c c+1 … N
func PageNumbers(current, totalPages int) []PageItem {
	if totalPages < 1 {
		totalPages = 1
	}

	if totalPages <= maxPlainPages {
		items := make([]PageItem, 0, totalPages)
		for n := 1; n <= totalPages; n++ {
			items = append(items, pageItem(n))
		}
		return items
	}

	switch {
	case current <= 4:
		return []PageItem{
			pageItem(1), pageItem(2), pageItem(3), pageItem(4), pageItem(5),
			ellipsisItem, pageItem(totalPages),
		}
	case current >= totalPages-3:
		return []PageItem{
			pageItem(1), ellipsisItem,
			pageItem(totalPages - 4), pageItem(totalPages - 3), pageItem(totalPages - 2),
			pageItem(totalPages - 1), pageItem(totalPages),
		}
	default:
		return []PageItem{
			pageItem(1), ellipsisItem,
			pageItem(current - 1), pageItem(current), pageItem(current + 1),
			ellipsisItem, pageItem(totalPages),
		}
	}
}
