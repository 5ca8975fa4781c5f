package tabular

import "strings"

// Filter returns the records for which any searchable column contains query,
// compared case-insensitively. An empty query keeps every record. The input
// slice is never modified.
func Filter[T any](records []T, query string, columns []Column[T]) []T {
	out := make([]T, 0, len(records))
	if query == "" {
		return append(out, records...)
	}

	needle := strings.ToLower(query)
	for _, rec := range records {
		if matches(rec, needle, columns) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](rec T, needle string, columns []Column[T]) bool {
	for _, col := range columns {
		if !col.Searchable {
			continue
		}
		if strings.Contains(strings.ToLower(col.Display(rec)), needle) {
			return true
		}
	}
	return false
}
