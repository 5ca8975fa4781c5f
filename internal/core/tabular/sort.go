package tabular

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

type Direction string

const (
	Ascending  Direction = "asc"
	Descending Direction = "desc"
)

// ParseDirection accepts "asc"/"desc" in any case; anything else is ascending.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Descending)) {
		return Descending
	}
	return Ascending
}

// SortSpec is the single active sort. The zero value means "unsorted".
type SortSpec struct {
	Column    string    `json:"column,omitempty"`
	Direction Direction `json:"direction,omitempty"`
}

func (s SortSpec) IsZero() bool {
	return s.Column == ""
}

// Toggle applies a column header click: a new column starts ascending, the
// active column flips direction.
func (s SortSpec) Toggle(column string) SortSpec {
	if s.Column == column {
		if s.Direction == Descending {
			return SortSpec{Column: column, Direction: Ascending}
		}
		return SortSpec{Column: column, Direction: Descending}
	}
	return SortSpec{Column: column, Direction: Ascending}
}

// Comparator builds the direction-agnostic comparator for col. Text columns
// use the locale's collation, case-insensitively; numeric columns compare by
// value.
func Comparator[T any](col Column[T], locale language.Tag) func(a, b T) int {
	if col.Kind == KindNumeric {
		return func(a, b T) int {
			return cmp.Compare(col.numeric(a), col.numeric(b))
		}
	}

	coll := collate.New(locale, collate.IgnoreCase)
	return func(a, b T) int {
		return coll.CompareString(strings.ToLower(col.Display(a)), strings.ToLower(col.Display(b)))
	}
}

// Sort returns a stably sorted copy of records. Ties keep their input order
// in both directions. A zero spec returns the records unchanged in order.
func Sort[T any](records []T, spec SortSpec, cfg Config[T]) ([]T, error) {
	out := slices.Clone(records)
	if spec.IsZero() {
		return out, nil
	}

	col, err := cfg.SortableColumn(spec.Column)
	if err != nil {
		return nil, err
	}

	locale := cfg.Locale
	if locale == language.Und {
		locale = language.Indonesian
	}

	compare := Comparator(col, locale)
	sign := 1
	if spec.Direction == Descending {
		sign = -1
	}

	slices.SortStableFunc(out, func(a, b T) int {
		return sign * compare(a, b)
	})
	return out, nil
}

// ValidateSort reports whether spec can be applied to cfg.
func ValidateSort[T any](spec SortSpec, cfg Config[T]) error {
	if spec.IsZero() {
		return nil
	}
	if spec.Direction != Ascending && spec.Direction != Descending {
		return fmt.Errorf("tabular: invalid direction %q", spec.Direction)
	}
	_, err := cfg.SortableColumn(spec.Column)
	return err
}
