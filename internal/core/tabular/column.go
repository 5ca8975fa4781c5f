// Package tabular is the record view engine behind every list screen:
// filter, sort and paginate a list of rows into the page a renderer shows.
//
// A screen declares its columns once (key, type tag, extractor) and the
// engine never touches record fields directly.
package tabular

import (
	"errors"
	"fmt"
	"strconv"

	"golang.org/x/text/language"
)

// DefaultPageSize is the page size every list screen uses unless configured.
const DefaultPageSize = 5

// Kind selects the comparator used when a column is sorted.
type Kind int

const (
	KindText Kind = iota
	KindNumeric
)

func (k Kind) String() string {
	if k == KindNumeric {
		return "numeric"
	}
	return "text"
}

// Column is a typed accessor for one record attribute.
type Column[T any] struct {
	Key   string
	Label string
	Kind  Kind

	// Searchable columns take part in the filter predicate.
	Searchable bool
	// Sortable columns can be selected as the active sort column.
	Sortable bool

	// Text returns the value as displayed. Filtering always matches against
	// this representation, so formatted numbers are searched as shown.
	Text func(T) string
	// Number is required for KindNumeric columns.
	Number func(T) float64
}

// Display returns the column value as the renderer shows it. Missing
// extractors yield an empty string.
func (c Column[T]) Display(rec T) string {
	if c.Text != nil {
		return c.Text(rec)
	}
	if c.Number != nil {
		return strconv.FormatFloat(c.Number(rec), 'f', -1, 64)
	}
	return ""
}

func (c Column[T]) numeric(rec T) float64 {
	if c.Number == nil {
		return 0
	}
	return c.Number(rec)
}

// Config is the declarative description of one screen.
type Config[T any] struct {
	Columns  []Column[T]
	PageSize int
	Locale   language.Tag
}

var (
	ErrNoColumns     = errors.New("tabular: at least one column is required")
	ErrUnknownColumn = errors.New("tabular: unknown sort column")
)

// Validate checks the column table and fills in defaults.
func (c *Config[T]) Validate() error {
	if len(c.Columns) == 0 {
		return ErrNoColumns
	}

	seen := make(map[string]struct{}, len(c.Columns))
	for _, col := range c.Columns {
		if col.Key == "" {
			return errors.New("tabular: column key is required")
		}
		if _, dup := seen[col.Key]; dup {
			return fmt.Errorf("tabular: duplicate column %q", col.Key)
		}
		seen[col.Key] = struct{}{}

		if col.Kind == KindNumeric && col.Number == nil {
			return fmt.Errorf("tabular: numeric column %q has no Number extractor", col.Key)
		}
		if col.Kind == KindText && col.Text == nil {
			return fmt.Errorf("tabular: text column %q has no Text extractor", col.Key)
		}
	}

	if c.PageSize <= 0 {
		c.PageSize = DefaultPageSize
	}
	if c.Locale == language.Und {
		c.Locale = language.Indonesian
	}
	return nil
}

// Column looks up a column by key.
func (c Config[T]) Column(key string) (Column[T], bool) {
	for _, col := range c.Columns {
		if col.Key == key {
			return col, true
		}
	}
	return Column[T]{}, false
}

// SortableColumn looks up a column that may be used as sort key.
func (c Config[T]) SortableColumn(key string) (Column[T], error) {
	col, ok := c.Column(key)
	if !ok || !col.Sortable {
		return Column[T]{}, fmt.Errorf("%w: %q", ErrUnknownColumn, key)
	}
	return col, nil
}

// SearchableColumns returns the columns the filter predicate ORs over.
func (c Config[T]) SearchableColumns() []Column[T] {
	out := make([]Column[T], 0, len(c.Columns))
	for _, col := range c.Columns {
		if col.Searchable {
			out = append(out, col)
		}
	}
	return out
}
