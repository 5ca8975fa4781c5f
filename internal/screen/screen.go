// Package screen exposes every list screen through one type-erased surface:
// stateless queries, per-user stateful sessions and CRUD forms. Both the
// HTTP API and the terminal browser drive screens through it.
package screen

import (
	"context"
	"encoding/json"

	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
)

// Page is a tabular page with its items type-erased.
type Page = tabular.Page[any]

type ColumnInfo struct {
	Key        string `json:"key"`
	Label      string `json:"label"`
	Kind       string `json:"kind"`
	Searchable bool   `json:"searchable"`
	Sortable   bool   `json:"sortable"`
}

// Query is a one-shot list request, applied in the order filter, sort, page.
type Query struct {
	Filter    string
	Sort      string
	Direction string
	Page      int
}

// Intent is one user action on a stateful session.
type Intent struct {
	Action    string `json:"action" validate:"oneof=refresh filter sort page previous next"`
	Value     string `json:"value"`
	Direction string `json:"direction"`
	Page      int    `json:"page"`
}

const (
	ActionRefresh  = "refresh"
	ActionFilter   = "filter"
	ActionSort     = "sort"
	ActionPage     = "page"
	ActionPrevious = "previous"
	ActionNext     = "next"
)

type Screen interface {
	Name() string
	Title() string
	Columns() []ColumnInfo
	List(ctx context.Context, q Query) (Page, error)
	// Cells renders an item of this screen as displayed, one cell per column.
	Cells(item any) []string
	NewForm() Form
	NewSession() Session
}

// Session holds the filter, sort and page state of one screen for one user.
// Every call re-reads the source rows so mutations made elsewhere show up.
type Session interface {
	Apply(ctx context.Context, intent Intent) (Page, error)
	Current(ctx context.Context) (Page, error)
}

// Form is the CRUD workflow of one screen. Submitted data is JSON decoded on
// top of the open form, so omitted fields keep their defaults or current
// values.
type Form interface {
	Mode() record.Mode
	Current() any
	Blank() any
	BeginAdd() (any, error)
	BeginEdit(ctx context.Context, id string) (any, error)
	BeginView(ctx context.Context, id string) (any, error)
	BeginDelete(ctx context.Context, id string) (any, error)
	Submit(ctx context.Context, data json.RawMessage) (any, error)
	Confirm(ctx context.Context) error
	Cancel()
}
