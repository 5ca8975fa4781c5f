package screen

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"sync"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
	"github.com/frahmantamala/tunjangan-pas/internal/core/record"
	"github.com/frahmantamala/tunjangan-pas/internal/core/tabular"
)

// Adapter binds a typed record source, its workflow hooks and its column
// table into a Screen.
type Adapter[T record.Entity[T]] struct {
	name  string
	title string
	repo  record.Repository[T]
	hooks record.Hooks[T]
	cfg   tabular.Config[T]
}

func NewAdapter[T record.Entity[T]](name, title string, repo record.Repository[T], hooks record.Hooks[T], cfg tabular.Config[T]) (*Adapter[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Adapter[T]{name: name, title: title, repo: repo, hooks: hooks, cfg: cfg}, nil
}

func (a *Adapter[T]) Name() string { return a.name }

func (a *Adapter[T]) Title() string { return a.title }

func (a *Adapter[T]) Columns() []ColumnInfo {
	out := make([]ColumnInfo, len(a.cfg.Columns))
	for i, col := range a.cfg.Columns {
		label := col.Label
		if label == "" {
			label = col.Key
		}
		out[i] = ColumnInfo{
			Key:        col.Key,
			Label:      label,
			Kind:       col.Kind.String(),
			Searchable: col.Searchable,
			Sortable:   col.Sortable,
		}
	}
	return out
}

func (a *Adapter[T]) Cells(item any) []string {
	rec, ok := item.(T)
	if !ok {
		return nil
	}
	cells := make([]string, len(a.cfg.Columns))
	for i, col := range a.cfg.Columns {
		cells[i] = col.Display(rec)
	}
	return cells
}

func (a *Adapter[T]) newView(ctx context.Context) (*tabular.View[T], error) {
	view, err := tabular.NewView(a.cfg)
	if err != nil {
		return nil, err
	}
	if err := a.refresh(ctx, view); err != nil {
		return nil, err
	}
	return view, nil
}

func (a *Adapter[T]) refresh(ctx context.Context, view *tabular.View[T]) error {
	items, err := a.repo.List(ctx)
	if err != nil {
		return err
	}
	view.SetSource(items)
	return nil
}

func (a *Adapter[T]) List(ctx context.Context, q Query) (Page, error) {
	view, err := a.newView(ctx)
	if err != nil {
		return Page{}, err
	}

	view.SetFilter(q.Filter)
	if q.Sort != "" {
		spec := tabular.SortSpec{Column: q.Sort, Direction: tabular.ParseDirection(q.Direction)}
		if err := view.SetSort(spec); err != nil {
			return Page{}, sortError(q.Sort, err)
		}
	}
	if q.Page > 0 {
		view.GoTo(q.Page)
	}
	return a.page(view)
}

func (a *Adapter[T]) page(view *tabular.View[T]) (Page, error) {
	p, err := view.Page()
	if err != nil {
		return Page{}, err
	}
	items := make([]any, len(p.Items))
	for i, item := range p.Items {
		items[i] = item
	}
	return Page{
		Items:       items,
		Page:        p.Page,
		PageSize:    p.PageSize,
		TotalItems:  p.TotalItems,
		TotalPages:  p.TotalPages,
		StartIndex:  p.StartIndex,
		EndIndex:    p.EndIndex,
		PageNumbers: p.PageNumbers,
		Sort:        p.Sort,
		Filter:      p.Filter,
		HasPrevious: p.HasPrevious,
		HasNext:     p.HasNext,
	}, nil
}

func sortError(column string, err error) error {
	if stderrors.Is(err, tabular.ErrUnknownColumn) {
		return errors.NewValidationFieldError("sort", "Kolom urutan tidak dikenal: "+column, errors.ErrCodeInvalidSortColumn)
	}
	return errors.NewValidationError(err.Error(), errors.ErrCodeInvalidRequest)
}

func (a *Adapter[T]) NewSession() Session {
	return &session[T]{adapter: a}
}

func (a *Adapter[T]) NewForm() Form {
	return &form[T]{wf: record.NewWorkflow(a.repo, a.hooks)}
}

type session[T record.Entity[T]] struct {
	mu      sync.Mutex
	adapter *Adapter[T]
	view    *tabular.View[T]
}

func (s *session[T]) load(ctx context.Context) error {
	if s.view == nil {
		view, err := s.adapter.newView(ctx)
		if err != nil {
			return err
		}
		s.view = view
		return nil
	}
	return s.adapter.refresh(ctx, s.view)
}

func (s *session[T]) Current(ctx context.Context) (Page, error) {
	return s.Apply(ctx, Intent{Action: ActionRefresh})
}

func (s *session[T]) Apply(ctx context.Context, intent Intent) (Page, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.load(ctx); err != nil {
		return Page{}, err
	}

	switch intent.Action {
	case ActionRefresh, "":
	case ActionFilter:
		s.view.SetFilter(intent.Value)
	case ActionSort:
		var err error
		if intent.Direction == "" {
			err = s.view.ToggleSort(intent.Value)
		} else {
			err = s.view.SetSort(tabular.SortSpec{Column: intent.Value, Direction: tabular.ParseDirection(intent.Direction)})
		}
		if err != nil {
			return Page{}, sortError(intent.Value, err)
		}
	case ActionPage:
		s.view.GoTo(intent.Page)
	case ActionPrevious:
		s.view.Previous()
	case ActionNext:
		s.view.Next()
	default:
		return Page{}, errors.NewValidationFieldError("action", "Aksi tidak dikenal: "+intent.Action, errors.ErrCodeInvalidOption)
	}
	return s.adapter.page(s.view)
}

type form[T record.Entity[T]] struct {
	wf *record.Workflow[T]
}

func (f *form[T]) Mode() record.Mode { return f.wf.Mode() }

func (f *form[T]) Current() any { return f.wf.Form() }

func (f *form[T]) Blank() any { return f.wf.Blank() }

func (f *form[T]) BeginAdd() (any, error) { return f.wf.BeginAdd() }

func (f *form[T]) BeginEdit(ctx context.Context, id string) (any, error) {
	return f.wf.BeginEdit(ctx, id)
}

func (f *form[T]) BeginView(ctx context.Context, id string) (any, error) {
	return f.wf.BeginView(ctx, id)
}

func (f *form[T]) BeginDelete(ctx context.Context, id string) (any, error) {
	return f.wf.BeginDelete(ctx, id)
}

func (f *form[T]) Submit(ctx context.Context, data json.RawMessage) (any, error) {
	switch f.wf.Mode() {
	case record.ModeAdd, record.ModeEdit:
	default:
		return nil, errors.ErrFormNotOpen
	}

	rec := f.wf.Form()
	if len(data) > 0 {
		if err := json.Unmarshal(data, &rec); err != nil {
			return nil, errors.NewValidationError("Format data tidak valid", errors.ErrCodeInvalidRequest).WithCause(err)
		}
	}
	return f.wf.Submit(ctx, rec)
}

func (f *form[T]) Confirm(ctx context.Context) error { return f.wf.Confirm(ctx) }

func (f *form[T]) Cancel() { f.wf.Cancel() }
