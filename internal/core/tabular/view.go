package tabular

// Page is the materialised output of one recomputation.
type Page[T any] struct {
	Items       []T        `json:"items"`
	Page        int        `json:"page"`
	PageSize    int        `json:"page_size"`
	TotalItems  int        `json:"total_items"`
	TotalPages  int        `json:"total_pages"`
	StartIndex  int        `json:"start_index"`
	EndIndex    int        `json:"end_index"`
	PageNumbers []PageItem `json:"page_numbers"`
	Sort        SortSpec   `json:"sort"`
	Filter      string     `json:"filter"`
	HasPrevious bool       `json:"has_previous"`
	HasNext     bool       `json:"has_next"`
}

// View holds the state of one list screen: its source rows plus the filter,
// sort and pagination state. Every read recomputes Filter -> Sort -> Paginate
// over the current source rows.
//
// A View is not safe for concurrent use; each screen instance owns one.
type View[T any] struct {
	cfg    Config[T]
	source []T
	filter string
	sort   SortSpec
	page   int
}

func NewView[T any](cfg Config[T]) (*View[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &View[T]{cfg: cfg, page: 1}, nil
}

func (v *View[T]) Config() Config[T] { return v.cfg }

func (v *View[T]) Filter() string { return v.filter }

func (v *View[T]) Sort() SortSpec { return v.sort }

func (v *View[T]) CurrentPage() int { return v.page }

// SetSource replaces the source rows. A change in size returns to page 1.
func (v *View[T]) SetSource(records []T) {
	if len(records) != len(v.source) {
		v.page = 1
	}
	v.source = append(make([]T, 0, len(records)), records...)
}

// SetFilter changes the filter text. A different text returns to page 1.
func (v *View[T]) SetFilter(query string) {
	if query == v.filter {
		return
	}
	v.filter = query
	v.page = 1
}

// ToggleSort applies a click on the column header.
func (v *View[T]) ToggleSort(column string) error {
	next := v.sort.Toggle(column)
	if err := ValidateSort(next, v.cfg); err != nil {
		return err
	}
	v.sort = next
	return nil
}

// SetSort installs spec directly; the zero spec clears sorting.
func (v *View[T]) SetSort(spec SortSpec) error {
	if !spec.IsZero() && spec.Direction == "" {
		spec.Direction = Ascending
	}
	if err := ValidateSort(spec, v.cfg); err != nil {
		return err
	}
	v.sort = spec
	return nil
}

// GoTo moves to page, clamped to the valid range.
func (v *View[T]) GoTo(page int) {
	v.page = ClampPage(page, v.totalPages())
}

// Previous is a no-op on the first page.
func (v *View[T]) Previous() {
	if v.page > 1 {
		v.page--
	}
}

// Next is a no-op on the last page.
func (v *View[T]) Next() {
	if v.page < v.totalPages() {
		v.page++
	}
}

func (v *View[T]) totalPages() int {
	return TotalPages(len(Filter(v.source, v.filter, v.cfg.Columns)), v.cfg.PageSize)
}

// Result returns the filtered and sorted set before pagination.
func (v *View[T]) Result() ([]T, error) {
	filtered := Filter(v.source, v.filter, v.cfg.Columns)
	return Sort(filtered, v.sort, v.cfg)
}

// Page recomputes the pipeline and returns the current page.
func (v *View[T]) Page() (Page[T], error) {
	sorted, err := v.Result()
	if err != nil {
		return Page[T]{}, err
	}

	total := len(sorted)
	totalPages := TotalPages(total, v.cfg.PageSize)
	v.page = ClampPage(v.page, totalPages)
	start, end := Bounds(v.page, v.cfg.PageSize, total)

	return Page[T]{
		Items:       Paginate(sorted, v.page, v.cfg.PageSize),
		Page:        v.page,
		PageSize:    v.cfg.PageSize,
		TotalItems:  total,
		TotalPages:  totalPages,
		StartIndex:  start,
		EndIndex:    end,
		PageNumbers: PageNumbers(v.page, totalPages),
		Sort:        v.sort,
		Filter:      v.filter,
		HasPrevious: v.page > 1,
		HasNext:     v.page < totalPages,
	}, nil
}
