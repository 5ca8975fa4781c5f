package record

import (
	"context"
	stderrors "errors"

	errors "github.com/frahmantamala/tunjangan-pas/internal"
)

// Mode is the state of a screen's CRUD workflow.
type Mode string

const (
	ModeIdle   Mode = "idle"
	ModeAdd    Mode = "add"
	ModeEdit   Mode = "edit"
	ModeView   Mode = "view"
	ModeDelete Mode = "delete"
)

// Hooks carry the entity-specific parts of the workflow. Every hook is
// optional.
type Hooks[T any] struct {
	// Blank returns the defaults of the Add form.
	Blank func() T
	// Validate checks the required fields of a submitted form.
	Validate func(T) error
	// Derive recomputes derived fields right before the record is saved.
	Derive func(T) T
	// NewID synthesises the id of an added record. Defaults to NewID.
	NewID func() string
}

// Workflow is the Idle -> {Add, Edit, View, Delete} -> Idle state machine of
// one screen. Only one state other than Idle is active at a time.
//
// A Workflow is not safe for concurrent use.
type Workflow[T Entity[T]] struct {
	repo   Repository[T]
	hooks  Hooks[T]
	mode   Mode
	form   T
	target string
}

func NewWorkflow[T Entity[T]](repo Repository[T], hooks Hooks[T]) *Workflow[T] {
	if hooks.NewID == nil {
		hooks.NewID = NewID
	}
	return &Workflow[T]{repo: repo, hooks: hooks, mode: ModeIdle}
}

func (w *Workflow[T]) Mode() Mode { return w.mode }

// Form returns the record bound to the current state: the form being edited,
// the record being viewed, or the record pending deletion.
func (w *Workflow[T]) Form() T { return w.form }

// Target is the id of the selected record in Edit, View and Delete.
func (w *Workflow[T]) Target() string { return w.target }

// Blank returns the Add form defaults without changing state.
func (w *Workflow[T]) Blank() T {
	if w.hooks.Blank == nil {
		var zero T
		return zero
	}
	return w.hooks.Blank()
}

// BeginAdd opens a blank form.
func (w *Workflow[T]) BeginAdd() (T, error) {
	if err := w.requireIdle(); err != nil {
		var zero T
		return zero, err
	}
	w.mode = ModeAdd
	w.form = w.Blank()
	w.target = ""
	return w.form, nil
}

// BeginEdit opens the form pre-populated from the record with id.
func (w *Workflow[T]) BeginEdit(ctx context.Context, id string) (T, error) {
	return w.open(ctx, ModeEdit, id)
}

// BeginView opens a read-only presentation of the record with id.
func (w *Workflow[T]) BeginView(ctx context.Context, id string) (T, error) {
	return w.open(ctx, ModeView, id)
}

// BeginDelete asks for confirmation to delete the record with id.
func (w *Workflow[T]) BeginDelete(ctx context.Context, id string) (T, error) {
	return w.open(ctx, ModeDelete, id)
}

func (w *Workflow[T]) open(ctx context.Context, mode Mode, id string) (T, error) {
	var zero T
	if err := w.requireIdle(); err != nil {
		return zero, err
	}
	rec, err := w.repo.Get(ctx, id)
	if err != nil {
		return zero, err
	}
	w.mode = mode
	w.form = rec
	w.target = id
	return rec, nil
}

// Submit confirms the Add or Edit form. A validation failure keeps the
// workflow in its state with the submitted data preserved and leaves the
// stored records untouched. On success the workflow returns to Idle.
func (w *Workflow[T]) Submit(ctx context.Context, form T) (T, error) {
	var zero T
	if w.mode != ModeAdd && w.mode != ModeEdit {
		return zero, errors.ErrFormNotOpen
	}

	w.form = form
	if w.hooks.Validate != nil {
		if err := w.hooks.Validate(form); err != nil {
			return zero, err
		}
	}

	var (
		saved T
		err   error
	)
	if w.mode == ModeAdd {
		rec := w.derive(form.WithRecordID(w.hooks.NewID()))
		saved, err = w.repo.Create(ctx, rec)
	} else {
		rec := w.derive(form.WithRecordID(w.target))
		saved, err = w.repo.Update(ctx, w.target, rec)
	}
	if err != nil {
		if stderrors.Is(err, errors.ErrRecordNotFound) {
			w.reset()
		}
		return zero, err
	}

	w.reset()
	return saved, nil
}

// Confirm deletes the record pending deletion and returns to Idle.
func (w *Workflow[T]) Confirm(ctx context.Context) error {
	if w.mode != ModeDelete {
		return errors.ErrFormNotOpen
	}
	err := w.repo.Delete(ctx, w.target)
	if err != nil && !stderrors.Is(err, errors.ErrRecordNotFound) {
		return err
	}
	w.reset()
	return err
}

// Cancel closes whatever is open without touching the stored records.
func (w *Workflow[T]) Cancel() {
	w.reset()
}

func (w *Workflow[T]) derive(rec T) T {
	if w.hooks.Derive == nil {
		return rec
	}
	return w.hooks.Derive(rec)
}

func (w *Workflow[T]) requireIdle() error {
	if w.mode != ModeIdle {
		return errors.ErrFormOpen
	}
	return nil
}

func (w *Workflow[T]) reset() {
	var zero T
	w.mode = ModeIdle
	w.form = zero
	w.target = ""
}
