package console

import (
	"context"
	"fmt"

	"github.com/jwalitptl/clinic-console/internal/notifier"
	"github.com/jwalitptl/clinic-console/internal/view"
)

// Screen is one entity's page: a filtered, paginated table plus the form
// and delete flows. The console loop talks to this interface only.
type Screen interface {
	Title() string
	Headers() []string
	Rows() [][]string
	Refetch(ctx context.Context)
	Loading() bool
	Err() string
	SetSearch(search string)
	NextPage()
	PrevPage()
	Page() int
	TotalPages() int

	Mode() view.Mode
	Fields() []string
	New() error
	Edit(id string) error
	Set(field, value string) error
	Submit(ctx context.Context) error
	CancelForm()

	RequestDelete(id string) error
	PendingDelete() string
	ConfirmDelete(ctx context.Context) error
	CancelDelete()
}

// ScreenConfig assembles a screen from one entity's schema: the same
// engine parts every page shares, parameterized instead of duplicated.
type ScreenConfig[T any, D any] struct {
	Title    string
	Noun     string
	Plural   string
	Headers  []string
	Row      func(T) []string
	RecordID func(T) string
	Match    func(T, string) bool

	List   func(context.Context) ([]T, error)
	Create func(context.Context, D) error
	Update func(context.Context, string, D) error
	Delete func(context.Context, string) error

	Defaults   func() D
	FromRecord func(T) D
	Validate   func(D) error

	// SetField applies one named form field to the draft; each entity
	// enumerates its own fields so typos fail loudly.
	SetField func(*D, string, string) error
	Fields   []string
}

type screen[T any, D any] struct {
	cfg  ScreenConfig[T, D]
	col  *view.Collection[T]
	list *view.ListController[T]
	form *view.FormController[T, D]
	del  *view.DeleteFlow
}

// NewScreen wires a read-write screen.
func NewScreen[T any, D any](cfg ScreenConfig[T, D], notify notifier.Notifier) Screen {
	col := view.NewCollection(cfg.List, "failed to load "+cfg.Plural)
	s := &screen[T, D]{
		cfg:  cfg,
		col:  col,
		list: view.NewListController(col, cfg.Match),
	}
	s.form = view.NewFormController(view.FormConfig[T, D]{
		Defaults:   cfg.Defaults,
		RecordID:   cfg.RecordID,
		FromRecord: cfg.FromRecord,
		Validate:   cfg.Validate,
		Create:     cfg.Create,
		Update:     cfg.Update,
		Refetch:    col.Refetch,
		Notify:     notify,
		Messages: view.FormMessages{
			Created:      cfg.Noun + " created",
			Updated:      cfg.Noun + " updated",
			CreateFailed: "failed to create " + cfg.Noun,
			UpdateFailed: "failed to update " + cfg.Noun,
		},
	})
	s.del = view.NewDeleteFlow(
		cfg.Delete,
		col.Refetch,
		notify,
		cfg.Noun+" deleted",
		"failed to delete "+cfg.Noun,
	)
	return s
}

func (s *screen[T, D]) Title() string { return s.cfg.Title }
func (s *screen[T, D]) Headers() []string { return s.cfg.Headers }

func (s *screen[T, D]) Rows() [][]string {
	visible := s.list.Visible()
	rows := make([][]string, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, s.cfg.Row(item))
	}
	return rows
}

func (s *screen[T, D]) Refetch(ctx context.Context) { s.col.Refetch(ctx) }
func (s *screen[T, D]) Loading() bool { return s.col.Loading() }
func (s *screen[T, D]) Err() string { return s.col.Err() }
func (s *screen[T, D]) SetSearch(search string) { s.list.SetSearch(search) }
func (s *screen[T, D]) NextPage() { s.list.NextPage() }
func (s *screen[T, D]) PrevPage() { s.list.PrevPage() }
func (s *screen[T, D]) Page() int { return s.list.Page() }
func (s *screen[T, D]) TotalPages() int { return s.list.TotalPages() }

func (s *screen[T, D]) Mode() view.Mode { return s.form.Mode() }
func (s *screen[T, D]) Fields() []string { return s.cfg.Fields }

func (s *screen[T, D]) New() error {
	s.form.Open()
	return nil
}

func (s *screen[T, D]) Edit(id string) error {
	for _, item := range s.col.Items() {
		if s.cfg.RecordID(item) == id {
			s.form.Edit(item)
			return nil
		}
	}
	return fmt.Errorf("no %s with id %s", s.cfg.Noun, id)
}

func (s *screen[T, D]) Set(field, value string) error {
	if s.form.Mode() == view.Closed {
		return fmt.Errorf("no open form")
	}
	return s.cfg.SetField(s.form.Draft(), field, value)
}

func (s *screen[T, D]) Submit(ctx context.Context) error {
	return s.form.Submit(ctx)
}

func (s *screen[T, D]) CancelForm() {
	s.form.Cancel()
}

func (s *screen[T, D]) RequestDelete(id string) error {
	s.del.Request(id)
	return nil
}

func (s *screen[T, D]) PendingDelete() string {
	return s.del.Pending()
}

func (s *screen[T, D]) ConfirmDelete(ctx context.Context) error {
	return s.del.Confirm(ctx)
}

func (s *screen[T, D]) CancelDelete() {
	s.del.Cancel()
}

// readOnlyScreen lists and pages; every mutation is refused locally.
type readOnlyScreen[T any] struct {
	title   string
	noun    string
	headers []string
	row     func(T) []string
	col     *view.Collection[T]
	list    *view.ListController[T]
}

func NewReadOnlyScreen[T any](
	title, noun, plural string,
	headers []string,
	row func(T) []string,
	match func(T, string) bool,
	list func(context.Context) ([]T, error),
) Screen {
	col := view.NewCollection(list, "failed to load "+plural)
	return &readOnlyScreen[T]{
		title:   title,
		noun:    noun,
		headers: headers,
		row:     row,
		col:     col,
		list:    view.NewListController(col, match),
	}
}

func (s *readOnlyScreen[T]) Title() string { return s.title }
func (s *readOnlyScreen[T]) Headers() []string { return s.headers }

func (s *readOnlyScreen[T]) Rows() [][]string {
	visible := s.list.Visible()
	rows := make([][]string, 0, len(visible))
	for _, item := range visible {
		rows = append(rows, s.row(item))
	}
	return rows
}

func (s *readOnlyScreen[T]) Refetch(ctx context.Context) { s.col.Refetch(ctx) }
func (s *readOnlyScreen[T]) Loading() bool { return s.col.Loading() }
func (s *readOnlyScreen[T]) Err() string { return s.col.Err() }
func (s *readOnlyScreen[T]) SetSearch(search string) { s.list.SetSearch(search) }
func (s *readOnlyScreen[T]) NextPage() { s.list.NextPage() }
func (s *readOnlyScreen[T]) PrevPage() { s.list.PrevPage() }
func (s *readOnlyScreen[T]) Page() int { return s.list.Page() }
func (s *readOnlyScreen[T]) TotalPages() int { return s.list.TotalPages() }

func (s *readOnlyScreen[T]) Mode() view.Mode { return view.Closed }
func (s *readOnlyScreen[T]) Fields() []string { return nil }

func (s *readOnlyScreen[T]) New() error { return s.readOnly() }
func (s *readOnlyScreen[T]) Edit(string) error { return s.readOnly() }
func (s *readOnlyScreen[T]) Set(string, string) error { return s.readOnly() }
func (s *readOnlyScreen[T]) Submit(context.Context) error { return s.readOnly() }
func (s *readOnlyScreen[T]) CancelForm() {}

func (s *readOnlyScreen[T]) RequestDelete(string) error { return s.readOnly() }
func (s *readOnlyScreen[T]) PendingDelete() string { return "" }

func (s *readOnlyScreen[T]) ConfirmDelete(context.Context) error { return nil }
func (s *readOnlyScreen[T]) CancelDelete() {}

func (s *readOnlyScreen[T]) readOnly() error {
	return fmt.Errorf("%s is read-only", s.noun)
}
