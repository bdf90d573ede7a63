package console

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/notifier"
	"github.com/jwalitptl/clinic-console/internal/view"
)

type item struct {
	ID   string
	Name string
}

type itemDraft struct {
	Name string
}

// fakeBackend stands in for the gateways so screen behavior can be
// exercised without a server.
type fakeBackend struct {
	items  []item
	nextID int
}

func (b *fakeBackend) list(context.Context) ([]item, error) {
	return append([]item(nil), b.items...), nil
}

func (b *fakeBackend) create(_ context.Context, d itemDraft) error {
	b.nextID++
	b.items = append(b.items, item{ID: fmt.Sprintf("i%d", b.nextID), Name: d.Name})
	return nil
}

func (b *fakeBackend) update(_ context.Context, id string, d itemDraft) error {
	for i := range b.items {
		if b.items[i].ID == id {
			b.items[i].Name = d.Name
			return nil
		}
	}
	return errors.New("not found")
}

func (b *fakeBackend) remove(_ context.Context, id string) error {
	for i := range b.items {
		if b.items[i].ID == id {
			b.items = append(b.items[:i], b.items[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func newItemScreen(b *fakeBackend, rec *notifier.Recorder) Screen {
	return NewScreen(ScreenConfig[item, itemDraft]{
		Title:    "Items",
		Noun:     "item",
		Plural:   "items",
		Headers:  []string{"ID", "Name"},
		Row:      func(it item) []string { return []string{it.ID, it.Name} },
		RecordID: func(it item) string { return it.ID },
		Match:    view.MatchAny(func(it item) string { return it.Name }),

		List:   b.list,
		Create: b.create,
		Update: b.update,
		Delete: b.remove,

		Defaults:   func() itemDraft { return itemDraft{} },
		FromRecord: func(it item) itemDraft { return itemDraft{Name: it.Name} },
		Validate: func(d itemDraft) error {
			if d.Name == "" {
				return errors.New("nombre is required")
			}
			return nil
		},
		SetField: func(d *itemDraft, field, value string) error {
			if field != "nombre" {
				return fmt.Errorf("unknown field %s", field)
			}
			d.Name = value
			return nil
		},
		Fields: []string{"nombre"},
	}, rec)
}

func TestScreenCreateShowsNewRow(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{}
	rec := &notifier.Recorder{}
	s := newItemScreen(b, rec)
	s.Refetch(ctx)

	require.NoError(t, s.New())
	require.NoError(t, s.Set("nombre", "Paracetamol"))
	require.NoError(t, s.Submit(ctx))

	assert.Equal(t, view.Closed, s.Mode())
	require.Len(t, s.Rows(), 1, "submit refetches so the new row is visible")
	assert.Equal(t, "Paracetamol", s.Rows()[0][1])
	assert.Equal(t, []string{"item created"}, rec.Successes)
}

func TestScreenEditUnknownIDFails(t *testing.T) {
	b := &fakeBackend{items: []item{{ID: "i1", Name: "Ana"}}}
	s := newItemScreen(b, &notifier.Recorder{})
	s.Refetch(context.Background())

	assert.Error(t, s.Edit("missing"))
	require.NoError(t, s.Edit("i1"))
	assert.Equal(t, view.Editing, s.Mode())
}

func TestScreenSetRequiresOpenForm(t *testing.T) {
	s := newItemScreen(&fakeBackend{}, &notifier.Recorder{})
	assert.Error(t, s.Set("nombre", "x"))
}

func TestScreenSetUnknownFieldFails(t *testing.T) {
	s := newItemScreen(&fakeBackend{}, &notifier.Recorder{})
	require.NoError(t, s.New())
	assert.Error(t, s.Set("apellido", "x"))
}

func TestScreenDeleteFlowRemovesRow(t *testing.T) {
	ctx := context.Background()
	b := &fakeBackend{items: []item{{ID: "i1", Name: "Ana"}, {ID: "i2", Name: "Luis"}}}
	rec := &notifier.Recorder{}
	s := newItemScreen(b, rec)
	s.Refetch(ctx)

	require.NoError(t, s.RequestDelete("i1"))
	assert.Equal(t, "i1", s.PendingDelete())
	require.NoError(t, s.ConfirmDelete(ctx))

	assert.Empty(t, s.PendingDelete())
	require.Len(t, s.Rows(), 1)
	assert.Equal(t, "i2", s.Rows()[0][0])
	assert.Equal(t, []string{"item deleted"}, rec.Successes)
}

func TestReadOnlyScreenRefusesMutations(t *testing.T) {
	b := &fakeBackend{items: []item{{ID: "u1", Name: "Administrador"}}}
	s := NewReadOnlyScreen(
		"Users", "user", "users",
		[]string{"ID", "Name"},
		func(it item) []string { return []string{it.ID, it.Name} },
		view.MatchAny(func(it item) string { return it.Name }),
		b.list,
	)
	s.Refetch(context.Background())

	require.Len(t, s.Rows(), 1)
	assert.Error(t, s.New())
	assert.Error(t, s.Edit("u1"))
	assert.Error(t, s.RequestDelete("u1"))
	assert.Equal(t, view.Closed, s.Mode())
}
