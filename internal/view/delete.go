package view

import (
	"context"

	"github.com/jwalitptl/clinic-console/internal/notifier"
)

// DeleteFlow is the two-step confirmation: a row is staged for deletion,
// then the user confirms or cancels. Pending state is cleared whatever the
// outcome.
type DeleteFlow struct {
	delete  func(context.Context, string) error
	refetch func(context.Context)
	notify  notifier.Notifier
	deleted string
	failed  string
	pending string
}

func NewDeleteFlow(
	del func(context.Context, string) error,
	refetch func(context.Context),
	notify notifier.Notifier,
	deleted, failed string,
) *DeleteFlow {
	return &DeleteFlow{
		delete:  del,
		refetch: refetch,
		notify:  notify,
		deleted: deleted,
		failed:  failed,
	}
}

func (d *DeleteFlow) Request(id string) {
	d.pending = id
}

func (d *DeleteFlow) Pending() string {
	return d.pending
}

// Cancel clears the staged identifier with no server call.
func (d *DeleteFlow) Cancel() {
	d.pending = ""
}

// Confirm deletes the staged record and refetches on success.
func (d *DeleteFlow) Confirm(ctx context.Context) error {
	if d.pending == "" {
		return nil
	}
	defer func() { d.pending = "" }()

	if err := d.delete(ctx, d.pending); err != nil {
		d.notify.Error(serverMessage(err, d.failed))
		return err
	}
	d.notify.Success(d.deleted)
	d.refetch(ctx)
	return nil
}
