package view

import (
	"context"

	"github.com/jwalitptl/clinic-console/internal/apiclient"
	"github.com/jwalitptl/clinic-console/internal/notifier"
)

// Mode is the form's state: closed, creating a new record, or editing an
// existing one.
type Mode int

const (
	Closed Mode = iota
	Creating
	Editing
)

// FormMessages are the per-entity notification texts. The failure texts
// are fallbacks; a server-provided message wins.
type FormMessages struct {
	Created      string
	Updated      string
	CreateFailed string
	UpdateFailed string
}

// FormConfig parameterizes a FormController for one entity's schema.
type FormConfig[T any, D any] struct {
	Defaults   func() D
	RecordID   func(T) string
	FromRecord func(T) D
	Validate   func(D) error
	Create     func(context.Context, D) error
	Update     func(context.Context, string, D) error
	Refetch    func(context.Context)
	Notify     notifier.Notifier
	Messages   FormMessages
}

// FormController holds a draft record and drives the create/edit modal.
// Submit never patches the visible list; it refetches after a successful
// server round-trip.
type FormController[T any, D any] struct {
	cfg    FormConfig[T, D]
	mode   Mode
	editID string
	draft  D
}

func NewFormController[T any, D any](cfg FormConfig[T, D]) *FormController[T, D] {
	return &FormController[T, D]{cfg: cfg}
}

func (f *FormController[T, D]) Mode() Mode {
	return f.mode
}

func (f *FormController[T, D]) EditID() string {
	return f.editID
}

// Draft exposes the in-progress record for field edits.
func (f *FormController[T, D]) Draft() *D {
	return &f.draft
}

// Open starts a creation with a default-valued draft.
func (f *FormController[T, D]) Open() {
	f.mode = Creating
	f.editID = ""
	f.draft = f.cfg.Defaults()
}

// Edit pre-fills the draft from the selected row; the identifier is
// tracked separately from the draft.
func (f *FormController[T, D]) Edit(record T) {
	f.mode = Editing
	f.editID = f.cfg.RecordID(record)
	f.draft = f.cfg.FromRecord(record)
}

func (f *FormController[T, D]) Cancel() {
	f.mode = Closed
	f.editID = ""
}

// Submit validates the draft, sends it, and on success notifies, refetches
// and closes. On failure the form stays open so the user can correct and
// retry.
func (f *FormController[T, D]) Submit(ctx context.Context) error {
	if f.mode == Closed {
		return nil
	}

	if err := f.cfg.Validate(f.draft); err != nil {
		f.cfg.Notify.Error(err.Error())
		return err
	}

	var err error
	var success, fallback string
	if f.mode == Creating {
		err = f.cfg.Create(ctx, f.draft)
		success, fallback = f.cfg.Messages.Created, f.cfg.Messages.CreateFailed
	} else {
		err = f.cfg.Update(ctx, f.editID, f.draft)
		success, fallback = f.cfg.Messages.Updated, f.cfg.Messages.UpdateFailed
	}
	if err != nil {
		f.cfg.Notify.Error(serverMessage(err, fallback))
		return err
	}

	f.cfg.Notify.Success(success)
	f.cfg.Refetch(ctx)
	f.mode = Closed
	f.editID = ""
	return nil
}

// serverMessage prefers the server's error payload over the generic text.
func serverMessage(err error, fallback string) string {
	if apiErr, ok := err.(*apiclient.APIError); ok && apiErr.Message != "" {
		return apiErr.Message
	}
	return fallback
}
