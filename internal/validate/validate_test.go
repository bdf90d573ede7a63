package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwalitptl/clinic-console/internal/model"
)

func validPatient() model.PatientDraft {
	return model.PatientDraft{
		Name:      "Ana López",
		DUI:       "01234567-8",
		ISSS:      "123456789",
		NIT:       "0614-290990-102-3",
		BirthDate: "1990-09-29",
		Phone:     "7777-1234",
		Email:     "ana@example.com",
	}
}

func TestPatientDraftValid(t *testing.T) {
	assert.NoError(t, New().Struct(validPatient()))
}

func TestPatientDocumentFormats(t *testing.T) {
	va := New()

	tests := []struct {
		name    string
		mutate  func(*model.PatientDraft)
		message string
	}{
		{"missing name", func(d *model.PatientDraft) { d.Name = "" }, "nombre is required"},
		{"dui without dash", func(d *model.PatientDraft) { d.DUI = "012345678" }, "DUI must match 00000000-0"},
		{"dui too short", func(d *model.PatientDraft) { d.DUI = "1234567-8" }, "DUI must match 00000000-0"},
		{"isss too short", func(d *model.PatientDraft) { d.ISSS = "12345678" }, "ISSS must be exactly 9 digits"},
		{"isss letters", func(d *model.PatientDraft) { d.ISSS = "12345678a" }, "ISSS must be exactly 9 digits"},
		{"nit wrong shape", func(d *model.PatientDraft) { d.NIT = "0614-29090-102-3" }, "NIT must match 0000-000000-000-0"},
		{"phone wrong shape", func(d *model.PatientDraft) { d.Phone = "77771234" }, "phone must match 0000-0000"},
		{"bad email", func(d *model.PatientDraft) { d.Email = "not-an-email" }, "correo must be a valid email"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draft := validPatient()
			tt.mutate(&draft)
			err := va.Struct(draft)
			require.Error(t, err)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestOptionalDocumentsMayBeBlank(t *testing.T) {
	draft := validPatient()
	draft.DUI = ""
	draft.ISSS = ""
	draft.NIT = ""
	draft.Phone = ""
	draft.Email = ""
	assert.NoError(t, New().Struct(draft))
}

func TestInvoiceNumberFormat(t *testing.T) {
	va := New()
	form := model.InvoiceForm{
		CitaID:     "c1",
		Number:     "FACT-0001-0002",
		IssueDate:  "2025-03-01",
		PatientNIT: "0614-290990-102-3",
		Subtotal:   "100.00",
	}
	require.NoError(t, va.Struct(form))

	form.Number = "FACT-12-3"
	err := va.Struct(form)
	require.Error(t, err)
	assert.Equal(t, "invoice number must match FACT-0000-0000", err.Error())
}

func TestInvoiceSubtotalMustBePositive(t *testing.T) {
	va := New()
	form := model.InvoiceForm{
		CitaID:     "c1",
		Number:     "FACT-0001-0002",
		IssueDate:  "2025-03-01",
		PatientNIT: "0614-290990-102-3",
		Subtotal:   "0",
	}
	err := va.Struct(form)
	require.Error(t, err)
	assert.Equal(t, "subtotal must be greater than 0", err.Error())

	form.Subtotal = "abc"
	assert.Error(t, va.Struct(form))
}

func TestPaymentAmountMustBePositive(t *testing.T) {
	va := New()
	form := model.PaymentForm{InvoiceID: "f1", Amount: "-5", MethodID: "1"}
	err := va.Struct(form)
	require.Error(t, err)
	assert.Equal(t, "monto must be greater than 0", err.Error())

	form.Amount = "10.50"
	assert.NoError(t, va.Struct(form))
}

func TestScheduleStartBeforeEnd(t *testing.T) {
	va := New()
	draft := model.ScheduleDraft{DoctorID: "m1", Weekday: 3, Start: "08:00", End: "12:00"}
	require.NoError(t, va.Struct(draft))

	draft.Start = "12:00"
	draft.End = "08:00"
	err := va.Struct(draft)
	require.Error(t, err)
	assert.Equal(t, "start time must be before end time", err.Error())

	draft.End = "12:00"
	err = va.Struct(draft)
	require.Error(t, err, "equal start and end is rejected")
}

func TestScheduleWeekdayRange(t *testing.T) {
	va := New()
	draft := model.ScheduleDraft{DoctorID: "m1", Weekday: 8, Start: "08:00", End: "12:00"}
	err := va.Struct(draft)
	require.Error(t, err)
	assert.Equal(t, "dia_semana must be at most 7", err.Error())
}

func TestAppointmentStatusEnum(t *testing.T) {
	va := New()
	draft := model.NewAppointmentDraft()
	draft.PatientID = "p1"
	draft.DoctorID = "m1"
	draft.DateTime = "2025-03-01T09:00"
	require.NoError(t, va.Struct(draft))

	draft.Status = "pendiente"
	err := va.Struct(draft)
	require.Error(t, err)
	assert.Equal(t, "estado must be one of: programada completada cancelada", err.Error())
}
