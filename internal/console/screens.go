package console

import (
	"context"
	"fmt"
	"strconv"

	"github.com/jwalitptl/clinic-console/internal/gateway"
	"github.com/jwalitptl/clinic-console/internal/model"
	"github.com/jwalitptl/clinic-console/internal/notifier"
	"github.com/jwalitptl/clinic-console/internal/validate"
	"github.com/jwalitptl/clinic-console/internal/view"
)

// BuildScreens instantiates the generic screen once per collection,
// keyed by the API path segment.
func BuildScreens(gw *gateway.Clinic, va *validate.Validator, resolver *Resolver, notify notifier.Notifier) map[string]Screen {
	screens := map[string]Screen{}

	screens["pacientes"] = NewScreen(ScreenConfig[model.Patient, model.PatientDraft]{
		Title:   "Patients",
		Noun:    "patient",
		Plural:  "patients",
		Headers: []string{"ID", "Name", "DUI", "Birth date", "Phone", "Email"},
		Row: func(p model.Patient) []string {
			return []string{p.ID, p.Name, p.DUI, p.BirthDate, p.Phone, p.Email}
		},
		RecordID:   func(p model.Patient) string { return p.ID },
		Match:      view.MatchAny(func(p model.Patient) string { return p.Name }),
		List:       gw.Patients.List,
		Create:     dropNames(resolver, "pacientes", gw.Patients.Create),
		Update:     dropNamesOnUpdate(resolver, "pacientes", gw.Patients.Update),
		Delete:     dropNamesOnDelete(resolver, "pacientes", gw.Patients.Delete),
		Defaults:   func() model.PatientDraft { return model.PatientDraft{} },
		FromRecord: model.DraftFromPatient,
		Validate:   func(d model.PatientDraft) error { return va.Struct(d) },
		Fields:     []string{"nombre", "dui", "isss", "nit", "fecha_nacimiento", "direccion", "telefono", "correo"},
		SetField: func(d *model.PatientDraft, field, value string) error {
			switch field {
			case "nombre":
				d.Name = value
			case "dui":
				d.DUI = value
			case "isss":
				d.ISSS = value
			case "nit":
				d.NIT = value
			case "fecha_nacimiento":
				d.BirthDate = value
			case "direccion":
				d.Address = value
			case "telefono":
				d.Phone = value
			case "correo":
				d.Email = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["medicos"] = NewScreen(ScreenConfig[model.Doctor, model.DoctorDraft]{
		Title:   "Doctors",
		Noun:    "doctor",
		Plural:  "doctors",
		Headers: []string{"ID", "Name", "Specialty", "DUI", "ISSS", "Phone"},
		Row: func(d model.Doctor) []string {
			return []string{d.ID, d.Name, resolver.Name("especialidades", d.SpecialtyID), d.DUI, d.ISSS, d.Phone}
		},
		RecordID:   func(d model.Doctor) string { return d.ID },
		Match:      view.MatchAny(func(d model.Doctor) string { return d.Name }),
		List:       gw.Doctors.List,
		Create:     dropNames(resolver, "medicos", gw.Doctors.Create),
		Update:     dropNamesOnUpdate(resolver, "medicos", gw.Doctors.Update),
		Delete:     dropNamesOnDelete(resolver, "medicos", gw.Doctors.Delete),
		Defaults:   func() model.DoctorDraft { return model.DoctorDraft{} },
		FromRecord: model.DraftFromDoctor,
		Validate:   func(d model.DoctorDraft) error { return va.Struct(d) },
		Fields:     []string{"nombre", "correo", "especialidad_id", "consultorio_id", "dui", "isss", "nit", "telefono"},
		SetField: func(d *model.DoctorDraft, field, value string) error {
			switch field {
			case "nombre":
				d.Name = value
			case "correo":
				d.Email = value
			case "especialidad_id":
				d.SpecialtyID = value
			case "consultorio_id":
				d.RoomID = value
			case "dui":
				d.DUI = value
			case "isss":
				d.ISSS = value
			case "nit":
				d.NIT = value
			case "telefono":
				d.Phone = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["especialidades"] = NewScreen(ScreenConfig[model.Specialty, model.SpecialtyDraft]{
		Title:   "Specialties",
		Noun:    "specialty",
		Plural:  "specialties",
		Headers: []string{"ID", "Name", "Description"},
		Row: func(s model.Specialty) []string {
			return []string{s.ID, s.Name, s.Description}
		},
		RecordID:   func(s model.Specialty) string { return s.ID },
		Match:      view.MatchAny(func(s model.Specialty) string { return s.Name }),
		List:       gw.Specialties.List,
		Create:     dropNames(resolver, "especialidades", gw.Specialties.Create),
		Update:     dropNamesOnUpdate(resolver, "especialidades", gw.Specialties.Update),
		Delete:     dropNamesOnDelete(resolver, "especialidades", gw.Specialties.Delete),
		Defaults:   func() model.SpecialtyDraft { return model.SpecialtyDraft{} },
		FromRecord: model.DraftFromSpecialty,
		Validate:   func(d model.SpecialtyDraft) error { return va.Struct(d) },
		Fields:     []string{"nombre", "descripcion"},
		SetField: func(d *model.SpecialtyDraft, field, value string) error {
			switch field {
			case "nombre":
				d.Name = value
			case "descripcion":
				d.Description = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["consultorios"] = NewScreen(ScreenConfig[model.Room, model.RoomDraft]{
		Title:   "Rooms",
		Noun:    "room",
		Plural:  "rooms",
		Headers: []string{"ID", "Number", "Floor", "Equipment"},
		Row: func(r model.Room) []string {
			return []string{r.ID, r.Number, strconv.Itoa(r.Floor), r.Equipment}
		},
		RecordID:   func(r model.Room) string { return r.ID },
		Match:      view.MatchAny(func(r model.Room) string { return r.Number }),
		List:       gw.Rooms.List,
		Create:     gw.Rooms.Create,
		Update:     gw.Rooms.Update,
		Delete:     gw.Rooms.Delete,
		Defaults:   func() model.RoomDraft { return model.RoomDraft{} },
		FromRecord: model.DraftFromRoom,
		Validate:   func(d model.RoomDraft) error { return va.Struct(d) },
		Fields:     []string{"numero", "piso", "equipamiento"},
		SetField: func(d *model.RoomDraft, field, value string) error {
			switch field {
			case "numero":
				d.Number = value
			case "piso":
				floor, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("piso must be a number")
				}
				d.Floor = floor
			case "equipamiento":
				d.Equipment = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["citas"] = NewScreen(ScreenConfig[model.Appointment, model.AppointmentDraft]{
		Title:   "Appointments",
		Noun:    "appointment",
		Plural:  "appointments",
		Headers: []string{"ID", "Patient", "Doctor", "Date", "Status", "Notes"},
		Row: func(a model.Appointment) []string {
			return []string{
				a.ID,
				resolver.Name("pacientes", a.PatientID),
				resolver.Name("medicos", a.DoctorID),
				a.DateTime,
				a.Status,
				a.Notes,
			}
		},
		RecordID:   func(a model.Appointment) string { return a.ID },
		Match:      view.MatchAny(func(a model.Appointment) string { return a.Status }),
		List:       gw.Appointments.List,
		Create:     gw.Appointments.Create,
		Update:     gw.Appointments.Update,
		Delete:     gw.Appointments.Delete,
		Defaults:   model.NewAppointmentDraft,
		FromRecord: model.DraftFromAppointment,
		Validate:   func(d model.AppointmentDraft) error { return va.Struct(d) },
		Fields:     []string{"paciente_id", "medico_id", "fecha_hora", "consultorio_id", "estado", "notas"},
		SetField: func(d *model.AppointmentDraft, field, value string) error {
			switch field {
			case "paciente_id":
				d.PatientID = value
			case "medico_id":
				d.DoctorID = value
			case "fecha_hora":
				d.DateTime = value
			case "consultorio_id":
				d.RoomID = value
			case "estado":
				d.Status = value
			case "notas":
				d.Notes = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["horarios"] = NewScreen(ScreenConfig[model.Schedule, model.ScheduleDraft]{
		Title:   "Schedules",
		Noun:    "schedule",
		Plural:  "schedules",
		Headers: []string{"ID", "Doctor", "Weekday", "Start", "End"},
		Row: func(s model.Schedule) []string {
			return []string{s.ID, resolver.Name("medicos", s.DoctorID), strconv.Itoa(s.Weekday), s.Start, s.End}
		},
		RecordID: func(s model.Schedule) string { return s.ID },
		// Schedules are searched by the doctor's name, not a field of
		// the record itself.
		Match: view.MatchAny(func(s model.Schedule) string {
			return resolver.Name("medicos", s.DoctorID)
		}),
		List:       gw.Schedules.List,
		Create:     gw.Schedules.Create,
		Update:     gw.Schedules.Update,
		Delete:     gw.Schedules.Delete,
		Defaults:   func() model.ScheduleDraft { return model.ScheduleDraft{} },
		FromRecord: model.DraftFromSchedule,
		Validate:   func(d model.ScheduleDraft) error { return va.Struct(d) },
		Fields:     []string{"medico_id", "consultorio_id", "dia_semana", "hora_inicio", "hora_fin"},
		SetField: func(d *model.ScheduleDraft, field, value string) error {
			switch field {
			case "medico_id":
				d.DoctorID = value
			case "consultorio_id":
				d.RoomID = value
			case "dia_semana":
				weekday, err := strconv.Atoi(value)
				if err != nil {
					return fmt.Errorf("dia_semana must be a number from 1 to 7")
				}
				d.Weekday = weekday
			case "hora_inicio":
				d.Start = value
			case "hora_fin":
				d.End = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["facturas"] = NewScreen(ScreenConfig[model.Invoice, model.InvoiceForm]{
		Title:   "Invoices",
		Noun:    "invoice",
		Plural:  "invoices",
		Headers: []string{"ID", "Number", "Issue date", "NIT", "Subtotal", "IVA", "Total"},
		Row: func(f model.Invoice) []string {
			return []string{
				f.ID,
				f.Number,
				f.IssueDate,
				f.PatientNIT,
				fmt.Sprintf("%.2f", f.Subtotal),
				fmt.Sprintf("%.2f", f.IVA),
				fmt.Sprintf("%.2f", f.Total),
			}
		},
		RecordID:   func(f model.Invoice) string { return f.ID },
		Match:      view.MatchAny(func(f model.Invoice) string { return f.Number }),
		List:       gw.Invoices.List,
		Create:     dropNames(resolver, "facturas", gw.Invoices.Create),
		Update:     dropNamesOnUpdate(resolver, "facturas", gw.Invoices.Update),
		Delete:     dropNamesOnDelete(resolver, "facturas", gw.Invoices.Delete),
		Defaults:   func() model.InvoiceForm { return model.InvoiceForm{} },
		FromRecord: model.FormFromInvoice,
		Validate:   func(d model.InvoiceForm) error { return va.Struct(d) },
		Fields:     []string{"cita_id", "numero_factura", "fecha_emision", "nit_paciente", "subtotal", "iva"},
		SetField: func(d *model.InvoiceForm, field, value string) error {
			switch field {
			case "cita_id":
				d.CitaID = value
			case "numero_factura":
				d.Number = value
			case "fecha_emision":
				d.IssueDate = value
			case "nit_paciente":
				d.PatientNIT = value
			case "subtotal":
				d.Subtotal = value
			case "iva":
				d.IVA = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["pagos"] = NewScreen(ScreenConfig[model.Payment, model.PaymentForm]{
		Title:   "Payments",
		Noun:    "payment",
		Plural:  "payments",
		Headers: []string{"ID", "Invoice", "Amount", "Date", "Reference"},
		Row: func(p model.Payment) []string {
			return []string{
				p.ID,
				resolver.Name("facturas", p.InvoiceID),
				fmt.Sprintf("%.2f", p.Amount),
				p.Date,
				p.Reference,
			}
		},
		RecordID: func(p model.Payment) string { return p.ID },
		Match: view.MatchAny(
			func(p model.Payment) string { return p.Reference },
			func(p model.Payment) string { return p.InvoiceID },
		),
		List:       gw.Payments.List,
		Create:     gw.Payments.Create,
		Update:     gw.Payments.Update,
		Delete:     gw.Payments.Delete,
		Defaults:   func() model.PaymentForm { return model.PaymentForm{} },
		FromRecord: model.FormFromPayment,
		Validate:   func(d model.PaymentForm) error { return va.Struct(d) },
		Fields:     []string{"factura_id", "monto", "metodo_pago_id", "referencia"},
		SetField: func(d *model.PaymentForm, field, value string) error {
			switch field {
			case "factura_id":
				d.InvoiceID = value
			case "monto":
				d.Amount = value
			case "metodo_pago_id":
				d.MethodID = value
			case "referencia":
				d.Reference = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["metodos_pago"] = NewScreen(ScreenConfig[model.PaymentMethod, model.PaymentMethodDraft]{
		Title:   "Payment methods",
		Noun:    "payment method",
		Plural:  "payment methods",
		Headers: []string{"ID", "Name"},
		Row: func(m model.PaymentMethod) []string {
			return []string{strconv.FormatInt(m.ID, 10), m.Name}
		},
		RecordID:   func(m model.PaymentMethod) string { return strconv.FormatInt(m.ID, 10) },
		Match:      view.MatchAny(func(m model.PaymentMethod) string { return m.Name }),
		List:       gw.PaymentMethods.List,
		Create:     gw.PaymentMethods.Create,
		Update: func(ctx context.Context, id string, draft model.PaymentMethodDraft) error {
			numeric, err := strconv.ParseInt(id, 10, 64)
			if err != nil {
				return fmt.Errorf("payment method ids are numeric")
			}
			return gw.PaymentMethods.Update(ctx, numeric, draft)
		},
		Delete: func(ctx context.Context, id string) error {
			numeric, err := strconv.ParseInt(id, 10, 64)
			if err != nil {
				return fmt.Errorf("payment method ids are numeric")
			}
			return gw.PaymentMethods.Delete(ctx, numeric)
		},
		Defaults:   func() model.PaymentMethodDraft { return model.PaymentMethodDraft{} },
		FromRecord: model.DraftFromPaymentMethod,
		Validate:   func(d model.PaymentMethodDraft) error { return va.Struct(d) },
		Fields:     []string{"nombre"},
		SetField: func(d *model.PaymentMethodDraft, field, value string) error {
			if field != "nombre" {
				return unknownField(field)
			}
			d.Name = value
			return nil
		},
	}, notify)

	screens["notificaciones"] = NewScreen(ScreenConfig[model.Notification, model.NotificationDraft]{
		Title:   "Notifications",
		Noun:    "notification",
		Plural:  "notifications",
		Headers: []string{"ID", "Type", "Content", "Send date", "Status"},
		Row: func(n model.Notification) []string {
			return []string{n.ID, n.Type, n.Content, n.SendDate, n.Status}
		},
		RecordID: func(n model.Notification) string { return n.ID },
		Match: view.MatchAny(
			func(n model.Notification) string { return n.Type },
			func(n model.Notification) string { return n.Status },
		),
		List:       gw.Notifications.List,
		Create:     gw.Notifications.Create,
		Update:     gw.Notifications.Update,
		Delete:     gw.Notifications.Delete,
		Defaults:   model.NewNotificationDraft,
		FromRecord: model.DraftFromNotification,
		Validate:   func(d model.NotificationDraft) error { return va.Struct(d) },
		Fields:     []string{"cita_id", "tipo", "contenido", "fecha_envio", "estado"},
		SetField: func(d *model.NotificationDraft, field, value string) error {
			switch field {
			case "cita_id":
				d.CitaID = value
			case "tipo":
				d.Type = value
			case "contenido":
				d.Content = value
			case "fecha_envio":
				d.SendDate = value
			case "estado":
				d.Status = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["telefonos"] = NewScreen(ScreenConfig[model.PhoneContact, model.PhoneContactDraft]{
		Title:   "Phone contacts",
		Noun:    "phone contact",
		Plural:  "phone contacts",
		Headers: []string{"ID", "Name", "Country code", "Number"},
		Row: func(t model.PhoneContact) []string {
			return []string{t.ID, t.Name, t.CountryCode, t.Number}
		},
		RecordID: func(t model.PhoneContact) string { return t.ID },
		Match: view.MatchAny(
			func(t model.PhoneContact) string { return t.Name },
			func(t model.PhoneContact) string { return t.Number },
		),
		List:       gw.PhoneContacts.List,
		Create:     gw.PhoneContacts.Create,
		Update:     gw.PhoneContacts.Update,
		Delete:     gw.PhoneContacts.Delete,
		Defaults:   func() model.PhoneContactDraft { return model.PhoneContactDraft{} },
		FromRecord: model.DraftFromPhoneContact,
		Validate:   func(d model.PhoneContactDraft) error { return va.Struct(d) },
		Fields:     []string{"nombre", "codigo_pais", "numero"},
		SetField: func(d *model.PhoneContactDraft, field, value string) error {
			switch field {
			case "nombre":
				d.Name = value
			case "codigo_pais":
				d.CountryCode = value
			case "numero":
				d.Number = value
			default:
				return unknownField(field)
			}
			return nil
		},
	}, notify)

	screens["usuarios"] = NewReadOnlyScreen(
		"Users", "user", "users",
		[]string{"ID", "Name", "Email", "Role", "Created"},
		func(u model.User) []string {
			return []string{u.ID, u.Name, u.Email, u.Role, u.CreatedAt}
		},
		view.MatchAny(func(u model.User) string { return u.Name }),
		gw.Users.List,
	)

	return screens
}

func unknownField(field string) error {
	return fmt.Errorf("unknown field %q", field)
}

// The resolver caches reference-collection names; mutating one of those
// collections must drop its cached map so rows render the fresh name.

func dropNames[D any](r *Resolver, collection string, fn func(context.Context, D) error) func(context.Context, D) error {
	return func(ctx context.Context, d D) error {
		if err := fn(ctx, d); err != nil {
			return err
		}
		r.Invalidate(collection)
		return nil
	}
}

func dropNamesOnUpdate[D any](r *Resolver, collection string, fn func(context.Context, string, D) error) func(context.Context, string, D) error {
	return func(ctx context.Context, id string, d D) error {
		if err := fn(ctx, id, d); err != nil {
			return err
		}
		r.Invalidate(collection)
		return nil
	}
}

func dropNamesOnDelete(r *Resolver, collection string, fn func(context.Context, string) error) func(context.Context, string) error {
	return func(ctx context.Context, id string) error {
		if err := fn(ctx, id); err != nil {
			return err
		}
		r.Invalidate(collection)
		return nil
	}
}
