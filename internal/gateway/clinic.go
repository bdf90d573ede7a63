package gateway

import (
	"github.com/jwalitptl/clinic-console/internal/apiclient"
	"github.com/jwalitptl/clinic-console/internal/model"
)

// Clinic bundles one gateway per collection, all sharing a transport client.
type Clinic struct {
	Patients       *Resource[model.Patient, model.PatientDraft]
	Doctors        *Resource[model.Doctor, model.DoctorDraft]
	Specialties    *Resource[model.Specialty, model.SpecialtyDraft]
	Rooms          *Resource[model.Room, model.RoomDraft]
	Appointments   *Resource[model.Appointment, model.AppointmentDraft]
	Schedules      *Resource[model.Schedule, model.ScheduleDraft]
	Invoices       *Invoices
	Payments       *Payments
	PaymentMethods *PaymentMethods
	Notifications  *Resource[model.Notification, model.NotificationDraft]
	PhoneContacts  *Resource[model.PhoneContact, model.PhoneContactDraft]
	Users          *ReadOnly[model.User]
}

func NewClinic(client *apiclient.Client) *Clinic {
	return &Clinic{
		Patients:       NewResource[model.Patient, model.PatientDraft](client, "/pacientes"),
		Doctors:        NewResource[model.Doctor, model.DoctorDraft](client, "/medicos"),
		Specialties:    NewResource[model.Specialty, model.SpecialtyDraft](client, "/especialidades"),
		Rooms:          NewResource[model.Room, model.RoomDraft](client, "/consultorios"),
		Appointments:   NewResource[model.Appointment, model.AppointmentDraft](client, "/citas"),
		Schedules:      NewResource[model.Schedule, model.ScheduleDraft](client, "/horarios"),
		Invoices:       NewInvoices(client),
		Payments:       NewPayments(client),
		PaymentMethods: NewPaymentMethods(client),
		Notifications:  NewResource[model.Notification, model.NotificationDraft](client, "/notificaciones"),
		PhoneContacts:  NewResource[model.PhoneContact, model.PhoneContactDraft](client, "/telefonos"),
		Users:          NewReadOnly[model.User](client, "/usuarios"),
	}
}
