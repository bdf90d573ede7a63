package model

// Appointment statuses.
const (
	AppointmentScheduled = "programada"
	AppointmentCompleted = "completada"
	AppointmentCancelled = "cancelada"
)

// Appointment links a patient, a doctor and a room at a point in time.
type Appointment struct {
	ID        string `json:"id_cita"`
	PatientID string `json:"paciente_id"`
	DoctorID  string `json:"medico_id"`
	DateTime  string `json:"fecha_hora"`
	RoomID    string `json:"consultorio_id,omitempty"`
	Status    string `json:"estado"`
	Notes     string `json:"notas"`
}

type AppointmentDraft struct {
	PatientID string `json:"paciente_id" validate:"required"`
	DoctorID  string `json:"medico_id" validate:"required"`
	DateTime  string `json:"fecha_hora" validate:"required"`
	RoomID    string `json:"consultorio_id,omitempty"`
	Status    string `json:"estado" validate:"required,oneof=programada completada cancelada"`
	Notes     string `json:"notas"`
}

// NewAppointmentDraft returns the default creation draft.
func NewAppointmentDraft() AppointmentDraft {
	return AppointmentDraft{Status: AppointmentScheduled}
}

func DraftFromAppointment(a Appointment) AppointmentDraft {
	return AppointmentDraft{
		PatientID: a.PatientID,
		DoctorID:  a.DoctorID,
		DateTime:  a.DateTime,
		RoomID:    a.RoomID,
		Status:    a.Status,
		Notes:     a.Notes,
	}
}

// Schedule is a doctor's weekly availability slot. Weekday runs 1 (Monday)
// through 7 (Sunday); times are same-day HH:MM wall-clock strings.
type Schedule struct {
	ID       string `json:"id_horario"`
	DoctorID string `json:"medico_id"`
	RoomID   string `json:"consultorio_id,omitempty"`
	Weekday  int    `json:"dia_semana"`
	Start    string `json:"hora_inicio"`
	End      string `json:"hora_fin"`
}

type ScheduleDraft struct {
	DoctorID string `json:"medico_id" validate:"required"`
	RoomID   string `json:"consultorio_id,omitempty"`
	Weekday  int    `json:"dia_semana" validate:"required,min=1,max=7"`
	Start    string `json:"hora_inicio" validate:"required"`
	End      string `json:"hora_fin" validate:"required"`
}

func DraftFromSchedule(s Schedule) ScheduleDraft {
	return ScheduleDraft{
		DoctorID: s.DoctorID,
		RoomID:   s.RoomID,
		Weekday:  s.Weekday,
		Start:    s.Start,
		End:      s.End,
	}
}
