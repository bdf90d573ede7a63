package model

// Doctor is a clinic doctor. Specialty is required, room is optional.
type Doctor struct {
	ID          string `json:"id_medico"`
	Name        string `json:"nombre"`
	Email       string `json:"correo"`
	SpecialtyID string `json:"especialidad_id"`
	RoomID      string `json:"consultorio_id,omitempty"`
	DUI         string `json:"dui"`
	ISSS        string `json:"isss"`
	NIT         string `json:"nit"`
	Phone       string `json:"telefono,omitempty"`
}

type DoctorDraft struct {
	Name        string `json:"nombre" validate:"required"`
	Email       string `json:"correo" validate:"omitempty,email"`
	SpecialtyID string `json:"especialidad_id" validate:"required"`
	RoomID      string `json:"consultorio_id,omitempty"`
	DUI         string `json:"dui" validate:"required,dui"`
	ISSS        string `json:"isss" validate:"required,isss"`
	NIT         string `json:"nit" validate:"omitempty,nit"`
	Phone       string `json:"telefono,omitempty" validate:"omitempty,contact_phone"`
}

func DraftFromDoctor(d Doctor) DoctorDraft {
	return DoctorDraft{
		Name:        d.Name,
		Email:       d.Email,
		SpecialtyID: d.SpecialtyID,
		RoomID:      d.RoomID,
		DUI:         d.DUI,
		ISSS:        d.ISSS,
		NIT:         d.NIT,
		Phone:       d.Phone,
	}
}

// Specialty is referenced by doctors.
type Specialty struct {
	ID          string `json:"id_especialidad"`
	Name        string `json:"nombre"`
	Description string `json:"descripcion"`
}

type SpecialtyDraft struct {
	Name        string `json:"nombre" validate:"required"`
	Description string `json:"descripcion"`
}

func DraftFromSpecialty(s Specialty) SpecialtyDraft {
	return SpecialtyDraft{Name: s.Name, Description: s.Description}
}

// Room is a consulting room.
type Room struct {
	ID        string `json:"id_consultorio"`
	Number    string `json:"numero"`
	Floor     int    `json:"piso"`
	Equipment string `json:"equipamiento"`
}

type RoomDraft struct {
	Number    string `json:"numero" validate:"required"`
	Floor     int    `json:"piso"`
	Equipment string `json:"equipamiento"`
}

func DraftFromRoom(r Room) RoomDraft {
	return RoomDraft{Number: r.Number, Floor: r.Floor, Equipment: r.Equipment}
}
