package model

// Patient is a clinic patient record.
type Patient struct {
	ID        string `json:"id_paciente"`
	Name      string `json:"nombre"`
	DUI       string `json:"dui"`
	ISSS      string `json:"isss"`
	NIT       string `json:"nit"`
	BirthDate string `json:"fecha_nacimiento"`
	Address   string `json:"direccion"`
	Phone     string `json:"telefono"`
	Email     string `json:"correo"`
}

// PatientDraft is the form payload for creating or updating a patient.
// The server assigns the identifier.
type PatientDraft struct {
	Name      string `json:"nombre" validate:"required"`
	DUI       string `json:"dui" validate:"omitempty,dui"`
	ISSS      string `json:"isss" validate:"omitempty,isss"`
	NIT       string `json:"nit" validate:"omitempty,nit"`
	BirthDate string `json:"fecha_nacimiento" validate:"required"`
	Address   string `json:"direccion"`
	Phone     string `json:"telefono" validate:"omitempty,contact_phone"`
	Email     string `json:"correo" validate:"omitempty,email"`
}

// DraftFromPatient pre-fills an edit form from an existing row.
func DraftFromPatient(p Patient) PatientDraft {
	return PatientDraft{
		Name:      p.Name,
		DUI:       p.DUI,
		ISSS:      p.ISSS,
		NIT:       p.NIT,
		BirthDate: p.BirthDate,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
	}
}
