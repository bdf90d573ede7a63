package model

// PhoneContact is a standalone directory entry with no relationships.
// The backend names its id field id_telefonos, plural.
type PhoneContact struct {
	ID          string `json:"id_telefonos"`
	Name        string `json:"nombre"`
	CountryCode string `json:"codigo_pais"`
	Number      string `json:"numero"`
}

type PhoneContactDraft struct {
	Name        string `json:"nombre" validate:"required"`
	CountryCode string `json:"codigo_pais" validate:"required"`
	Number      string `json:"numero" validate:"required,contact_phone"`
}

func DraftFromPhoneContact(t PhoneContact) PhoneContactDraft {
	return PhoneContactDraft{Name: t.Name, CountryCode: t.CountryCode, Number: t.Number}
}

// User is read-only in this surface.
type User struct {
	ID        string `json:"id_usuario"`
	Name      string `json:"nombre"`
	Email     string `json:"correo"`
	Role      string `json:"rol"`
	CreatedAt string `json:"fecha_creacion"`
}
