package model

// Notification channels.
const (
	NotificationEmail    = "email"
	NotificationWhatsapp = "whatsapp"
	NotificationSMS      = "sms"
	NotificationApp      = "app"
)

// Notification statuses.
const (
	NotificationPending = "pendiente"
	NotificationSent    = "enviado"
	NotificationFailed  = "fallido"
)

// Notification is an outbound message record, optionally tied to an
// appointment. Delivery itself happens elsewhere.
type Notification struct {
	ID       string `json:"id_notificacion"`
	CitaID   string `json:"cita_id,omitempty"`
	Type     string `json:"tipo"`
	Content  string `json:"contenido"`
	SendDate string `json:"fecha_envio"`
	Status   string `json:"estado"`
}

type NotificationDraft struct {
	CitaID   string `json:"cita_id,omitempty"`
	Type     string `json:"tipo" validate:"required,oneof=email whatsapp sms app"`
	Content  string `json:"contenido" validate:"required"`
	SendDate string `json:"fecha_envio" validate:"required"`
	Status   string `json:"estado" validate:"required,oneof=pendiente enviado fallido"`
}

// NewNotificationDraft returns the default creation draft.
func NewNotificationDraft() NotificationDraft {
	return NotificationDraft{Type: NotificationEmail, Status: NotificationPending}
}

func DraftFromNotification(n Notification) NotificationDraft {
	return NotificationDraft{
		CitaID:   n.CitaID,
		Type:     n.Type,
		Content:  n.Content,
		SendDate: n.SendDate,
		Status:   n.Status,
	}
}
