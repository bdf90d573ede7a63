package model

// Invoice amounts are stored numeric; the form keeps them as strings until
// the gateway coerces them at send time.
type Invoice struct {
	ID         string  `json:"id_factura"`
	CitaID     string  `json:"cita_id"`
	Number     string  `json:"numero_factura"`
	IssueDate  string  `json:"fecha_emision"`
	PatientNIT string  `json:"nit_paciente"`
	Subtotal   float64 `json:"subtotal"`
	IVA        float64 `json:"iva"`
	Total      float64 `json:"total"`
}

// InvoiceForm mirrors the invoice modal: subtotal and IVA are entered as
// text and converted to numbers before send.
type InvoiceForm struct {
	CitaID     string `json:"cita_id" validate:"required"`
	Number     string `json:"numero_factura" validate:"required,invoice_number"`
	IssueDate  string `json:"fecha_emision" validate:"required"`
	PatientNIT string `json:"nit_paciente" validate:"required,nit"`
	Subtotal   string `json:"subtotal" validate:"required,positive_amount"`
	IVA        string `json:"iva"`
}

func FormFromInvoice(f Invoice) InvoiceForm {
	return InvoiceForm{
		CitaID:     f.CitaID,
		Number:     f.Number,
		IssueDate:  f.IssueDate,
		PatientNIT: f.PatientNIT,
		Subtotal:   formatAmount(f.Subtotal),
		IVA:        formatAmount(f.IVA),
	}
}

// Payment is applied against an invoice. The server assigns the payment
// date. Payment-method ids are numeric, unlike every other collection.
type Payment struct {
	ID        string  `json:"id_pago"`
	InvoiceID string  `json:"factura_id"`
	Amount    float64 `json:"monto"`
	Date      string  `json:"fecha_pago"`
	MethodID  int64   `json:"metodo_pago_id"`
	Reference string  `json:"referencia"`
}

type PaymentForm struct {
	InvoiceID string `json:"factura_id" validate:"required"`
	Amount    string `json:"monto" validate:"required,positive_amount"`
	MethodID  string `json:"metodo_pago_id" validate:"required"`
	Reference string `json:"referencia"`
}

func FormFromPayment(p Payment) PaymentForm {
	return PaymentForm{
		InvoiceID: p.InvoiceID,
		Amount:    formatAmount(p.Amount),
		MethodID:  formatMethodID(p.MethodID),
		Reference: p.Reference,
	}
}

// PaymentMethod is the one collection with integer identifiers.
type PaymentMethod struct {
	ID   int64  `json:"id_metodo_pago"`
	Name string `json:"nombre"`
}

type PaymentMethodDraft struct {
	Name string `json:"nombre" validate:"required"`
}

func DraftFromPaymentMethod(m PaymentMethod) PaymentMethodDraft {
	return PaymentMethodDraft{Name: m.Name}
}
