package gateway

import (
	"context"
	"math"
	"strconv"

	"github.com/jwalitptl/clinic-console/internal/apiclient"
	"github.com/jwalitptl/clinic-console/internal/model"
)

// IVARate is the sales tax applied to invoice subtotals.
const IVARate = 0.13

// invoicePayload is the numeric shape the server expects; the form keeps
// amounts as strings until send time.
type invoicePayload struct {
	CitaID     string  `json:"cita_id"`
	Number     string  `json:"numero_factura"`
	IssueDate  string  `json:"fecha_emision"`
	PatientNIT string  `json:"nit_paciente"`
	Subtotal   float64 `json:"subtotal"`
	IVA        float64 `json:"iva"`
	Total      float64 `json:"total"`
}

// Invoices derives IVA and total before send. IVA is computed from the
// subtotal only when creating with a blank IVA field; edits send the
// form's IVA untouched. Total is always subtotal + IVA.
type Invoices struct {
	client *apiclient.Client
	path   string
}

func NewInvoices(client *apiclient.Client) *Invoices {
	return &Invoices{client: client, path: "/facturas"}
}

func (g *Invoices) List(ctx context.Context) ([]model.Invoice, error) {
	var out []model.Invoice
	if err := g.client.Get(ctx, g.path+"/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Invoices) Get(ctx context.Context, id string) (model.Invoice, error) {
	var out model.Invoice
	err := g.client.Get(ctx, g.path+"/"+id, &out)
	return out, err
}

func (g *Invoices) Create(ctx context.Context, form model.InvoiceForm) error {
	subtotal, _ := strconv.ParseFloat(form.Subtotal, 64)
	iva := roundCents(subtotal * IVARate)
	if form.IVA != "" {
		iva, _ = strconv.ParseFloat(form.IVA, 64)
	}
	return g.client.Post(ctx, g.path+"/add", payload(form, subtotal, iva), nil)
}

func (g *Invoices) Update(ctx context.Context, id string, form model.InvoiceForm) error {
	subtotal, _ := strconv.ParseFloat(form.Subtotal, 64)
	iva, _ := strconv.ParseFloat(form.IVA, 64)
	return g.client.Put(ctx, g.path+"/update/"+id, payload(form, subtotal, iva), nil)
}

func (g *Invoices) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, g.path+"/delete/"+id)
}

func payload(form model.InvoiceForm, subtotal, iva float64) invoicePayload {
	return invoicePayload{
		CitaID:     form.CitaID,
		Number:     form.Number,
		IssueDate:  form.IssueDate,
		PatientNIT: form.PatientNIT,
		Subtotal:   subtotal,
		IVA:        iva,
		Total:      subtotal + iva,
	}
}

func roundCents(v float64) float64 {
	return math.Round(v*100) / 100
}

type paymentPayload struct {
	InvoiceID string  `json:"factura_id"`
	Amount    float64 `json:"monto"`
	MethodID  int64   `json:"metodo_pago_id"`
	Reference string  `json:"referencia"`
}

// Payments coerces the form's amount and method id to numeric types before
// send. The server assigns the payment date.
type Payments struct {
	client *apiclient.Client
	path   string
}

func NewPayments(client *apiclient.Client) *Payments {
	return &Payments{client: client, path: "/pagos"}
}

func (g *Payments) List(ctx context.Context) ([]model.Payment, error) {
	var out []model.Payment
	if err := g.client.Get(ctx, g.path+"/", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (g *Payments) Get(ctx context.Context, id string) (model.Payment, error) {
	var out model.Payment
	err := g.client.Get(ctx, g.path+"/"+id, &out)
	return out, err
}

func (g *Payments) Create(ctx context.Context, form model.PaymentForm) error {
	return g.client.Post(ctx, g.path+"/add", coercePayment(form), nil)
}

func (g *Payments) Update(ctx context.Context, id string, form model.PaymentForm) error {
	return g.client.Put(ctx, g.path+"/update/"+id, coercePayment(form), nil)
}

func (g *Payments) Delete(ctx context.Context, id string) error {
	return g.client.Delete(ctx, g.path+"/delete/"+id)
}

func coercePayment(form model.PaymentForm) paymentPayload {
	amount, _ := strconv.ParseFloat(form.Amount, 64)
	methodID, _ := strconv.ParseInt(form.MethodID, 10, 64)
	return paymentPayload{
		InvoiceID: form.InvoiceID,
		Amount:    amount,
		MethodID:  methodID,
		Reference: form.Reference,
	}
}

// PaymentMethods is the one collection with integer identifiers; the
// asymmetry is kept visible here instead of papered over.
type PaymentMethods struct {
	inner *Resource[model.PaymentMethod, model.PaymentMethodDraft]
}

func NewPaymentMethods(client *apiclient.Client) *PaymentMethods {
	return &PaymentMethods{inner: NewResource[model.PaymentMethod, model.PaymentMethodDraft](client, "/metodos_pago")}
}

func (g *PaymentMethods) List(ctx context.Context) ([]model.PaymentMethod, error) {
	return g.inner.List(ctx)
}

func (g *PaymentMethods) Get(ctx context.Context, id int64) (model.PaymentMethod, error) {
	return g.inner.Get(ctx, strconv.FormatInt(id, 10))
}

func (g *PaymentMethods) Create(ctx context.Context, draft model.PaymentMethodDraft) error {
	return g.inner.Create(ctx, draft)
}

func (g *PaymentMethods) Update(ctx context.Context, id int64, draft model.PaymentMethodDraft) error {
	return g.inner.Update(ctx, strconv.FormatInt(id, 10), draft)
}

func (g *PaymentMethods) Delete(ctx context.Context, id int64) error {
	return g.inner.Delete(ctx, strconv.FormatInt(id, 10))
}
