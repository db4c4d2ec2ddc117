package domain

import "time"

// TemplateSchemaVersion values. Version 1 stored a single WhatsApp
// template object; version 2 stores a named array. Migration happens
// once when settings are loaded.
const (
	TemplateSchemaV1 = 1
	TemplateSchemaV2 = 2
)

// MessageTemplate is a named WhatsApp/PDF message body with
// {{placeholder}} substitution.
type MessageTemplate struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// Settings is the studio-wide configuration singleton: exactly one row,
// loaded once at startup and saved explicitly.
type Settings struct {
	ID                string            `json:"id"`
	StudioName        string            `json:"studio_name"`
	Address           string            `json:"address,omitempty"`
	Phone             string            `json:"phone,omitempty"`
	CurrencyCode      string            `json:"currency_code"`
	CurrencySymbol    string            `json:"currency_symbol"`
	LogoBase64        string            `json:"logo_base64,omitempty"`
	PaymentQRBase64   string            `json:"payment_qr_base64,omitempty"`
	InvoicePrefix     string            `json:"invoice_prefix"`
	NextInvoiceNumber int               `json:"next_invoice_number"`
	TemplateVersion   int               `json:"template_version"`
	Templates         []MessageTemplate `json:"templates"`
	CreatedAt         time.Time         `json:"created_at"`
	UpdatedAt         time.Time         `json:"updated_at"`
}
