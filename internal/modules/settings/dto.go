package settings

import "yogastudio/internal/domain"

type UpdateSettingsRequest struct {
	StudioName        string                   `json:"studio_name"`
	Address           string                   `json:"address"`
	Phone             string                   `json:"phone"`
	CurrencyCode      string                   `json:"currency_code"`
	CurrencySymbol    string                   `json:"currency_symbol"`
	LogoBase64        string                   `json:"logo_base64"`
	PaymentQRBase64   string                   `json:"payment_qr_base64"`
	InvoicePrefix     string                   `json:"invoice_prefix"`
	NextInvoiceNumber *int                     `json:"next_invoice_number"`
	Templates         []domain.MessageTemplate `json:"templates"`
}

type RenderTemplateRequest struct {
	Name string            `json:"name" binding:"required"`
	Data map[string]string `json:"data"`
}
