package settings

import (
	"encoding/json"
	"strings"

	"yogastudio/internal/domain"
)

// legacyTemplate is the pre-v2 shape: one unnamed template object. Some
// very old rows stored the body as a bare JSON string.
type legacyTemplate struct {
	Name string `json:"name"`
	Body string `json:"body"`
}

// migrateTemplates lifts a v1 payload into the v2 named-template array.
// Unparseable or empty payloads yield the default template set so a
// broken row cannot wedge startup.
func migrateTemplates(raw string) []domain.MessageTemplate {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return defaultTemplates()
	}

	var legacy legacyTemplate
	if err := json.Unmarshal([]byte(raw), &legacy); err == nil && legacy.Body != "" {
		name := legacy.Name
		if name == "" {
			name = "default"
		}
		return []domain.MessageTemplate{{Name: name, Body: legacy.Body}}
	}

	var body string
	if err := json.Unmarshal([]byte(raw), &body); err == nil && body != "" {
		return []domain.MessageTemplate{{Name: "default", Body: body}}
	}

	return defaultTemplates()
}

func defaultTemplates() []domain.MessageTemplate {
	return []domain.MessageTemplate{
		{
			Name: "welcome",
			Body: "Hi {{name}}, welcome to {{studio}}! Your membership starts on {{start_date}}.",
		},
		{
			Name: "renewal_reminder",
			Body: "Hi {{name}}, your membership at {{studio}} ends on {{end_date}}. Renew soon to keep your slot.",
		},
		{
			Name: "payment_receipt",
			Body: "Hi {{name}}, we received {{amount}} against invoice {{invoice_number}}. Thank you!",
		},
	}
}
