package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type SettingsRepository struct {
	db *gorm.DB
}

func NewSettingsRepository(db *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: db}
}

func (r *SettingsRepository) WithTx(tx *gorm.DB) *SettingsRepository {
	return &SettingsRepository{db: tx}
}

type settingsModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	StudioName        string    `gorm:"column:studio_name"`
	Address           *string   `gorm:"column:address"`
	Phone             *string   `gorm:"column:phone"`
	CurrencyCode      string    `gorm:"column:currency_code"`
	CurrencySymbol    string    `gorm:"column:currency_symbol"`
	LogoBase64        *string   `gorm:"column:logo_base64;type:text"`
	PaymentQRBase64   *string   `gorm:"column:payment_qr_base64;type:text"`
	InvoicePrefix     string    `gorm:"column:invoice_prefix"`
	NextInvoiceNumber int       `gorm:"column:next_invoice_number"`
	TemplateVersion   int       `gorm:"column:template_version"`
	TemplatesJSON     string    `gorm:"column:templates_json;type:text"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (settingsModel) TableName() string { return "studio_settings" }

func toDomainSettings(m settingsModel) (*domain.Settings, error) {
	out := &domain.Settings{
		ID:                m.ID,
		StudioName:        m.StudioName,
		Address:           strOrEmpty(m.Address),
		Phone:             strOrEmpty(m.Phone),
		CurrencyCode:      m.CurrencyCode,
		CurrencySymbol:    m.CurrencySymbol,
		LogoBase64:        strOrEmpty(m.LogoBase64),
		PaymentQRBase64:   strOrEmpty(m.PaymentQRBase64),
		InvoicePrefix:     m.InvoicePrefix,
		NextInvoiceNumber: m.NextInvoiceNumber,
		TemplateVersion:   m.TemplateVersion,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
	if m.TemplatesJSON != "" && m.TemplateVersion >= domain.TemplateSchemaV2 {
		if err := json.Unmarshal([]byte(m.TemplatesJSON), &out.Templates); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func toSettingsModel(d *domain.Settings) (settingsModel, error) {
	templates, err := json.Marshal(d.Templates)
	if err != nil {
		return settingsModel{}, err
	}
	return settingsModel{
		ID:                d.ID,
		StudioName:        d.StudioName,
		Address:           strOrNil(d.Address),
		Phone:             strOrNil(d.Phone),
		CurrencyCode:      d.CurrencyCode,
		CurrencySymbol:    d.CurrencySymbol,
		LogoBase64:        strOrNil(d.LogoBase64),
		PaymentQRBase64:   strOrNil(d.PaymentQRBase64),
		InvoicePrefix:     d.InvoicePrefix,
		NextInvoiceNumber: d.NextInvoiceNumber,
		TemplateVersion:   d.TemplateVersion,
		TemplatesJSON:     string(templates),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}, nil
}

// Get returns the singleton settings row, or nil when none exists yet.
// Legacy v1 template payloads are returned raw for the settings service
// to migrate.
func (r *SettingsRepository) Get(ctx context.Context) (*domain.Settings, string, error) {
	var row settingsModel
	tx := r.db.WithContext(ctx).First(&row)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, "", nil
		}
		return nil, "", tx.Error
	}

	s, err := toDomainSettings(row)
	if err != nil {
		return nil, "", err
	}

	raw := ""
	if row.TemplateVersion < domain.TemplateSchemaV2 {
		raw = row.TemplatesJSON
	}
	return s, raw, nil
}

func (r *SettingsRepository) Save(ctx context.Context, s *domain.Settings) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
		s.CreatedAt = time.Now()
	}
	s.UpdatedAt = time.Now()

	row, err := toSettingsModel(s)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Save(&row).Error
}

// IncrementInvoiceNumber reserves the next invoice sequence number and
// returns the value to stamp on the new invoice.
func (r *SettingsRepository) IncrementInvoiceNumber(ctx context.Context, id string) (int, error) {
	var row settingsModel
	if err := r.db.WithContext(ctx).First(&row, "id = ?", id).Error; err != nil {
		return 0, err
	}

	n := row.NextInvoiceNumber
	err := r.db.WithContext(ctx).Model(&settingsModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"next_invoice_number": n + 1,
			"updated_at":          time.Now(),
		}).Error
	if err != nil {
		return 0, err
	}
	return n, nil
}
