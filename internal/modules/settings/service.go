package settings

import (
	"context"
	"fmt"
	"strings"
	"time"

	"yogastudio/internal/domain"
	"yogastudio/internal/pkg/validator"
)

type Service struct {
	repo    SettingsRepository
	backups BackupExporter
	store   AtomicStore
	now     func() time.Time
}

func NewService(repo SettingsRepository, backups BackupExporter, store AtomicStore) *Service {
	return &Service{repo: repo, backups: backups, store: store, now: time.Now}
}

// Load returns the settings singleton, creating the default row on
// first run and migrating legacy template payloads exactly once. Called
// at startup; later reads go through Current.
func (s *Service) Load(ctx context.Context) (*domain.Settings, error) {
	cfg, rawLegacy, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return s.createDefaults(ctx)
	}

	if cfg.TemplateVersion < domain.TemplateSchemaV2 {
		cfg.Templates = migrateTemplates(rawLegacy)
		cfg.TemplateVersion = domain.TemplateSchemaV2
		if err := s.repo.Save(ctx, cfg); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

func (s *Service) createDefaults(ctx context.Context) (*domain.Settings, error) {
	now := s.now()
	cfg := &domain.Settings{
		StudioName:        "Yoga Studio",
		CurrencyCode:      "INR",
		CurrencySymbol:    "₹",
		InvoicePrefix:     "YS-",
		NextInvoiceNumber: 1,
		TemplateVersion:   domain.TemplateSchemaV2,
		Templates:         defaultTemplates(),
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Current returns the singleton without triggering migration; it
// assumes Load already ran.
func (s *Service) Current(ctx context.Context) (*domain.Settings, error) {
	cfg, _, err := s.repo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, ErrSettingsMissing
	}
	return cfg, nil
}

func (s *Service) Update(ctx context.Context, req UpdateSettingsRequest) (*domain.Settings, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return nil, err
	}

	if req.StudioName != "" {
		cfg.StudioName = req.StudioName
	}
	if req.Address != "" {
		cfg.Address = req.Address
	}
	if req.Phone != "" {
		cfg.Phone = req.Phone
	}
	if req.CurrencyCode != "" {
		cfg.CurrencyCode = req.CurrencyCode
	}
	if req.CurrencySymbol != "" {
		cfg.CurrencySymbol = req.CurrencySymbol
	}
	if req.LogoBase64 != "" {
		cfg.LogoBase64 = req.LogoBase64
	}
	if req.PaymentQRBase64 != "" {
		cfg.PaymentQRBase64 = req.PaymentQRBase64
	}
	if req.InvoicePrefix != "" {
		cfg.InvoicePrefix = req.InvoicePrefix
	}
	if req.NextInvoiceNumber != nil {
		if *req.NextInvoiceNumber < 1 {
			return nil, fmt.Errorf("%w: invoice counter must be positive", ErrValidation)
		}
		cfg.NextInvoiceNumber = *req.NextInvoiceNumber
	}
	if req.Templates != nil {
		for _, t := range req.Templates {
			if t.Name == "" || t.Body == "" {
				return nil, fmt.Errorf("%w: template name and body are required", ErrValidation)
			}
		}
		cfg.Templates = req.Templates
	}

	if err := s.repo.Save(ctx, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// RenderTemplate substitutes {{key}} placeholders in the named template.
// Unmatched placeholders are left in place so a missing field is visible
// in the preview rather than silently blank.
func (s *Service) RenderTemplate(ctx context.Context, name string, data map[string]string) (string, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return "", err
	}

	for _, t := range cfg.Templates {
		if t.Name != name {
			continue
		}
		body := t.Body
		for k, v := range data {
			body = strings.ReplaceAll(body, "{{"+k+"}}", v)
		}
		return body, nil
	}
	return "", fmt.Errorf("%w: %s", ErrTemplateNotFound, name)
}

// ExportBackup produces the full-database JSON document.
func (s *Service) ExportBackup(ctx context.Context) (*domain.Backup, error) {
	return s.backups.Export(ctx)
}

// RestoreBackup replaces every data table with the backup contents in
// one transaction. Login users are untouched.
func (s *Service) RestoreBackup(ctx context.Context, b *domain.Backup) error {
	if b == nil || b.ExportedAt.IsZero() {
		return ErrBadBackup
	}
	for _, m := range b.Members {
		if errs := validator.Validate(m); errs != nil {
			return fmt.Errorf("%w: member %s", ErrBadBackup, m.ID)
		}
	}
	for _, l := range b.Leads {
		if errs := validator.Validate(l); errs != nil {
			return fmt.Errorf("%w: lead %s", ErrBadBackup, l.ID)
		}
	}
	for _, sl := range b.Slots {
		if errs := validator.Validate(sl); errs != nil {
			return fmt.Errorf("%w: slot %s", ErrBadBackup, sl.ID)
		}
	}
	for _, p := range b.Plans {
		if errs := validator.Validate(p); errs != nil {
			return fmt.Errorf("%w: plan %s", ErrBadBackup, p.ID)
		}
	}
	return s.store.RestoreBackup(ctx, b)
}
