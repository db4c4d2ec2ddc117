package settings

import (
	"context"

	"yogastudio/internal/domain"
)

// SettingsRepository persists the studio settings singleton. Get also
// returns the raw legacy template payload when the stored schema
// predates the named-template array.
type SettingsRepository interface {
	Get(ctx context.Context) (*domain.Settings, string, error)
	Save(ctx context.Context, s *domain.Settings) error
}

// BackupExporter reads the full entity set for a JSON export.
type BackupExporter interface {
	Export(ctx context.Context) (*domain.Backup, error)
}

// AtomicStore replaces all rows from a backup in one transaction.
type AtomicStore interface {
	RestoreBackup(ctx context.Context, b *domain.Backup) error
}
