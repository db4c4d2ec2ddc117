package settings

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"yogastudio/internal/domain"
)

type MockSettingsRepo struct {
	mock.Mock
}

func (m *MockSettingsRepo) Get(ctx context.Context) (*domain.Settings, string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.String(1), args.Error(2)
	}
	return args.Get(0).(*domain.Settings), args.String(1), args.Error(2)
}

func (m *MockSettingsRepo) Save(ctx context.Context, s *domain.Settings) error {
	args := m.Called(ctx, s)
	if s.ID == "" {
		s.ID = "settings-1"
	}
	return args.Error(0)
}

type MockBackupExporter struct {
	mock.Mock
}

func (m *MockBackupExporter) Export(ctx context.Context) (*domain.Backup, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Backup), args.Error(1)
}

type MockRestoreStore struct {
	mock.Mock
}

func (m *MockRestoreStore) RestoreBackup(ctx context.Context, b *domain.Backup) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func newTestService(repo *MockSettingsRepo) *Service {
	return NewService(repo, new(MockBackupExporter), new(MockRestoreStore))
}

func v2Settings() *domain.Settings {
	return &domain.Settings{
		ID:                "settings-1",
		StudioName:        "Shanti Yoga",
		CurrencySymbol:    "₹",
		InvoicePrefix:     "YS-",
		NextInvoiceNumber: 42,
		TemplateVersion:   domain.TemplateSchemaV2,
		Templates: []domain.MessageTemplate{
			{Name: "welcome", Body: "Hi {{name}}, welcome to {{studio}}!"},
		},
	}
}

func TestLoad_FirstRunCreatesDefaults(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Get", mock.Anything).Return(nil, "", nil)
	repo.On("Save", mock.Anything, mock.Anything).Return(nil)

	cfg, err := newTestService(repo).Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.TemplateSchemaV2, cfg.TemplateVersion)
	assert.Equal(t, 1, cfg.NextInvoiceNumber)
	assert.NotEmpty(t, cfg.Templates)
	repo.AssertNumberOfCalls(t, "Save", 1)
}

func TestLoad_MigratesLegacyObjectOnce(t *testing.T) {
	repo := new(MockSettingsRepo)
	legacy := &domain.Settings{ID: "settings-1", TemplateVersion: domain.TemplateSchemaV1}
	repo.On("Get", mock.Anything).Return(legacy, `{"body":"See you at class, {{name}}!"}`, nil)
	repo.On("Save", mock.Anything, mock.MatchedBy(func(s *domain.Settings) bool {
		return s.TemplateVersion == domain.TemplateSchemaV2 &&
			len(s.Templates) == 1 &&
			s.Templates[0].Name == "default" &&
			s.Templates[0].Body == "See you at class, {{name}}!"
	})).Return(nil)

	cfg, err := newTestService(repo).Load(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, domain.TemplateSchemaV2, cfg.TemplateVersion)
	repo.AssertExpectations(t)
}

func TestLoad_V2RowNotRewritten(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Get", mock.Anything).Return(v2Settings(), "", nil)

	_, err := newTestService(repo).Load(context.Background())

	assert.NoError(t, err)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestMigrateTemplates_Shapes(t *testing.T) {
	named := migrateTemplates(`{"name":"renewal","body":"Renew, {{name}}"}`)
	assert.Equal(t, "renewal", named[0].Name)

	bare := migrateTemplates(`"Plain string body"`)
	assert.Equal(t, "default", bare[0].Name)
	assert.Equal(t, "Plain string body", bare[0].Body)

	garbage := migrateTemplates(`{not json`)
	assert.NotEmpty(t, garbage)

	empty := migrateTemplates("")
	assert.NotEmpty(t, empty)
}

func TestRenderTemplate_Substitution(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Get", mock.Anything).Return(v2Settings(), "", nil)

	body, err := newTestService(repo).RenderTemplate(context.Background(), "welcome", map[string]string{
		"name":   "Asha",
		"studio": "Shanti Yoga",
	})

	assert.NoError(t, err)
	assert.Equal(t, "Hi Asha, welcome to Shanti Yoga!", body)
}

func TestRenderTemplate_UnknownName(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Get", mock.Anything).Return(v2Settings(), "", nil)

	_, err := newTestService(repo).RenderTemplate(context.Background(), "farewell", nil)
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestRenderTemplate_KeepsUnmatchedPlaceholders(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Get", mock.Anything).Return(v2Settings(), "", nil)

	body, err := newTestService(repo).RenderTemplate(context.Background(), "welcome", map[string]string{
		"name": "Asha",
	})

	assert.NoError(t, err)
	assert.Contains(t, body, "{{studio}}")
}

func TestUpdate_RejectsEmptyTemplate(t *testing.T) {
	repo := new(MockSettingsRepo)
	repo.On("Get", mock.Anything).Return(v2Settings(), "", nil)

	_, err := newTestService(repo).Update(context.Background(), UpdateSettingsRequest{
		Templates: []domain.MessageTemplate{{Name: "", Body: "x"}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestRestoreBackup_RejectsEmptyPayload(t *testing.T) {
	svc := NewService(new(MockSettingsRepo), new(MockBackupExporter), new(MockRestoreStore))

	err := svc.RestoreBackup(context.Background(), &domain.Backup{})
	assert.ErrorIs(t, err, ErrBadBackup)
}

func TestRestoreBackup_RejectsInvalidEntities(t *testing.T) {
	store := new(MockRestoreStore)
	svc := NewService(new(MockSettingsRepo), new(MockBackupExporter), store)

	err := svc.RestoreBackup(context.Background(), &domain.Backup{
		ExportedAt: time.Now(),
		Members:    []*domain.Member{{ID: "mem-1", Name: "", Phone: "9812345678"}},
	})
	assert.ErrorIs(t, err, ErrBadBackup)
	store.AssertNotCalled(t, "RestoreBackup", mock.Anything, mock.Anything)
}

func TestRestoreBackup_Delegates(t *testing.T) {
	store := new(MockRestoreStore)
	b := &domain.Backup{ExportedAt: time.Now()}
	store.On("RestoreBackup", mock.Anything, b).Return(nil)

	svc := NewService(new(MockSettingsRepo), new(MockBackupExporter), store)

	assert.NoError(t, svc.RestoreBackup(context.Background(), b))
	store.AssertExpectations(t)
}
