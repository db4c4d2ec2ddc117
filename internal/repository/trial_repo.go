package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type TrialRepository struct {
	db *gorm.DB
}

func NewTrialRepository(db *gorm.DB) *TrialRepository {
	return &TrialRepository{db: db}
}

func (r *TrialRepository) WithTx(tx *gorm.DB) *TrialRepository {
	return &TrialRepository{db: tx}
}

type trialModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	SlotID    string    `gorm:"column:slot_id;index"`
	Date      time.Time `gorm:"column:date;index"`
	Name      string    `gorm:"column:name"`
	Phone     string    `gorm:"column:phone"`
	LeadID    *string   `gorm:"column:lead_id"`
	Status    string    `gorm:"column:status;index"`
	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (trialModel) TableName() string { return "trial_bookings" }

func toDomainTrial(m trialModel) *domain.TrialBooking {
	return &domain.TrialBooking{
		ID:        m.ID,
		SlotID:    m.SlotID,
		Date:      m.Date,
		Name:      m.Name,
		Phone:     m.Phone,
		LeadID:    strOrEmpty(m.LeadID),
		Status:    domain.TrialStatus(m.Status),
		Notes:     strOrEmpty(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toTrialModel(d *domain.TrialBooking) trialModel {
	return trialModel{
		ID:        d.ID,
		SlotID:    d.SlotID,
		Date:      d.Date,
		Name:      d.Name,
		Phone:     d.Phone,
		LeadID:    strOrNil(d.LeadID),
		Status:    string(d.Status),
		Notes:     strOrNil(d.Notes),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *TrialRepository) Create(ctx context.Context, t *domain.TrialBooking) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	row := toTrialModel(t)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*t = *toDomainTrial(row)
	return nil
}

func (r *TrialRepository) GetByID(ctx context.Context, id string) (*domain.TrialBooking, error) {
	var row trialModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainTrial(row), nil
}

func (r *TrialRepository) UpdateStatus(ctx context.Context, id string, status domain.TrialStatus) error {
	return r.db.WithContext(ctx).Model(&trialModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"status": string(status), "updated_at": time.Now()}).Error
}

func (r *TrialRepository) List(ctx context.Context, slotID string, date *time.Time) ([]*domain.TrialBooking, error) {
	q := r.db.WithContext(ctx).Model(&trialModel{})
	if slotID != "" {
		q = q.Where("slot_id = ?", slotID)
	}
	if date != nil {
		q = q.Where("date = ?", *date)
	}

	var rows []trialModel
	if err := q.Order("date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.TrialBooking, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainTrial(row))
	}
	return out, nil
}
