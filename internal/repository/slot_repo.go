package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type SlotRepository struct {
	db *gorm.DB
}

func NewSlotRepository(db *gorm.DB) *SlotRepository {
	return &SlotRepository{db: db}
}

func (r *SlotRepository) WithTx(tx *gorm.DB) *SlotRepository {
	return &SlotRepository{db: tx}
}

type slotModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name"`
	StartTime         string    `gorm:"column:start_time"`
	EndTime           string    `gorm:"column:end_time"`
	Capacity          int       `gorm:"column:capacity"`
	ExceptionCapacity int       `gorm:"column:exception_capacity"`
	IsActive          bool      `gorm:"column:is_active;index"`
	Notes             *string   `gorm:"column:notes;type:text"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (slotModel) TableName() string { return "session_slots" }

func toDomainSlot(m slotModel) *domain.SessionSlot {
	return &domain.SessionSlot{
		ID:                m.ID,
		Name:              m.Name,
		StartTime:         m.StartTime,
		EndTime:           m.EndTime,
		Capacity:          m.Capacity,
		ExceptionCapacity: m.ExceptionCapacity,
		IsActive:          m.IsActive,
		Notes:             strOrEmpty(m.Notes),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toSlotModel(d *domain.SessionSlot) slotModel {
	return slotModel{
		ID:                d.ID,
		Name:              d.Name,
		StartTime:         d.StartTime,
		EndTime:           d.EndTime,
		Capacity:          d.Capacity,
		ExceptionCapacity: d.ExceptionCapacity,
		IsActive:          d.IsActive,
		Notes:             strOrNil(d.Notes),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *SlotRepository) Create(ctx context.Context, s *domain.SessionSlot) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	row := toSlotModel(s)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSlot(row)
	return nil
}

func (r *SlotRepository) GetByID(ctx context.Context, id string) (*domain.SessionSlot, error) {
	var row slotModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSlot(row), nil
}

func (r *SlotRepository) Update(ctx context.Context, s *domain.SessionSlot) error {
	row := toSlotModel(s)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *SlotRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&slotModel{}, "id = ?", id).Error
}

func (r *SlotRepository) List(ctx context.Context, activeOnly bool) ([]*domain.SessionSlot, error) {
	q := r.db.WithContext(ctx).Model(&slotModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []slotModel
	if err := q.Order("start_time ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.SessionSlot, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainSlot(row))
	}
	return out, nil
}
