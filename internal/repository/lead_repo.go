package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type LeadRepository struct {
	db *gorm.DB
}

func NewLeadRepository(db *gorm.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

func (r *LeadRepository) WithTx(tx *gorm.DB) *LeadRepository {
	return &LeadRepository{db: tx}
}

type leadModel struct {
	ID                string     `gorm:"column:id;primaryKey"`
	Name              string     `gorm:"column:name"`
	Phone             string     `gorm:"column:phone;index"`
	Email             *string    `gorm:"column:email"`
	Source            *string    `gorm:"column:source"`
	Status            string     `gorm:"column:status;index"`
	Notes             *string    `gorm:"column:notes;type:text"`
	FollowUpDate      *time.Time `gorm:"column:follow_up_date"`
	ConvertedMemberID *string    `gorm:"column:converted_member_id"`
	ConvertedAt       *time.Time `gorm:"column:converted_at"`
	CreatedAt         time.Time  `gorm:"column:created_at"`
	UpdatedAt         time.Time  `gorm:"column:updated_at"`
}

func (leadModel) TableName() string { return "leads" }

func toDomainLead(m leadModel) *domain.Lead {
	return &domain.Lead{
		ID:                m.ID,
		Name:              m.Name,
		Phone:             m.Phone,
		Email:             strOrEmpty(m.Email),
		Source:            strOrEmpty(m.Source),
		Status:            domain.LeadStatus(m.Status),
		Notes:             strOrEmpty(m.Notes),
		FollowUpDate:      m.FollowUpDate,
		ConvertedMemberID: strOrEmpty(m.ConvertedMemberID),
		ConvertedAt:       m.ConvertedAt,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toLeadModel(d *domain.Lead) leadModel {
	return leadModel{
		ID:                d.ID,
		Name:              d.Name,
		Phone:             d.Phone,
		Email:             strOrNil(d.Email),
		Source:            strOrNil(d.Source),
		Status:            string(d.Status),
		Notes:             strOrNil(d.Notes),
		FollowUpDate:      d.FollowUpDate,
		ConvertedMemberID: strOrNil(d.ConvertedMemberID),
		ConvertedAt:       d.ConvertedAt,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *LeadRepository) Create(ctx context.Context, l *domain.Lead) error {
	if l.ID == "" {
		l.ID = uuid.NewString()
	}
	row := toLeadModel(l)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*l = *toDomainLead(row)
	return nil
}

func (r *LeadRepository) GetByID(ctx context.Context, id string) (*domain.Lead, error) {
	var row leadModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainLead(row), nil
}

func (r *LeadRepository) Update(ctx context.Context, l *domain.Lead) error {
	row := toLeadModel(l)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *LeadRepository) List(ctx context.Context, status *domain.LeadStatus, limit, offset int) ([]*domain.Lead, int64, error) {
	q := r.db.WithContext(ctx).Model(&leadModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []leadModel
	if err := q.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*domain.Lead, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainLead(row))
	}
	return out, total, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id string, status domain.LeadStatus, notes string) error {
	updates := map[string]any{"status": string(status), "updated_at": time.Now()}
	if notes != "" {
		updates["notes"] = notes
	}
	return r.db.WithContext(ctx).Model(&leadModel{}).Where("id = ?", id).Updates(updates).Error
}

func (r *LeadRepository) MarkConverted(ctx context.Context, id, memberID string) error {
	now := time.Now()
	return r.db.WithContext(ctx).Model(&leadModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"status":              string(domain.LeadConverted),
			"converted_member_id": memberID,
			"converted_at":        now,
			"updated_at":          now,
		}).Error
}

func (r *LeadRepository) CountByStatus(ctx context.Context) (map[domain.LeadStatus]int, error) {
	var rows []struct {
		Status string
		Count  int
	}
	err := r.db.WithContext(ctx).Model(&leadModel{}).
		Select("status, COUNT(1) as count").
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make(map[domain.LeadStatus]int, len(rows))
	for _, row := range rows {
		out[domain.LeadStatus(row.Status)] = row.Count
	}
	return out, nil
}
