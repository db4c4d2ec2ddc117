package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type PlanRepository struct {
	db *gorm.DB
}

func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

func (r *PlanRepository) WithTx(tx *gorm.DB) *PlanRepository {
	return &PlanRepository{db: tx}
}

type planModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Name           string    `gorm:"column:name"`
	Type           string    `gorm:"column:type"`
	Price          float64   `gorm:"column:price"`
	DurationMonths int       `gorm:"column:duration_months"`
	Description    *string   `gorm:"column:description;type:text"`
	IsActive       bool      `gorm:"column:is_active;index"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (planModel) TableName() string { return "membership_plans" }

func toDomainPlan(m planModel) *domain.MembershipPlan {
	return &domain.MembershipPlan{
		ID:             m.ID,
		Name:           m.Name,
		Type:           domain.PlanType(m.Type),
		Price:          m.Price,
		DurationMonths: m.DurationMonths,
		Description:    strOrEmpty(m.Description),
		IsActive:       m.IsActive,
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
}

func toPlanModel(d *domain.MembershipPlan) planModel {
	return planModel{
		ID:             d.ID,
		Name:           d.Name,
		Type:           string(d.Type),
		Price:          d.Price,
		DurationMonths: d.DurationMonths,
		Description:    strOrNil(d.Description),
		IsActive:       d.IsActive,
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *PlanRepository) Create(ctx context.Context, p *domain.MembershipPlan) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := toPlanModel(p)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPlan(row)
	return nil
}

func (r *PlanRepository) GetByID(ctx context.Context, id string) (*domain.MembershipPlan, error) {
	var row planModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainPlan(row), nil
}

func (r *PlanRepository) Update(ctx context.Context, p *domain.MembershipPlan) error {
	row := toPlanModel(p)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *PlanRepository) SetActive(ctx context.Context, id string, active bool) error {
	return r.db.WithContext(ctx).Model(&planModel{}).
		Where("id = ?", id).
		Updates(map[string]any{"is_active": active, "updated_at": time.Now()}).Error
}

func (r *PlanRepository) List(ctx context.Context, activeOnly bool) ([]*domain.MembershipPlan, error) {
	q := r.db.WithContext(ctx).Model(&planModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []planModel
	if err := q.Order("duration_months ASC, price ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.MembershipPlan, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPlan(row))
	}
	return out, nil
}
