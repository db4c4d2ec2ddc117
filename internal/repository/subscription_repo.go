package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type SubscriptionRepository struct {
	db *gorm.DB
}

func NewSubscriptionRepository(db *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: db}
}

func (r *SubscriptionRepository) WithTx(tx *gorm.DB) *SubscriptionRepository {
	return &SubscriptionRepository{db: tx}
}

type subscriptionModel struct {
	ID                     string     `gorm:"column:id;primaryKey"`
	MemberID               string     `gorm:"column:member_id;index"`
	PlanID                 string     `gorm:"column:plan_id"`
	SlotID                 string     `gorm:"column:slot_id;index"`
	StartDate              time.Time  `gorm:"column:start_date"`
	EndDate                time.Time  `gorm:"column:end_date"`
	Status                 string     `gorm:"column:status;index"`
	PaymentStatus          string     `gorm:"column:payment_status"`
	DiscountAmount         float64    `gorm:"column:discount_amount"`
	DiscountReason         *string    `gorm:"column:discount_reason"`
	PayableAmount          float64    `gorm:"column:payable_amount"`
	ExtensionDays          int        `gorm:"column:extension_days"`
	ExtensionReason        *string    `gorm:"column:extension_reason"`
	ExtraDays              int        `gorm:"column:extra_days"`
	ExtraDaysReason        *string    `gorm:"column:extra_days_reason"`
	PreviousSubscriptionID *string    `gorm:"column:previous_subscription_id"`
	InvoiceID              *string    `gorm:"column:invoice_id"`
	CancelledAt            *time.Time `gorm:"column:cancelled_at"`
	CancellationReason     *string    `gorm:"column:cancellation_reason"`
	Notes                  *string    `gorm:"column:notes;type:text"`
	CreatedAt              time.Time  `gorm:"column:created_at"`
	UpdatedAt              time.Time  `gorm:"column:updated_at"`
}

func (subscriptionModel) TableName() string { return "subscriptions" }

func toDomainSubscription(m subscriptionModel) *domain.Subscription {
	return &domain.Subscription{
		ID:                     m.ID,
		MemberID:               m.MemberID,
		PlanID:                 m.PlanID,
		SlotID:                 m.SlotID,
		StartDate:              m.StartDate,
		EndDate:                m.EndDate,
		Status:                 domain.SubscriptionStatus(m.Status),
		PaymentStatus:          domain.PaymentStatus(m.PaymentStatus),
		DiscountAmount:         m.DiscountAmount,
		DiscountReason:         strOrEmpty(m.DiscountReason),
		PayableAmount:          m.PayableAmount,
		ExtensionDays:          m.ExtensionDays,
		ExtensionReason:        strOrEmpty(m.ExtensionReason),
		ExtraDays:              m.ExtraDays,
		ExtraDaysReason:        strOrEmpty(m.ExtraDaysReason),
		PreviousSubscriptionID: strOrEmpty(m.PreviousSubscriptionID),
		InvoiceID:              strOrEmpty(m.InvoiceID),
		CancelledAt:            m.CancelledAt,
		CancellationReason:     strOrEmpty(m.CancellationReason),
		Notes:                  strOrEmpty(m.Notes),
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}

func toSubscriptionModel(d *domain.Subscription) subscriptionModel {
	return subscriptionModel{
		ID:                     d.ID,
		MemberID:               d.MemberID,
		PlanID:                 d.PlanID,
		SlotID:                 d.SlotID,
		StartDate:              d.StartDate,
		EndDate:                d.EndDate,
		Status:                 string(d.Status),
		PaymentStatus:          string(d.PaymentStatus),
		DiscountAmount:         d.DiscountAmount,
		DiscountReason:         strOrNil(d.DiscountReason),
		PayableAmount:          d.PayableAmount,
		ExtensionDays:          d.ExtensionDays,
		ExtensionReason:        strOrNil(d.ExtensionReason),
		ExtraDays:              d.ExtraDays,
		ExtraDaysReason:        strOrNil(d.ExtraDaysReason),
		PreviousSubscriptionID: strOrNil(d.PreviousSubscriptionID),
		InvoiceID:              strOrNil(d.InvoiceID),
		CancelledAt:            d.CancelledAt,
		CancellationReason:     strOrNil(d.CancellationReason),
		Notes:                  strOrNil(d.Notes),
		CreatedAt:              d.CreatedAt,
		UpdatedAt:              d.UpdatedAt,
	}
}

func (r *SubscriptionRepository) Create(ctx context.Context, s *domain.Subscription) error {
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	row := toSubscriptionModel(s)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*s = *toDomainSubscription(row)
	return nil
}

func (r *SubscriptionRepository) GetByID(ctx context.Context, id string) (*domain.Subscription, error) {
	var row subscriptionModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainSubscription(row), nil
}

func (r *SubscriptionRepository) Update(ctx context.Context, s *domain.Subscription) error {
	row := toSubscriptionModel(s)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *SubscriptionRepository) ListByMember(ctx context.Context, memberID string) ([]*domain.Subscription, error) {
	var rows []subscriptionModel
	err := r.db.WithContext(ctx).
		Where("member_id = ?", memberID).
		Order("start_date DESC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Subscription, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainSubscription(row))
	}
	return out, nil
}

// CountOverlapping counts non-cancelled subscriptions in the slot whose
// date range intersects [start, end], endpoints included.
func (r *SubscriptionRepository) CountOverlapping(ctx context.Context, slotID string, start, end time.Time) (int, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM subscriptions
WHERE slot_id = ?
  AND status <> 'cancelled'
  AND start_date <= ?
  AND end_date >= ?
`
	tx := r.db.WithContext(ctx).Raw(q, slotID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(cnt), nil
}

// CountOverlappingExcluding is CountOverlapping minus one specific
// subscription, used when a subscription moves between slots.
func (r *SubscriptionRepository) CountOverlappingExcluding(ctx context.Context, slotID string, start, end time.Time, excludeID string) (int, error) {
	var cnt int64
	q := `
SELECT COUNT(1)
FROM subscriptions
WHERE slot_id = ?
  AND id <> ?
  AND status <> 'cancelled'
  AND start_date <= ?
  AND end_date >= ?
`
	tx := r.db.WithContext(ctx).Raw(q, slotID, excludeID, end, start).Scan(&cnt)
	if tx.Error != nil {
		return 0, tx.Error
	}
	return int(cnt), nil
}

func (r *SubscriptionRepository) ListAll(ctx context.Context) ([]*domain.Subscription, error) {
	var rows []subscriptionModel
	if err := r.db.WithContext(ctx).Order("start_date DESC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Subscription, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainSubscription(row))
	}
	return out, nil
}
