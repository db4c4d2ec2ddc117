package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type PaymentRepository struct {
	db *gorm.DB
}

func NewPaymentRepository(db *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

func (r *PaymentRepository) WithTx(tx *gorm.DB) *PaymentRepository {
	return &PaymentRepository{db: tx}
}

type paymentModel struct {
	ID        string    `gorm:"column:id;primaryKey"`
	InvoiceID string    `gorm:"column:invoice_id;index"`
	Amount    float64   `gorm:"column:amount"`
	Method    string    `gorm:"column:method"`
	PaidAt    time.Time `gorm:"column:paid_at"`
	Reference *string   `gorm:"column:reference"`
	Notes     *string   `gorm:"column:notes;type:text"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (paymentModel) TableName() string { return "payments" }

func toDomainPayment(m paymentModel) *domain.Payment {
	return &domain.Payment{
		ID:        m.ID,
		InvoiceID: m.InvoiceID,
		Amount:    m.Amount,
		Method:    domain.PaymentMethod(m.Method),
		PaidAt:    m.PaidAt,
		Reference: strOrEmpty(m.Reference),
		Notes:     strOrEmpty(m.Notes),
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPaymentModel(d *domain.Payment) paymentModel {
	return paymentModel{
		ID:        d.ID,
		InvoiceID: d.InvoiceID,
		Amount:    d.Amount,
		Method:    string(d.Method),
		PaidAt:    d.PaidAt,
		Reference: strOrNil(d.Reference),
		Notes:     strOrNil(d.Notes),
		CreatedAt: d.CreatedAt,
		UpdatedAt: d.UpdatedAt,
	}
}

func (r *PaymentRepository) Create(ctx context.Context, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := toPaymentModel(p)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPayment(row)
	return nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	var row paymentModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainPayment(row), nil
}

func (r *PaymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	row := toPaymentModel(p)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *PaymentRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Delete(&paymentModel{}, "id = ?", id).Error
}

func (r *PaymentRepository) ListByInvoice(ctx context.Context, invoiceID string) ([]*domain.Payment, error) {
	var rows []paymentModel
	err := r.db.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}

	out := make([]*domain.Payment, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainPayment(row))
	}
	return out, nil
}
