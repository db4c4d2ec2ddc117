package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type InvoiceRepository struct {
	db *gorm.DB
}

func NewInvoiceRepository(db *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: db}
}

func (r *InvoiceRepository) WithTx(tx *gorm.DB) *InvoiceRepository {
	return &InvoiceRepository{db: tx}
}

type invoiceModel struct {
	ID             string    `gorm:"column:id;primaryKey"`
	Number         string    `gorm:"column:number;uniqueIndex"`
	Kind           string    `gorm:"column:kind"`
	MemberID       *string   `gorm:"column:member_id;index"`
	SubscriptionID *string   `gorm:"column:subscription_id;index"`
	Amount         float64   `gorm:"column:amount"`
	Discount       float64   `gorm:"column:discount"`
	TotalAmount    float64   `gorm:"column:total_amount"`
	AmountPaid     float64   `gorm:"column:amount_paid"`
	Status         string    `gorm:"column:status;index"`
	IssueDate      time.Time `gorm:"column:issue_date"`
	Notes          *string   `gorm:"column:notes;type:text"`
	CreatedAt      time.Time `gorm:"column:created_at"`
	UpdatedAt      time.Time `gorm:"column:updated_at"`
}

func (invoiceModel) TableName() string { return "invoices" }

type invoiceItemModel struct {
	ID          string  `gorm:"column:id;primaryKey"`
	InvoiceID   string  `gorm:"column:invoice_id;index"`
	Description string  `gorm:"column:description"`
	Quantity    int     `gorm:"column:quantity"`
	UnitPrice   float64 `gorm:"column:unit_price"`
	LineTotal   float64 `gorm:"column:line_total"`
}

func (invoiceItemModel) TableName() string { return "invoice_items" }

func toDomainInvoice(m invoiceModel, items []invoiceItemModel) *domain.Invoice {
	out := &domain.Invoice{
		ID:             m.ID,
		Number:         m.Number,
		Kind:           domain.InvoiceKind(m.Kind),
		MemberID:       strOrEmpty(m.MemberID),
		SubscriptionID: strOrEmpty(m.SubscriptionID),
		Amount:         m.Amount,
		Discount:       m.Discount,
		TotalAmount:    m.TotalAmount,
		AmountPaid:     m.AmountPaid,
		Status:         domain.InvoiceStatus(m.Status),
		IssueDate:      m.IssueDate,
		Notes:          strOrEmpty(m.Notes),
		CreatedAt:      m.CreatedAt,
		UpdatedAt:      m.UpdatedAt,
	}
	for _, it := range items {
		out.Items = append(out.Items, domain.InvoiceItem{
			ID:          it.ID,
			InvoiceID:   it.InvoiceID,
			Description: it.Description,
			Quantity:    it.Quantity,
			UnitPrice:   it.UnitPrice,
			LineTotal:   it.LineTotal,
		})
	}
	return out
}

func toInvoiceModel(d *domain.Invoice) invoiceModel {
	return invoiceModel{
		ID:             d.ID,
		Number:         d.Number,
		Kind:           string(d.Kind),
		MemberID:       strOrNil(d.MemberID),
		SubscriptionID: strOrNil(d.SubscriptionID),
		Amount:         d.Amount,
		Discount:       d.Discount,
		TotalAmount:    d.TotalAmount,
		AmountPaid:     d.AmountPaid,
		Status:         string(d.Status),
		IssueDate:      d.IssueDate,
		Notes:          strOrNil(d.Notes),
		CreatedAt:      d.CreatedAt,
		UpdatedAt:      d.UpdatedAt,
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv *domain.Invoice) error {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	row := toInvoiceModel(inv)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}

	for i := range inv.Items {
		inv.Items[i].InvoiceID = inv.ID
		if inv.Items[i].ID == "" {
			inv.Items[i].ID = uuid.NewString()
		}
		item := invoiceItemModel{
			ID:          inv.Items[i].ID,
			InvoiceID:   inv.ID,
			Description: inv.Items[i].Description,
			Quantity:    inv.Items[i].Quantity,
			UnitPrice:   inv.Items[i].UnitPrice,
			LineTotal:   inv.Items[i].LineTotal,
		}
		if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
			return err
		}
	}

	inv.CreatedAt = row.CreatedAt
	inv.UpdatedAt = row.UpdatedAt
	return nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (*domain.Invoice, error) {
	var row invoiceModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}

	var items []invoiceItemModel
	if err := r.db.WithContext(ctx).Where("invoice_id = ?", id).Find(&items).Error; err != nil {
		return nil, err
	}
	return toDomainInvoice(row, items), nil
}

// UpdatePaidAmount writes the reconciled paid amount and derived status.
func (r *InvoiceRepository) UpdatePaidAmount(ctx context.Context, id string, amountPaid float64, status domain.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&invoiceModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"amount_paid": amountPaid,
			"status":      string(status),
			"updated_at":  time.Now(),
		}).Error
}

func (r *InvoiceRepository) List(ctx context.Context, status *domain.InvoiceStatus, memberID string, limit, offset int) ([]*domain.Invoice, int64, error) {
	q := r.db.WithContext(ctx).Model(&invoiceModel{})
	if status != nil {
		q = q.Where("status = ?", string(*status))
	}
	if memberID != "" {
		q = q.Where("member_id = ?", memberID)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []invoiceModel
	if err := q.Order("issue_date DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]*domain.Invoice, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainInvoice(row, nil))
	}
	return out, total, nil
}
