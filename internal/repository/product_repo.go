package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

type ProductRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) WithTx(tx *gorm.DB) *ProductRepository {
	return &ProductRepository{db: tx}
}

type productModel struct {
	ID                string    `gorm:"column:id;primaryKey"`
	Name              string    `gorm:"column:name"`
	SKU               *string   `gorm:"column:sku"`
	Price             float64   `gorm:"column:price"`
	CurrentStock      int       `gorm:"column:current_stock"`
	LowStockThreshold int       `gorm:"column:low_stock_threshold"`
	IsActive          bool      `gorm:"column:is_active;index"`
	CreatedAt         time.Time `gorm:"column:created_at"`
	UpdatedAt         time.Time `gorm:"column:updated_at"`
}

func (productModel) TableName() string { return "products" }

func toDomainProduct(m productModel) *domain.Product {
	return &domain.Product{
		ID:                m.ID,
		Name:              m.Name,
		SKU:               strOrEmpty(m.SKU),
		Price:             m.Price,
		CurrentStock:      m.CurrentStock,
		LowStockThreshold: m.LowStockThreshold,
		IsActive:          m.IsActive,
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}

func toProductModel(d *domain.Product) productModel {
	return productModel{
		ID:                d.ID,
		Name:              d.Name,
		SKU:               strOrNil(d.SKU),
		Price:             d.Price,
		CurrentStock:      d.CurrentStock,
		LowStockThreshold: d.LowStockThreshold,
		IsActive:          d.IsActive,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func (r *ProductRepository) Create(ctx context.Context, p *domain.Product) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	row := toProductModel(p)
	tx := r.db.WithContext(ctx).Create(&row)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainProduct(row)
	return nil
}

func (r *ProductRepository) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	var row productModel
	tx := r.db.WithContext(ctx).First(&row, "id = ?", id)
	if tx.Error != nil {
		if errors.Is(tx.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, tx.Error
	}
	return toDomainProduct(row), nil
}

func (r *ProductRepository) Update(ctx context.Context, p *domain.Product) error {
	row := toProductModel(p)
	return r.db.WithContext(ctx).Save(&row).Error
}

func (r *ProductRepository) List(ctx context.Context, activeOnly bool) ([]*domain.Product, error) {
	q := r.db.WithContext(ctx).Model(&productModel{})
	if activeOnly {
		q = q.Where("is_active = ?", true)
	}

	var rows []productModel
	if err := q.Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]*domain.Product, 0, len(rows))
	for _, row := range rows {
		out = append(out, toDomainProduct(row))
	}
	return out, nil
}

// DecrementStock atomically reduces stock, failing when fewer than
// quantity units remain.
func (r *ProductRepository) DecrementStock(ctx context.Context, id string, quantity int) error {
	tx := r.db.WithContext(ctx).Model(&productModel{}).
		Where("id = ? AND current_stock >= ?", id, quantity).
		Updates(map[string]any{
			"current_stock": gorm.Expr("current_stock - ?", quantity),
			"updated_at":    time.Now(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("insufficient stock for product %s", id)
	}
	return nil
}
