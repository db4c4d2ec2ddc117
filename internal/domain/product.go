package domain

import "time"

// Product is a stock-keeping item sold over the counter (mats, blocks,
// apparel). CurrentStock is decremented on sale.
type Product struct {
	ID                string    `json:"id"`
	Name              string    `json:"name" validate:"required"`
	SKU               string    `json:"sku,omitempty"`
	Price             float64   `json:"price" validate:"gte=0"`
	CurrentStock      int       `json:"current_stock"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	IsActive          bool      `json:"is_active"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

func (p *Product) LowStock() bool {
	return p.CurrentStock <= p.LowStockThreshold
}
