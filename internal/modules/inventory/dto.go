package inventory

type CreateProductRequest struct {
	Name              string  `json:"name" binding:"required"`
	SKU               string  `json:"sku"`
	Price             float64 `json:"price" binding:"required,gte=0"`
	CurrentStock      int     `json:"current_stock" binding:"gte=0"`
	LowStockThreshold int     `json:"low_stock_threshold" binding:"gte=0"`
}

type UpdateProductRequest struct {
	Name              string   `json:"name"`
	SKU               string   `json:"sku"`
	Price             *float64 `json:"price"`
	CurrentStock      *int     `json:"current_stock"`
	LowStockThreshold *int     `json:"low_stock_threshold"`
	IsActive          *bool    `json:"is_active"`
}

// SellRequest records an over-the-counter sale. MemberID is optional;
// walk-in buyers leave it empty.
type SellRequest struct {
	Quantity int     `json:"quantity" binding:"required,gte=1"`
	MemberID string  `json:"member_id"`
	Discount float64 `json:"discount" binding:"gte=0"`
	Notes    string  `json:"notes"`
}
