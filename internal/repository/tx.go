package repository

import (
	"context"

	"gorm.io/gorm"
)

// TxManager wraps multi-repository mutations in a single database
// transaction. Services use it for subscription+invoice creation,
// payment reconciliation and stock-decrementing sales.
type TxManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) *TxManager {
	return &TxManager{db: db}
}

// WithinTx runs fn inside one transaction; fn receives the
// transactional handle to pass to repo WithTx clones.
func (m *TxManager) WithinTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return m.db.WithContext(ctx).Transaction(fn)
}
