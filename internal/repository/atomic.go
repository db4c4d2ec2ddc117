package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

// AtomicStore groups the multi-entity mutations that must commit or
// roll back together: subscription+invoice creation, payment
// reconciliation against its invoice, and stock-decrementing sales.
type AtomicStore struct {
	tx *TxManager
}

func NewAtomicStore(db *gorm.DB) *AtomicStore {
	return &AtomicStore{tx: NewTxManager(db)}
}

// ErrSettingsMissing is returned when invoice numbering is requested
// before the settings singleton has been initialized.
var ErrSettingsMissing = errors.New("studio settings not initialized")

func stampInvoiceNumber(ctx context.Context, tx *gorm.DB, inv *domain.Invoice) error {
	if inv.Number != "" {
		return nil
	}

	settings := NewSettingsRepository(tx)
	s, _, err := settings.Get(ctx)
	if err != nil {
		return err
	}
	if s == nil {
		return ErrSettingsMissing
	}

	n, err := settings.IncrementInvoiceNumber(ctx, s.ID)
	if err != nil {
		return err
	}
	inv.Number = fmt.Sprintf("%s%04d", s.InvoicePrefix, n)
	return nil
}

// CreateSubscriptionWithInvoice persists the subscription, its invoice
// (numbered from the settings sequence) and the member's slot
// assignment in one transaction.
func (s *AtomicStore) CreateSubscriptionWithInvoice(ctx context.Context, sub *domain.Subscription, inv *domain.Invoice) error {
	return s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := stampInvoiceNumber(ctx, tx, inv); err != nil {
			return err
		}

		if err := NewInvoiceRepository(tx).Create(ctx, inv); err != nil {
			return err
		}

		sub.InvoiceID = inv.ID
		if err := NewSubscriptionRepository(tx).Create(ctx, sub); err != nil {
			return err
		}

		inv.SubscriptionID = sub.ID
		if err := tx.WithContext(ctx).Model(&invoiceModel{}).
			Where("id = ?", inv.ID).
			Update("subscription_id", sub.ID).Error; err != nil {
			return err
		}

		return NewMemberRepository(tx).UpdateAssignedSlot(ctx, sub.MemberID, sub.SlotID)
	})
}

// SavePaymentAndInvoice writes a created or edited payment together
// with the reconciled invoice figures.
func (s *AtomicStore) SavePaymentAndInvoice(ctx context.Context, p *domain.Payment, isNew bool, invoiceID string, amountPaid float64, status domain.InvoiceStatus) error {
	return s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		payments := NewPaymentRepository(tx)
		var err error
		if isNew {
			err = payments.Create(ctx, p)
		} else {
			err = payments.Update(ctx, p)
		}
		if err != nil {
			return err
		}
		return NewInvoiceRepository(tx).UpdatePaidAmount(ctx, invoiceID, amountPaid, status)
	})
}

// DeletePaymentAndInvoice removes a payment and writes the reconciled
// invoice figures in the same transaction.
func (s *AtomicStore) DeletePaymentAndInvoice(ctx context.Context, paymentID, invoiceID string, amountPaid float64, status domain.InvoiceStatus) error {
	return s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := NewPaymentRepository(tx).Delete(ctx, paymentID); err != nil {
			return err
		}
		return NewInvoiceRepository(tx).UpdatePaidAmount(ctx, invoiceID, amountPaid, status)
	})
}

// UpdateSubscriptionAndAssignment saves a slot transfer together with
// the member's new slot assignment.
func (s *AtomicStore) UpdateSubscriptionAndAssignment(ctx context.Context, sub *domain.Subscription) error {
	return s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := NewSubscriptionRepository(tx).Update(ctx, sub); err != nil {
			return err
		}
		return NewMemberRepository(tx).UpdateAssignedSlot(ctx, sub.MemberID, sub.SlotID)
	})
}

// SellProduct decrements stock and creates the sale invoice atomically.
func (s *AtomicStore) SellProduct(ctx context.Context, productID string, quantity int, inv *domain.Invoice) error {
	return s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		if err := NewProductRepository(tx).DecrementStock(ctx, productID, quantity); err != nil {
			return err
		}
		if err := stampInvoiceNumber(ctx, tx, inv); err != nil {
			return err
		}
		return NewInvoiceRepository(tx).Create(ctx, inv)
	})
}

// RestoreBackup replaces the full entity set in one transaction.
func (s *AtomicStore) RestoreBackup(ctx context.Context, b *domain.Backup) error {
	return s.tx.WithinTx(ctx, func(tx *gorm.DB) error {
		return NewBackupRepository(tx).Restore(ctx, b)
	})
}
