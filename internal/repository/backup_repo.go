package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"yogastudio/internal/domain"
)

// BackupRepository exports and restores the whole entity set. Restore
// wipes and reloads every table inside the caller's transaction.
type BackupRepository struct {
	db *gorm.DB
}

func NewBackupRepository(db *gorm.DB) *BackupRepository {
	return &BackupRepository{db: db}
}

func (r *BackupRepository) WithTx(tx *gorm.DB) *BackupRepository {
	return &BackupRepository{db: tx}
}

func (r *BackupRepository) Export(ctx context.Context) (*domain.Backup, error) {
	out := &domain.Backup{ExportedAt: time.Now()}

	var members []memberModel
	if err := r.db.WithContext(ctx).Find(&members).Error; err != nil {
		return nil, err
	}
	for _, m := range members {
		out.Members = append(out.Members, toDomainMember(m))
	}

	var leads []leadModel
	if err := r.db.WithContext(ctx).Find(&leads).Error; err != nil {
		return nil, err
	}
	for _, m := range leads {
		out.Leads = append(out.Leads, toDomainLead(m))
	}

	var slots []slotModel
	if err := r.db.WithContext(ctx).Find(&slots).Error; err != nil {
		return nil, err
	}
	for _, m := range slots {
		out.Slots = append(out.Slots, toDomainSlot(m))
	}

	var plans []planModel
	if err := r.db.WithContext(ctx).Find(&plans).Error; err != nil {
		return nil, err
	}
	for _, m := range plans {
		out.Plans = append(out.Plans, toDomainPlan(m))
	}

	var subs []subscriptionModel
	if err := r.db.WithContext(ctx).Find(&subs).Error; err != nil {
		return nil, err
	}
	for _, m := range subs {
		out.Subscriptions = append(out.Subscriptions, toDomainSubscription(m))
	}

	var invoices []invoiceModel
	if err := r.db.WithContext(ctx).Find(&invoices).Error; err != nil {
		return nil, err
	}
	for _, m := range invoices {
		var items []invoiceItemModel
		if err := r.db.WithContext(ctx).Where("invoice_id = ?", m.ID).Find(&items).Error; err != nil {
			return nil, err
		}
		out.Invoices = append(out.Invoices, toDomainInvoice(m, items))
	}

	var payments []paymentModel
	if err := r.db.WithContext(ctx).Find(&payments).Error; err != nil {
		return nil, err
	}
	for _, m := range payments {
		out.Payments = append(out.Payments, toDomainPayment(m))
	}

	var products []productModel
	if err := r.db.WithContext(ctx).Find(&products).Error; err != nil {
		return nil, err
	}
	for _, m := range products {
		out.Products = append(out.Products, toDomainProduct(m))
	}

	var trials []trialModel
	if err := r.db.WithContext(ctx).Find(&trials).Error; err != nil {
		return nil, err
	}
	for _, m := range trials {
		out.Trials = append(out.Trials, toDomainTrial(m))
	}

	var settings settingsModel
	if err := r.db.WithContext(ctx).First(&settings).Error; err == nil {
		s, err := toDomainSettings(settings)
		if err != nil {
			return nil, err
		}
		out.Settings = s
	}

	return out, nil
}

// Restore replaces all data tables with the backup's contents. Must run
// inside a transaction; users (logins) are deliberately untouched.
func (r *BackupRepository) Restore(ctx context.Context, b *domain.Backup) error {
	tables := []string{
		"payments", "invoice_items", "invoices", "subscriptions",
		"trial_bookings", "members", "leads", "session_slots",
		"membership_plans", "products", "studio_settings",
	}
	for _, t := range tables {
		if err := r.db.WithContext(ctx).Exec("DELETE FROM " + t).Error; err != nil {
			return err
		}
	}

	for _, m := range b.Plans {
		row := toPlanModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Slots {
		row := toSlotModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Members {
		row := toMemberModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Leads {
		row := toLeadModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Subscriptions {
		row := toSubscriptionModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Invoices {
		row := toInvoiceModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
		for _, it := range m.Items {
			item := invoiceItemModel{
				ID:          it.ID,
				InvoiceID:   m.ID,
				Description: it.Description,
				Quantity:    it.Quantity,
				UnitPrice:   it.UnitPrice,
				LineTotal:   it.LineTotal,
			}
			if err := r.db.WithContext(ctx).Create(&item).Error; err != nil {
				return err
			}
		}
	}
	for _, m := range b.Payments {
		row := toPaymentModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Products {
		row := toProductModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	for _, m := range b.Trials {
		row := toTrialModel(m)
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}
	if b.Settings != nil {
		row, err := toSettingsModel(b.Settings)
		if err != nil {
			return err
		}
		if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
			return err
		}
	}

	return nil
}
