package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the full studio schema.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&userModel{},
		&memberModel{},
		&leadModel{},
		&slotModel{},
		&planModel{},
		&subscriptionModel{},
		&invoiceModel{},
		&invoiceItemModel{},
		&paymentModel{},
		&productModel{},
		&trialModel{},
		&settingsModel{},
	)
}
