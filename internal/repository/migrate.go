package repository

import "gorm.io/gorm"

// AutoMigrate creates or updates the schema for every table the
// repositories use. The gorm models are private to this package, so
// callers migrate through here.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&employeeModel{},
		&workOrderModel{},
		&invoiceModel{},
		&invoiceItemModel{},
		&expenseModel{},
	)
}
