package repository

import (
	"gorm.io/gorm"
)

// Repositories holds all repository instances
type Repositories struct {
	User     UserRepository
	Vendor   VendorRepository
	Product  ProductRepository
	Purchase PurchaseRepository
	Payment  PaymentRepository
	Bill     BillRepository
}

// NewRepositories creates all repository instances
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		User:     NewUserRepository(db),
		Vendor:   NewVendorRepository(db),
		Product:  NewProductRepository(db),
		Purchase: NewPurchaseRepository(db),
		Payment:  NewPaymentRepository(db),
		Bill:     NewBillRepository(db),
	}
}
