package repository

import (
	"context"

	"github.com/skumar/kirana-api/internal/models"

	"gorm.io/gorm"
)

// PaymentRepository defines the interface for vendor payment data access
type PaymentRepository interface {
	Create(ctx context.Context, payment *models.VendorPayment) error
	FindByVendor(ctx context.Context, vendorID uint) ([]models.VendorPayment, error)
	FindAll(ctx context.Context) ([]models.VendorPayment, error)
	Delete(ctx context.Context, id uint) error
	DeleteByVendor(ctx context.Context, vendorID uint) error
}

type paymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new vendor payment repository
func NewPaymentRepository(db *gorm.DB) PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *models.VendorPayment) error {
	return r.db.WithContext(ctx).Create(payment).Error
}

func (r *paymentRepository) FindByVendor(ctx context.Context, vendorID uint) ([]models.VendorPayment, error) {
	var payments []models.VendorPayment
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]models.VendorPayment, error) {
	var payments []models.VendorPayment
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Order("payment_date DESC").
		Find(&payments).Error
	return payments, err
}

func (r *paymentRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.VendorPayment{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// DeleteByVendor removes all payments for a vendor (used when deleting the
// vendor itself).
func (r *paymentRepository) DeleteByVendor(ctx context.Context, vendorID uint) error {
	return r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Delete(&models.VendorPayment{}).Error
}
