package repository

import (
	"context"

	"github.com/skumar/kirana-api/internal/models"

	"gorm.io/gorm"
)

// PurchaseRepository defines the interface for purchase ledger data access.
// Creation and deletion carry the product stock adjustment inside the same
// database transaction so a purchase row and its stock effect never diverge.
type PurchaseRepository interface {
	CreateWithStock(ctx context.Context, purchase *models.Purchase) error
	FindByID(ctx context.Context, id uint) (*models.Purchase, error)
	FindAll(ctx context.Context) ([]models.Purchase, error)
	FindByVendor(ctx context.Context, vendorID uint) ([]models.Purchase, error)
	FindLatestByProductAndVendor(ctx context.Context, productID, vendorID uint) (*models.Purchase, error)
	DeleteWithStock(ctx context.Context, id uint) error
	ExistsByVendor(ctx context.Context, vendorID uint) (bool, error)
	FindVendorsByProduct(ctx context.Context, productID uint) ([]models.Vendor, error)
	FindLatestVendorByProduct(ctx context.Context, productID uint) (*models.Vendor, error)
}

type purchaseRepository struct {
	db *gorm.DB
}

// NewPurchaseRepository creates a new purchase repository
func NewPurchaseRepository(db *gorm.DB) PurchaseRepository {
	return &purchaseRepository{db: db}
}

// CreateWithStock inserts the purchase row and increments the product's stock
// by the purchased quantity in one transaction. Returns
// gorm.ErrRecordNotFound when the product does not exist.
func (r *purchaseRepository) CreateWithStock(ctx context.Context, purchase *models.Purchase) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.Product
		if err := tx.First(&product, purchase.ProductID).Error; err != nil {
			return err
		}

		if err := tx.Create(purchase).Error; err != nil {
			return err
		}

		return tx.Model(&models.Product{}).
			Where("id = ?", purchase.ProductID).
			UpdateColumn("stock", gorm.Expr("stock + ?", purchase.Quantity)).Error
	})
}

func (r *purchaseRepository) FindByID(ctx context.Context, id uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).First(&purchase, id).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

func (r *purchaseRepository) FindAll(ctx context.Context) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Preload("Product").
		Order("purchased_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) FindByVendor(ctx context.Context, vendorID uint) ([]models.Purchase, error) {
	var purchases []models.Purchase
	err := r.db.WithContext(ctx).
		Where("vendor_id = ?", vendorID).
		Order("purchased_at DESC").
		Find(&purchases).Error
	return purchases, err
}

func (r *purchaseRepository) FindLatestByProductAndVendor(ctx context.Context, productID, vendorID uint) (*models.Purchase, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).
		Where("product_id = ? AND vendor_id = ?", productID, vendorID).
		Order("purchased_at DESC").
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase, nil
}

// DeleteWithStock reverses the stock increment of the purchase and removes
// the row, both in one transaction. A second delete of the same id fails with
// gorm.ErrRecordNotFound without touching stock again.
func (r *purchaseRepository) DeleteWithStock(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var purchase models.Purchase
		if err := tx.First(&purchase, id).Error; err != nil {
			return err
		}

		if err := tx.Model(&models.Product{}).
			Where("id = ?", purchase.ProductID).
			UpdateColumn("stock", gorm.Expr("stock - ?", purchase.Quantity)).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Purchase{}, id).Error
	})
}

func (r *purchaseRepository) ExistsByVendor(ctx context.Context, vendorID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("vendor_id = ?", vendorID).
		Limit(1).
		Count(&count).Error
	return count > 0, err
}

// FindVendorsByProduct returns every vendor that has ever supplied the
// product, per the purchase history.
func (r *purchaseRepository) FindVendorsByProduct(ctx context.Context, productID uint) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Distinct("vendors.*").
		Model(&models.Vendor{}).
		Joins("JOIN purchases ON purchases.vendor_id = vendors.id").
		Where("purchases.product_id = ?", productID).
		Find(&vendors).Error
	return vendors, err
}

// FindLatestVendorByProduct returns the vendor of the most recent purchase of
// the product, used as fallback attribution when the product has no direct
// vendor assignment.
func (r *purchaseRepository) FindLatestVendorByProduct(ctx context.Context, productID uint) (*models.Vendor, error) {
	var purchase models.Purchase
	err := r.db.WithContext(ctx).
		Preload("Vendor").
		Where("product_id = ?", productID).
		Order("purchased_at DESC").
		First(&purchase).Error
	if err != nil {
		return nil, err
	}
	return &purchase.Vendor, nil
}
