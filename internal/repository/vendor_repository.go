package repository

import (
	"context"

	"github.com/skumar/kirana-api/internal/models"

	"gorm.io/gorm"
)

// VendorRepository defines the interface for vendor data access
type VendorRepository interface {
	Create(ctx context.Context, vendor *models.Vendor) error
	FindByID(ctx context.Context, id uint) (*models.Vendor, error)
	FindAll(ctx context.Context) ([]models.Vendor, error)
	FindWithProducts(ctx context.Context) ([]models.Vendor, error)
	Update(ctx context.Context, vendor *models.Vendor) error
	Delete(ctx context.Context, id uint) error
}

type vendorRepository struct {
	db *gorm.DB
}

// NewVendorRepository creates a new vendor repository
func NewVendorRepository(db *gorm.DB) VendorRepository {
	return &vendorRepository{db: db}
}

func (r *vendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Create(vendor).Error
}

func (r *vendorRepository) FindByID(ctx context.Context, id uint) (*models.Vendor, error) {
	var vendor models.Vendor
	err := r.db.WithContext(ctx).First(&vendor, id).Error
	if err != nil {
		return nil, err
	}
	return &vendor, nil
}

func (r *vendorRepository) FindAll(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).Order("name ASC").Find(&vendors).Error
	return vendors, err
}

// FindWithProducts returns only vendors that have products assigned directly
// via products.vendor_id.
func (r *vendorRepository) FindWithProducts(ctx context.Context) ([]models.Vendor, error) {
	var vendors []models.Vendor
	err := r.db.WithContext(ctx).
		Distinct("vendors.*").
		Joins("JOIN products ON products.vendor_id = vendors.id").
		Order("vendors.name ASC").
		Find(&vendors).Error
	return vendors, err
}

func (r *vendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	return r.db.WithContext(ctx).Save(vendor).Error
}

func (r *vendorRepository) Delete(ctx context.Context, id uint) error {
	res := r.db.WithContext(ctx).Delete(&models.Vendor{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
