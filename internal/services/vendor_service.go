package services

import (
	"context"
	"errors"

	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
	"gorm.io/gorm"
)

// VendorService manages the vendor directory.
type VendorService struct {
	repo         repository.VendorRepository
	purchaseRepo repository.PurchaseRepository
	productRepo  repository.ProductRepository
	paymentRepo  repository.PaymentRepository
}

// NewVendorService creates a new vendor service
func NewVendorService(
	repo repository.VendorRepository,
	purchaseRepo repository.PurchaseRepository,
	productRepo repository.ProductRepository,
	paymentRepo repository.PaymentRepository,
) *VendorService {
	return &VendorService{
		repo:         repo,
		purchaseRepo: purchaseRepo,
		productRepo:  productRepo,
		paymentRepo:  paymentRepo,
	}
}

// List returns all vendors ordered by name.
func (s *VendorService) List(ctx context.Context) ([]models.Vendor, error) {
	return s.repo.FindAll(ctx)
}

// ListWithProducts returns vendors that have products assigned directly.
func (s *VendorService) ListWithProducts(ctx context.Context) ([]models.Vendor, error) {
	return s.repo.FindWithProducts(ctx)
}

// Create validates and stores a vendor profile.
func (s *VendorService) Create(ctx context.Context, vendor *models.Vendor) error {
	if vendor.Name == "" {
		return NewValidationError("vendor name required")
	}
	return s.repo.Create(ctx, vendor)
}

// FindByID returns one vendor profile.
func (s *VendorService) FindByID(ctx context.Context, id uint) (*models.Vendor, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return vendor, nil
}

// Update overwrites the vendor profile fields.
func (s *VendorService) Update(ctx context.Context, id uint, updated *models.Vendor) (*models.Vendor, error) {
	vendor, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	vendor.Name = updated.Name
	vendor.Phone = updated.Phone
	vendor.Address = updated.Address
	vendor.GSTNumber = updated.GSTNumber
	vendor.Notes = updated.Notes

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, err
	}
	return vendor, nil
}

// Delete removes a vendor. Refused while purchase history or assigned
// products still reference the vendor; the vendor's payments are removed
// first so the ledger leaves no orphans.
func (s *VendorService) Delete(ctx context.Context, id uint) error {
	hasPurchases, err := s.purchaseRepo.ExistsByVendor(ctx, id)
	if err != nil {
		return err
	}
	if hasPurchases {
		return ErrVendorHasPurchases
	}

	hasProducts, err := s.productRepo.ExistsByVendor(ctx, id)
	if err != nil {
		return err
	}
	if hasProducts {
		return ErrVendorHasProducts
	}

	if err := s.paymentRepo.DeleteByVendor(ctx, id); err != nil {
		return err
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
