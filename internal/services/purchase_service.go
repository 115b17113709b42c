package services

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
	"gorm.io/gorm"
)

// PurchaseService records vendor deliveries. Every delivery is a fresh row;
// same-day purchases of the same product from the same vendor are never
// merged.
type PurchaseService struct {
	repo repository.PurchaseRepository
}

// NewPurchaseService creates a new purchase service
func NewPurchaseService(repo repository.PurchaseRepository) *PurchaseService {
	return &PurchaseService{repo: repo}
}

// CreatePurchaseInput carries the fields of a delivery event.
type CreatePurchaseInput struct {
	VendorID  uint            `json:"vendor_id"`
	ProductID uint            `json:"product_id"`
	Quantity  int             `json:"quantity"`
	Price     decimal.Decimal `json:"price"`
}

// Create validates the input, stamps the purchase and appends it. The
// product's stock is incremented in the same transaction.
func (s *PurchaseService) Create(ctx context.Context, in CreatePurchaseInput) (*models.Purchase, error) {
	if in.VendorID == 0 || in.ProductID == 0 {
		return nil, NewValidationError("vendor_id and product_id are required")
	}
	if in.Quantity <= 0 {
		return nil, NewValidationError("quantity must be a positive integer")
	}
	if in.Price.Sign() <= 0 {
		return nil, NewValidationError("price must be positive")
	}

	purchase := &models.Purchase{
		VendorID:    in.VendorID,
		ProductID:   in.ProductID,
		Quantity:    in.Quantity,
		Price:       in.Price,
		PurchasedAt: time.Now().UTC(),
	}

	if err := s.repo.CreateWithStock(ctx, purchase); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return purchase, nil
}

// List returns all purchases, newest first, with vendor/product display
// fields preloaded.
func (s *PurchaseService) List(ctx context.Context) ([]models.Purchase, error) {
	return s.repo.FindAll(ctx)
}

// FindLatestByProductAndVendor returns the most recent purchase for a
// product/vendor pair, or ErrNotFound when the pair has no history.
func (s *PurchaseService) FindLatestByProductAndVendor(ctx context.Context, productID, vendorID uint) (*models.Purchase, error) {
	purchase, err := s.repo.FindLatestByProductAndVendor(ctx, productID, vendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return purchase, nil
}

// Delete removes a purchase and reverses exactly its stock increment. The
// two effects commit atomically, so retrying a failed delete cannot
// double-reverse stock, and deleting the same id twice fails with
// ErrNotFound.
func (s *PurchaseService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.DeleteWithStock(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
