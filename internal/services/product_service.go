package services

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
	"github.com/skumar/kirana-api/pkg/barcode"
	"github.com/skumar/kirana-api/pkg/clients/pricing"
	"github.com/skumar/kirana-api/pkg/logger"
	"gorm.io/gorm"
)

// ProductService manages the product catalog and barcode scanning.
type ProductService struct {
	repo          repository.ProductRepository
	purchaseRepo  repository.PurchaseRepository
	pricingClient pricing.Client
}

// NewProductService creates a new product service. pricingClient may be nil
// when no remote price API is configured.
func NewProductService(repo repository.ProductRepository, purchaseRepo repository.PurchaseRepository, pricingClient pricing.Client) *ProductService {
	return &ProductService{
		repo:          repo,
		purchaseRepo:  purchaseRepo,
		pricingClient: pricingClient,
	}
}

// List returns all products with vendor attribution: the directly assigned
// vendor when present, otherwise the vendor of the most recent purchase,
// plus every vendor that has ever supplied the product.
func (s *ProductService) List(ctx context.Context) ([]models.ProductResponse, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]models.ProductResponse, 0, len(products))
	for i := range products {
		p := &products[i]
		resp := p.ToResponse()

		if p.Vendor != nil {
			ref := p.Vendor.ToRef()
			resp.PrimaryVendor = &ref
		} else {
			latest, err := s.purchaseRepo.FindLatestVendorByProduct(ctx, p.ID)
			if err == nil && latest.ID != 0 {
				ref := latest.ToRef()
				resp.PrimaryVendor = &ref
			}
		}

		suppliers, err := s.purchaseRepo.FindVendorsByProduct(ctx, p.ID)
		if err != nil {
			logger.Warn("failed to load suppliers for product", "product_id", p.ID, "error", err)
		}
		for j := range suppliers {
			resp.AllVendors = append(resp.AllVendors, suppliers[j].ToRef())
		}

		responses = append(responses, resp)
	}

	return responses, nil
}

// CreateProductInput carries the writable product fields.
type CreateProductInput struct {
	Name           string           `json:"name"`
	Price          *decimal.Decimal `json:"price"`
	WholesalePrice *decimal.Decimal `json:"wholesale_price"`
	Stock          *int             `json:"stock"`
	Barcode        *string          `json:"barcode"`
	VendorID       *uint            `json:"vendor_id"`
	GSTRate        *decimal.Decimal `json:"gst_rate"`
	IsGSTExempt    *bool            `json:"is_gst_exempt"`
}

// Create validates and stores a product.
func (s *ProductService) Create(ctx context.Context, in CreateProductInput) (*models.Product, error) {
	if in.Name == "" || in.Price == nil {
		return nil, NewValidationError("name and price are required")
	}
	if in.Price.Sign() < 0 {
		return nil, NewValidationError("price must not be negative")
	}

	product := &models.Product{
		Name:        in.Name,
		Price:       *in.Price,
		Barcode:     in.Barcode,
		VendorID:    in.VendorID,
		GSTRate:     decimal.NewFromInt(18),
		IsGSTExempt: false,
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.GSTRate != nil {
		product.GSTRate = *in.GSTRate
	}
	if in.IsGSTExempt != nil {
		product.IsGSTExempt = *in.IsGSTExempt
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// FindByID returns one product.
func (s *ProductService) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	product, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return product, nil
}

// Update applies the provided fields to an existing product.
func (s *ProductService) Update(ctx context.Context, id uint, in CreateProductInput) (*models.Product, error) {
	product, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		product.Name = in.Name
	}
	if in.Price != nil {
		product.Price = *in.Price
	}
	if in.WholesalePrice != nil {
		product.WholesalePrice = *in.WholesalePrice
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	if in.Barcode != nil {
		product.Barcode = in.Barcode
	}
	if in.VendorID != nil {
		product.VendorID = in.VendorID
	}
	if in.GSTRate != nil {
		product.GSTRate = *in.GSTRate
	}
	if in.IsGSTExempt != nil {
		product.IsGSTExempt = *in.IsGSTExempt
	}

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

// Delete removes a product.
func (s *ProductService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// ScanSuggestion is offered when a scanned code is unknown locally but a
// remote source knows something about it.
type ScanSuggestion struct {
	Barcode string           `json:"barcode"`
	Name    string           `json:"name,omitempty"`
	Price   *decimal.Decimal `json:"price,omitempty"`
}

// ScanResult is the outcome of scanning a code at the counter.
type ScanResult struct {
	Product    *models.Product
	Suggestion *ScanSuggestion
}

// Scan resolves a scanned code to a product. Unknown codes are retried as
// variable-weight EAN-13 (the embedded price overrides the catalog price for
// this scan only), then against the remote price API as a suggestion.
func (s *ProductService) Scan(ctx context.Context, code string) (*ScanResult, error) {
	product, err := s.repo.FindByBarcode(ctx, code)
	if err == nil {
		return &ScanResult{Product: product}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	if parsed := barcode.ParseEmbeddedPriceFromEAN13(code); parsed != nil {
		product, err := s.repo.FindByBarcode(ctx, parsed.BaseCode)
		if err == nil {
			product.Price = parsed.Price
			return &ScanResult{Product: product}, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if s.pricingClient != nil {
		suggestion, err := s.pricingClient.LookupPrice(ctx, code)
		if err != nil {
			logger.Warn("remote price lookup failed", "barcode", code, "error", err)
		} else if suggestion != nil {
			return &ScanResult{Suggestion: &ScanSuggestion{
				Barcode: code,
				Name:    suggestion.Name,
				Price:   suggestion.Price,
			}}, ErrNotFound
		}
	}

	return nil, ErrNotFound
}
