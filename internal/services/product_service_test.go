package services

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/pkg/clients/pricing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type mockPricingClient struct {
	mockLookupPrice func(ctx context.Context, barcode string) (*pricing.Suggestion, error)
}

func (m *mockPricingClient) LookupPrice(ctx context.Context, barcode string) (*pricing.Suggestion, error) {
	if m.mockLookupPrice != nil {
		return m.mockLookupPrice(ctx, barcode)
	}
	return nil, nil
}

func TestScanKnownBarcode(t *testing.T) {
	repo := &mockProductRepository{
		mockFindByBarcode: func(ctx context.Context, code string) (*models.Product, error) {
			if code == "8901234567890" {
				return &models.Product{ID: 1, Name: "Atta 1kg", Price: dec("55.00")}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewProductService(repo, &mockPurchaseRepository{}, nil)

	result, err := svc.Scan(context.Background(), "8901234567890")
	require.NoError(t, err)
	require.NotNil(t, result.Product)
	assert.Equal(t, "Atta 1kg", result.Product.Name)
}

func TestScanEmbeddedPriceBarcode(t *testing.T) {
	// Code 2 12345 12507 75: base item 12345 with 125.07 embedded
	repo := &mockProductRepository{
		mockFindByBarcode: func(ctx context.Context, code string) (*models.Product, error) {
			if code == "12345" {
				return &models.Product{ID: 2, Name: "Paneer loose", Price: dec("400.00")}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
	svc := NewProductService(repo, &mockPurchaseRepository{}, nil)

	result, err := svc.Scan(context.Background(), "2123451250775")
	require.NoError(t, err)
	require.NotNil(t, result.Product)
	assert.Equal(t, "Paneer loose", result.Product.Name)
	// The weighed price overrides the catalog price for this scan
	assert.True(t, result.Product.Price.Equal(dec("125.07")))
}

func TestScanUnknownCodeWithRemoteSuggestion(t *testing.T) {
	price := dec("20.00")
	client := &mockPricingClient{
		mockLookupPrice: func(ctx context.Context, barcode string) (*pricing.Suggestion, error) {
			return &pricing.Suggestion{Name: "Maggi Noodles", Price: &price}, nil
		},
	}
	svc := NewProductService(&mockProductRepository{}, &mockPurchaseRepository{}, client)

	result, err := svc.Scan(context.Background(), "8900000000001")
	assert.ErrorIs(t, err, ErrNotFound)
	require.NotNil(t, result)
	require.NotNil(t, result.Suggestion)
	assert.Equal(t, "Maggi Noodles", result.Suggestion.Name)
}

func TestScanUnknownCodeNoSuggestion(t *testing.T) {
	svc := NewProductService(&mockProductRepository{}, &mockPurchaseRepository{}, nil)

	result, err := svc.Scan(context.Background(), "0000000000000")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Nil(t, result)
}

func TestCreateProductValidation(t *testing.T) {
	svc := NewProductService(&mockProductRepository{}, &mockPurchaseRepository{}, nil)

	_, err := svc.Create(context.Background(), CreateProductInput{Name: "No price"})
	assert.ErrorIs(t, err, ErrValidation)

	negative := dec("-1.00")
	_, err = svc.Create(context.Background(), CreateProductInput{Name: "Bad price", Price: &negative})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateProductDefaults(t *testing.T) {
	var stored *models.Product
	repo := &mockProductRepository{
		mockCreate: func(ctx context.Context, product *models.Product) error {
			stored = product
			return nil
		},
	}
	svc := NewProductService(repo, &mockPurchaseRepository{}, nil)

	price := dec("99.00")
	_, err := svc.Create(context.Background(), CreateProductInput{Name: "Ghee 500ml", Price: &price})
	require.NoError(t, err)
	require.NotNil(t, stored)

	assert.True(t, stored.GSTRate.Equal(decimal.NewFromInt(18)))
	assert.False(t, stored.IsGSTExempt)
	assert.Equal(t, 0, stored.Stock)
}

func TestListProductsFallsBackToLatestSupplier(t *testing.T) {
	repo := &mockProductRepository{
		mockFindAll: func(ctx context.Context) ([]models.Product, error) {
			return []models.Product{{ID: 1, Name: "Rice 5kg", Price: dec("350.00")}}, nil
		},
	}
	purchaseRepo := &mockPurchaseRepository{
		mockFindLatestVendorByProduct: func(ctx context.Context, productID uint) (*models.Vendor, error) {
			return &models.Vendor{ID: 4, Name: "Gupta Wholesale"}, nil
		},
		mockFindVendorsByProduct: func(ctx context.Context, productID uint) ([]models.Vendor, error) {
			return []models.Vendor{{ID: 4, Name: "Gupta Wholesale"}, {ID: 9, Name: "Sharma & Sons"}}, nil
		},
	}
	svc := NewProductService(repo, purchaseRepo, nil)

	products, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 1)

	require.NotNil(t, products[0].PrimaryVendor)
	assert.Equal(t, uint(4), products[0].PrimaryVendor.ID)
	assert.Len(t, products[0].AllVendors, 2)
}
