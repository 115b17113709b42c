package services

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
	"github.com/skumar/kirana-api/pkg/clients/catalog"
	"github.com/skumar/kirana-api/pkg/logger"
	"gorm.io/gorm"
)

// CatalogSyncService pulls the remote catalog feed and upserts products by
// barcode. Runs on a schedule and can be triggered manually.
type CatalogSyncService struct {
	client      catalog.Client
	productRepo repository.ProductRepository
}

// NewCatalogSyncService creates a new catalog sync service. client may be
// nil when no catalog URL is configured; SyncOnce then reports a validation
// error.
func NewCatalogSyncService(client catalog.Client, productRepo repository.ProductRepository) *CatalogSyncService {
	return &CatalogSyncService{client: client, productRepo: productRepo}
}

// SyncStats reports the outcome of one sync run.
type SyncStats struct {
	Created int `json:"created"`
	Updated int `json:"updated"`
}

// SyncOnce downloads the catalog and applies it: existing barcodes get
// name/price/stock overwritten with whatever fields the feed carries, new
// barcodes become new products. Rows without a barcode are skipped.
func (s *CatalogSyncService) SyncOnce(ctx context.Context) (*SyncStats, error) {
	if s.client == nil {
		return nil, NewValidationError("no catalog URL configured")
	}

	items, err := s.client.FetchCatalog(ctx)
	if err != nil {
		return nil, err
	}

	stats := &SyncStats{}
	for _, item := range items {
		code := strings.TrimSpace(item.Barcode)
		if code == "" {
			continue
		}

		existing, err := s.productRepo.FindByBarcode(ctx, code)
		switch {
		case err == nil:
			changed := false
			if item.Name != "" && item.Name != existing.Name {
				existing.Name = item.Name
				changed = true
			}
			if item.Price != nil && !item.Price.Equal(existing.Price) {
				existing.Price = *item.Price
				changed = true
			}
			if item.Stock != nil && *item.Stock != existing.Stock {
				existing.Stock = *item.Stock
				changed = true
			}
			if changed {
				if err := s.productRepo.Update(ctx, existing); err != nil {
					return stats, err
				}
				stats.Updated++
			}

		case errors.Is(err, gorm.ErrRecordNotFound):
			name := item.Name
			if name == "" {
				name = "Item " + code
			}
			price := decimal.Zero
			if item.Price != nil {
				price = *item.Price
			}
			stock := 0
			if item.Stock != nil {
				stock = *item.Stock
			}
			barcode := code
			product := &models.Product{
				Name:    name,
				Price:   price,
				Stock:   stock,
				Barcode: &barcode,
				GSTRate: decimal.NewFromInt(18),
			}
			if err := s.productRepo.Create(ctx, product); err != nil {
				return stats, err
			}
			stats.Created++

		default:
			return stats, err
		}
	}

	logger.Info("catalog sync completed", "created", stats.Created, "updated", stats.Updated)
	return stats, nil
}
