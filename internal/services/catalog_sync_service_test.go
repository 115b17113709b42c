package services

import (
	"context"
	"testing"

	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/pkg/clients/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestSyncOnceRequiresClient(t *testing.T) {
	svc := NewCatalogSyncService(nil, &mockProductRepository{})

	_, err := svc.SyncOnce(context.Background())
	assert.ErrorIs(t, err, ErrValidation)
}

func TestSyncOnceCreatesAndUpdates(t *testing.T) {
	knownPrice := dec("50.00")
	newPrice := dec("55.00")
	stock := 10

	client := &mockCatalogClient{
		mockFetchCatalog: func(ctx context.Context) ([]catalog.Item, error) {
			return []catalog.Item{
				{Barcode: "111", Name: "Oil 1L", Price: &newPrice, Stock: &stock}, // existing, price changed
				{Barcode: "222", Name: "Salt 1kg", Price: &knownPrice},           // new
				{Barcode: "", Name: "No barcode"},                                // skipped
			}, nil
		},
	}

	var updated, created []*models.Product
	repo := &mockProductRepository{
		mockFindByBarcode: func(ctx context.Context, code string) (*models.Product, error) {
			if code == "111" {
				barcode := "111"
				return &models.Product{ID: 1, Name: "Oil 1L", Price: dec("50.00"), Stock: 10, Barcode: &barcode}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
		mockUpdate: func(ctx context.Context, product *models.Product) error {
			updated = append(updated, product)
			return nil
		},
		mockCreate: func(ctx context.Context, product *models.Product) error {
			created = append(created, product)
			return nil
		},
	}

	svc := NewCatalogSyncService(client, repo)
	stats, err := svc.SyncOnce(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, stats.Updated)
	assert.Equal(t, 1, stats.Created)

	require.Len(t, updated, 1)
	assert.True(t, updated[0].Price.Equal(newPrice))

	require.Len(t, created, 1)
	assert.Equal(t, "Salt 1kg", created[0].Name)
	require.NotNil(t, created[0].Barcode)
	assert.Equal(t, "222", *created[0].Barcode)
}

func TestSyncOnceSkipsUnchangedRows(t *testing.T) {
	price := dec("50.00")
	client := &mockCatalogClient{
		mockFetchCatalog: func(ctx context.Context) ([]catalog.Item, error) {
			return []catalog.Item{{Barcode: "111", Name: "Oil 1L", Price: &price}}, nil
		},
	}

	repo := &mockProductRepository{
		mockFindByBarcode: func(ctx context.Context, code string) (*models.Product, error) {
			return &models.Product{ID: 1, Name: "Oil 1L", Price: dec("50.00")}, nil
		},
		mockUpdate: func(ctx context.Context, product *models.Product) error {
			t.Fatal("update should not be called for unchanged rows")
			return nil
		},
	}

	svc := NewCatalogSyncService(client, repo)
	stats, err := svc.SyncOnce(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, stats.Updated)
	assert.Equal(t, 0, stats.Created)
}
