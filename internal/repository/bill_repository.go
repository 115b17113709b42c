package repository

import (
	"context"
	"time"

	"github.com/skumar/kirana-api/internal/models"

	"gorm.io/gorm"
)

// BillRepository defines the interface for bill data access
type BillRepository interface {
	CreateWithItems(ctx context.Context, bill *models.Bill) error
	FindByID(ctx context.Context, id uint) (*models.Bill, error)
	FindRecent(ctx context.Context, limit int) ([]models.Bill, error)
	FindAll(ctx context.Context) ([]models.Bill, error)
	FindSince(ctx context.Context, since time.Time) ([]models.Bill, error)
	TopProductsSince(ctx context.Context, since time.Time, limit int) ([]models.TopProduct, error)
}

type billRepository struct {
	db *gorm.DB
}

// NewBillRepository creates a new bill repository
func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

// CreateWithItems inserts the bill with its line items and decrements each
// product's stock, all in one transaction. Items must already carry their
// frozen price and subtotal.
func (r *billRepository) CreateWithItems(ctx context.Context, bill *models.Bill) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(bill).Error; err != nil {
			return err
		}

		for i := range bill.Items {
			item := &bill.Items[i]

			var product models.Product
			if err := tx.First(&product, item.ProductID).Error; err != nil {
				return err
			}

			if err := tx.Model(&models.Product{}).
				Where("id = ?", item.ProductID).
				UpdateColumn("stock", gorm.Expr("stock - ?", item.Quantity)).Error; err != nil {
				return err
			}
		}

		return nil
	})
}

func (r *billRepository) FindByID(ctx context.Context, id uint) (*models.Bill, error) {
	var bill models.Bill
	err := r.db.WithContext(ctx).
		Preload("Items").
		Preload("Items.Product").
		First(&bill, id).Error
	if err != nil {
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindRecent(ctx context.Context, limit int) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).
		Order("id DESC").
		Limit(limit).
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

func (r *billRepository) FindSince(ctx context.Context, since time.Time) ([]models.Bill, error) {
	var bills []models.Bill
	err := r.db.WithContext(ctx).
		Where("created_at >= ?", since).
		Order("created_at DESC").
		Find(&bills).Error
	return bills, err
}

// TopProductsSince aggregates billed quantity and revenue per product for
// bills created on or after since, ranked by revenue.
func (r *billRepository) TopProductsSince(ctx context.Context, since time.Time, limit int) ([]models.TopProduct, error) {
	var rows []models.TopProduct
	err := r.db.WithContext(ctx).
		Model(&models.BillItem{}).
		Select("products.name AS name, products.barcode AS barcode, SUM(bill_items.quantity) AS total_quantity, SUM(bill_items.subtotal) AS total_revenue").
		Joins("JOIN bills ON bills.id = bill_items.bill_id").
		Joins("JOIN products ON products.id = bill_items.product_id").
		Where("bills.created_at >= ?", since).
		Group("products.id, products.name, products.barcode").
		Order("total_revenue DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
