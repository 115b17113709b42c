package services

import (
	"context"
	"time"

	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/pkg/clients/catalog"
	"gorm.io/gorm"
)

// Hand-rolled repository mocks. Each method delegates to an optional func
// field; unset methods return zero values.

type mockPurchaseRepository struct {
	mockCreateWithStock              func(ctx context.Context, purchase *models.Purchase) error
	mockFindByID                     func(ctx context.Context, id uint) (*models.Purchase, error)
	mockFindAll                      func(ctx context.Context) ([]models.Purchase, error)
	mockFindByVendor                 func(ctx context.Context, vendorID uint) ([]models.Purchase, error)
	mockFindLatestByProductAndVendor func(ctx context.Context, productID, vendorID uint) (*models.Purchase, error)
	mockDeleteWithStock              func(ctx context.Context, id uint) error
	mockExistsByVendor               func(ctx context.Context, vendorID uint) (bool, error)
	mockFindVendorsByProduct         func(ctx context.Context, productID uint) ([]models.Vendor, error)
	mockFindLatestVendorByProduct    func(ctx context.Context, productID uint) (*models.Vendor, error)
}

func (m *mockPurchaseRepository) CreateWithStock(ctx context.Context, purchase *models.Purchase) error {
	if m.mockCreateWithStock != nil {
		return m.mockCreateWithStock(ctx, purchase)
	}
	return nil
}

func (m *mockPurchaseRepository) FindByID(ctx context.Context, id uint) (*models.Purchase, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPurchaseRepository) FindAll(ctx context.Context) ([]models.Purchase, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) FindByVendor(ctx context.Context, vendorID uint) ([]models.Purchase, error) {
	if m.mockFindByVendor != nil {
		return m.mockFindByVendor(ctx, vendorID)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) FindLatestByProductAndVendor(ctx context.Context, productID, vendorID uint) (*models.Purchase, error) {
	if m.mockFindLatestByProductAndVendor != nil {
		return m.mockFindLatestByProductAndVendor(ctx, productID, vendorID)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockPurchaseRepository) DeleteWithStock(ctx context.Context, id uint) error {
	if m.mockDeleteWithStock != nil {
		return m.mockDeleteWithStock(ctx, id)
	}
	return nil
}

func (m *mockPurchaseRepository) ExistsByVendor(ctx context.Context, vendorID uint) (bool, error) {
	if m.mockExistsByVendor != nil {
		return m.mockExistsByVendor(ctx, vendorID)
	}
	return false, nil
}

func (m *mockPurchaseRepository) FindVendorsByProduct(ctx context.Context, productID uint) ([]models.Vendor, error) {
	if m.mockFindVendorsByProduct != nil {
		return m.mockFindVendorsByProduct(ctx, productID)
	}
	return nil, nil
}

func (m *mockPurchaseRepository) FindLatestVendorByProduct(ctx context.Context, productID uint) (*models.Vendor, error) {
	if m.mockFindLatestVendorByProduct != nil {
		return m.mockFindLatestVendorByProduct(ctx, productID)
	}
	return nil, gorm.ErrRecordNotFound
}

type mockPaymentRepository struct {
	mockCreate         func(ctx context.Context, payment *models.VendorPayment) error
	mockFindByVendor   func(ctx context.Context, vendorID uint) ([]models.VendorPayment, error)
	mockFindAll        func(ctx context.Context) ([]models.VendorPayment, error)
	mockDelete         func(ctx context.Context, id uint) error
	mockDeleteByVendor func(ctx context.Context, vendorID uint) error
}

func (m *mockPaymentRepository) Create(ctx context.Context, payment *models.VendorPayment) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, payment)
	}
	return nil
}

func (m *mockPaymentRepository) FindByVendor(ctx context.Context, vendorID uint) ([]models.VendorPayment, error) {
	if m.mockFindByVendor != nil {
		return m.mockFindByVendor(ctx, vendorID)
	}
	return nil, nil
}

func (m *mockPaymentRepository) FindAll(ctx context.Context) ([]models.VendorPayment, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx)
	}
	return nil, nil
}

func (m *mockPaymentRepository) Delete(ctx context.Context, id uint) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, id)
	}
	return nil
}

func (m *mockPaymentRepository) DeleteByVendor(ctx context.Context, vendorID uint) error {
	if m.mockDeleteByVendor != nil {
		return m.mockDeleteByVendor(ctx, vendorID)
	}
	return nil
}

type mockProductRepository struct {
	mockCreate         func(ctx context.Context, product *models.Product) error
	mockFindByID       func(ctx context.Context, id uint) (*models.Product, error)
	mockFindByBarcode  func(ctx context.Context, barcode string) (*models.Product, error)
	mockFindAll        func(ctx context.Context) ([]models.Product, error)
	mockUpdate         func(ctx context.Context, product *models.Product) error
	mockDelete         func(ctx context.Context, id uint) error
	mockExistsByVendor func(ctx context.Context, vendorID uint) (bool, error)
}

func (m *mockProductRepository) Create(ctx context.Context, product *models.Product) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*models.Product, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) FindByBarcode(ctx context.Context, barcode string) (*models.Product, error) {
	if m.mockFindByBarcode != nil {
		return m.mockFindByBarcode(ctx, barcode)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProductRepository) FindAll(ctx context.Context) ([]models.Product, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx)
	}
	return nil, nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *models.Product) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, product)
	}
	return nil
}

func (m *mockProductRepository) Delete(ctx context.Context, id uint) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, id)
	}
	return nil
}

func (m *mockProductRepository) ExistsByVendor(ctx context.Context, vendorID uint) (bool, error) {
	if m.mockExistsByVendor != nil {
		return m.mockExistsByVendor(ctx, vendorID)
	}
	return false, nil
}

type mockVendorRepository struct {
	mockCreate           func(ctx context.Context, vendor *models.Vendor) error
	mockFindByID         func(ctx context.Context, id uint) (*models.Vendor, error)
	mockFindAll          func(ctx context.Context) ([]models.Vendor, error)
	mockFindWithProducts func(ctx context.Context) ([]models.Vendor, error)
	mockUpdate           func(ctx context.Context, vendor *models.Vendor) error
	mockDelete           func(ctx context.Context, id uint) error
}

func (m *mockVendorRepository) Create(ctx context.Context, vendor *models.Vendor) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, vendor)
	}
	return nil
}

func (m *mockVendorRepository) FindByID(ctx context.Context, id uint) (*models.Vendor, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockVendorRepository) FindAll(ctx context.Context) ([]models.Vendor, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx)
	}
	return nil, nil
}

func (m *mockVendorRepository) FindWithProducts(ctx context.Context) ([]models.Vendor, error) {
	if m.mockFindWithProducts != nil {
		return m.mockFindWithProducts(ctx)
	}
	return nil, nil
}

func (m *mockVendorRepository) Update(ctx context.Context, vendor *models.Vendor) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, vendor)
	}
	return nil
}

func (m *mockVendorRepository) Delete(ctx context.Context, id uint) error {
	if m.mockDelete != nil {
		return m.mockDelete(ctx, id)
	}
	return nil
}

type mockBillRepository struct {
	mockCreateWithItems  func(ctx context.Context, bill *models.Bill) error
	mockFindByID         func(ctx context.Context, id uint) (*models.Bill, error)
	mockFindRecent       func(ctx context.Context, limit int) ([]models.Bill, error)
	mockFindAll          func(ctx context.Context) ([]models.Bill, error)
	mockFindSince        func(ctx context.Context, since time.Time) ([]models.Bill, error)
	mockTopProductsSince func(ctx context.Context, since time.Time, limit int) ([]models.TopProduct, error)
}

func (m *mockBillRepository) CreateWithItems(ctx context.Context, bill *models.Bill) error {
	if m.mockCreateWithItems != nil {
		return m.mockCreateWithItems(ctx, bill)
	}
	return nil
}

func (m *mockBillRepository) FindByID(ctx context.Context, id uint) (*models.Bill, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBillRepository) FindRecent(ctx context.Context, limit int) ([]models.Bill, error) {
	if m.mockFindRecent != nil {
		return m.mockFindRecent(ctx, limit)
	}
	return nil, nil
}

func (m *mockBillRepository) FindAll(ctx context.Context) ([]models.Bill, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx)
	}
	return nil, nil
}

func (m *mockBillRepository) FindSince(ctx context.Context, since time.Time) ([]models.Bill, error) {
	if m.mockFindSince != nil {
		return m.mockFindSince(ctx, since)
	}
	return nil, nil
}

func (m *mockBillRepository) TopProductsSince(ctx context.Context, since time.Time, limit int) ([]models.TopProduct, error) {
	if m.mockTopProductsSince != nil {
		return m.mockTopProductsSince(ctx, since, limit)
	}
	return nil, nil
}

type mockUserRepository struct {
	mockCreate         func(ctx context.Context, user *models.User) error
	mockFindByID       func(ctx context.Context, id uint) (*models.User, error)
	mockFindByUsername func(ctx context.Context, username string) (*models.User, error)
	mockFindAll        func(ctx context.Context) ([]models.User, error)
	mockUpdate         func(ctx context.Context, user *models.User) error
}

func (m *mockUserRepository) Create(ctx context.Context, user *models.User) error {
	if m.mockCreate != nil {
		return m.mockCreate(ctx, user)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if m.mockFindByID != nil {
		return m.mockFindByID(ctx, id)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if m.mockFindByUsername != nil {
		return m.mockFindByUsername(ctx, username)
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepository) FindAll(ctx context.Context) ([]models.User, error) {
	if m.mockFindAll != nil {
		return m.mockFindAll(ctx)
	}
	return nil, nil
}

func (m *mockUserRepository) Update(ctx context.Context, user *models.User) error {
	if m.mockUpdate != nil {
		return m.mockUpdate(ctx, user)
	}
	return nil
}

type mockCatalogClient struct {
	mockFetchCatalog func(ctx context.Context) ([]catalog.Item, error)
}

func (m *mockCatalogClient) FetchCatalog(ctx context.Context) ([]catalog.Item, error) {
	if m.mockFetchCatalog != nil {
		return m.mockFetchCatalog(ctx)
	}
	return nil, nil
}
