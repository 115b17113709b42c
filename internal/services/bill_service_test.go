package services

import (
	"context"
	"testing"
	"time"

	"github.com/skumar/kirana-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func billProductRepo() *mockProductRepository {
	return &mockProductRepository{
		mockFindByID: func(ctx context.Context, id uint) (*models.Product, error) {
			switch id {
			case 1:
				return &models.Product{ID: 1, Name: "Biscuits", Price: dec("10.00")}, nil
			case 2:
				return &models.Product{ID: 2, Name: "Soap", Price: dec("35.50")}, nil
			}
			return nil, gorm.ErrRecordNotFound
		},
	}
}

func TestCreateBillPricesFromCatalog(t *testing.T) {
	var stored *models.Bill
	billRepo := &mockBillRepository{
		mockCreateWithItems: func(ctx context.Context, bill *models.Bill) error {
			stored = bill
			return nil
		},
	}
	svc := NewBillService(billRepo, billProductRepo())

	bill, err := svc.Create(context.Background(), CreateBillInput{
		Items: []BillItemInput{
			{ProductID: 1, Quantity: 3},
			{ProductID: 2, Quantity: 1},
		},
	})
	require.NoError(t, err)
	require.NotNil(t, stored)

	// 3 x 10.00 + 1 x 35.50
	assert.True(t, bill.Total.Equal(dec("65.50")))
	assert.Equal(t, "cash", bill.PaymentMethod)
	assert.NotEmpty(t, bill.ReceiptNumber)
	require.Len(t, bill.Items, 2)
	assert.True(t, bill.Items[0].Subtotal.Equal(dec("30.00")))
	assert.True(t, bill.Items[1].Price.Equal(dec("35.50")))
}

func TestCreateBillValidation(t *testing.T) {
	svc := NewBillService(&mockBillRepository{}, billProductRepo())

	_, err := svc.Create(context.Background(), CreateBillInput{})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = svc.Create(context.Background(), CreateBillInput{
		Items: []BillItemInput{{ProductID: 1, Quantity: 0}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateBillUnknownProduct(t *testing.T) {
	svc := NewBillService(&mockBillRepository{}, billProductRepo())

	_, err := svc.Create(context.Background(), CreateBillInput{
		Items: []BillItemInput{{ProductID: 404, Quantity: 1}},
	})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestAnalytics(t *testing.T) {
	billRepo := &mockBillRepository{
		mockFindSince: func(ctx context.Context, since time.Time) ([]models.Bill, error) {
			return []models.Bill{
				{Total: dec("100.00")},
				{Total: dec("50.00")},
				{Total: dec("75.00")},
			}, nil
		},
	}
	svc := NewBillService(billRepo, billProductRepo())

	analytics, err := svc.Analytics(context.Background(), "week")
	require.NoError(t, err)

	assert.Equal(t, 3, analytics.TotalTransactions)
	assert.True(t, analytics.TotalSales.Equal(dec("225.00")))
	assert.True(t, analytics.AvgTransactionValue.Equal(dec("75.00")))
	assert.True(t, analytics.MinTransaction.Equal(dec("50.00")))
	assert.True(t, analytics.MaxTransaction.Equal(dec("100.00")))
}

func TestAnalyticsEmptyPeriod(t *testing.T) {
	svc := NewBillService(&mockBillRepository{}, billProductRepo())

	analytics, err := svc.Analytics(context.Background(), "today")
	require.NoError(t, err)
	assert.Equal(t, 0, analytics.TotalTransactions)
	assert.True(t, analytics.TotalSales.IsZero())
}

func TestDailySalesGroupsByDate(t *testing.T) {
	day1 := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 8, 31, 18, 30, 0, 0, time.UTC)
	billRepo := &mockBillRepository{
		mockFindSince: func(ctx context.Context, since time.Time) ([]models.Bill, error) {
			return []models.Bill{
				{Total: dec("10.00"), CreatedAt: day1},
				{Total: dec("20.00"), CreatedAt: day2},
				{Total: dec("30.00"), CreatedAt: day1},
			}, nil
		},
	}
	svc := NewBillService(billRepo, billProductRepo())

	sales, err := svc.DailySales(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, sales, 2)

	// Most recent day first
	assert.Equal(t, "2026-08-31", sales[0].Date)
	assert.Equal(t, 1, sales[0].Transactions)
	assert.Equal(t, "2026-08-30", sales[1].Date)
	assert.Equal(t, 2, sales[1].Transactions)
	assert.True(t, sales[1].Sales.Equal(dec("40.00")))
}

func TestCustomerHistoryGroupsWalkIns(t *testing.T) {
	name := "Asha"
	phone := "9000000001"
	billRepo := &mockBillRepository{
		mockFindAll: func(ctx context.Context) ([]models.Bill, error) {
			return []models.Bill{
				{Total: dec("10.00"), CustomerName: &name, CustomerPhone: &phone, CreatedAt: time.Now()},
				{Total: dec("5.00"), CreatedAt: time.Now()},
				{Total: dec("20.00"), CustomerName: &name, CustomerPhone: &phone, CreatedAt: time.Now()},
				{Total: dec("2.00"), CreatedAt: time.Now()},
			}, nil
		},
	}
	svc := NewBillService(billRepo, billProductRepo())

	customers, err := svc.CustomerHistory(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	assert.Equal(t, "Asha", customers[0].CustomerName)
	assert.Equal(t, 2, customers[0].TotalBills)
	assert.True(t, customers[0].TotalSpent.Equal(dec("30.00")))

	// Anonymous bills pool into one walk-in bucket at the end
	assert.Equal(t, "Walk-in Customer", customers[1].CustomerName)
	assert.Equal(t, 2, customers[1].TotalBills)
	assert.True(t, customers[1].TotalSpent.Equal(dec("7.00")))
}
