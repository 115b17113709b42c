package services

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func purchase(qty int, price string) models.Purchase {
	return models.Purchase{Quantity: qty, Price: dec(price)}
}

func payment(amount string) models.VendorPayment {
	return models.VendorPayment{Amount: dec(amount)}
}

func newLedgerService(purchases []models.Purchase, payments []models.VendorPayment) *LedgerService {
	purchaseRepo := &mockPurchaseRepository{
		mockFindByVendor: func(ctx context.Context, vendorID uint) ([]models.Purchase, error) {
			return purchases, nil
		},
	}
	paymentRepo := &mockPaymentRepository{
		mockFindByVendor: func(ctx context.Context, vendorID uint) ([]models.VendorPayment, error) {
			return payments, nil
		},
	}
	return NewLedgerService(purchaseRepo, paymentRepo)
}

func TestGetVendorBalanceDue(t *testing.T) {
	// 3 x 10.00 = 30.00 purchased, 15.00 paid
	svc := newLedgerService(
		[]models.Purchase{purchase(3, "10.00")},
		[]models.VendorPayment{payment("15.00")},
	)

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, balance.TotalPurchases.Equal(dec("30.00")))
	assert.True(t, balance.TotalPayments.Equal(dec("15.00")))
	assert.True(t, balance.OutstandingBalance.Equal(dec("15.00")))
	assert.Equal(t, models.BalanceStatusDue, balance.Status)
}

func TestGetVendorBalanceSettled(t *testing.T) {
	// 2 x 50.00 + 1 x 20.00 = 120.00 purchased, 120.00 paid
	svc := newLedgerService(
		[]models.Purchase{purchase(2, "50.00"), purchase(1, "20.00")},
		[]models.VendorPayment{payment("120.00")},
	)

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, balance.OutstandingBalance.IsZero())
	assert.Equal(t, models.BalanceStatusSettled, balance.Status)
}

func TestGetVendorBalanceAdvance(t *testing.T) {
	// No purchases, 200.00 paid: vendor holds an advance
	svc := newLedgerService(nil, []models.VendorPayment{payment("200.00")})

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, balance.TotalPurchases.IsZero())
	assert.True(t, balance.OutstandingBalance.Equal(dec("-200.00")))
	assert.Equal(t, models.BalanceStatusAdvance, balance.Status)
}

func TestGetVendorBalanceEmptyHistory(t *testing.T) {
	svc := newLedgerService(nil, nil)

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, balance.TotalPurchases.IsZero())
	assert.True(t, balance.TotalPayments.IsZero())
	assert.Equal(t, models.BalanceStatusSettled, balance.Status)
}

func TestGetVendorBalanceExactDecimalArithmetic(t *testing.T) {
	// 0.10 x 3 would drift under binary floats; decimals stay exact
	svc := newLedgerService(
		[]models.Purchase{purchase(1, "0.10"), purchase(1, "0.10"), purchase(1, "0.10")},
		[]models.VendorPayment{payment("0.30")},
	)

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, models.BalanceStatusSettled, balance.Status)
}

func TestGetVendorBalanceOrderIndependent(t *testing.T) {
	purchases := []models.Purchase{purchase(2, "12.50"), purchase(5, "3.00"), purchase(1, "99.99")}
	payments := []models.VendorPayment{payment("40.00"), payment("25.49")}

	reversedPurchases := []models.Purchase{purchases[2], purchases[1], purchases[0]}
	reversedPayments := []models.VendorPayment{payments[1], payments[0]}

	a, err := newLedgerService(purchases, payments).GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)
	b, err := newLedgerService(reversedPurchases, reversedPayments).GetVendorBalance(context.Background(), 1)
	require.NoError(t, err)

	assert.True(t, a.OutstandingBalance.Equal(b.OutstandingBalance))
	assert.Equal(t, a.Status, b.Status)
}

func TestGetVendorBalancePurchaseFetchError(t *testing.T) {
	dbErr := errors.New("connection refused")
	purchaseRepo := &mockPurchaseRepository{
		mockFindByVendor: func(ctx context.Context, vendorID uint) ([]models.Purchase, error) {
			return nil, dbErr
		},
	}
	svc := NewLedgerService(purchaseRepo, &mockPaymentRepository{})

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	assert.Nil(t, balance)
	assert.ErrorIs(t, err, dbErr)
}

func TestGetVendorBalancePaymentFetchError(t *testing.T) {
	dbErr := errors.New("connection refused")
	paymentRepo := &mockPaymentRepository{
		mockFindByVendor: func(ctx context.Context, vendorID uint) ([]models.VendorPayment, error) {
			return nil, dbErr
		},
	}
	svc := NewLedgerService(&mockPurchaseRepository{}, paymentRepo)

	balance, err := svc.GetVendorBalance(context.Background(), 1)
	assert.Nil(t, balance)
	assert.ErrorIs(t, err, dbErr)
}

func TestSumPurchasesMultipliesQuantity(t *testing.T) {
	total := SumPurchases([]models.Purchase{purchase(3, "10.00"), purchase(2, "2.25")})
	assert.True(t, total.Equal(dec("34.50")))
}

func TestSumPaymentsAddsAmounts(t *testing.T) {
	total := SumPayments([]models.VendorPayment{payment("1.10"), payment("2.20"), payment("3.30")})
	assert.True(t, total.Equal(dec("6.60")))
}
