package services

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
)

// LedgerService derives the outstanding balance for a vendor from the full
// purchase and payment history. Nothing is cached or persisted: every read
// recomputes from scratch, so the answer is either exact or the read failed.
type LedgerService struct {
	purchaseRepo repository.PurchaseRepository
	paymentRepo  repository.PaymentRepository
}

// NewLedgerService creates a new ledger service
func NewLedgerService(purchaseRepo repository.PurchaseRepository, paymentRepo repository.PaymentRepository) *LedgerService {
	return &LedgerService{
		purchaseRepo: purchaseRepo,
		paymentRepo:  paymentRepo,
	}
}

// GetVendorBalance fetches every purchase and payment for the vendor and
// classifies the difference. Both fetches must succeed; no partial result is
// ever returned.
func (s *LedgerService) GetVendorBalance(ctx context.Context, vendorID uint) (*models.VendorBalance, error) {
	purchases, err := s.purchaseRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	payments, err := s.paymentRepo.FindByVendor(ctx, vendorID)
	if err != nil {
		return nil, err
	}

	balance := models.NewVendorBalance(SumPurchases(purchases), SumPayments(payments))
	return &balance, nil
}

// SumPurchases totals quantity × unit price over the given purchases using
// exact decimal arithmetic.
func SumPurchases(purchases []models.Purchase) decimal.Decimal {
	total := decimal.Zero
	for i := range purchases {
		total = total.Add(purchases[i].Total())
	}
	return total
}

// SumPayments totals the amounts of the given payments.
func SumPayments(payments []models.VendorPayment) decimal.Decimal {
	total := decimal.Zero
	for i := range payments {
		total = total.Add(payments[i].Amount)
	}
	return total
}
