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

// PaymentService records payments made to vendors. Payments only ever touch
// the payment table: deleting one has no side effects on stock or products.
type PaymentService struct {
	repo repository.PaymentRepository
}

// NewPaymentService creates a new vendor payment service
func NewPaymentService(repo repository.PaymentRepository) *PaymentService {
	return &PaymentService{repo: repo}
}

// CreatePaymentInput carries the fields of a vendor payment.
type CreatePaymentInput struct {
	Amount          decimal.Decimal `json:"amount"`
	PaymentMode     string          `json:"payment_mode"`
	ReferenceNumber *string         `json:"reference_number"`
	TransactionID   *string         `json:"transaction_id"`
	Notes           *string         `json:"notes"`
	PaymentDate     *time.Time      `json:"payment_date"`
}

// Create validates and appends a payment for the vendor. The payment date
// defaults to now when omitted.
func (s *PaymentService) Create(ctx context.Context, vendorID uint, in CreatePaymentInput) (*models.VendorPayment, error) {
	if vendorID == 0 {
		return nil, NewValidationError("vendor_id is required")
	}
	if in.Amount.Sign() <= 0 {
		return nil, NewValidationError("amount must be a positive number")
	}
	if in.PaymentMode == "" {
		in.PaymentMode = models.PaymentModeCash
	}
	if !models.ValidPaymentMode(in.PaymentMode) {
		return nil, NewValidationError("invalid payment mode")
	}

	paymentDate := time.Now().UTC()
	if in.PaymentDate != nil {
		paymentDate = *in.PaymentDate
	}

	payment := &models.VendorPayment{
		VendorID:        vendorID,
		Amount:          in.Amount,
		PaymentMode:     in.PaymentMode,
		ReferenceNumber: in.ReferenceNumber,
		TransactionID:   in.TransactionID,
		Notes:           in.Notes,
		PaymentDate:     paymentDate,
	}

	if err := s.repo.Create(ctx, payment); err != nil {
		return nil, err
	}

	return payment, nil
}

// ListByVendor returns the vendor's payments, newest first.
func (s *PaymentService) ListByVendor(ctx context.Context, vendorID uint) ([]models.VendorPayment, error) {
	return s.repo.FindByVendor(ctx, vendorID)
}

// List returns all payments across vendors, newest first.
func (s *PaymentService) List(ctx context.Context) ([]models.VendorPayment, error) {
	return s.repo.FindAll(ctx)
}

// Delete removes a payment unconditionally; fails with ErrNotFound when the
// id does not exist.
func (s *PaymentService) Delete(ctx context.Context, id uint) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
