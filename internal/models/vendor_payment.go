package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// VendorPayment is one payment made to a vendor. Payments are append-only and
// deletable without side effects; they never touch product or stock state.
type VendorPayment struct {
	ID              uint            `gorm:"primaryKey" json:"id"`
	VendorID        uint            `gorm:"not null;index" json:"vendor_id"`
	Amount          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"amount"`
	PaymentMode     string          `gorm:"not null" json:"payment_mode"`
	ReferenceNumber *string         `json:"reference_number"`
	TransactionID   *string         `json:"transaction_id"`
	Notes           *string         `gorm:"type:text" json:"notes"`
	PaymentDate     time.Time       `gorm:"not null;index" json:"payment_date"`
	CreatedAt       time.Time       `json:"created_at"`

	// Associations
	Vendor Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// TableName specifies the table name for VendorPayment
func (VendorPayment) TableName() string {
	return "vendor_payments"
}

// Payment mode constants
const (
	PaymentModeCash         = "cash"
	PaymentModeUPI          = "upi"
	PaymentModeBankTransfer = "bank_transfer"
	PaymentModeCheque       = "cheque"
	PaymentModeCard         = "card"
	PaymentModeOther        = "other"
)

// ValidPaymentMode reports whether mode is one of the accepted payment modes.
func ValidPaymentMode(mode string) bool {
	switch mode {
	case PaymentModeCash, PaymentModeUPI, PaymentModeBankTransfer,
		PaymentModeCheque, PaymentModeCard, PaymentModeOther:
		return true
	}
	return false
}

// VendorPaymentResponse is the JSON response format for vendor payments.
type VendorPaymentResponse struct {
	ID              uint            `json:"id"`
	VendorID        uint            `json:"vendor_id"`
	Amount          decimal.Decimal `json:"amount"`
	PaymentMode     string          `json:"payment_mode"`
	ReferenceNumber *string         `json:"reference_number"`
	TransactionID   *string         `json:"transaction_id"`
	Notes           *string         `json:"notes"`
	PaymentDate     string          `json:"payment_date"`
}

// ToResponse converts VendorPayment to VendorPaymentResponse with the payment
// date rendered as a calendar day in the store's timezone.
func (p *VendorPayment) ToResponse(loc *time.Location) VendorPaymentResponse {
	return VendorPaymentResponse{
		ID:              p.ID,
		VendorID:        p.VendorID,
		Amount:          p.Amount,
		PaymentMode:     p.PaymentMode,
		ReferenceNumber: p.ReferenceNumber,
		TransactionID:   p.TransactionID,
		Notes:           p.Notes,
		PaymentDate:     p.PaymentDate.In(loc).Format("2006-01-02"),
	}
}
