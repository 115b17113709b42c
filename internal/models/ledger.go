package models

import "github.com/shopspring/decimal"

// Settlement status constants for a vendor's outstanding balance.
const (
	BalanceStatusDue     = "due"     // money owed to the vendor
	BalanceStatusAdvance = "advance" // vendor was paid more than delivered
	BalanceStatusSettled = "settled" // exactly zero
)

// VendorBalance is the derived ledger view for one vendor. It has no
// persistence: it is recomputed from the full purchase and payment history on
// every read, so it can never go stale.
type VendorBalance struct {
	TotalPurchases     decimal.Decimal `json:"totalPurchases"`
	TotalPayments      decimal.Decimal `json:"totalPayments"`
	OutstandingBalance decimal.Decimal `json:"outstandingBalance"`
	Status             string          `json:"status"`
}

// NewVendorBalance classifies the difference between purchases and payments.
// The comparison is exact decimal arithmetic, so settled means exactly zero.
func NewVendorBalance(totalPurchases, totalPayments decimal.Decimal) VendorBalance {
	balance := totalPurchases.Sub(totalPayments)

	status := BalanceStatusSettled
	switch {
	case balance.Sign() > 0:
		status = BalanceStatusDue
	case balance.Sign() < 0:
		status = BalanceStatusAdvance
	}

	return VendorBalance{
		TotalPurchases:     totalPurchases,
		TotalPayments:      totalPayments,
		OutstandingBalance: balance,
		Status:             status,
	}
}
