package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Bill is one checkout transaction. Line totals are computed from the product
// price at billing time and frozen on the bill item, so later price edits do
// not rewrite history.
type Bill struct {
	ID            uint            `gorm:"primaryKey" json:"id"`
	ReceiptNumber string          `gorm:"uniqueIndex;not null" json:"receipt_number"`
	Total         decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"total"`
	PaymentMethod string          `gorm:"default:cash" json:"payment_method"`
	CustomerName  *string         `json:"customer_name"`
	CustomerPhone *string         `json:"customer_phone"`
	CreatedAt     time.Time       `gorm:"index" json:"created_at"`

	// Associations
	Items []BillItem `gorm:"foreignKey:BillID" json:"items,omitempty"`
}

// TableName specifies the table name for Bill
func (Bill) TableName() string {
	return "bills"
}

// BillItem is one line on a bill.
type BillItem struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	BillID    uint            `gorm:"not null;index" json:"bill_id"`
	ProductID uint            `gorm:"not null;index" json:"product_id"`
	Quantity  int             `gorm:"not null" json:"quantity"`
	Price     decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	Subtotal  decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"subtotal"`

	// Associations
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for BillItem
func (BillItem) TableName() string {
	return "bill_items"
}

// SalesAnalytics summarizes billed sales over a period.
type SalesAnalytics struct {
	Period              string          `json:"period"`
	TotalTransactions   int             `json:"total_transactions"`
	TotalSales          decimal.Decimal `json:"total_sales"`
	AvgTransactionValue decimal.Decimal `json:"avg_transaction_value"`
	MinTransaction      decimal.Decimal `json:"min_transaction"`
	MaxTransaction      decimal.Decimal `json:"max_transaction"`
}

// DailySales is one day's aggregate for the sales chart.
type DailySales struct {
	Date         string          `json:"date"`
	Transactions int             `json:"transactions"`
	Sales        decimal.Decimal `json:"sales"`
}

// TopProduct is one row of the revenue-ranked product report.
type TopProduct struct {
	Name          string          `json:"name"`
	Barcode       *string         `json:"barcode"`
	TotalQuantity int             `json:"total_quantity"`
	TotalRevenue  decimal.Decimal `json:"total_revenue"`
}

// CustomerHistory groups a customer's bills by name/phone. Anonymous bills
// collapse into a single walk-in bucket.
type CustomerHistory struct {
	CustomerName  string          `json:"customer_name"`
	CustomerPhone string          `json:"customer_phone"`
	TotalBills    int             `json:"total_bills"`
	TotalSpent    decimal.Decimal `json:"total_spent"`
	LastVisit     time.Time       `json:"last_visit"`
	Bills         []Bill          `json:"bills"`
}
