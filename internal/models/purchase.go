package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Purchase is one delivery of a product from a vendor. Records are never
// merged or updated: every delivery is its own row so daily purchases stay
// individually auditable. The only mutation path is delete, which reverses
// the stock increment applied at creation.
type Purchase struct {
	ID          uint            `gorm:"primaryKey" json:"id"`
	VendorID    uint            `gorm:"not null;index" json:"vendor_id"`
	ProductID   uint            `gorm:"not null;index" json:"product_id"`
	Quantity    int             `gorm:"not null" json:"quantity"`
	Price       decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	PurchasedAt time.Time       `gorm:"not null;index" json:"purchased_at"`
	CreatedAt   time.Time       `json:"created_at"`

	// Associations
	Vendor  Vendor  `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// TableName specifies the table name for Purchase
func (Purchase) TableName() string {
	return "purchases"
}

// Total is the ledger contribution of this record (quantity × unit price).
func (p *Purchase) Total() decimal.Decimal {
	return p.Price.Mul(decimal.NewFromInt(int64(p.Quantity)))
}

// PurchaseResponse is the JSON response format for purchases, joined with the
// vendor and product display fields.
type PurchaseResponse struct {
	ID          uint            `json:"id"`
	VendorID    uint            `json:"vendor_id"`
	ProductID   uint            `json:"product_id"`
	Quantity    int             `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	PurchasedAt string          `json:"purchased_at"`
	VendorName  string          `json:"vendor_name,omitempty"`
	ProductName string          `json:"product_name,omitempty"`
	Barcode     *string         `json:"barcode,omitempty"`
}

// ToResponse converts Purchase to PurchaseResponse. The purchase date is
// rendered as a calendar day in the store's timezone.
func (p *Purchase) ToResponse(loc *time.Location) PurchaseResponse {
	resp := PurchaseResponse{
		ID:          p.ID,
		VendorID:    p.VendorID,
		ProductID:   p.ProductID,
		Quantity:    p.Quantity,
		Price:       p.Price,
		PurchasedAt: p.PurchasedAt.In(loc).Format("2006-01-02"),
	}
	if p.Vendor.ID != 0 {
		resp.VendorName = p.Vendor.Name
	}
	if p.Product.ID != 0 {
		resp.ProductName = p.Product.Name
		resp.Barcode = p.Product.Barcode
	}
	return resp
}
