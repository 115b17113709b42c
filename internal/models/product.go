package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a sellable item. Stock moves up on vendor purchases and down on
// billed sales; both adjustments commit in the same transaction as the record
// that caused them.
type Product struct {
	ID             uint            `gorm:"primaryKey" json:"id"`
	Name           string          `gorm:"not null;index" json:"name"`
	Price          decimal.Decimal `gorm:"type:decimal(12,2);not null" json:"price"`
	WholesalePrice decimal.Decimal `gorm:"type:decimal(12,2);default:0" json:"wholesale_price"`
	Stock          int             `gorm:"not null;default:0" json:"stock"`
	Barcode        *string         `gorm:"uniqueIndex" json:"barcode"`
	VendorID       *uint           `gorm:"index" json:"vendor_id"`
	GSTRate        decimal.Decimal `gorm:"column:gst_rate;type:decimal(5,2);default:18" json:"gst_rate"`
	IsGSTExempt    bool            `gorm:"column:is_gst_exempt;default:false" json:"is_gst_exempt"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	// Associations
	Vendor *Vendor `gorm:"foreignKey:VendorID" json:"vendor,omitempty"`
}

// TableName specifies the table name for Product
func (Product) TableName() string {
	return "products"
}

// ProductResponse is the JSON response format for products, including the
// vendor attribution derived from direct assignment and purchase history.
type ProductResponse struct {
	ID             uint            `json:"id"`
	Name           string          `json:"name"`
	Price          decimal.Decimal `json:"price"`
	WholesalePrice decimal.Decimal `json:"wholesale_price"`
	Stock          int             `json:"stock"`
	Barcode        *string         `json:"barcode"`
	VendorID       *uint           `json:"vendor_id"`
	GSTRate        decimal.Decimal `json:"gst_rate"`
	IsGSTExempt    bool            `json:"is_gst_exempt"`
	PrimaryVendor  *VendorRef      `json:"primary_vendor"`
	AllVendors     []VendorRef     `json:"all_vendors"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// ToResponse converts Product to ProductResponse. Vendor attribution is
// filled in by the service layer.
func (p *Product) ToResponse() ProductResponse {
	return ProductResponse{
		ID:             p.ID,
		Name:           p.Name,
		Price:          p.Price,
		WholesalePrice: p.WholesalePrice,
		Stock:          p.Stock,
		Barcode:        p.Barcode,
		VendorID:       p.VendorID,
		GSTRate:        p.GSTRate,
		IsGSTExempt:    p.IsGSTExempt,
		AllVendors:     []VendorRef{},
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}
