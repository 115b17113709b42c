package models

import "time"

// Vendor is a supplier the store buys stock from and pays against a running
// ledger of purchases and payments.
type Vendor struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;index" json:"name"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	GSTNumber *string   `gorm:"column:gst_number" json:"gst_number"`
	Notes     *string   `gorm:"type:text" json:"notes"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name for Vendor
func (Vendor) TableName() string {
	return "vendors"
}

// VendorRef is the compact vendor shape embedded in product and purchase
// responses.
type VendorRef struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

func (v *Vendor) ToRef() VendorRef {
	return VendorRef{ID: v.ID, Name: v.Name}
}
