// Package barcode decodes retailer variable-weight EAN-13 codes that embed a
// price in the barcode itself (in-store scales and label printers emit these).
package barcode

import (
	"strings"

	"github.com/shopspring/decimal"
)

// EmbeddedPrice is the result of decoding a price-embedded EAN-13 code.
type EmbeddedPrice struct {
	// BaseCode is the 5-digit item code the product is registered under.
	BaseCode string
	// Price is the embedded sale price, already scaled to rupees.
	Price decimal.Decimal
}

// ParseEmbeddedPriceFromEAN13 interprets a 13-digit code whose first digit is
// '2' as 2 + [item:5] + [price:5] + [check:1], where the price field carries
// two implied decimals. Returns nil when the code does not match the pattern.
func ParseEmbeddedPriceFromEAN13(code string) *EmbeddedPrice {
	var b strings.Builder
	for _, r := range code {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()

	if len(digits) != 13 || digits[0] != '2' {
		return nil
	}

	priceField := digits[6:11]
	price, err := decimal.NewFromString(priceField)
	if err != nil {
		return nil
	}

	return &EmbeddedPrice{
		BaseCode: digits[1:6],
		Price:    price.Shift(-2),
	}
}
