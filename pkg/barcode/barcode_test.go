package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseEmbeddedPriceFromEAN13(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		wantBase string
		wantRs   string
	}{
		{
			name:     "standard weighed item",
			code:     "2123451250775",
			wantBase: "12345",
			wantRs:   "125.07",
		},
		{
			name:     "price below one rupee",
			code:     "2000010009909",
			wantBase: "00001",
			wantRs:   "0.99",
		},
		{
			name:     "scanner noise stripped before decode",
			code:     "21234*51250775",
			wantBase: "12345",
			wantRs:   "125.07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ParseEmbeddedPriceFromEAN13(tt.code)
			assert.NotNil(t, got)
			assert.Equal(t, tt.wantBase, got.BaseCode)
			assert.Equal(t, tt.wantRs, got.Price.StringFixed(2))
		})
	}
}

func TestParseEmbeddedPriceFromEAN13_Rejects(t *testing.T) {
	cases := map[string]string{
		"wrong prefix":    "1123450125075",
		"too short":       "212345012507",
		"too long":        "21234501250751",
		"regular EAN-13":  "8901030865278",
		"empty":           "",
		"letters only":    "PROD-42",
		"digits stripped": "2-1234-5012-507", // 11 digits after cleanup
	}

	for name, code := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Nil(t, ParseEmbeddedPriceFromEAN13(code))
		})
	}
}
