// Package pricing looks up unknown barcodes against an optional remote price
// API. Used only to suggest name/price when a scanned code is not in the
// local product table.
package pricing

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Suggestion is the remote API's answer for a barcode.
type Suggestion struct {
	Name  string           `json:"name"`
	Price *decimal.Decimal `json:"price"`
}

// Client resolves barcodes to price suggestions.
type Client interface {
	LookupPrice(ctx context.Context, barcode string) (*Suggestion, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
}

// NewClient builds a pricing client. baseURL must accept a ?barcode= query
// and return JSON {name?, price?}.
func NewClient(baseURL string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetBaseURL(baseURL).
		SetHeader("Accept", "application/json").
		SetTimeout(10 * time.Second)

	return &APIClient{httpClient: restyClient}
}

// LookupPrice queries the remote API. A miss (error status, empty body) is
// returned as nil without an error so scan flows can fall through quietly.
func (c *APIClient) LookupPrice(ctx context.Context, barcode string) (*Suggestion, error) {
	var suggestion Suggestion

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParam("barcode", barcode).
		SetResult(&suggestion).
		Get("")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, nil
	}
	if suggestion.Name == "" && suggestion.Price == nil {
		return nil, nil
	}

	return &suggestion, nil
}
