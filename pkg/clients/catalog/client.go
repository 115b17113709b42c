// Package catalog pulls product data from a remote catalog endpoint so the
// local product table can be kept in sync with head-office prices.
package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/shopspring/decimal"
)

// Item is one product row in the remote catalog feed.
type Item struct {
	Barcode string           `json:"barcode"`
	Name    string           `json:"name"`
	Price   *decimal.Decimal `json:"price"`
	Stock   *int             `json:"stock"`
}

// Client fetches the remote catalog.
type Client interface {
	FetchCatalog(ctx context.Context) ([]Item, error)
}

// APIClient is a resty-backed implementation of Client.
type APIClient struct {
	httpClient *resty.Client
	catalogURL string
}

// NewClient builds a catalog client for the given feed URL.
func NewClient(catalogURL string) *APIClient {
	restyClient := resty.New()
	restyClient.
		SetHeader("Accept", "application/json").
		SetTimeout(20 * time.Second)

	return &APIClient{
		httpClient: restyClient,
		catalogURL: catalogURL,
	}
}

// FetchCatalog downloads and decodes the full catalog feed.
func (c *APIClient) FetchCatalog(ctx context.Context) ([]Item, error) {
	var items []Item

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetResult(&items).
		Get(c.catalogURL)
	if err != nil {
		return nil, fmt.Errorf("catalog fetch failed: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("catalog fetch failed: status %d", resp.StatusCode())
	}

	return items, nil
}
