package services

import (
	"github.com/skumar/kirana-api/internal/config"
	"github.com/skumar/kirana-api/internal/repository"
	"github.com/skumar/kirana-api/pkg/clients/catalog"
	"github.com/skumar/kirana-api/pkg/clients/pricing"
)

// Services holds all service instances
type Services struct {
	Auth        *AuthService
	User        *UserService
	Vendor      *VendorService
	Product     *ProductService
	Purchase    *PurchaseService
	Payment     *PaymentService
	Ledger      *LedgerService
	Bill        *BillService
	Receipt     *ReceiptService
	Export      *ExportService
	CatalogSync *CatalogSyncService
}

// NewServices creates all service instances
func NewServices(repos *repository.Repositories, cfg *config.Config) *Services {
	var pricingClient pricing.Client
	if cfg.RemotePriceAPI != "" {
		pricingClient = pricing.NewClient(cfg.RemotePriceAPI)
	}

	var catalogClient catalog.Client
	if cfg.CatalogURL != "" {
		catalogClient = catalog.NewClient(cfg.CatalogURL)
	}

	loc := cfg.Location()
	billSvc := NewBillService(repos.Bill, repos.Product)

	return &Services{
		Auth:        NewAuthService(repos.User, cfg),
		User:        NewUserService(repos.User),
		Vendor:      NewVendorService(repos.Vendor, repos.Purchase, repos.Product, repos.Payment),
		Product:     NewProductService(repos.Product, repos.Purchase, pricingClient),
		Purchase:    NewPurchaseService(repos.Purchase),
		Payment:     NewPaymentService(repos.Payment),
		Ledger:      NewLedgerService(repos.Purchase, repos.Payment),
		Bill:        billSvc,
		Receipt:     NewReceiptService(billSvc, "Kirana POS", loc),
		Export:      NewExportService(repos.Purchase, repos.Bill, billSvc, loc),
		CatalogSync: NewCatalogSyncService(catalogClient, repos.Product),
	}
}
