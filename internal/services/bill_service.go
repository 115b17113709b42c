package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/skumar/kirana-api/internal/models"
	"github.com/skumar/kirana-api/internal/repository"
	"gorm.io/gorm"
)

// BillService handles checkout: bill creation with stock decrement, recent
// bill listing, sales analytics and customer history.
type BillService struct {
	repo        repository.BillRepository
	productRepo repository.ProductRepository
}

// NewBillService creates a new bill service
func NewBillService(repo repository.BillRepository, productRepo repository.ProductRepository) *BillService {
	return &BillService{repo: repo, productRepo: productRepo}
}

// BillItemInput is one requested line at checkout.
type BillItemInput struct {
	ProductID uint `json:"productId"`
	Quantity  int  `json:"quantity"`
}

// CreateBillInput is the checkout request.
type CreateBillInput struct {
	Items         []BillItemInput `json:"items"`
	PaymentMethod string          `json:"paymentMethod"`
	CustomerName  *string         `json:"customerName"`
	CustomerPhone *string         `json:"customerPhone"`
}

// Create prices each line from the current product price, freezes the
// subtotals on the bill and decrements stock per item. The bill, its items
// and all stock decrements commit in one transaction; an unknown product id
// fails the whole bill.
func (s *BillService) Create(ctx context.Context, in CreateBillInput) (*models.Bill, error) {
	if len(in.Items) == 0 {
		return nil, NewValidationError("no items to bill")
	}

	paymentMethod := in.PaymentMethod
	if paymentMethod == "" {
		paymentMethod = "cash"
	}

	total := decimal.Zero
	items := make([]models.BillItem, 0, len(in.Items))
	for _, it := range in.Items {
		if it.Quantity <= 0 {
			return nil, NewValidationError("item quantity must be positive")
		}

		product, err := s.productRepo.FindByID(ctx, it.ProductID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, NewValidationError(fmt.Sprintf("invalid product id %d", it.ProductID))
			}
			return nil, err
		}

		subtotal := product.Price.Mul(decimal.NewFromInt(int64(it.Quantity)))
		items = append(items, models.BillItem{
			ProductID: it.ProductID,
			Quantity:  it.Quantity,
			Price:     product.Price,
			Subtotal:  subtotal,
		})
		total = total.Add(subtotal)
	}

	bill := &models.Bill{
		ReceiptNumber: uuid.NewString(),
		Total:         total,
		PaymentMethod: paymentMethod,
		CustomerName:  in.CustomerName,
		CustomerPhone: in.CustomerPhone,
		CreatedAt:     time.Now().UTC(),
		Items:         items,
	}

	if err := s.repo.CreateWithItems(ctx, bill); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	return bill, nil
}

// FindByID returns one bill with its items.
func (s *BillService) FindByID(ctx context.Context, id uint) (*models.Bill, error) {
	bill, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return bill, nil
}

// ListRecent returns the latest bills (newest first).
func (s *BillService) ListRecent(ctx context.Context, limit int) ([]models.Bill, error) {
	if limit <= 0 {
		limit = 50
	}
	return s.repo.FindRecent(ctx, limit)
}

// periodStart maps a named period onto its start time.
func periodStart(period string, now time.Time) time.Time {
	switch period {
	case "week":
		return now.AddDate(0, 0, -7)
	case "month":
		return now.AddDate(0, 0, -30)
	case "year":
		return now.AddDate(0, 0, -365)
	default: // today
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	}
}

// Analytics summarizes billed sales for the named period
// (today/week/month/year).
func (s *BillService) Analytics(ctx context.Context, period string) (*models.SalesAnalytics, error) {
	bills, err := s.repo.FindSince(ctx, periodStart(period, time.Now().UTC()))
	if err != nil {
		return nil, err
	}

	result := &models.SalesAnalytics{
		Period:            period,
		TotalTransactions: len(bills),
	}
	if len(bills) == 0 {
		return result, nil
	}

	min := bills[0].Total
	max := bills[0].Total
	total := decimal.Zero
	for i := range bills {
		t := bills[i].Total
		total = total.Add(t)
		if t.LessThan(min) {
			min = t
		}
		if t.GreaterThan(max) {
			max = t
		}
	}

	result.TotalSales = total
	result.AvgTransactionValue = total.Div(decimal.NewFromInt(int64(len(bills)))).Round(2)
	result.MinTransaction = min
	result.MaxTransaction = max
	return result, nil
}

// DailySales aggregates per-day transaction counts and sales for the last
// days days, most recent day first.
func (s *BillService) DailySales(ctx context.Context, days int) ([]models.DailySales, error) {
	if days <= 0 {
		days = 30
	}

	bills, err := s.repo.FindSince(ctx, time.Now().UTC().AddDate(0, 0, -days))
	if err != nil {
		return nil, err
	}

	grouped := map[string]*models.DailySales{}
	for i := range bills {
		date := bills[i].CreatedAt.Format("2006-01-02")
		day, ok := grouped[date]
		if !ok {
			day = &models.DailySales{Date: date, Sales: decimal.Zero}
			grouped[date] = day
		}
		day.Transactions++
		day.Sales = day.Sales.Add(bills[i].Total)
	}

	result := make([]models.DailySales, 0, len(grouped))
	for _, day := range grouped {
		result = append(result, *day)
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date > result[j].Date
	})
	return result, nil
}

// TopProducts returns the revenue-ranked products for the named period.
func (s *BillService) TopProducts(ctx context.Context, period string, limit int) ([]models.TopProduct, error) {
	if limit <= 0 {
		limit = 10
	}
	return s.repo.TopProductsSince(ctx, periodStart(period, time.Now().UTC()), limit)
}

// CustomerHistory groups all bills by customer name/phone. Bills without
// either land in a single walk-in bucket at the end.
func (s *BillService) CustomerHistory(ctx context.Context) ([]models.CustomerHistory, error) {
	bills, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	named := map[string]*models.CustomerHistory{}
	var order []string
	walkIn := &models.CustomerHistory{CustomerName: "Walk-in Customer", TotalSpent: decimal.Zero}

	for i := range bills {
		b := bills[i]
		name := strings.TrimSpace(deref(b.CustomerName))
		phone := strings.TrimSpace(deref(b.CustomerPhone))

		if name == "" && phone == "" {
			walkIn.TotalBills++
			walkIn.TotalSpent = walkIn.TotalSpent.Add(b.Total)
			if b.CreatedAt.After(walkIn.LastVisit) {
				walkIn.LastVisit = b.CreatedAt
			}
			walkIn.Bills = append(walkIn.Bills, b)
			continue
		}

		key := name + "|" + phone
		entry, ok := named[key]
		if !ok {
			entry = &models.CustomerHistory{
				CustomerName:  name,
				CustomerPhone: phone,
				TotalSpent:    decimal.Zero,
			}
			named[key] = entry
			order = append(order, key)
		}
		entry.TotalBills++
		entry.TotalSpent = entry.TotalSpent.Add(b.Total)
		if b.CreatedAt.After(entry.LastVisit) {
			entry.LastVisit = b.CreatedAt
		}
		entry.Bills = append(entry.Bills, b)
	}

	result := make([]models.CustomerHistory, 0, len(order)+1)
	for _, key := range order {
		result = append(result, *named[key])
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].LastVisit.After(result[j].LastVisit)
	})
	if walkIn.TotalBills > 0 {
		result = append(result, *walkIn)
	}
	return result, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
