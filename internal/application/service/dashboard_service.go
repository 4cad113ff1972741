package service

import (
	"context"

	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/shopspring/decimal"
)

// DashboardService aggregates invoice and catalog figures for the
// dashboard view
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
	productRepo repository.ProductRepository
	userRepo    repository.UserRepository
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	userRepo repository.UserRepository,
) *DashboardService {
	return &DashboardService{
		invoiceRepo: invoiceRepo,
		productRepo: productRepo,
		userRepo:    userRepo,
	}
}

// DashboardStats is the aggregate snapshot shown on the dashboard
type DashboardStats struct {
	TotalInvoices  int64                         `json:"total_invoices"`
	TotalProducts  int64                         `json:"total_products"`
	TotalUsers     int64                         `json:"total_users"`
	TotalRevenue   decimal.Decimal               `json:"total_revenue"`
	MonthlyRevenue decimal.Decimal               `json:"monthly_revenue"`
	PendingAmount  decimal.Decimal               `json:"pending_amount"`
	StatusCounts   map[enum.InvoiceStatus]int64  `json:"status_counts"`
	TopProducts    []repository.TopProductResult `json:"top_products"`
	RecentInvoices []entity.Invoice              `json:"recent_invoices"`
}

// GetStats builds the dashboard aggregate. Revenue counts paid
// invoices; pending covers sent and overdue ones.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	stats := &DashboardStats{
		StatusCounts: map[enum.InvoiceStatus]int64{
			enum.InvoiceStatusDraft:   0,
			enum.InvoiceStatusSent:    0,
			enum.InvoiceStatusPaid:    0,
			enum.InvoiceStatusOverdue: 0,
		},
	}

	var err error
	if stats.TotalInvoices, err = s.invoiceRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalProducts, err = s.productRepo.Count(ctx); err != nil {
		return nil, err
	}
	if stats.TotalUsers, err = s.userRepo.Count(ctx); err != nil {
		return nil, err
	}

	counts, err := s.invoiceRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}
	for _, c := range counts {
		stats.StatusCounts[c.Status] = c.Count
	}

	revenue, err := s.invoiceRepo.GetRevenue(ctx)
	if err != nil {
		return nil, err
	}
	stats.TotalRevenue = revenue.TotalRevenue
	stats.MonthlyRevenue = revenue.MonthlyRevenue
	stats.PendingAmount = revenue.PendingAmount

	top, err := s.invoiceRepo.GetTopProducts(ctx, 5)
	if err != nil {
		return nil, err
	}
	if top == nil {
		top = []repository.TopProductResult{}
	}
	stats.TopProducts = top

	recent, err := s.invoiceRepo.GetRecent(ctx, 5)
	if err != nil {
		return nil, err
	}
	if recent == nil {
		recent = []entity.Invoice{}
	}
	stats.RecentInvoices = recent

	return stats, nil
}
