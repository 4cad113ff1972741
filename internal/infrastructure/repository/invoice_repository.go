package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	domainRepo "github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/pkg/utils"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create assigns the next sequential invoice number and persists the
// invoice with its items in one transaction. The count is taken with
// unscoped so soft-deleted invoices still reserve their numbers.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Unscoped().Model(&entity.Invoice{}).Count(&count).Error; err != nil {
			return err
		}
		invoice.InvoiceNumber = utils.FormatInvoiceNumber(count + 1)
		return tx.Create(invoice).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetByNumber(ctx context.Context, number string) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&invoice, "invoice_number = ?", number).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status enum.InvoiceStatus) error {
	return r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&entity.Invoice{}, "id = ?", id).Error
}

func (r *invoiceRepository) List(ctx context.Context, params *domainRepo.InvoiceFilterParams) ([]entity.Invoice, int64, error) {
	var invoices []entity.Invoice
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Invoice{})

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.Search != "" {
		query = query.Where("invoice_number ILIKE ? OR customer_name ILIKE ?",
			"%"+params.Search+"%", "%"+params.Search+"%")
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoices).Error

	return invoices, total, err
}

func (r *invoiceRepository) ListAll(ctx context.Context, status *enum.InvoiceStatus) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	query := r.db.WithContext(ctx).Model(&entity.Invoice{})
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).Count(&total).Error
	return total, err
}

func (r *invoiceRepository) CountByStatus(ctx context.Context) ([]domainRepo.StatusCountResult, error) {
	var results []domainRepo.StatusCountResult
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("status, COUNT(*) as count").
		Group("status").
		Scan(&results).Error
	return results, err
}

func (r *invoiceRepository) GetRevenue(ctx context.Context) (*domainRepo.RevenueResult, error) {
	result := &domainRepo.RevenueResult{
		TotalRevenue:   decimal.Zero,
		MonthlyRevenue: decimal.Zero,
		PendingAmount:  decimal.Zero,
	}

	var paid decimal.NullDecimal
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", enum.InvoiceStatusPaid).
		Scan(&paid).Error
	if err != nil {
		return nil, err
	}
	if paid.Valid {
		result.TotalRevenue = paid.Decimal
	}

	var monthly decimal.NullDecimal
	err = r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", enum.InvoiceStatusPaid).
		Where("date_trunc('month', invoice_date) = date_trunc('month', CURRENT_DATE)").
		Scan(&monthly).Error
	if err != nil {
		return nil, err
	}
	if monthly.Valid {
		result.MonthlyRevenue = monthly.Decimal
	}

	var pending decimal.NullDecimal
	err = r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Select("COALESCE(SUM(total_amount), 0)").
		Where("status IN ?", []enum.InvoiceStatus{enum.InvoiceStatusSent, enum.InvoiceStatusOverdue}).
		Scan(&pending).Error
	if err != nil {
		return nil, err
	}
	if pending.Valid {
		result.PendingAmount = pending.Decimal
	}

	return result, nil
}

func (r *invoiceRepository) GetRecent(ctx context.Context, limit int) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetTopProducts(ctx context.Context, limit int) ([]domainRepo.TopProductResult, error) {
	var results []domainRepo.TopProductResult
	err := r.db.WithContext(ctx).Model(&entity.InvoiceItem{}).
		Select("product_name, SUM(quantity) as total_quantity, SUM(amount) as total_amount").
		Group("product_name").
		Order("total_amount DESC").
		Limit(limit).
		Scan(&results).Error
	return results, err
}
