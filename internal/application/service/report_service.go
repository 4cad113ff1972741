package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/pkg/apperror"
	"github.com/xuri/excelize/v2"
)

// ReportService exports invoice data as spreadsheets
type ReportService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewReportService creates a new report service
func NewReportService(invoiceRepo repository.InvoiceRepository) *ReportService {
	return &ReportService{invoiceRepo: invoiceRepo}
}

// ExportInvoicesXLSX writes all invoices, optionally filtered by
// status, into a single-sheet XLSX workbook.
func (s *ReportService) ExportInvoicesXLSX(ctx context.Context, status *enum.InvoiceStatus) ([]byte, error) {
	if status != nil && !status.IsValid() {
		return nil, apperror.NewBadRequestError("Invalid status filter")
	}

	invoices, err := s.invoiceRepo.ListAll(ctx, status)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Invoices"
	f.SetSheetName(f.GetSheetName(0), sheet)

	headers := []string{"Invoice No", "Date", "Due Date", "Customer", "Status", "Subtotal", "Tax Rate %", "Tax Amount", "Total"}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	for row, inv := range invoices {
		due := ""
		if inv.DueDate != nil {
			due = inv.DueDate.Format("2006-01-02")
		}
		values := []interface{}{
			inv.InvoiceNumber,
			inv.InvoiceDate.Format("2006-01-02"),
			due,
			inv.Customer.Name,
			string(inv.Status),
			inv.Subtotal.InexactFloat64(),
			inv.TaxRate.InexactFloat64(),
			inv.TaxAmount.InexactFloat64(),
			inv.TotalAmount.InexactFloat64(),
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}
