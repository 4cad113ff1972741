package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/pkg/apperror"
	"github.com/invoiceapp/invoice-api/pkg/document"
)

// DocumentService produces printable invoice documents
type DocumentService struct {
	invoiceRepo repository.InvoiceRepository
	profileRepo repository.BusinessProfileRepository
}

// NewDocumentService creates a new document service
func NewDocumentService(
	invoiceRepo repository.InvoiceRepository,
	profileRepo repository.BusinessProfileRepository,
) *DocumentService {
	return &DocumentService{
		invoiceRepo: invoiceRepo,
		profileRepo: profileRepo,
	}
}

// RenderHTML renders the invoice document as HTML in the given mode.
// The profile may be missing; its fields then render blank.
func (s *DocumentService) RenderHTML(ctx context.Context, invoiceID uuid.UUID, mode document.Mode) ([]byte, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	return document.RenderHTML(invoice, profile, mode)
}

// RenderPDF renders the invoice document as a PDF stream and returns
// it with the invoice number for the download filename. An empty
// payload is treated as a rendering failure.
func (s *DocumentService) RenderPDF(ctx context.Context, invoiceID uuid.UUID) ([]byte, string, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, "", err
	}
	if invoice == nil {
		return nil, "", apperror.NewNotFoundError("Invoice")
	}

	profile, err := s.profileRepo.Get(ctx)
	if err != nil {
		return nil, "", err
	}

	pdf, err := document.RenderPDF(invoice, profile)
	if err != nil {
		return nil, "", err
	}
	if len(pdf) == 0 {
		return nil, "", apperror.NewAppError(500, "PDF rendering produced an empty document")
	}
	return pdf, invoice.InvoiceNumber, nil
}
