package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/pkg/apperror"
	"github.com/invoiceapp/invoice-api/pkg/document"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeProfileRepo is an in-memory BusinessProfileRepository
type fakeProfileRepo struct {
	profile *entity.BusinessProfile
}

func (f *fakeProfileRepo) Get(_ context.Context) (*entity.BusinessProfile, error) {
	return f.profile, nil
}

func (f *fakeProfileRepo) Upsert(_ context.Context, profile *entity.BusinessProfile) error {
	f.profile = profile
	return nil
}

func newDocumentService() (*DocumentService, *fakeInvoiceRepo) {
	repo := newFakeInvoiceRepo()
	return NewDocumentService(repo, &fakeProfileRepo{}), repo
}

func TestRenderPDFReturnsInvoiceNumber(t *testing.T) {
	docSvc, repo := newDocumentService()
	ctx := context.Background()

	inv, err := NewInvoiceService(repo).CreateInvoice(ctx, validInput())
	require.NoError(t, err)

	pdf, invoiceNumber, err := docSvc.RenderPDF(ctx, inv.ID)
	require.NoError(t, err)

	assert.Equal(t, inv.InvoiceNumber, invoiceNumber)
	require.NotEmpty(t, pdf)
	assert.True(t, strings.HasPrefix(string(pdf), "%PDF"))
}

func TestRenderPDFUnknownInvoice(t *testing.T) {
	docSvc, _ := newDocumentService()

	_, _, err := docSvc.RenderPDF(context.Background(), uuid.New())
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestRenderHTMLWithoutProfile(t *testing.T) {
	docSvc, repo := newDocumentService()
	ctx := context.Background()

	inv, err := NewInvoiceService(repo).CreateInvoice(ctx, validInput())
	require.NoError(t, err)

	html, err := docSvc.RenderHTML(ctx, inv.ID, document.ModeScreen)
	require.NoError(t, err)

	assert.Contains(t, string(html), inv.InvoiceNumber)
	assert.Contains(t, string(html), "Acme Traders")
}
