package handler

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/invoiceapp/invoice-api/internal/application/service"
	"github.com/invoiceapp/invoice-api/internal/domain/entity"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/internal/domain/repository"
	"github.com/invoiceapp/invoice-api/internal/presentation/http/dto/request"
	"github.com/invoiceapp/invoice-api/internal/presentation/http/dto/response"
	"github.com/invoiceapp/invoice-api/pkg/document"
	"github.com/invoiceapp/invoice-api/pkg/pagination"
)

// InvoiceHandler handles invoice-related HTTP requests
type InvoiceHandler struct {
	invoiceService  *service.InvoiceService
	documentService *service.DocumentService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService, documentService *service.DocumentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService:  invoiceService,
		documentService: documentService,
	}
}

// Create handles invoice creation
func (h *InvoiceHandler) Create(c *gin.Context) {
	userID := GetUserID(c)
	if userID == nil {
		response.Unauthorized(c, "User not authenticated")
		return
	}

	var req request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	input := &service.CreateInvoiceInput{
		Customer: entity.Customer{
			Name:    req.Customer.Name,
			Email:   req.Customer.Email,
			Phone:   req.Customer.Phone,
			Address: req.Customer.Address,
			City:    req.Customer.City,
			State:   req.Customer.State,
			Pincode: req.Customer.Pincode,
		},
		TaxRate:     req.TaxRate,
		Notes:       req.Notes,
		InvoiceDate: req.InvoiceDate,
		DueDate:     req.DueDate,
		CreatedByID: *userID,
	}
	for _, it := range req.Items {
		input.Items = append(input.Items, service.InvoiceItemInput{
			ProductID:   it.ProductID,
			ProductName: it.ProductName,
			Description: it.Description,
			Quantity:    it.Quantity,
			Rate:        it.Rate,
		})
	}
	if req.BankDetails != nil {
		input.BankDetails = &entity.BankDetails{
			BankName:      req.BankDetails.BankName,
			AccountNumber: req.BankDetails.AccountNumber,
			IFSCCode:      req.BankDetails.IFSCCode,
			AccountHolder: req.BankDetails.AccountHolder,
		}
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", invoice)
}

// List handles listing invoices
func (h *InvoiceHandler) List(c *gin.Context) {
	var filter request.InvoiceFilterRequest
	if err := c.ShouldBindQuery(&filter); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}

	params := &repository.InvoiceFilterParams{
		Pagination: &pagination.PaginationParams{
			Page:    filter.Page,
			PerPage: filter.PerPage,
		},
		Search: filter.Search,
	}
	if filter.Status != "" {
		status := enum.InvoiceStatus(filter.Status)
		params.Status = &status
	}

	invoices, meta, err := h.invoiceService.ListInvoices(c.Request.Context(), params)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.SuccessWithPagination(c, 200, "Invoices retrieved successfully",
		pagination.NewPaginatedResult(invoices, meta))
}

// Get handles retrieving a single invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// UpdateStatus handles invoice status transitions
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	status := c.Query("status")
	if status == "" {
		response.BadRequest(c, "status query parameter is required")
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, enum.InvoiceStatus(status))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", invoice)
}

// Delete handles draft invoice deletion
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.NoContent(c)
}

// Document handles rendering the invoice as an HTML document. The mode
// query switches between the on-screen and printable layout.
func (h *InvoiceHandler) Document(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	mode := document.ModeScreen
	if c.DefaultQuery("mode", "screen") == "print" {
		mode = document.ModePrint
	}

	html, err := h.documentService.RenderHTML(c.Request.Context(), id, mode)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Data(200, "text/html; charset=utf-8", html)
}

// PDF handles rendering the invoice as a downloadable PDF
func (h *InvoiceHandler) PDF(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	pdf, invoiceNumber, err := h.documentService.RenderPDF(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoiceNumber))
	c.Data(200, "application/pdf", pdf)
}

// Email handles the invoice delivery placeholder
func (h *InvoiceHandler) Email(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	msg, err := h.invoiceService.EmailInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, msg, nil)
}
