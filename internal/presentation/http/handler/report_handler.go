package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/invoiceapp/invoice-api/internal/application/service"
	"github.com/invoiceapp/invoice-api/internal/domain/enum"
	"github.com/invoiceapp/invoice-api/internal/presentation/http/dto/response"
)

// ReportHandler handles report export HTTP requests
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// ExportInvoices streams an XLSX export of invoices
func (h *ReportHandler) ExportInvoices(c *gin.Context) {
	var status *enum.InvoiceStatus
	if s := c.Query("status"); s != "" {
		st := enum.InvoiceStatus(s)
		status = &st
	}

	data, err := h.reportService.ExportInvoicesXLSX(c.Request.Context(), status)
	if err != nil {
		response.Error(c, err)
		return
	}

	filename := fmt.Sprintf("invoices-%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Data(200, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
