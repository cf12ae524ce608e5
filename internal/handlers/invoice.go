// internal/handlers/invoice.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/services"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

type InvoiceHandler struct {
	invoices       store.InvoiceStore
	paymentService *services.PaymentService
}

func NewInvoiceHandler(invoices store.InvoiceStore, paymentService *services.PaymentService) *InvoiceHandler {
	return &InvoiceHandler{
		invoices:       invoices,
		paymentService: paymentService,
	}
}

// GET /invoices
func (h *InvoiceHandler) GetInvoices(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	invoices, total, err := h.invoices.List(params.Page, params.Limit)
	if err != nil {
		respondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(invoices, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /watches/:id/invoices
func (h *InvoiceHandler) GetWatchInvoices(c *gin.Context) {
	watchID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	invoices, err := h.invoices.ListByWatch(watchID)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"invoices": invoices})
}

// POST /invoices/:id/deposit-intent
func (h *InvoiceHandler) CreateDepositIntent(c *gin.Context) {
	invoiceID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid invoice ID", nil)
		return
	}

	var req services.DepositIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	intent, err := h.paymentService.CreateDepositIntent(invoiceID, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, intent)
}
