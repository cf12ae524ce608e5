// internal/handlers/watch.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/arclux/watchdesk-backend/internal/apperrors"
	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/services"
	"github.com/arclux/watchdesk-backend/internal/store"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

type WatchHandler struct {
	watchService *services.WatchService
	saleService  *services.SaleService
}

func NewWatchHandler(watchService *services.WatchService, saleService *services.SaleService) *WatchHandler {
	return &WatchHandler{
		watchService: watchService,
		saleService:  saleService,
	}
}

func actorFromContext(c *gin.Context) services.Actor {
	idStr, email, ok := utils.GetActorFromContext(c)
	if !ok {
		return services.Actor{}
	}
	actor := services.Actor{Email: email}
	if parsed, err := uuid.Parse(idStr); err == nil {
		actor.UserID = &parsed
	}
	return actor
}

// respondError maps the error taxonomy onto the wire. "Your data was not
// saved" and "your data was saved but a secondary step failed" never look the
// same: the latter goes through PartialFailureResponse at the call site.
func respondError(c *gin.Context, err error) {
	var ve *apperrors.ValidationError
	if errors.As(err, &ve) {
		utils.BadRequestResponse(c, ve.Error(), nil)
		return
	}
	if errors.Is(err, apperrors.ErrNotFound) {
		utils.NotFoundResponse(c, "record")
		return
	}
	if step := apperrors.PersistenceStep(err); step != "" {
		utils.ErrorResponse(c, 500, "PERSISTENCE_ERROR", err.Error(), gin.H{"failed_step": step})
		return
	}
	utils.InternalErrorResponse(c, err.Error())
}

// GET /watches
func (h *WatchHandler) GetWatches(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	listParams := store.ListWatchesParams{
		Page:   params.Page,
		Limit:  params.Limit,
		Sort:   params.Sort,
		Order:  params.Order,
		Search: params.Search,
		Brand:  c.Query("brand"),
	}
	if status := c.Query("status"); status != "" {
		ws := models.WatchStatus(status)
		if !ws.Valid() {
			utils.BadRequestResponse(c, "Invalid status filter", nil)
			return
		}
		listParams.Status = &ws
	}
	if ownership := c.Query("ownership_type"); ownership != "" {
		ot := models.OwnershipType(ownership)
		listParams.Ownership = &ot
	}

	watches, total, err := h.watchService.List(listParams)
	if err != nil {
		respondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(watches, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /storefront/watches  (public collaborator view: public, non-Sold only)
func (h *WatchHandler) GetPublicWatches(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	watches, total, err := h.watchService.List(store.ListWatchesParams{
		Page:       params.Page,
		Limit:      params.Limit,
		Sort:       params.Sort,
		Order:      params.Order,
		Search:     params.Search,
		PublicOnly: true,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(watches, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /watches/:id
func (h *WatchHandler) GetWatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	view, err := h.watchService.Get(id, true)
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

// POST /watches
func (h *WatchHandler) CreateWatch(c *gin.Context) {
	var req services.WatchFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	view, err := h.watchService.Create(&req, actorFromContext(c))
	if err != nil {
		if view != nil {
			// Watch row saved; a secondary step (media) failed.
			utils.PartialFailureResponse(c, view, apperrors.PersistenceStep(err),
				"Watch was saved but media reconciliation failed")
			return
		}
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, view)
}

// PUT /watches/:id
func (h *WatchHandler) UpdateWatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	var req services.WatchFormRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	view, err := h.watchService.Update(id, &req, actorFromContext(c))
	if err != nil {
		if view != nil {
			utils.PartialFailureResponse(c, view, apperrors.PersistenceStep(err),
				"Watch was saved but media reconciliation failed")
			return
		}
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, view)
}

// DELETE /watches/:id
func (h *WatchHandler) DeleteWatch(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	if err := h.watchService.Delete(id, actorFromContext(c)); err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"deleted": true})
}

// POST /watches/:id/toggle-public
func (h *WatchHandler) TogglePublic(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	watch, err := h.watchService.TogglePublic(id, actorFromContext(c))
	if err != nil {
		respondError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"watch": watch})
}

// POST /watches/:id/finalize-sale
func (h *WatchHandler) FinalizeSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	var req services.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	result, err := h.saleService.Finalize(id, &req, actorFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrSoldWithoutInvoice) {
			// Step 1 committed, step 2 did not. The operator must reconcile
			// manually; the response says exactly that.
			utils.PartialFailureResponse(c, gin.H{"watch_id": id},
				services.StepInvoiceInsert,
				"Watch is marked Sold but the invoice could not be created; manual reconciliation required")
			return
		}
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}

// POST /watches/:id/historical-sale
func (h *WatchHandler) RecordHistoricalSale(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid watch ID", nil)
		return
	}

	var req services.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	result, err := h.saleService.RecordHistoricalSale(id, &req, actorFromContext(c))
	if err != nil {
		if errors.Is(err, services.ErrSoldWithoutInvoice) {
			utils.PartialFailureResponse(c, gin.H{"watch_id": id},
				services.StepInvoiceInsert,
				"Watch is marked Sold but the invoice could not be created; manual reconciliation required")
			return
		}
		respondError(c, err)
		return
	}

	utils.CreatedResponse(c, result)
}
