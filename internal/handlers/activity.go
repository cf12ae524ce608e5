// internal/handlers/activity.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/arclux/watchdesk-backend/internal/models"
	"github.com/arclux/watchdesk-backend/internal/services"
	"github.com/arclux/watchdesk-backend/internal/utils"
)

type ActivityHandler struct {
	activityService *services.ActivityService
}

func NewActivityHandler(activityService *services.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// GET /activity-log
func (h *ActivityHandler) GetActivityLog(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	var actionType *models.ActionType
	if at := c.Query("action_type"); at != "" {
		parsed := models.ActionType(at)
		actionType = &parsed
	}

	entries, total, err := h.activityService.List(params.Page, params.Limit, actionType)
	if err != nil {
		respondError(c, err)
		return
	}

	result := utils.CreatePaginationResult(entries, total, params)
	utils.PaginatedResponse(c, result)
}
