package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

type LastPerformedRequest struct {
	LastPerformed time.Time `json:"lastPerformed" binding:"required" example:"2025-03-01T00:00:00Z"`
}

// @Summary Чек-лист обслуживания
// @Description Пункты обслуживания байка с вычисленным статусом, счетчиками и группами по частоте
// @Tags maintenance
// @Produce json
// @Param id path string true "ID байка"
// @Param status query string false "Фильтр: all, pending, completed, overdue, not_applicable"
// @Success 200 {object} successResponse{data=maintenance.ItemList} "Чек-лист"
// @Failure 400 {object} errorResponse "Неверный фильтр"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/maintenance [get]
func (h *Handler) ListItems(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	filter := c.DefaultQuery("status", "all")
	if filter == "all" {
		filter = ""
	}

	list, err := h.maintenance.ListItems(c.Request.Context(), bikeID, domain.Status(filter))
	if err != nil {
		h.handleError(c, "Failed to list maintenance items", err, map[string]interface{}{
			"bike_id": bikeID,
			"filter":  filter,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Maintenance items found", list)
}

// @Summary Переключить статус
// @Description pending -> completed -> not_applicable -> pending. При переходе в completed дата обновляется
// @Tags maintenance
// @Produce json
// @Param id path string true "ID байка"
// @Param itemId path string true "ID пункта"
// @Success 200 {object} successResponse{data=maintenance.ItemView} "Статус изменен"
// @Failure 404 {object} errorResponse "Пункт не найден"
// @Router /bikes/{id}/maintenance/{itemId}/cycle [post]
func (h *Handler) CycleItemStatus(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	itemID := c.Param("itemId")
	item, err := h.maintenance.CycleItemStatus(c.Request.Context(), bikeID, itemID)
	if err != nil {
		h.handleError(c, "Failed to cycle item status", err, map[string]interface{}{
			"bike_id": bikeID,
			"item_id": itemID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Status changed", item)
}

// @Summary Изменить дату обслуживания
// @Tags maintenance
// @Accept json
// @Produce json
// @Param id path string true "ID байка"
// @Param itemId path string true "ID пункта"
// @Param request body LastPerformedRequest true "Дата"
// @Success 200 {object} successResponse{data=maintenance.ItemView} "Дата обновлена"
// @Failure 400 {object} errorResponse "Дата в будущем"
// @Failure 404 {object} errorResponse "Пункт не найден"
// @Router /bikes/{id}/maintenance/{itemId}/last-performed [put]
func (h *Handler) SetLastPerformed(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	itemID := c.Param("itemId")

	var req LastPerformedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in set last performed", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	item, err := h.maintenance.SetLastPerformed(c.Request.Context(), bikeID, itemID, req.LastPerformed)
	if err != nil {
		h.handleError(c, "Failed to set last performed", err, map[string]interface{}{
			"bike_id": bikeID,
			"item_id": itemID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Last performed date updated", item)
}
