package http

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type SelectBikeRequest struct {
	BikeID string `json:"bikeId" binding:"required" example:"1"`
}

// @Summary Парк байков
// @Description Текущий снимок парка
// @Tags fleet
// @Produce json
// @Success 200 {object} successResponse{data=domain.Snapshot} "Парк"
// @Router /fleet [get]
func (h *Handler) GetFleet(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "Fleet found", h.fleet.Snapshot())
}

// @Summary Статистика парка
// @Description Количество просроченных, ожидающих, выполненных и высокоприоритетных пунктов
// @Tags fleet
// @Produce json
// @Success 200 {object} successResponse{data=maintenance.FleetStats} "Статистика"
// @Router /fleet/stats [get]
func (h *Handler) FleetStats(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "Fleet stats", h.maintenance.FleetStats(c.Request.Context()))
}

// @Summary Срочное обслуживание
// @Description Просроченные пункты, затем высокоприоритетные ожидающие, по всем байкам
// @Tags fleet
// @Produce json
// @Success 200 {object} successResponse{data=[]maintenance.UrgentItem} "Срочные пункты"
// @Router /fleet/urgent [get]
func (h *Handler) UrgentItems(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	newSuccessResponse(c, http.StatusOK, "Urgent items", h.maintenance.UrgentItems(c.Request.Context()))
}

// @Summary Выбрать текущий байк
// @Tags fleet
// @Accept json
// @Produce json
// @Param request body SelectBikeRequest true "ID байка"
// @Success 200 {object} successResponse "Байк выбран"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /fleet/current [put]
func (h *Handler) SelectBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req SelectBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in select bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	if err := h.fleet.SelectBike(c.Request.Context(), req.BikeID); err != nil {
		h.handleError(c, "Failed to select bike", err, map[string]interface{}{
			"bike_id": req.BikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Current bike selected", gin.H{"currentBikeId": req.BikeID})
}

// @Summary Экспорт парка
// @Description JSON-файл со всеми байками для резервной копии
// @Tags fleet
// @Produce json
// @Success 200 {object} domain.ExportDocument "Файл экспорта"
// @Router /fleet/export [get]
func (h *Handler) Export(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	doc := h.fleet.Export()
	filename := fmt.Sprintf("bike-maintenance-backup-%s.json", time.Time(doc.ExportDate).Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.JSON(http.StatusOK, doc)
}

// @Summary Импорт парка
// @Description Заменяет весь парк содержимым файла экспорта. Неверный файл ничего не меняет
// @Tags fleet
// @Accept json
// @Produce json
// @Param request body domain.ExportDocument true "Файл экспорта"
// @Success 200 {object} successResponse{data=domain.Snapshot} "Парк импортирован"
// @Failure 400 {object} errorResponse "Неверный файл"
// @Router /fleet/import [post]
func (h *Handler) Import(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		newErrorResponse(c, http.StatusBadRequest, "Failed to read request body")
		return
	}

	snapshot, err := h.fleet.Import(c.Request.Context(), raw)
	if err != nil {
		h.handleError(c, "Failed to import fleet", err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, fmt.Sprintf("Imported %d bikes", len(snapshot.Bikes)), snapshot)
}

// @Summary Автоматическая резервная копия
// @Description Копия данных, сохраненная перед последней миграцией схемы
// @Tags fleet
// @Produce json
// @Success 200 {object} successResponse{data=domain.Backup} "Резервная копия"
// @Failure 404 {object} errorResponse "Копии нет"
// @Router /fleet/backup [get]
func (h *Handler) Backup(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	backup, err := h.fleet.Backup(c.Request.Context())
	if err != nil {
		h.handleError(c, "Failed to get backup", err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Backup found", backup)
}
