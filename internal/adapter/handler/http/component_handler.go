package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

type ConfigurationRequest struct {
	ForkPressure  float64 `json:"forkPressure" example:"85"`
	ForkClicks    float64 `json:"forkClicks" example:"12"`
	ShockPressure float64 `json:"shockPressure" example:"200"`
	ShockClicks   float64 `json:"shockClicks" example:"8"`
	HasShock      bool    `json:"hasShock" example:"true"`
	FrontTirePSI  float64 `json:"frontTirePSI" example:"28"`
	RearTirePSI   float64 `json:"rearTirePSI" example:"30"`
	RiderWeight   float64 `json:"riderWeight" example:"180"`
}

type LinkRequest struct {
	Title       string `json:"title" binding:"required" example:"Owner's Manual"`
	URL         string `json:"url" binding:"required" example:"https://www.santacruzbicycles.com/en-US/support/manuals"`
	Description string `json:"description,omitempty" example:"Setup guide"`
}

// @Summary Получить настройки
// @Description Давление в вилке, амортизаторе и шинах
// @Tags configuration
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} successResponse{data=domain.Configuration} "Настройки"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/configuration [get]
func (h *Handler) GetConfiguration(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	cfg, err := h.bikes.GetConfiguration(c.Request.Context(), bikeID)
	if err != nil {
		h.handleError(c, "Failed to get configuration", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Configuration found", cfg)
}

// @Summary Сохранить настройки
// @Description Полная замена настроек. Без амортизатора его давление и клики обнуляются
// @Tags configuration
// @Accept json
// @Produce json
// @Param id path string true "ID байка"
// @Param request body ConfigurationRequest true "Настройки"
// @Success 200 {object} successResponse{data=domain.Configuration} "Настройки сохранены"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/configuration [put]
func (h *Handler) UpdateConfiguration(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	var req ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update configuration", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	cfg, err := h.bikes.UpdateConfiguration(c.Request.Context(), bikeID, domain.Configuration{
		ForkPressure:  req.ForkPressure,
		ForkClicks:    req.ForkClicks,
		ShockPressure: req.ShockPressure,
		ShockClicks:   req.ShockClicks,
		HasShock:      req.HasShock,
		FrontTirePSI:  req.FrontTirePSI,
		RearTirePSI:   req.RearTirePSI,
		RiderWeight:   req.RiderWeight,
	})
	if err != nil {
		h.handleError(c, "Failed to update configuration", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Configuration saved", cfg)
}

// @Summary Получить ссылки
// @Description Ссылки на документацию байка
// @Tags links
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} successResponse{data=[]domain.DocumentationLink} "Ссылки"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/links [get]
func (h *Handler) ListLinks(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	links, err := h.bikes.ListLinks(c.Request.Context(), bikeID)
	if err != nil {
		h.handleError(c, "Failed to get links", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Links found", links)
}

// @Summary Добавить ссылку
// @Description Добавление ссылки на документацию. URL должен быть абсолютным
// @Tags links
// @Accept json
// @Produce json
// @Param id path string true "ID байка"
// @Param request body LinkRequest true "Ссылка"
// @Success 201 {object} successResponse{data=domain.DocumentationLink} "Ссылка добавлена"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id}/links [post]
func (h *Handler) AddLink(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	var req LinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in add link", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	link, err := h.bikes.AddLink(c.Request.Context(), bikeID, domain.DocumentationLink{
		Title:       req.Title,
		URL:         req.URL,
		Description: req.Description,
	})
	if err != nil {
		h.handleError(c, "Failed to add link", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Link added", link)
}

// @Summary Удалить ссылку
// @Tags links
// @Produce json
// @Param id path string true "ID байка"
// @Param linkId path string true "ID ссылки"
// @Success 200 {object} successResponse "Ссылка удалена"
// @Failure 404 {object} errorResponse "Ссылка не найдена"
// @Router /bikes/{id}/links/{linkId} [delete]
func (h *Handler) RemoveLink(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	linkID := c.Param("linkId")
	if err := h.bikes.RemoveLink(c.Request.Context(), bikeID, linkID); err != nil {
		h.handleError(c, "Failed to remove link", err, map[string]interface{}{
			"bike_id": bikeID,
			"link_id": linkID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Link removed", nil)
}
