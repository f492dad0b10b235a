package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// @Summary Рекомендации по обслуживанию
// @Description Запрос советов у языковой модели по текущему состоянию байка
// @Tags recommendations
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} successResponse{data=domain.Recommendation} "Рекомендации"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Failure 502 {object} errorResponse "Ошибка внешнего API"
// @Failure 503 {object} errorResponse "API ключ не настроен"
// @Router /bikes/{id}/recommendations [post]
func (h *Handler) GenerateRecommendations(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	rec, err := h.recommendations.Generate(c.Request.Context(), bikeID)
	if err != nil {
		h.handleError(c, "Failed to generate recommendations", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Recommendations generated", rec)
}
