package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

type BikeRequest struct {
	Name      string `json:"name" binding:"required" example:"Trail Ripper"`
	Brand     string `json:"brand" binding:"required" example:"Santa Cruz"`
	Model     string `json:"model" binding:"required" example:"5010"`
	Year      int    `json:"year" binding:"required" example:"2023"`
	Type      string `json:"type" binding:"required" example:"mountain"`
	WheelSize string `json:"wheelSize,omitempty" example:"29\""`
}

type UpdateBikeRequest struct {
	Name      *string `json:"name,omitempty" example:"Trail Ripper"`
	Brand     *string `json:"brand,omitempty" example:"Santa Cruz"`
	Model     *string `json:"model,omitempty" example:"5010"`
	Year      *int    `json:"year,omitempty" example:"2024"`
	Type      *string `json:"type,omitempty" example:"mountain"`
	WheelSize *string `json:"wheelSize,omitempty" example:"27.5\""`
}

type BikeListResponse struct {
	Bikes         []domain.Bike `json:"bikes"`
	CurrentBikeID string        `json:"currentBikeId"`
	Count         int           `json:"count"`
}

// @Summary Создать байк
// @Description Создание нового байка с чек-листом обслуживания по его типу
// @Tags bikes
// @Accept json
// @Produce json
// @Param request body BikeRequest true "Данные байка"
// @Success 201 {object} successResponse{data=domain.Bike} "Байк создан"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Router /bikes [post]
func (h *Handler) CreateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	var req BikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in create bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	bike, err := h.bikes.CreateBike(c.Request.Context(), domain.BikeInput{
		Name:      req.Name,
		Brand:     req.Brand,
		Model:     req.Model,
		Year:      req.Year,
		Type:      domain.BikeType(req.Type),
		WheelSize: req.WheelSize,
	})
	if err != nil {
		h.handleError(c, "Failed to create bike", err, nil)
		return
	}

	newSuccessResponse(c, http.StatusCreated, "Bike created successfully", bike)
}

// @Summary Получить байки
// @Description Все байки парка и текущий выбранный байк
// @Tags bikes
// @Produce json
// @Success 200 {object} successResponse{data=BikeListResponse} "Список байков"
// @Router /bikes [get]
func (h *Handler) ListBikes(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikes, err := h.bikes.ListBikes(c.Request.Context())
	if err != nil {
		h.handleError(c, "Failed to get bikes", err, nil)
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bikes found", BikeListResponse{
		Bikes:         bikes,
		CurrentBikeID: h.fleet.Snapshot().CurrentBikeID,
		Count:         len(bikes),
	})
}

// @Summary Получить байк
// @Description Получение байка по ID
// @Tags bikes
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} successResponse{data=domain.Bike} "Байк найден"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id} [get]
func (h *Handler) GetBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	bike, err := h.bikes.GetBike(c.Request.Context(), bikeID)
	if err != nil {
		h.handleError(c, "Failed to get bike", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike found", bike)
}

// @Summary Обновить байк
// @Description Обновление данных байка. Чек-лист, настройки и ссылки не меняются
// @Tags bikes
// @Accept json
// @Produce json
// @Param id path string true "ID байка"
// @Param request body UpdateBikeRequest true "Данные для обновления"
// @Success 200 {object} successResponse{data=domain.Bike} "Байк обновлен"
// @Failure 400 {object} errorResponse "Неверный запрос"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id} [put]
func (h *Handler) UpdateBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")

	var req UpdateBikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Error("Failed JSON parse in update bike", map[string]interface{}{
			"error": err.Error(),
		})
		newErrorResponse(c, http.StatusBadRequest, "Invalid JSON format")
		return
	}

	existing, err := h.bikes.GetBike(c.Request.Context(), bikeID)
	if err != nil {
		h.handleError(c, "Failed to get bike", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	input := domain.BikeInput{
		Name:      existing.Name,
		Brand:     existing.Brand,
		Model:     existing.Model,
		Year:      existing.Year,
		Type:      existing.Type,
		WheelSize: existing.WheelSize,
	}
	if req.Name != nil {
		input.Name = *req.Name
	}
	if req.Brand != nil {
		input.Brand = *req.Brand
	}
	if req.Model != nil {
		input.Model = *req.Model
	}
	if req.Year != nil {
		input.Year = *req.Year
	}
	if req.Type != nil {
		input.Type = domain.BikeType(*req.Type)
	}
	if req.WheelSize != nil {
		input.WheelSize = *req.WheelSize
	}

	bike, err := h.bikes.UpdateBike(c.Request.Context(), bikeID, input)
	if err != nil {
		h.handleError(c, "Failed to update bike", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike updated successfully", bike)
}

// @Summary Удалить байк
// @Description Удаление байка вместе с чек-листом, настройками и ссылками
// @Tags bikes
// @Produce json
// @Param id path string true "ID байка"
// @Success 200 {object} successResponse "Байк удален"
// @Failure 404 {object} errorResponse "Байк не найден"
// @Router /bikes/{id} [delete]
func (h *Handler) DeleteBike(c *gin.Context) {
	start := time.Now()
	defer func() {
		h.metrics.RecordMetrics(c, start)
	}()

	bikeID := c.Param("id")
	if err := h.bikes.DeleteBike(c.Request.Context(), bikeID); err != nil {
		h.handleError(c, "Failed to delete bike", err, map[string]interface{}{
			"bike_id": bikeID,
		})
		return
	}

	newSuccessResponse(c, http.StatusOK, "Bike deleted successfully", nil)
}
