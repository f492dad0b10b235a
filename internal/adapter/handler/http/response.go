package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/domain"
)

type errorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Bike not found"`
}

type successResponse struct {
	Success bool        `json:"success" example:"true"`
	Message string      `json:"message" example:"Bike found"`
	Data    interface{} `json:"data,omitempty"`
}

func newErrorResponse(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, errorResponse{
		Success: false,
		Message: msg,
	})
}

func newSuccessResponse(c *gin.Context, code int, msg string, data interface{}) {
	c.JSON(code, successResponse{
		Success: true,
		Message: msg,
		Data:    data,
	})
}

// errorStatus maps service errors to HTTP status codes.
func errorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrBikeNotFound),
		errors.Is(err, domain.ErrItemNotFound),
		errors.Is(err, domain.ErrLinkNotFound),
		errors.Is(err, domain.ErrSnapshotNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, domain.ErrInvalidImport):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrRecommenderUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, domain.ErrRecommendationFailed):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// handleError logs err and writes the mapped error response. Internal
// errors are not echoed to the client.
func (h *Handler) handleError(c *gin.Context, msg string, err error, fields map[string]interface{}) {
	code := errorStatus(err)
	if fields == nil {
		fields = map[string]interface{}{}
	}
	fields["error"] = err.Error()
	fields["status"] = code

	if code >= http.StatusInternalServerError {
		h.logger.Error(msg, fields)
	} else {
		h.logger.Warn(msg, fields)
	}

	if code == http.StatusInternalServerError {
		newErrorResponse(c, code, msg)
		return
	}
	newErrorResponse(c, code, err.Error())
}
