package ports

import (
	"time"

	"github.com/gin-gonic/gin"
)

type MetricsPort interface {
	RecordMetrics(c *gin.Context, start time.Time)
	SetUrgentItems(n int)
	IncMigration(from, to string)
	IncRecommendation(outcome string)
}
