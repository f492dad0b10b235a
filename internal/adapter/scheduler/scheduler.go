// Package scheduler runs the automatic overdue flagging on a cron schedule.
package scheduler

import (
	"context"
	"fmt"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/sm8ta/webike_maintenance_tracker/internal/core/ports"
)

// OverdueFlagger is the operation the scheduler triggers.
type OverdueFlagger interface {
	FlagOverdue(ctx context.Context, now time.Time) (int, error)
}

type OverdueScheduler struct {
	cron     *cron.Cron
	flagger  OverdueFlagger
	logger   ports.LoggerPort
	schedule string
	jobID    cron.EntryID
	now      func() time.Time
}

// NewOverdueScheduler accepts standard five-field cron specs and descriptors
// such as "@daily" or "@every 1h".
func NewOverdueScheduler(schedule string, flagger OverdueFlagger, logger ports.LoggerPort) *OverdueScheduler {
	return &OverdueScheduler{
		cron:     cron.New(),
		flagger:  flagger,
		logger:   logger,
		schedule: schedule,
		now:      time.Now,
	}
}

func (s *OverdueScheduler) Start() error {
	var err error
	s.jobID, err = s.cron.AddFunc(s.schedule, s.RunOnce)
	if err != nil {
		return fmt.Errorf("error scheduling overdue check: %w", err)
	}
	s.cron.Start()
	s.logger.Info("Overdue scheduler started", map[string]interface{}{
		"schedule": s.schedule,
	})
	return nil
}

// Stop waits for a running job to finish or for ctx to expire.
func (s *OverdueScheduler) Stop(ctx context.Context) {
	select {
	case <-s.cron.Stop().Done():
	case <-ctx.Done():
	}
	s.logger.Info("Overdue scheduler stopped", nil)
}

// RunOnce flags overdue items immediately.
func (s *OverdueScheduler) RunOnce() {
	flagged, err := s.flagger.FlagOverdue(context.Background(), s.now())
	if err != nil {
		s.logger.Error("Scheduled overdue check failed", map[string]interface{}{
			"error": err.Error(),
		})
		return
	}
	s.logger.Debug("Scheduled overdue check finished", map[string]interface{}{
		"flagged": flagged,
	})
}
