package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Notifier delivers text to the owner's chat
type Notifier interface {
	NotifyOwner(text string) error
}

const dailyReportTemplate = "📊 التقرير اليومي (%s):\nالمجموع الكلي للمبالغ التي تم عرضها للمستخدمين (وتم تأكيدها) خلال الـ 24 ساعة الماضية: %d دينار."

// ReportService sends the accumulated daily revenue to the owner on a fixed
// period and resets the accumulator after each tick
type ReportService struct {
	ops      *OpsService
	notifier Notifier
	period   time.Duration
	logger   *zap.Logger
}

// NewReportService creates the daily report loop. Period is nominally 24
// hours; it is configurable so tests can run the loop quickly.
func NewReportService(ops *OpsService, notifier Notifier, period time.Duration, logger *zap.Logger) *ReportService {
	return &ReportService{
		ops:      ops,
		notifier: notifier,
		period:   period,
		logger:   logger,
	}
}

// Run blocks until ctx is cancelled, reporting once per period. A failed
// send is logged and must never stop future ticks.
func (s *ReportService) Run(ctx context.Context) {
	ticker := time.NewTicker(s.period)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("Daily report loop stopped")
			return
		case <-ticker.C:
			s.report()
		}
	}
}

func (s *ReportService) report() {
	total := s.ops.DrainDailyTotal()
	text := fmt.Sprintf(dailyReportTemplate, time.Now().Format("2006-01-02"), total)

	if err := s.notifier.NotifyOwner(text); err != nil {
		s.logger.Error("Failed to send daily report",
			zap.Int("total", total),
			zap.Error(err),
		)
		return
	}

	s.logger.Info("Daily report sent", zap.Int("total", total))
}
