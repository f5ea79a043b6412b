package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"printbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestReportService_ReportsAndResets(t *testing.T) {
	ops := newTestOps()
	ops.AddRevenue(4450)

	notifier := new(testutil.MockNotifier)
	notifier.On("NotifyOwner", mock.MatchedBy(func(text string) bool {
		return containsAmount(text, 4450)
	})).Return(nil).Once()

	svc := NewReportService(ops, notifier, time.Hour, testutil.NewTestLogger())
	svc.report()

	notifier.AssertExpectations(t)
	assert.Zero(t, ops.DailyTotal(), "reporting resets the accumulator")

	// A tick with no new orders reports zero
	notifier.On("NotifyOwner", mock.MatchedBy(func(text string) bool {
		return containsAmount(text, 0)
	})).Return(nil).Once()
	svc.report()
	notifier.AssertExpectations(t)
}

func TestReportService_SurvivesSendFailure(t *testing.T) {
	ops := newTestOps()
	ops.AddRevenue(100)

	notifier := new(testutil.MockNotifier)
	notifier.On("NotifyOwner", mock.Anything).Return(fmt.Errorf("recipient blocked the bot")).Once()

	svc := NewReportService(ops, notifier, time.Hour, testutil.NewTestLogger())
	assert.NotPanics(t, func() { svc.report() })

	// The next report still goes out
	ops.AddRevenue(200)
	notifier.On("NotifyOwner", mock.MatchedBy(func(text string) bool {
		return containsAmount(text, 200)
	})).Return(nil).Once()
	svc.report()

	notifier.AssertExpectations(t)
}

func TestReportService_RunStopsOnCancel(t *testing.T) {
	ops := newTestOps()
	notifier := new(testutil.MockNotifier)
	notifier.On("NotifyOwner", mock.Anything).Return(nil)

	svc := NewReportService(ops, notifier, 10*time.Millisecond, testutil.NewTestLogger())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		svc.Run(ctx)
		close(done)
	}()

	time.Sleep(35 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("report loop did not stop on context cancellation")
	}
}

func containsAmount(text string, amount int) bool {
	return strings.Contains(text, fmt.Sprintf(": %d دينار", amount))
}
