package middleware

import (
	"testing"

	"printbot/internal/domain"
	"printbot/internal/service"
	"printbot/internal/testutil"

	"github.com/stretchr/testify/assert"
	tele "gopkg.in/telebot.v3"
)

const ownerID int64 = 999

func newOps() *service.OpsService {
	return service.NewOpsService(domain.DefaultPriceTable(), "welcome", "away")
}

func TestIgnoreUsers(t *testing.T) {
	tests := []struct {
		name         string
		userID       int64
		muted        bool
		expectCalled bool
	}{
		{
			name:         "normal user passes through",
			userID:       1,
			expectCalled: true,
		},
		{
			name:         "muted user is dropped",
			userID:       2,
			muted:        true,
			expectCalled: false,
		},
		{
			name:         "owner is never dropped",
			userID:       ownerID,
			muted:        true,
			expectCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ops := newOps()
			if tt.muted {
				ops.Mute(tt.userID)
			}

			called := false
			next := func(c tele.Context) error {
				called = true
				return nil
			}

			c := &testutil.FakeContext{User: &tele.User{ID: tt.userID}}
			err := IgnoreUsers(ops, ownerID)(next)(c)

			assert.NoError(t, err)
			assert.Equal(t, tt.expectCalled, called)
			assert.Empty(t, c.Sent, "dropping produces no reply")
		})
	}
}

func TestRecover(t *testing.T) {
	panicking := func(c tele.Context) error {
		panic("boom")
	}

	c := &testutil.FakeContext{
		User: &tele.User{ID: 1},
		Msg:  &tele.Message{Text: "hi"},
	}

	assert.NotPanics(t, func() {
		_ = Recover(testutil.NewTestLogger())(panicking)(c)
	})
}
