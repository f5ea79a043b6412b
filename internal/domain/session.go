package domain

import "time"

// OrderState represents a user's confirmation state
type OrderState string

const (
	StateNoPendingOrder       OrderState = "no_pending_order"
	StateAwaitingConfirmation OrderState = "awaiting_confirmation"
)

// Session holds one user's open order accumulation.
// It is created lazily on the user's first interaction.
type Session struct {
	UserID int64

	// Running totals for the currently open order
	Pages      int
	BasePrice  int
	CoverPrice int
	Files      int

	State OrderState

	LastInteractionAt   time.Time
	WelcomeSentAt       time.Time // zero value means never sent
	QueuedWhileSleeping bool
}

// HasOpenOrder reports whether the user accumulated at least one file
func (s *Session) HasOpenOrder() bool {
	return s.Pages > 0
}
