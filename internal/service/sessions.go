package service

import (
	"sync"
	"time"

	"printbot/internal/domain"
)

// SessionStore owns all per-user order state. The map is guarded by its own
// mutex and each session carries one of its own, so operations on one user's
// session never block on another user's.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*sessionEntry
}

type sessionEntry struct {
	mu sync.Mutex
	s  domain.Session
}

// NewSessionStore creates an empty store
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*sessionEntry),
	}
}

func (st *SessionStore) entry(userID int64) *sessionEntry {
	st.mu.RLock()
	e, ok := st.sessions[userID]
	st.mu.RUnlock()
	if ok {
		return e
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if e, ok = st.sessions[userID]; ok {
		return e
	}
	e = &sessionEntry{s: domain.Session{
		UserID: userID,
		State:  domain.StateNoPendingOrder,
	}}
	st.sessions[userID] = e
	return e
}

// Update runs fn with exclusive access to the user's session, creating it
// first if needed. All mutation goes through here.
func (st *SessionStore) Update(userID int64, fn func(*domain.Session)) {
	e := st.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	fn(&e.s)
}

// GetOrCreate returns a copy of the user's session
func (st *SessionStore) GetOrCreate(userID int64) domain.Session {
	e := st.entry(userID)
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s
}

// Snapshot returns a copy of an existing session without creating one
func (st *SessionStore) Snapshot(userID int64) (domain.Session, bool) {
	st.mu.RLock()
	e, ok := st.sessions[userID]
	st.mu.RUnlock()
	if !ok {
		return domain.Session{}, false
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.s, true
}

// AddFileCharge accumulates one priced file into the user's open order and
// returns the updated session
func (st *SessionStore) AddFileCharge(userID int64, pages, base, withCover int) domain.Session {
	var out domain.Session
	st.Update(userID, func(s *domain.Session) {
		s.Pages += pages
		s.BasePrice += base
		s.CoverPrice += withCover
		s.Files++
		out = *s
	})
	return out
}

// ClearOrder resets the accumulation and the confirmation state. It is called
// only on finalization or explicit rejection, never implicitly.
func (st *SessionStore) ClearOrder(userID int64) {
	st.Update(userID, func(s *domain.Session) {
		s.Pages = 0
		s.BasePrice = 0
		s.CoverPrice = 0
		s.Files = 0
		s.State = domain.StateNoPendingOrder
	})
}

// SetState sets the user's confirmation state
func (st *SessionStore) SetState(userID int64, state domain.OrderState) {
	st.Update(userID, func(s *domain.Session) {
		s.State = state
	})
}

// Touch stamps the user's last interaction time
func (st *SessionStore) Touch(userID int64, now time.Time) {
	st.Update(userID, func(s *domain.Session) {
		s.LastInteractionAt = now
	})
}

// ClaimWelcome reports whether a welcome message is due (never sent, or sent
// longer than cooldown ago) and stamps the send time when it is
func (st *SessionStore) ClaimWelcome(userID int64, now time.Time, cooldown time.Duration) bool {
	due := false
	st.Update(userID, func(s *domain.Session) {
		if s.WelcomeSentAt.IsZero() || now.Sub(s.WelcomeSentAt) >= cooldown {
			s.WelcomeSentAt = now
			due = true
		}
	})
	return due
}

// MarkQueuedWhileSleeping marks the user as having interacted during sleep
// mode. It returns true only on the first call since the marker was last
// reset, so the owner is alerted at most once per user per sleep period.
func (st *SessionStore) MarkQueuedWhileSleeping(userID int64) bool {
	first := false
	st.Update(userID, func(s *domain.Session) {
		if !s.QueuedWhileSleeping {
			s.QueuedWhileSleeping = true
			first = true
		}
	})
	return first
}

// QueuedWhileSleeping lists the users who interacted during the current
// sleep period
func (st *SessionStore) QueuedWhileSleeping() []int64 {
	st.mu.RLock()
	defer st.mu.RUnlock()

	var ids []int64
	for id, e := range st.sessions {
		e.mu.Lock()
		if e.s.QueuedWhileSleeping {
			ids = append(ids, id)
		}
		e.mu.Unlock()
	}
	return ids
}

// ResetSleepMarkers clears all queued-while-sleeping flags, called when the
// owner wakes up
func (st *SessionStore) ResetSleepMarkers() {
	st.mu.RLock()
	defer st.mu.RUnlock()

	for _, e := range st.sessions {
		e.mu.Lock()
		e.s.QueuedWhileSleeping = false
		e.mu.Unlock()
	}
}
