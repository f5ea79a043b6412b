package service

import (
	"sync"

	"printbot/internal/domain"
)

// OpsService is the single process-wide operating state: sleep mode, the
// ignored-user set, the runtime-mutable price table, the daily revenue
// accumulator and lifetime stats. One mutex guards all of it; every field is
// read and written only through methods so there are no ambient globals.
type OpsService struct {
	mu sync.Mutex

	sleeping         bool
	autoReply        bool
	autoReplyMessage string
	welcomeMessage   string

	ignored map[int64]struct{}
	prices  domain.PriceTable

	dailyTotal int

	confirmedOrders     int
	rejectedOrders      int
	totalConfirmedFiles int
	interacted          map[int64]struct{}
}

// NewOpsService creates the operating state with the given initial price
// table and message texts
func NewOpsService(prices domain.PriceTable, welcomeMessage, autoReplyMessage string) *OpsService {
	return &OpsService{
		autoReplyMessage: autoReplyMessage,
		welcomeMessage:   welcomeMessage,
		ignored:          make(map[int64]struct{}),
		prices:           prices,
		interacted:       make(map[int64]struct{}),
	}
}

// Sleeping reports whether sleep mode is on
func (o *OpsService) Sleeping() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.sleeping
}

// ToggleSleep flips sleep mode and returns the new value
func (o *OpsService) ToggleSleep() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.sleeping = !o.sleeping
	return o.sleeping
}

// ToggleAutoReply flips the custom auto-reply mode and returns the new value
func (o *OpsService) ToggleAutoReply() bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.autoReply = !o.autoReply
	return o.autoReply
}

// AutoReply returns the custom auto-reply mode and its message text
func (o *OpsService) AutoReply() (bool, string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.autoReply, o.autoReplyMessage
}

// WelcomeMessage returns the current welcome template
func (o *OpsService) WelcomeMessage() string {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.welcomeMessage
}

// SetWelcomeMessage replaces the welcome template
func (o *OpsService) SetWelcomeMessage(text string) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.welcomeMessage = text
}

// IsIgnored reports whether the user is muted
func (o *OpsService) IsIgnored(userID int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	_, ok := o.ignored[userID]
	return ok
}

// Mute adds the user to the ignore set. It returns false if the user was
// already muted; the set cannot hold duplicates.
func (o *OpsService) Mute(userID int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.ignored[userID]; ok {
		return false
	}
	o.ignored[userID] = struct{}{}
	return true
}

// Unmute removes the user from the ignore set, returning false if the user
// was not muted
func (o *OpsService) Unmute(userID int64) bool {
	o.mu.Lock()
	defer o.mu.Unlock()
	if _, ok := o.ignored[userID]; !ok {
		return false
	}
	delete(o.ignored, userID)
	return true
}

// UnmuteAll empties the ignore set and returns how many users it held
func (o *OpsService) UnmuteAll() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	n := len(o.ignored)
	o.ignored = make(map[int64]struct{})
	return n
}

// Prices returns the current price table
func (o *OpsService) Prices() domain.PriceTable {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.prices
}

// SetRateBelow50 updates the per-page rate for documents under the tier
// threshold
func (o *OpsService) SetRateBelow50(v int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prices.RateBelow50 = v
}

// SetRateAtOrAbove50 updates the per-page rate at or above the tier threshold
func (o *OpsService) SetRateAtOrAbove50(v int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prices.RateAtOrAbove50 = v
}

// SetCoverCost updates the cover binding cost
func (o *OpsService) SetCoverCost(v int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.prices.CoverCost = v
}

// AddRevenue adds a confirmed order's base price to the daily accumulator
func (o *OpsService) AddRevenue(amount int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.dailyTotal += amount
}

// DrainDailyTotal returns the accumulated daily total and resets it to zero
func (o *OpsService) DrainDailyTotal() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	total := o.dailyTotal
	o.dailyTotal = 0
	return total
}

// DailyTotal returns the accumulator without resetting it
func (o *OpsService) DailyTotal() int {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.dailyTotal
}

// TouchUser records the user in the distinct-interacted set
func (o *OpsService) TouchUser(userID int64) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.interacted[userID] = struct{}{}
}

// RecordConfirmed bumps the confirmed-order counters
func (o *OpsService) RecordConfirmed(files int) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.confirmedOrders++
	o.totalConfirmedFiles += files
}

// RecordRejected bumps the rejected-order counter
func (o *OpsService) RecordRejected() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.rejectedOrders++
}

// Stats returns a copy of the lifetime counters
func (o *OpsService) Stats() domain.Stats {
	o.mu.Lock()
	defer o.mu.Unlock()
	return domain.Stats{
		ConfirmedOrders:     o.confirmedOrders,
		RejectedOrders:      o.rejectedOrders,
		TotalConfirmedFiles: o.totalConfirmedFiles,
		InteractedUsers:     len(o.interacted),
	}
}
