package service

import (
	"time"

	"printbot/internal/domain"

	"go.uber.org/zap"
)

// TextOutcome tells the handler which reply to render for an inbound text
type TextOutcome int

const (
	// OutcomeGenericReply — no open order, ordinary waiting/auto reply
	OutcomeGenericReply TextOutcome = iota
	// OutcomeTotalPrompt — show cumulative total and ask for confirmation
	OutcomeTotalPrompt
	// OutcomeConfirmed — order finalized
	OutcomeConfirmed
	// OutcomeRejected — order cancelled
	OutcomeRejected
	// OutcomeReask — text matched neither keyword set, ask again
	OutcomeReask
)

// TextResult carries the outcome and the totals the reply needs
type TextResult struct {
	Outcome    TextOutcome
	Pages      int
	BasePrice  int
	CoverPrice int
	Files      int
}

// AddFileResult carries this file's quote plus the accumulated totals
type AddFileResult struct {
	Base      int
	WithCover int

	TotalPages int
	TotalBase  int
	TotalCover int
	Files      int
}

// OrderService is the order accumulation and confirmation state machine. It
// is transport-agnostic: methods take user ids and page counts and return
// typed outcomes; the handler renders the actual message text.
type OrderService struct {
	store  *SessionStore
	ops    *OpsService
	logger *zap.Logger
}

// NewOrderService creates the workflow over the given stores
func NewOrderService(store *SessionStore, ops *OpsService, logger *zap.Logger) *OrderService {
	return &OrderService{
		store:  store,
		ops:    ops,
		logger: logger,
	}
}

// AddFile quotes a successfully counted file and accumulates it into the
// user's open order
func (s *OrderService) AddFile(userID int64, pages int) AddFileResult {
	s.ops.TouchUser(userID)
	s.store.Touch(userID, time.Now())

	base, withCover := Quote(s.ops.Prices(), pages)
	sess := s.store.AddFileCharge(userID, pages, base, withCover)

	s.logger.Info("File added to order",
		zap.Int64("user_id", userID),
		zap.Int("pages", pages),
		zap.Int("base", base),
		zap.Int("total_base", sess.BasePrice),
		zap.Int("files", sess.Files),
	)

	return AddFileResult{
		Base:       base,
		WithCover:  withCover,
		TotalPages: sess.Pages,
		TotalBase:  sess.BasePrice,
		TotalCover: sess.CoverPrice,
		Files:      sess.Files,
	}
}

// TextReceived drives the confirmation state machine for an ordinary user
// text message
func (s *OrderService) TextReceived(userID int64, text string) TextResult {
	s.ops.TouchUser(userID)

	var res TextResult
	var confirmedBase, confirmedFiles int

	s.store.Update(userID, func(sess *domain.Session) {
		sess.LastInteractionAt = time.Now()

		if sess.State == domain.StateAwaitingConfirmation {
			switch {
			case domain.IsConfirm(text):
				confirmedBase = sess.BasePrice
				confirmedFiles = sess.Files
				res = TextResult{
					Outcome:    OutcomeConfirmed,
					Pages:      sess.Pages,
					BasePrice:  sess.BasePrice,
					CoverPrice: sess.CoverPrice,
					Files:      sess.Files,
				}
				clearOrder(sess)
			case domain.IsCancel(text):
				res = TextResult{Outcome: OutcomeRejected}
				clearOrder(sess)
			default:
				res = TextResult{
					Outcome:    OutcomeReask,
					Pages:      sess.Pages,
					BasePrice:  sess.BasePrice,
					CoverPrice: sess.CoverPrice,
					Files:      sess.Files,
				}
			}
			return
		}

		// No pending order: an open accumulation moves to the confirmation
		// prompt, otherwise the text gets the generic reply. Confirm and
		// cancel keywords have no special meaning here.
		if sess.HasOpenOrder() {
			sess.State = domain.StateAwaitingConfirmation
			res = TextResult{
				Outcome:    OutcomeTotalPrompt,
				Pages:      sess.Pages,
				BasePrice:  sess.BasePrice,
				CoverPrice: sess.CoverPrice,
				Files:      sess.Files,
			}
			return
		}
		res = TextResult{Outcome: OutcomeGenericReply}
	})

	switch res.Outcome {
	case OutcomeConfirmed:
		s.ops.RecordConfirmed(confirmedFiles)
		s.ops.AddRevenue(confirmedBase)
		s.logger.Info("Order confirmed",
			zap.Int64("user_id", userID),
			zap.Int("files", confirmedFiles),
			zap.Int("base", confirmedBase),
		)
	case OutcomeRejected:
		s.ops.RecordRejected()
		s.logger.Info("Order cancelled", zap.Int64("user_id", userID))
	}

	return res
}

func clearOrder(s *domain.Session) {
	s.Pages = 0
	s.BasePrice = 0
	s.CoverPrice = 0
	s.Files = 0
	s.State = domain.StateNoPendingOrder
}
