package booking

import (
	"context"
	"time"

	"washlane/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// InitiateSession creates a new empty checkout session, assigns it a unique
// SessionID, and stores it in the session store.
func (s *DefaultCheckoutService) InitiateSession(ctx context.Context, userID string) (*models.CheckoutSession, error) {
	session := &models.CheckoutSession{
		SessionID:  uuid.New().String(),
		UserID:     userID,
		ExtraItems: make(map[string]models.CartLine),
		CreatedAt:  time.Now(),
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// GetSession loads a checkout session from the store.
func (s *DefaultCheckoutService) GetSession(ctx context.Context, sessionID string) (*models.CheckoutSession, error) {
	return s.Store.Load(ctx, sessionID)
}

// UpdateSession applies the non-nil fields of input to the session. A
// submitted session is immutable; updates against it are rejected.
func (s *DefaultCheckoutService) UpdateSession(ctx context.Context, sessionID string, input UpdateSessionInput) (*models.CheckoutSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}

	if input.Service != nil {
		session.Service = input.Service
	}
	if input.PickupDate != nil {
		session.PickupDate = *input.PickupDate
	}
	if input.PickupTime != nil {
		session.PickupTime = *input.PickupTime
	}
	if input.Address != nil {
		session.Address = *input.Address
	}
	if input.Notes != nil {
		session.Notes = *input.Notes
	}
	if input.PromotionDiscount != nil {
		discount := *input.PromotionDiscount
		if discount < 0 {
			discount = 0
		}
		session.PromotionDiscount = discount
	}

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// AddExtraItem raises the quantity of an extra item line by one.
func (s *DefaultCheckoutService) AddExtraItem(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if session.ExtraItems == nil {
		session.ExtraItems = make(map[string]models.CartLine)
	}
	line := session.ExtraItems[itemName]
	line.ItemName = itemName
	line.Quantity++
	session.ExtraItems[itemName] = line

	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// RemoveExtraItem lowers the quantity of an extra item line by one, removing
// the line entirely at quantity 1. Removing an absent item is a no-op.
func (s *DefaultCheckoutService) RemoveExtraItem(ctx context.Context, sessionID, itemName string) (*models.CheckoutSession, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if line, ok := session.ExtraItems[itemName]; ok {
		if line.Quantity <= 1 {
			delete(session.ExtraItems, itemName)
		} else {
			line.Quantity--
			session.ExtraItems[itemName] = line
		}
	}
	if err := s.Store.Save(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

// Quote recomputes the price breakdown from the session's current inputs.
func (s *DefaultCheckoutService) Quote(ctx context.Context, sessionID string) (*models.PricedTotal, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	total := Quote(session.Service, session.ExtraItemSlice(), session.PromotionDiscount)
	return &total, nil
}

// Submit assembles the immutable BookingRequest and hands it to the
// payment/persistence collaborator. Only one submission per session may be in
// flight; a failure leaves the session Ready and resubmittable.
func (s *DefaultCheckoutService) Submit(ctx context.Context, sessionID string) (*SubmitResult, error) {
	session, err := s.Store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Submitted {
		return nil, ErrAlreadySubmitted
	}
	if !session.CanSubmit() {
		return nil, &ValidationError{Missing: session.MissingFields()}
	}

	locked, err := s.Locks.Acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if !locked {
		return nil, ErrSubmissionInFlight
	}

	request := AssembleRequest(session)

	result, err := s.Submitter.SubmitBooking(ctx, request, session.UserID)
	if err != nil {
		// Release the lock so the caller may resubmit; the session itself is
		// untouched and still Ready.
		if relErr := s.Locks.Release(ctx, sessionID); relErr != nil {
			s.Logger.Warn("failed to release submission lock",
				zap.String("sessionID", sessionID), zap.Error(relErr))
		}
		return nil, &SubmissionError{Err: err}
	}

	session.Submitted = true
	session.OrderID = result.OrderID
	if err := s.Store.Save(ctx, session); err != nil {
		// The order exists but the session still reads un-submitted. Keep the
		// lock held so its TTL blocks an immediate duplicate resubmission.
		s.Logger.Warn("failed to persist submitted session state",
			zap.String("sessionID", sessionID), zap.Error(err))
	} else if relErr := s.Locks.Release(ctx, sessionID); relErr != nil {
		s.Logger.Warn("failed to release submission lock",
			zap.String("sessionID", sessionID), zap.Error(relErr))
	}

	result.Request = request
	return result, nil
}

// CancelSession discards the checkout session.
func (s *DefaultCheckoutService) CancelSession(ctx context.Context, sessionID string) error {
	return s.Store.Delete(ctx, sessionID)
}

// AssembleRequest freezes the session into a BookingRequest with its total
// recomputed from the session's inputs. Pure.
func AssembleRequest(session *models.CheckoutSession) models.BookingRequest {
	return models.BookingRequest{
		Service:    session.Service,
		ExtraItems: session.ExtraItemSlice(),
		PickupDate: session.PickupDate,
		PickupTime: session.PickupTime,
		Address:    session.Address,
		Notes:      session.Notes,
		Total:      Quote(session.Service, session.ExtraItemSlice(), session.PromotionDiscount),
		CreatedAt:  time.Now(),
	}
}
