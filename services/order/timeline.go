package order

import (
	"context"
	"errors"
	"fmt"

	"washlane/models"

	"go.uber.org/zap"
)

var (
	// ErrOrderNotFound means no order exists under the given id.
	ErrOrderNotFound = errors.New("order not found")
	// ErrIllegalTransition rejects status updates that move backwards or out
	// of a terminal state.
	ErrIllegalTransition = errors.New("illegal status transition")
)

// stepLabels is the fixed 5-step timeline shown for every order.
var stepLabels = [...]string{
	"Order Placed",
	"Payment Confirmed",
	"In Progress",
	"Ready for Delivery",
	"Delivered",
}

// stepThresholds maps each step to the status rank at which the step counts
// as completed: placing completes at Pending, payment at Processing, the work
// itself and readiness both at ReadyForDelivery, delivery at Delivered.
var stepThresholds = [...]int{1, 2, 3, 3, 4}

// TotalSteps is the length of the fixed timeline.
const TotalSteps = len(stepLabels)

// TimelineForStatus derives the timeline snapshot for a status. For Cancelled
// orders, cancelledFrom supplies the last status reached before cancellation;
// when the store did not record one, only "Order Placed" counts as done.
// Unknown statuses yield a snapshot flagged Unknown with every step completed
// ("beyond the last known step") and an unspecified progress of -1.
func TimelineForStatus(status, cancelledFrom models.OrderStatus) models.TimelineSnapshot {
	cancelled := status == models.StatusCancelled

	rank := 0
	known := true
	switch {
	case cancelled:
		if r, ok := cancelledFrom.Rank(); ok {
			rank = r
		} else {
			rank, _ = models.StatusPending.Rank()
		}
	default:
		var ok bool
		rank, ok = status.Rank()
		if !ok {
			known = false
		}
	}

	snapshot := models.TimelineSnapshot{
		Steps:     make([]models.TimelineStep, TotalSteps),
		Cancelled: cancelled,
		Terminal:  status.IsTerminal(),
		Unknown:   !known,
	}

	for i, label := range stepLabels {
		completed := !known || rank >= stepThresholds[i]
		snapshot.Steps[i] = models.TimelineStep{Label: label, Completed: completed}
		if completed {
			snapshot.CompletedSteps++
		}
	}

	if known {
		snapshot.ProgressPercent = 100 * snapshot.CompletedSteps / TotalSteps
	} else {
		snapshot.ProgressPercent = -1
	}
	return snapshot
}

// ProgressPercent is the share of completed steps for a status, -1 when the
// status is unknown. Pure: equal inputs always give equal output.
func ProgressPercent(status, cancelledFrom models.OrderStatus) int {
	return TimelineForStatus(status, cancelledFrom).ProgressPercent
}

// CanTransition reports whether moving from current to next is legal:
// strictly forward along the progression, or into Cancelled from any
// non-terminal state. Terminal states admit nothing.
func CanTransition(current, next models.OrderStatus) bool {
	if current.IsTerminal() || !next.Known() {
		return false
	}
	if next == models.StatusCancelled {
		return true
	}
	currentRank, ok := current.Rank()
	if !ok {
		return false
	}
	nextRank, _ := next.Rank()
	return nextRank > currentRank
}

// GetOrder returns an order by id.
func (s *DefaultTrackingService) GetOrder(ctx context.Context, orderID string) (*models.Order, error) {
	order, err := s.Repo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("failed to load order: %w", err)
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}
	return order, nil
}

// ListByUser returns a user's orders, newest first.
func (s *DefaultTrackingService) ListByUser(ctx context.Context, userID string) ([]models.Order, error) {
	orders, err := s.Repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}
	return orders, nil
}

// Timeline derives the timeline snapshot for a persisted order. An order
// carrying an unrecognized status still yields a snapshot, flagged Unknown,
// with a warning logged; no error is returned for it.
func (s *DefaultTrackingService) Timeline(ctx context.Context, orderID string) (*models.TimelineSnapshot, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	snapshot := TimelineForStatus(order.Status, order.CancelledFrom)
	if snapshot.Unknown {
		s.Logger.Warn("Order carries unrecognized status",
			zap.String("orderID", orderID), zap.String("status", string(order.Status)))
	}
	return &snapshot, nil
}

// UpdateStatus records a status transition for the fulfilment side, enforcing
// the ordering table. Cancelling records the status the order was in.
func (s *DefaultTrackingService) UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error) {
	order, err := s.GetOrder(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(order.Status, next) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, order.Status, next)
	}

	cancelledFrom := models.OrderStatus("")
	if next == models.StatusCancelled {
		cancelledFrom = order.Status
	}
	if err := s.Repo.SetStatus(ctx, orderID, next, cancelledFrom); err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	order.Status = next
	order.CancelledFrom = cancelledFrom
	return order, nil
}
