package order

import (
	"context"
	"errors"
	"testing"

	"washlane/models"

	"go.uber.org/zap"
)

type fakeOrderRepo struct {
	orders map[string]models.Order
}

func (f *fakeOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	f.orders[order.ID] = order
	return order.ID, nil
}

func (f *fakeOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	order, ok := f.orders[id]
	if !ok {
		return nil, nil
	}
	return &order, nil
}

func (f *fakeOrderRepo) GetByUserID(ctx context.Context, userID string) ([]models.Order, error) {
	var out []models.Order
	for _, order := range f.orders {
		if order.UserID == userID {
			out = append(out, order)
		}
	}
	return out, nil
}

func (f *fakeOrderRepo) SetStatus(ctx context.Context, id string, status, cancelledFrom models.OrderStatus) error {
	order, ok := f.orders[id]
	if !ok {
		return errors.New("no such order")
	}
	order.Status = status
	order.CancelledFrom = cancelledFrom
	f.orders[id] = order
	return nil
}

func newTrackingService(orders ...models.Order) *DefaultTrackingService {
	repo := &fakeOrderRepo{orders: make(map[string]models.Order)}
	for _, order := range orders {
		repo.orders[order.ID] = order
	}
	return &DefaultTrackingService{Repo: repo, Logger: zap.NewNop()}
}

func TestTrackingServiceTimeline(t *testing.T) {
	ctx := context.Background()

	t.Run("known status renders its snapshot", func(t *testing.T) {
		svc := newTrackingService(models.Order{ID: "ord-1", UserID: "u1", Status: models.StatusProcessing})
		snapshot, err := svc.Timeline(ctx, "ord-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if snapshot.CompletedSteps != 2 || snapshot.ProgressPercent != 40 {
			t.Fatalf("unexpected snapshot %+v", snapshot)
		}
	})

	t.Run("unrecognized status yields a flagged snapshot, not an error", func(t *testing.T) {
		svc := newTrackingService(models.Order{ID: "ord-2", UserID: "u1", Status: "Teleported"})
		snapshot, err := svc.Timeline(ctx, "ord-2")
		if err != nil {
			t.Fatalf("unexpected error for unrecognized status: %v", err)
		}
		if !snapshot.Unknown {
			t.Fatal("expected Unknown flag on snapshot")
		}
		if snapshot.ProgressPercent != -1 {
			t.Fatalf("expected unspecified progress -1, got %d", snapshot.ProgressPercent)
		}
	})

	t.Run("missing order", func(t *testing.T) {
		svc := newTrackingService()
		if _, err := svc.Timeline(ctx, "ghost"); !errors.Is(err, ErrOrderNotFound) {
			t.Fatalf("expected ErrOrderNotFound, got %v", err)
		}
	})
}

func TestTrackingServiceUpdateStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("forward transition is recorded", func(t *testing.T) {
		svc := newTrackingService(models.Order{ID: "ord-1", UserID: "u1", Status: models.StatusPending})
		order, err := svc.UpdateStatus(ctx, "ord-1", models.StatusProcessing)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.Status != models.StatusProcessing {
			t.Fatalf("expected Processing, got %s", order.Status)
		}
	})

	t.Run("backwards transition is rejected", func(t *testing.T) {
		svc := newTrackingService(models.Order{ID: "ord-1", UserID: "u1", Status: models.StatusProcessing})
		if _, err := svc.UpdateStatus(ctx, "ord-1", models.StatusPending); !errors.Is(err, ErrIllegalTransition) {
			t.Fatalf("expected ErrIllegalTransition, got %v", err)
		}
	})

	t.Run("cancelling records the status it interrupted", func(t *testing.T) {
		svc := newTrackingService(models.Order{ID: "ord-1", UserID: "u1", Status: models.StatusProcessing})
		order, err := svc.UpdateStatus(ctx, "ord-1", models.StatusCancelled)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if order.CancelledFrom != models.StatusProcessing {
			t.Fatalf("expected CancelledFrom=Processing, got %q", order.CancelledFrom)
		}
	})
}
