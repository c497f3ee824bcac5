package order

import (
	"context"

	orderRepo "washlane/database/repository/order"
	"washlane/models"

	"go.uber.org/zap"
)

// TrackingService reads persisted orders and derives their timelines. It
// never invents status transitions; UpdateStatus only validates and records
// transitions requested by the fulfilment side.
type TrackingService interface {
	GetOrder(ctx context.Context, orderID string) (*models.Order, error)
	ListByUser(ctx context.Context, userID string) ([]models.Order, error)
	Timeline(ctx context.Context, orderID string) (*models.TimelineSnapshot, error)
	UpdateStatus(ctx context.Context, orderID string, next models.OrderStatus) (*models.Order, error)
}

// DefaultTrackingService implements TrackingService.
type DefaultTrackingService struct {
	Repo   orderRepo.OrderRepository
	Logger *zap.Logger
}
