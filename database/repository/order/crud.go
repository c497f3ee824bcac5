package orderRepo

import (
	"context"
	"errors"
	"time"

	"washlane/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Create inserts a new order record and returns its ID.
func (r *mongoOrderRepo) Create(ctx context.Context, order models.Order) (string, error) {
	if order.ID == "" {
		order.ID = uuid.New().String()
	}
	if order.Status == "" {
		order.Status = models.StatusPending
	}
	order.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, order)
	if err != nil {
		return "", err
	}
	return order.ID, nil
}

// GetByID returns an order by its ID, or nil when no such order exists.
func (r *mongoOrderRepo) GetByID(ctx context.Context, id string) (*models.Order, error) {
	var order models.Order
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&order)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &order, nil
}

// SetStatus writes the order's new status. cancelledFrom is recorded only when
// transitioning into Cancelled; transition legality is checked by the caller.
func (r *mongoOrderRepo) SetStatus(ctx context.Context, id string, status models.OrderStatus, cancelledFrom models.OrderStatus) error {
	update := bson.M{"status": status}
	if status == models.StatusCancelled && cancelledFrom != "" {
		update["cancelled_from"] = cancelledFrom
	}
	if status == models.StatusDelivered {
		update["delivery_date"] = time.Now()
	}
	res, err := r.coll.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": update})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return errors.New("order not found")
	}
	return nil
}
