package orderRepo

import (
	"context"

	"washlane/database"
	"washlane/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// OrderRepository persists confirmed orders. Create is used by the submission
// collaborator; the lifecycle tracker only reads, and SetStatus exists for the
// fulfilment side updating an order's position.
type OrderRepository interface {
	Create(ctx context.Context, order models.Order) (string, error)
	GetByID(ctx context.Context, id string) (*models.Order, error)
	GetByUserID(ctx context.Context, userID string) ([]models.Order, error)
	SetStatus(ctx context.Context, id string, status models.OrderStatus, cancelledFrom models.OrderStatus) error
}

type mongoOrderRepo struct {
	coll *mongo.Collection
}

// NewMongoOrderRepo returns a new OrderRepository instance using MongoDB.
func NewMongoOrderRepo() OrderRepository {
	db := database.MongoClient.Database("washlane")
	return &mongoOrderRepo{
		coll: db.Collection("orders"),
	}
}
