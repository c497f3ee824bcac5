package catalogRepo

import (
	"context"

	"washlane/database"
	"washlane/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// CatalogRepository supplies the read-only item catalog and the bookable
// service list. The engine never writes catalog entries.
type CatalogRepository interface {
	List(ctx context.Context) ([]models.CatalogItem, error)
	ListByCategory(ctx context.Context, category models.Category) ([]models.CatalogItem, error)
	GetByName(ctx context.Context, name string) (*models.CatalogItem, error)
	PriceMap(ctx context.Context) (map[string]float64, error)
	ListServices(ctx context.Context) ([]models.Service, error)
	GetServiceByID(ctx context.Context, id string) (*models.Service, error)
}

type mongoCatalogRepo struct {
	items    *mongo.Collection
	services *mongo.Collection
}

// NewMongoCatalogRepo returns a CatalogRepository backed by MongoDB.
func NewMongoCatalogRepo() CatalogRepository {
	db := database.MongoClient.Database("washlane")
	return &mongoCatalogRepo{
		items:    db.Collection("catalog_items"),
		services: db.Collection("services"),
	}
}
