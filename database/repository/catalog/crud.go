package catalogRepo

import (
	"context"
	"errors"

	"washlane/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// List returns every catalog item.
func (r *mongoCatalogRepo) List(ctx context.Context) ([]models.CatalogItem, error) {
	cursor, err := r.items.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CatalogItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// ListByCategory returns the items tagged with the given category.
// CategoryAll returns the full catalog; membership is a stored tag, never
// derived from the item name.
func (r *mongoCatalogRepo) ListByCategory(ctx context.Context, category models.Category) ([]models.CatalogItem, error) {
	if category == "" || category == models.CategoryAll {
		return r.List(ctx)
	}
	cursor, err := r.items.Find(ctx, bson.M{"category": category})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.CatalogItem
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetByName returns a single catalog item by its unique name.
func (r *mongoCatalogRepo) GetByName(ctx context.Context, name string) (*models.CatalogItem, error) {
	var item models.CatalogItem
	err := r.items.FindOne(ctx, bson.M{"name": name}).Decode(&item)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

// PriceMap returns name -> unit price for the whole catalog, for cart totals.
func (r *mongoCatalogRepo) PriceMap(ctx context.Context) (map[string]float64, error) {
	items, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	prices := make(map[string]float64, len(items))
	for _, item := range items {
		prices[item.Name] = item.UnitPrice
	}
	return prices, nil
}

// ListServices returns all bookable primary services.
func (r *mongoCatalogRepo) ListServices(ctx context.Context) ([]models.Service, error) {
	cursor, err := r.services.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, err
	}
	return services, nil
}

// GetServiceByID returns a bookable service by id.
func (r *mongoCatalogRepo) GetServiceByID(ctx context.Context, id string) (*models.Service, error) {
	var svc models.Service
	err := r.services.FindOne(ctx, bson.M{"id": id}).Decode(&svc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &svc, nil
}
