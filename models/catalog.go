package models

// Category tags a catalog item for filtering on the catalog screen.
type Category string

const (
	CategoryAll       Category = "All"
	CategoryClothing  Category = "Clothing"
	CategoryHousehold Category = "Household"
	CategoryBedding   Category = "Bedding"
	CategoryDelicates Category = "Delicates"
)

// CatalogItem is an orderable item type with its unit price.
// Catalog entries are immutable and loaded at startup.
type CatalogItem struct {
	Name      string   `bson:"name" json:"name"`
	UnitPrice float64  `bson:"unit_price" json:"unitPrice"`
	Category  Category `bson:"category" json:"category"`
}

// Service is a primary bookable service (e.g. "Wash & Fold" billed per kg).
type Service struct {
	ID               string  `bson:"id" json:"id"`
	Name             string  `bson:"name" json:"name"`
	BasePricePerUnit float64 `bson:"base_price_per_unit" json:"basePricePerUnit"`
	UnitType         string  `bson:"unit_type" json:"unitType"` // e.g. "kg", "item"
}
