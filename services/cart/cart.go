package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"

	"washlane/models"
	"washlane/utils"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
)

const cartKeyPrefix = "cart:"

// Open creates a new empty cart session and stores it in the session cache.
func (s *DefaultCartService) Open(ctx context.Context, userID string) (*models.Cart, error) {
	c := models.NewCart(uuid.New().String(), userID)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Get loads a cart session from the cache.
func (s *DefaultCartService) Get(ctx context.Context, sessionID string) (*models.Cart, error) {
	return s.load(ctx, sessionID)
}

// Increment raises the quantity of itemName by one, after verifying the item
// exists in the catalog.
func (s *DefaultCartService) Increment(ctx context.Context, sessionID, itemName string) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	item, err := s.Catalog.GetByName(ctx, itemName)
	if err != nil {
		return nil, fmt.Errorf("failed to look up catalog item: %w", err)
	}
	if item == nil {
		return nil, ErrUnknownItem
	}
	c.Increment(itemName)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Decrement lowers the quantity of itemName by one; at quantity 1 the line is
// removed. Decrementing an absent item is a no-op.
func (s *DefaultCartService) Decrement(ctx context.Context, sessionID, itemName string) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Decrement(itemName)
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// SetQuantity sets an explicit quantity. Negative values are rejected with
// models.ErrNegativeQuantity rather than clamped.
func (s *DefaultCartService) SetQuantity(ctx context.Context, sessionID, itemName string, quantity int) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if quantity > 0 {
		item, err := s.Catalog.GetByName(ctx, itemName)
		if err != nil {
			return nil, fmt.Errorf("failed to look up catalog item: %w", err)
		}
		if item == nil {
			return nil, ErrUnknownItem
		}
	}
	if err := c.SetQuantity(itemName, quantity); err != nil {
		return nil, err
	}
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the cart unconditionally.
func (s *DefaultCartService) Clear(ctx context.Context, sessionID string) (*models.Cart, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c.Clear()
	if err := s.save(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Summarize prices the cart against the current catalog.
func (s *DefaultCartService) Summarize(ctx context.Context, sessionID string) (*Summary, error) {
	c, err := s.load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	prices, err := s.Catalog.PriceMap(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog prices: %w", err)
	}
	return BuildSummary(c, prices), nil
}

// BuildSummary computes the priced view of a cart from a price map. Pure.
func BuildSummary(c *models.Cart, prices map[string]float64) *Summary {
	summary := &Summary{
		SessionID: c.SessionID,
		Lines:     make([]LineSummary, 0, len(c.Lines)),
	}
	for name, line := range c.Lines {
		price := prices[name]
		lineTotal := float64(line.Quantity) * price
		summary.Lines = append(summary.Lines, LineSummary{
			ItemName:  name,
			Quantity:  line.Quantity,
			UnitPrice: price,
			LineTotal: lineTotal,
		})
		summary.Total += lineTotal
	}
	sort.Slice(summary.Lines, func(i, j int) bool {
		return summary.Lines[i].ItemName < summary.Lines[j].ItemName
	})
	return summary
}

func (s *DefaultCartService) load(ctx context.Context, sessionID string) (*models.Cart, error) {
	cacheClient := utils.GetSessionCacheClient()
	data, err := cacheClient.Get(ctx, cartKeyPrefix+sessionID).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCartNotFound
		}
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}
	var c models.Cart
	if err := json.Unmarshal([]byte(data), &c); err != nil {
		return nil, fmt.Errorf("failed to parse cart session: %w", err)
	}
	if c.Lines == nil {
		c.Lines = make(map[string]models.CartLine)
	}
	return &c, nil
}

func (s *DefaultCartService) save(ctx context.Context, c *models.Cart) error {
	data, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal cart session: %w", err)
	}
	cacheClient := utils.GetSessionCacheClient()
	if err := cacheClient.Set(ctx, cartKeyPrefix+c.SessionID, data, utils.SessionTTL()).Err(); err != nil {
		return fmt.Errorf("failed to store cart session: %w", err)
	}
	return nil
}
