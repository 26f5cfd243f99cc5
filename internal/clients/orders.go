package clients

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"gitlab.com/emarket/devoluciones/internal/devolucion"
)

// KeyOrderDetail caches order lookups: order:detail:{order_id} -> Order JSON.
const KeyOrderDetail = "order:detail:%s"

var TTLOrderDetail = 5 * time.Minute

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type Order struct {
	ID              string      `json:"id"`
	CustomerID      string      `json:"customerId"`
	CustomerName    string      `json:"customerName"`
	CustomerEmail   string      `json:"customerEmail"`
	ShippingAddress string      `json:"shippingAddress"`
	Items           []OrderItem `json:"items"`
}

// OrderClient fetches order details from the order-query service, with a
// Redis read-through cache in front (lookups happen on every create and on
// detail enrichment).
type OrderClient struct {
	baseURL string
	http    *http.Client
	redis   *redis.Client
	logger  *zap.Logger
}

func NewOrderClient(baseURL string, timeout time.Duration, rdb *redis.Client, logger *zap.Logger) *OrderClient {
	return &OrderClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		redis:   rdb,
		logger:  logger,
	}
}

func (c *OrderClient) GetOrderByID(ctx context.Context, orderID string) (*Order, error) {
	cacheKey := fmt.Sprintf(KeyOrderDetail, orderID)
	if c.redis != nil {
		if cached, err := c.redis.Get(ctx, cacheKey).Result(); err == nil && cached != "" {
			var order Order
			if err := json.Unmarshal([]byte(cached), &order); err == nil {
				return &order, nil
			}
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s/orders/%s", c.baseURL, orderID), nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order service request failed: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("order %s: %w", orderID, devolucion.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("order service returned status %d", resp.StatusCode)
	}

	var order Order
	if err := json.NewDecoder(resp.Body).Decode(&order); err != nil {
		return nil, fmt.Errorf("failed to decode order response: %w", err)
	}

	if c.redis != nil {
		if raw, err := json.Marshal(order); err == nil {
			if err := c.redis.Set(ctx, cacheKey, raw, TTLOrderDetail).Err(); err != nil {
				c.logger.Debug("Failed to cache order detail", zap.String("order_id", orderID), zap.Error(err))
			}
		}
	}

	return &order, nil
}
