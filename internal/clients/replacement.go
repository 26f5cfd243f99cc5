package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
)

// TaxRate is the fixed rate applied to replacement orders.
const TaxRate = 0.18

// PlaceholderAddress is used when the original shipping address is not
// available at replacement time.
const PlaceholderAddress = "Dirección pendiente de confirmación"

type ReplacementItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

type ReplacementOrder struct {
	ID        string    `json:"id"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}

type replacementOrderRequest struct {
	CustomerID      string            `json:"customerId"`
	Items           []ReplacementItem `json:"items"`
	OriginalOrderID string            `json:"originalOrderId"`
	ReturnID        string            `json:"returnId"`
	ShippingAddress string            `json:"shippingAddress"`
	Subtotal        float64           `json:"subtotal"`
	Tax             float64           `json:"tax"`
	ShippingCost    float64           `json:"shippingCost"`
	Total           float64           `json:"total"`
}

// ReplacementClient submits order-creation requests to the order-command
// service for replaced items: subtotal over the items, fixed 18% tax, zero
// shipping.
type ReplacementClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewReplacementClient(baseURL string, timeout time.Duration, logger *zap.Logger) *ReplacementClient {
	return &ReplacementClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *ReplacementClient) CreateReplacementOrder(ctx context.Context, customerID string, items []ReplacementItem, originalOrderID, returnID, shippingAddress string) (*ReplacementOrder, error) {
	if shippingAddress == "" {
		shippingAddress = PlaceholderAddress
	}

	var subtotal float64
	for _, it := range items {
		subtotal += it.Price * float64(it.Quantity)
	}
	tax := subtotal * TaxRate

	body := replacementOrderRequest{
		CustomerID:      customerID,
		Items:           items,
		OriginalOrderID: originalOrderID,
		ReturnID:        returnID,
		ShippingAddress: shippingAddress,
		Subtotal:        subtotal,
		Tax:             tax,
		ShippingCost:    0,
		Total:           subtotal + tax,
	}

	raw, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/orders", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("order-command service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusCreated && resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("order-command service returned status %d", resp.StatusCode)
	}

	var created ReplacementOrder
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("failed to decode replacement order response: %w", err)
	}

	c.logger.Info("Replacement order created",
		zap.String("replacement_order_id", created.ID),
		zap.String("return_id", returnID),
		zap.Float64("total", body.Total))
	return &created, nil
}
