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

type RefundRequest struct {
	OrderID string  `json:"orderId"`
	Amount  float64 `json:"amount"`
	Reason  string  `json:"reason"`
}

type RefundResult struct {
	TransactionID string    `json:"transactionId"`
	ProcessedAt   time.Time `json:"processedAt"`
}

// PaymentsClient calls the external refund endpoint. A declined refund is
// reported as (nil, nil): the gateway answered but issued no transaction id.
type PaymentsClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewPaymentsClient(baseURL string, timeout time.Duration, logger *zap.Logger) *PaymentsClient {
	return &PaymentsClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *PaymentsClient) ProcessRefund(ctx context.Context, reqBody RefundRequest) (*RefundResult, error) {
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/refunds", bytes.NewReader(raw))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("payments gateway request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnprocessableEntity {
		c.logger.Warn("Refund declined by gateway", zap.String("order_id", reqBody.OrderID), zap.Float64("amount", reqBody.Amount))
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return nil, fmt.Errorf("payments gateway returned status %d", resp.StatusCode)
	}

	var result RefundResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode refund response: %w", err)
	}
	if result.TransactionID == "" {
		// Contract quirk: some gateway responses answer 200 with an empty
		// body when the refund was not accepted.
		return nil, nil
	}
	return &result, nil
}
