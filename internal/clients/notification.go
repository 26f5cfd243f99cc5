package clients

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"gitlab.com/emarket/devoluciones/internal/devolucion"
)

type ApprovalNotification struct {
	CustomerEmail string                          `json:"customerEmail"`
	CustomerName  string                          `json:"customerName"`
	Codigo        string                          `json:"codigo"`
	Instructions  devolucion.ShippingInstructions `json:"instructions"`
}

type RejectionNotification struct {
	CustomerEmail string `json:"customerEmail"`
	CustomerName  string `json:"customerName"`
	Codigo        string `json:"codigo"`
	Motivo        string `json:"motivo"`
	Comentario    string `json:"comentario,omitempty"`
}

// NotificationClient is strictly best-effort: callers log failures and move
// on, a degraded notification service must never block a return.
type NotificationClient struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

func NewNotificationClient(baseURL string, timeout time.Duration, logger *zap.Logger) *NotificationClient {
	return &NotificationClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
		logger:  logger,
	}
}

func (c *NotificationClient) SendApprovalNotification(ctx context.Context, payload ApprovalNotification) error {
	return c.post(ctx, "/notifications/return-approved", payload)
}

func (c *NotificationClient) SendRejectionNotification(ctx context.Context, payload RejectionNotification) error {
	return c.post(ctx, "/notifications/return-rejected", payload)
}

func (c *NotificationClient) post(ctx context.Context, path string, payload interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("notification service request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("notification service returned status %d", resp.StatusCode)
	}
	c.logger.Debug("Notification sent", zap.String("path", path))
	return nil
}
