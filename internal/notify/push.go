package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Push publishes order events to the buyer's private channel so the
// storefront can refresh without polling.
type Push struct {
	client  *http.Client
	baseURL string
	key     string
}

func NewPush(baseURL, key string) *Push {
	return &Push{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		key:     key,
	}
}

type pushPayload struct {
	Channel string    `json:"channel"`
	Event   string    `json:"event"`
	Data    pushEvent `json:"data"`
}

type pushEvent struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
}

// OrderUpdate publishes to private-user-<buyerID>, the channel the
// storefront subscribes each authenticated buyer to.
func (p *Push) OrderUpdate(ctx context.Context, buyerID, orderID int64, status string) error {
	body, err := json.Marshal(pushPayload{
		Channel: fmt.Sprintf("private-user-%d", buyerID),
		Event:   "order-update",
		Data:    pushEvent{OrderID: orderID, Status: status},
	})
	if err != nil {
		return fmt.Errorf("encoding push event: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/events", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Token "+p.key)
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("push API returned status %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
