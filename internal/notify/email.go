// Package notify holds the outbound buyer-notification clients. Every sender
// here is best effort: callers log failures and move on, because a lost email
// or push must never roll back a committed order or document.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/shopspring/decimal"
)

// Email sends transactional mail through a Resend-compatible API.
type Email struct {
	client  *http.Client
	baseURL string
	apiKey  string
	from    string
}

func NewEmail(baseURL, apiKey, from string) *Email {
	return &Email{
		client:  &http.Client{Timeout: 15 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
		from:    from,
	}
}

type emailPayload struct {
	From    string   `json:"from"`
	To      []string `json:"to"`
	Subject string   `json:"subject"`
	HTML    string   `json:"html"`
}

// OrderCreated confirms a newly registered order to the buyer.
func (e *Email) OrderCreated(ctx context.Context, email, name string, total decimal.Decimal, orderID int64) error {
	subject := fmt.Sprintf("Pedido #%d recibido", orderID)
	html := fmt.Sprintf(
		"<p>Hola %s,</p><p>Recibimos tu pedido #%d por S/ %s. Te avisaremos cuando tu pago sea verificado.</p>",
		name, orderID, total.StringFixed(2),
	)

	return e.send(ctx, email, subject, html)
}

// DocumentIssued tells the buyer their fiscal document is ready, linking the
// PDF when the gateway returned one.
func (e *Email) DocumentIssued(ctx context.Context, email, name string, total decimal.Decimal, orderID int64, pdfLink string) error {
	subject := fmt.Sprintf("Comprobante emitido para tu pedido #%d", orderID)

	html := fmt.Sprintf(
		"<p>Hola %s,</p><p>Emitimos el comprobante de tu pedido #%d por S/ %s.</p>",
		name, orderID, total.StringFixed(2),
	)
	if pdfLink != "" {
		html += fmt.Sprintf(`<p><a href="%s">Descargar comprobante</a></p>`, pdfLink)
	}

	return e.send(ctx, email, subject, html)
}

func (e *Email) send(ctx context.Context, to, subject, html string) error {
	body, err := json.Marshal(emailPayload{
		From:    e.from,
		To:      []string{to},
		Subject: subject,
		HTML:    html,
	})
	if err != nil {
		return fmt.Errorf("encoding email: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.baseURL+"/emails", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+e.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := e.client.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("email API returned status %d: %s", resp.StatusCode, respBody)
	}

	return nil
}
