package push

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/hostel-backend/internal/domain"
)

const retryDelay = 500 * time.Millisecond

// WebhookSink posts every notification as JSON to a fixed URL, where a
// gateway fans it out to the user's devices.
type WebhookSink struct {
	url        string
	httpClient *http.Client
	log        *slog.Logger
}

// NewWebhookSink creates a WebhookSink with the given request timeout.
func NewWebhookSink(url string, timeout time.Duration, log *slog.Logger) *WebhookSink {
	return &WebhookSink{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
		log:        log.With("component", "push", "sink", "webhook"),
	}
}

type webhookPayload struct {
	UserID    uuid.UUID `json:"userId"`
	ID        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

// Push implements notification.Sink. Any 2xx answer is a delivery.
func (s *WebhookSink) Push(ctx context.Context, userID uuid.UUID, n *domain.Notification) error {
	body, err := json.Marshal(webhookPayload{
		UserID:    userID,
		ID:        n.ID,
		Title:     n.Title,
		Message:   n.Message,
		Type:      string(n.Type),
		CreatedAt: n.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("webhook: encode: %w", err)
	}

	resp, err := s.doWithRetry(ctx, body, n.ID)
	if err != nil {
		return fmt.Errorf("webhook: request failed: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook: unexpected status %d", resp.StatusCode)
	}

	s.log.DebugContext(ctx, "push delivered",
		slog.String("user_id", userID.String()),
		slog.String("notification_id", n.ID.String()),
	)
	return nil
}

// doWithRetry posts body once more on a 5xx answer or a network error.
func (s *WebhookSink) doWithRetry(ctx context.Context, body []byte, id uuid.UUID) (*http.Response, error) {
	resp, err := s.post(ctx, body)

	shouldRetry := err != nil || resp.StatusCode >= 500
	if !shouldRetry || ctx.Err() != nil {
		return resp, err
	}

	reason := "network error"
	if err == nil {
		reason = fmt.Sprintf("status %d", resp.StatusCode)
		resp.Body.Close()
	}
	s.log.WarnContext(ctx, "push retry", slog.String("notification_id", id.String()), slog.String("reason", reason))

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case <-time.After(retryDelay):
	}

	return s.post(ctx, body)
}

func (s *WebhookSink) post(ctx context.Context, body []byte) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	return s.httpClient.Do(req)
}
