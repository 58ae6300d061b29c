package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Action labels the user action being reported.
type Action string

const (
	ActionSignup        Action = "signup"
	ActionPasswordReset Action = "password_reset"
)

// Event is the webhook payload.
type Event struct {
	Email     string `json:"email"`
	Action    Action `json:"action"`
	Timestamp string `json:"timestamp"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
}

// Notifier reports user events to an external sink. Implementations must
// never surface failure to the caller; analytics cannot block or fail a
// user-facing flow.
type Notifier interface {
	Notify(event Event)
}

// Webhook posts events as JSON to a configured URL, fire-and-forget. The
// response is not inspected and any error is swallowed after a debug log,
// so callers always proceed as though the call succeeded.
type Webhook struct {
	url    string
	client *http.Client
	log    *logrus.Logger
}

// NewWebhook creates a webhook notifier. When url is empty a Nop notifier is
// returned instead.
func NewWebhook(url string, timeout time.Duration, log *logrus.Logger) Notifier {
	if url == "" {
		return Nop{}
	}
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Webhook{
		url:    url,
		client: &http.Client{Timeout: timeout},
		log:    log,
	}
}

// Notify dispatches the event in the background and returns immediately.
func (w *Webhook) Notify(event Event) {
	if event.Timestamp == "" {
		event.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	go func() {
		if err := w.send(event); err != nil {
			w.log.WithError(err).WithFields(logrus.Fields{
				"action": event.Action,
				"email":  event.Email,
			}).Debug("analytics webhook failed")
		}
	}()
}

func (w *Webhook) send(event Event) error {
	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), w.client.Timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, w.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := w.client.Do(req)
	if err != nil {
		return fmt.Errorf("webhook request failed: %w", err)
	}
	// The web client fires this in no-cors mode, so the status is
	// unobservable either way. Drain and move on.
	resp.Body.Close()
	return nil
}

// Nop is a Notifier that discards every event.
type Nop struct{}

// Notify does nothing.
func (Nop) Notify(Event) {}

// Compile-time interface checks
var (
	_ Notifier = (*Webhook)(nil)
	_ Notifier = Nop{}
)
