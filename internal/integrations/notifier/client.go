package notifier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент исходящих webhook-уведомлений
// Ответ webhook не влияет на корректность бронирования: вызывающая сторона
// отправляет уведомление в отдельной горутине и только логирует ошибку
type Client struct {
	url        string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента уведомлений
func NewClient(url string, timeout time.Duration, log Logger) *Client {
	return &Client{
		url: url,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Notify отправляет уведомление о созданном бронировании
func (c *Client) Notify(ctx context.Context, notification *BookingNotification) error {
	if c.url == "" {
		return ErrNotConfigured
	}

	body, err := json.Marshal(notification)
	if err != nil {
		return fmt.Errorf("%w: marshal payload: %v", ErrDeliveryFailed, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", ErrDeliveryFailed, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: execute request: %v", ErrDeliveryFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: webhook returned status %d: %s", ErrDeliveryFailed, resp.StatusCode, string(respBody))
	}

	c.log.Info("Notification delivered: booking_id=%d", notification.BookingID)
	return nil
}
