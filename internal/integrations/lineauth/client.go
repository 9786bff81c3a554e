package lineauth

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client клиент для проверки LINE access token и получения профиля
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента LINE API
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// VerifyToken проверяет access token и возвращает профиль пользователя
// Невалидный или истекший токен дает ErrTokenInvalid
func (c *Client) VerifyToken(ctx context.Context, accessToken string) (*Profile, error) {
	if err := c.verify(ctx, accessToken); err != nil {
		return nil, err
	}
	return c.getProfile(ctx, accessToken)
}

// verify проверяет валидность токена через verify endpoint
func (c *Client) verify(ctx context.Context, accessToken string) error {
	verifyURL := fmt.Sprintf("%s/oauth2/v2.1/verify?access_token=%s", c.baseURL, url.QueryEscape(accessToken))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, verifyURL, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnauthorized:
		return ErrTokenInvalid
	default:
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var verified verifyResponse
	if err := json.NewDecoder(resp.Body).Decode(&verified); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if verified.ExpiresIn <= 0 {
		return ErrTokenInvalid
	}

	return nil
}

// getProfile запрашивает профиль пользователя по токену
func (c *Client) getProfile(ctx context.Context, accessToken string) (*Profile, error) {
	profileURL := fmt.Sprintf("%s/v2/profile", c.baseURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrTokenInvalid
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	if profile.UserID == "" {
		return nil, fmt.Errorf("%w: empty userId in profile", ErrInvalidResponse)
	}

	return &profile, nil
}
