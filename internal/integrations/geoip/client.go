package geoip

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент для работы с GeoIP сервисом
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента GeoIP
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Lookup получает координаты и таймзону по IP
func (c *Client) Lookup(ctx context.Context, ip string) (*Position, error) {
	url := fmt.Sprintf("%s/v1/lookup/%s", c.baseURL, ip)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid IP format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrPositionNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var pos Position
	if err := json.NewDecoder(resp.Body).Decode(&pos); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &pos, nil
}

// LookupWithGracefulDegradation получает координаты по IP с graceful degradation.
// При недоступности geoip возвращает ErrServiceDegraded - статус тогда
// считается по расписанию бренда без привязки к ближайшей точке
func (c *Client) LookupWithGracefulDegradation(ctx context.Context, ip string) (*Position, error) {
	pos, err := c.Lookup(ctx, ip)
	if err != nil {
		// Для IP без координат это штатный результат
		if err == ErrPositionNotFound {
			c.log.Info("No position found for ip=%s", ip)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга)
		// применяем graceful degradation
		c.log.Error("GeoIP unavailable, applying graceful degradation for ip=%s: %v", ip, err)
		return nil, fmt.Errorf("%w: ip=%s, error=%v", ErrServiceDegraded, ip, err)
	}

	c.log.Info("Resolved ip=%s to city=%s tz=%s", ip, pos.City, pos.Timezone)
	return pos, nil
}
