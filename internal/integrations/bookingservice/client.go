package bookingservice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"golang.org/x/time/rate"

	"github.com/kittyofheaven/kaizen-booking/internal/domain"
	"github.com/kittyofheaven/kaizen-booking/pkg/upstreammetrics"
)

// Doer интерфейс исполнителя HTTP запросов (подменяется обёрткой метрик)
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client клиент внешнего сервиса доступности и бронирований.
//
// Учётные данные передаются явно в каждый вызов; пустой token означает их
// отсутствие. Читающие методы при этом сразу возвращают ErrAuthRequired,
// не выполняя запрос — вызывающая сторона переходит на fail-open вариант.
type Client struct {
	baseURL    string
	httpClient Doer
	limiter    *rate.Limiter
	log        Logger
}

// NewClient создает новый экземпляр клиента сервиса бронирований
func NewClient(baseURL string, httpClient Doer, rps float64, burst int, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: httpClient,
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		log:        log,
	}
}

// NewDefaultHTTPClient возвращает http.Client с таймаутом для обёртывания
func NewDefaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// GetAvailability получает занятые окна ресурса на дату.
// При недоступности сервиса возвращает ErrServiceDegraded: читающий путь
// должен перейти на fail-open вариант, а не блокировать пользователя.
func (c *Client) GetAvailability(ctx context.Context, token string, kind domain.ResourceKind, resourceID, date string) ([]domain.OccupiedWindow, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}

	endpoint := fmt.Sprintf("%s/api/v1/resources/%s/availability", c.baseURL, url.PathEscape(string(kind)))
	query := url.Values{"date": {date}}
	if resourceID != "" {
		query.Set("resourceId", resourceID)
	}

	var resp availabilityResponse
	if err := c.getJSON(ctx, "get_availability", endpoint+"?"+query.Encode(), token, &resp); err != nil {
		return nil, err
	}

	return toOccupiedWindows(resp.Windows), nil
}

// GetBookingsByDate получает все бронирования типа объекта на дату
// (для обзорных календарей; каждое бронирование несёт сводку владельца)
func (c *Client) GetBookingsByDate(ctx context.Context, token string, kind domain.ResourceKind, resourceID, date string) ([]domain.OccupiedWindow, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}

	endpoint := fmt.Sprintf("%s/api/v1/resources/%s/bookings", c.baseURL, url.PathEscape(string(kind)))
	query := url.Values{"date": {date}}
	if resourceID != "" {
		query.Set("resourceId", resourceID)
	}

	var resp bookingsResponse
	if err := c.getJSON(ctx, "get_bookings_by_date", endpoint+"?"+query.Encode(), token, &resp); err != nil {
		return nil, err
	}

	return bookingsToWindows(resp.Bookings), nil
}

// GetCatalog получает каталог ресурсов типа объекта
func (c *Client) GetCatalog(ctx context.Context, token string, kind domain.ResourceKind) ([]domain.Resource, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}

	endpoint := fmt.Sprintf("%s/api/v1/resources/%s/catalog", c.baseURL, url.PathEscape(string(kind)))

	var resp catalogResponse
	if err := c.getJSON(ctx, "get_catalog", endpoint, token, &resp); err != nil {
		return nil, err
	}

	return toResources(resp.Resources), nil
}

// CreateBooking отправляет запрос на создание бронирования.
// Сервер — единственный арбитр конфликтов: отказ возвращается как
// RejectionError с дословным сообщением для пользователя.
func (c *Client) CreateBooking(ctx context.Context, token string, req *CreateBookingRequest) (*CreatedBooking, error) {
	if token == "" {
		return nil, ErrAuthRequired
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/bookings", c.baseURL)
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	httpReq = upstreammetrics.WithOperation(httpReq, "create_booking")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		c.log.Error("BookingService unavailable on create: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return nil, ErrAuthRequired
	case http.StatusBadRequest, http.StatusConflict, http.StatusUnprocessableEntity:
		// Бизнес-отказ сервера: сообщение сохраняется дословно
		return nil, &RejectionError{Message: readErrorMessage(resp.Body, resp.StatusCode)}
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var created CreatedBooking
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &created, nil
}

// getJSON выполняет GET запрос с bearer-токеном и декодирует JSON ответ
func (c *Client) getJSON(ctx context.Context, operation, endpoint, token string, out interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}
	req = upstreammetrics.WithOperation(req, operation)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Недоступность сервиса на читающем пути — graceful degradation
		c.log.Error("BookingService unavailable (%s): %v", operation, err)
		return fmt.Errorf("%w: %v", ErrServiceDegraded, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusUnauthorized:
		return ErrAuthRequired
	default:
		body, _ := io.ReadAll(resp.Body)
		c.log.Error("BookingService returned status %d (%s): %s", resp.StatusCode, operation, string(body))
		return fmt.Errorf("%w: unexpected status code %d", ErrServiceDegraded, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}

// readErrorMessage извлекает сообщение из тела ошибки.
// Если тело не соответствует ErrorResponse, возвращается сырой текст.
func readErrorMessage(r io.Reader, statusCode int) string {
	raw, err := io.ReadAll(r)
	if err != nil || len(raw) == 0 {
		return fmt.Sprintf("booking service returned status %d", statusCode)
	}

	var errResp ErrorResponse
	if err := json.Unmarshal(raw, &errResp); err == nil && errResp.Message != "" {
		return errResp.Message
	}

	return string(raw)
}
