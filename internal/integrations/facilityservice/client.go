package facilityservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/m04kA/SMC-FacilityBooking/internal/domain"
)

// Client клиент справочника объектов
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента справочника
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// ListFacilities получает все объекты справочника
func (c *Client) ListFacilities(ctx context.Context) ([]domain.Facility, error) {
	var payload []Facility
	if err := c.get(ctx, c.baseURL+"/internal/facilities", &payload); err != nil {
		return nil, err
	}

	facilities := make([]domain.Facility, 0, len(payload))
	for _, f := range payload {
		facilities = append(facilities, f.ToDomain())
	}
	return facilities, nil
}

// GetFacility получает объект по ID
func (c *Client) GetFacility(ctx context.Context, id int64) (*domain.Facility, error) {
	var payload Facility
	if err := c.get(ctx, fmt.Sprintf("%s/internal/facilities/%d", c.baseURL, id), &payload); err != nil {
		return nil, err
	}

	facility := payload.ToDomain()
	return &facility, nil
}

func (c *Client) get(ctx context.Context, url string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("FacilityService unavailable: GET %s: %v", url, err)
		return fmt.Errorf("%w: failed to execute request: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return ErrFacilityNotFound
	default:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		c.log.Error("FacilityService: GET %s returned %d", url, resp.StatusCode)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrTransport, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrTransport, err)
	}

	return nil
}
