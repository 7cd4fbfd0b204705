package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"savr/order-svc/internal/domain"
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// HTTPCatalog reads nearby restaurants from menu-svc.
type HTTPCatalog struct {
	BaseURL string
	Client  HTTPClient
}

func NewHTTPCatalog(baseURL string, client HTTPClient) *HTTPCatalog {
	return &HTTPCatalog{BaseURL: strings.TrimRight(baseURL, "/"), Client: client}
}

func (c *HTTPCatalog) FetchNearby(ctx context.Context, latitude, longitude float64, token string) ([]domain.Restaurant, error) {
	query := url.Values{}
	query.Set("lat", strconv.FormatFloat(latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(longitude, 'f', -1, 64))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet,
		c.BaseURL+"/api/restaurants/nearby?"+query.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("fetch catalog: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	var restaurants []domain.Restaurant
	if err := json.NewDecoder(resp.Body).Decode(&restaurants); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return restaurants, nil
}
