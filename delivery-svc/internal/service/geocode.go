package service

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ravintola-sinet/delivery-svc/internal/domain"
)

const (
	MinSearchLength    = 3
	searchLimit        = 6
	searchCountryCodes = "fi"
	geocodeTimeout     = 8 * time.Second
)

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type Geocoder interface {
	Search(ctx context.Context, query string) ([]domain.Place, error)
	Reverse(ctx context.Context, lat, lng float64) (string, error)
}

// NominatimClient talks to an OpenStreetMap Nominatim instance.
type NominatimClient struct {
	BaseURL   string
	UserAgent string
	Referer   string
	client    HTTPClient
}

func NewNominatimClient(baseURL, userAgent, referer string, client HTTPClient) *NominatimClient {
	if client == nil {
		client = &http.Client{Timeout: geocodeTimeout}
	}
	return &NominatimClient{
		BaseURL:   strings.TrimRight(baseURL, "/"),
		UserAgent: userAgent,
		Referer:   referer,
		client:    client,
	}
}

// Search returns at most six Finnish address matches. Queries shorter than
// three characters never reach the upstream.
func (c *NominatimClient) Search(ctx context.Context, query string) ([]domain.Place, error) {
	query = strings.TrimSpace(query)
	if len([]rune(query)) < MinSearchLength {
		return []domain.Place{}, nil
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")
	params.Set("limit", strconv.Itoa(searchLimit))
	params.Set("countrycodes", searchCountryCodes)

	var found []domain.Place
	if err := c.get(ctx, "/search", params, &found); err != nil {
		return nil, err
	}
	if found == nil {
		found = []domain.Place{}
	}
	return found, nil
}

func (c *NominatimClient) Reverse(ctx context.Context, lat, lng float64) (string, error) {
	params := url.Values{}
	params.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	params.Set("lon", strconv.FormatFloat(lng, 'f', -1, 64))
	params.Set("format", "jsonv2")
	params.Set("addressdetails", "1")

	var place domain.Place
	if err := c.get(ctx, "/reverse", params, &place); err != nil {
		return "", err
	}
	return place.DisplayName, nil
}

func (c *NominatimClient) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", c.UserAgent)
	req.Header.Set("Accept", "application/json")
	if c.Referer != "" {
		req.Header.Set("Referer", c.Referer)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("nominatim %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("nominatim %s: unexpected status %d", path, resp.StatusCode)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("nominatim %s: %w", path, err)
	}
	return nil
}
