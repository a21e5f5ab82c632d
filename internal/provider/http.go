package provider

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"loginportal/internal/models"
)

// HTTPProvider fetches directory and catalog data from the data server.
// It implements both Directory and Catalog.
//
// No timeout is applied here; callers bound requests via ctx.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
}

func NewHTTPProvider(baseURL string) *HTTPProvider {
	return &HTTPProvider{baseURL: baseURL, client: &http.Client{}}
}

func (p *HTTPProvider) FetchUsers(ctx context.Context) ([]models.User, error) {
	var users []models.User
	if err := p.getJSON(ctx, "/users.json", &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (p *HTTPProvider) FetchProducts(ctx context.Context) ([]models.Product, error) {
	var products []models.Product
	if err := p.getJSON(ctx, "/products.json", &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (p *HTTPProvider) getJSON(ctx context.Context, path string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: GET %s: status %d", ErrUnavailable, path, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", ErrUnavailable, path, err)
	}
	return nil
}
