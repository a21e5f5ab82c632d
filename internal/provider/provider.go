// Package provider gives the portal read-only access to its two external
// resources: the user directory and the product catalog. Both are plain JSON
// arrays behind GET endpoints; failures collapse to ErrUnavailable so callers
// can show one generic message while the detail is logged.
package provider

import (
	"context"
	"errors"

	"loginportal/internal/models"
)

var ErrUnavailable = errors.New("data provider unavailable")

// Directory serves the full set of user records used for credential checks.
type Directory interface {
	FetchUsers(ctx context.Context) ([]models.User, error)
}

// Catalog serves the full set of product records available for browsing.
type Catalog interface {
	FetchProducts(ctx context.Context) ([]models.Product, error)
}
