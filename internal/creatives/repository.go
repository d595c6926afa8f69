// Package creatives tracks metadata about uploaded ad creatives for the
// logged-in user. Binary assets live with the upload collaborator; only the
// catalog is kept locally.
package creatives

import (
	"context"

	"github.com/adcreativex/adcreativex/internal/models"
)

// Repository persists creative metadata.
type Repository interface {
	Create(ctx context.Context, c *models.Creative) error
	Get(ctx context.Context, id string) (*models.Creative, error)
	ListByUser(ctx context.Context, userID string) ([]models.Creative, error)
	UpdateStatus(ctx context.Context, id string, status models.CreativeStatus) error
}
