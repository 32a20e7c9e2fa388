package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListFarms(ctx context.Context) ([]models.Farm, error) {
	var out []models.Farm
	if err := c.getJSON(ctx, "/api/v1/farms", &out); err != nil {
		return nil, err
	}
	return out, nil
}
