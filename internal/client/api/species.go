package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListTreeSpecies(ctx context.Context) ([]models.TreeSpecies, error) {
	var out []models.TreeSpecies
	if err := c.getJSON(ctx, "/api/v1/species", &out); err != nil {
		return nil, err
	}
	return out, nil
}
