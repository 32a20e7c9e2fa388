package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListPartners(ctx context.Context) ([]models.Partner, error) {
	var out []models.Partner
	if err := c.getJSON(ctx, "/api/v1/partners", &out); err != nil {
		return nil, err
	}
	return out, nil
}
