package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListContracts(ctx context.Context) ([]models.Contract, error) {
	var out []models.Contract
	if err := c.getJSON(ctx, "/api/v1/contracts", &out); err != nil {
		return nil, err
	}
	return out, nil
}
