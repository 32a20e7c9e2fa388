package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListPayments(ctx context.Context) ([]models.Payment, error) {
	var out []models.Payment
	if err := c.getJSON(ctx, "/api/v1/payments", &out); err != nil {
		return nil, err
	}
	return out, nil
}
