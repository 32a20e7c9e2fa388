package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListCarbonCredits(ctx context.Context) ([]models.CarbonCredit, error) {
	var out []models.CarbonCredit
	if err := c.getJSON(ctx, "/api/v1/credits", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// PurchaseTrees forwards a tree purchase; all validation and credit
// accounting happen server-side.
func (c *Client) PurchaseTrees(ctx context.Context, req models.TreePurchaseRequest) error {
	return c.postJSON(ctx, "/api/v1/credits/purchase", req, nil)
}

// AllocateCredits assigns issued credits to a partner contract.
func (c *Client) AllocateCredits(ctx context.Context, req models.CreditAllocationRequest) error {
	return c.postJSON(ctx, "/api/v1/credits/allocate", req, nil)
}
