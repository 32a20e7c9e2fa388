package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
	"golang.org/x/sync/errgroup"
)

// DashboardSummary assembles the landing-view numbers by fanning the
// per-resource fetches out concurrently. Any single failure fails the
// whole summary; the caller decides what to show instead.
func (c *Client) DashboardSummary(ctx context.Context) (models.DashboardSummary, error) {
	var (
		projects []models.Project
		farms    []models.Farm
		credits  []models.CarbonCredit
		payments []models.Payment
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		projects, err = c.ListProjects(ctx)
		return err
	})
	g.Go(func() (err error) {
		farms, err = c.ListFarms(ctx)
		return err
	})
	g.Go(func() (err error) {
		credits, err = c.ListCarbonCredits(ctx)
		return err
	})
	g.Go(func() (err error) {
		payments, err = c.ListPayments(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return models.DashboardSummary{}, err
	}

	sum := models.DashboardSummary{
		Projects: len(projects),
		Farms:    len(farms),
		Credits:  len(credits),
		Payments: len(payments),
	}
	for _, cr := range credits {
		sum.TotalTonnes += cr.Tonnes
	}
	for _, p := range payments {
		if p.Status == "COMPLETED" {
			sum.TotalRevenue += p.Amount
		}
	}
	return sum, nil
}
