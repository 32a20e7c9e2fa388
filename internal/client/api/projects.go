package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

func (c *Client) ListProjects(ctx context.Context) ([]models.Project, error) {
	var out []models.Project
	if err := c.getJSON(ctx, "/api/v1/projects", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) GetProject(ctx context.Context, id string) (models.Project, error) {
	var out models.Project
	if err := c.getJSON(ctx, "/api/v1/projects/"+id, &out); err != nil {
		return models.Project{}, err
	}
	return out, nil
}
