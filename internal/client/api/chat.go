package api

import (
	"context"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

type chatRequest struct {
	Message string `json:"message"`
}

// SendChatMessage forwards a prompt to the marketplace's AI assistant
// and returns the assistant's reply.
func (c *Client) SendChatMessage(ctx context.Context, message string) (models.ChatMessage, error) {
	var out models.ChatMessage
	if err := c.postJSON(ctx, "/api/v1/chat", chatRequest{Message: message}, &out); err != nil {
		return models.ChatMessage{}, err
	}
	return out, nil
}
