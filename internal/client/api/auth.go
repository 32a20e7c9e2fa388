package api

import (
	"context"
	"fmt"
)

// LoginResult is the slice of the login response the session model needs:
// the bearer credential plus the identity record. Role stays a raw string
// here; the auth service parses it against the closed enum.
type LoginResult struct {
	Credential  string
	SubjectID   string
	DisplayName string
	Role        string
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	AccessToken string `json:"access_token"`
	User        struct {
		ID   string `json:"id"`
		Name string `json:"name"`
		Role string `json:"role"`
	} `json:"user"`
}

// Login submits credentials to the backend. Invalid credentials come
// back as an *APIError carrying the server's message; a response missing
// the token or identity fields is ErrMalformedResponse.
func (c *Client) Login(ctx context.Context, email, password string) (LoginResult, error) {
	var resp loginResponse
	if err := c.postJSON(ctx, "/api/v1/auth/login", loginRequest{Email: email, Password: password}, &resp); err != nil {
		return LoginResult{}, err
	}

	if resp.AccessToken == "" || resp.User.ID == "" || resp.User.Role == "" {
		return LoginResult{}, fmt.Errorf("%w: incomplete login payload", ErrMalformedResponse)
	}

	return LoginResult{
		Credential:  resp.AccessToken,
		SubjectID:   resp.User.ID,
		DisplayName: resp.User.Name,
		Role:        resp.User.Role,
	}, nil
}
