package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/carbontrail/carbontrail/internal/client/models"
	"github.com/carbontrail/carbontrail/internal/logging"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL, Options{}, logging.NewNop())
}

func TestClient_LoginSuccess(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/v1/auth/login", r.URL.Path)

		var req struct {
			Email    string `json:"email"`
			Password string `json:"password"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, "amina@farm.example", req.Email)

		json.NewEncoder(w).Encode(map[string]any{
			"access_token": "tok-xyz",
			"user": map[string]string{
				"id":   "u-1",
				"name": "Amina",
				"role": "FARMER",
			},
		})
	}))

	res, err := c.Login(context.Background(), "amina@farm.example", "pw")
	require.NoError(t, err)
	require.Equal(t, "tok-xyz", res.Credential)
	require.Equal(t, "u-1", res.SubjectID)
	require.Equal(t, "Amina", res.DisplayName)
	require.Equal(t, "FARMER", res.Role)
}

func TestClient_LoginRejectionCarriesServerMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
	}))

	_, err := c.Login(context.Background(), "a@b.c", "bad")
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusUnauthorized, apiErr.Status)
	require.Equal(t, "invalid email or password", apiErr.Message)
	require.True(t, IsUnauthorized(err))
}

func TestClient_LoginMalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{"missing token", map[string]any{"user": map[string]string{"id": "u", "role": "USER"}}},
		{"missing identity", map[string]any{"access_token": "tok"}},
		{"missing role", map[string]any{
			"access_token": "tok",
			"user":         map[string]string{"id": "u", "name": "N"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				json.NewEncoder(w).Encode(tt.body)
			}))
			_, err := c.Login(context.Background(), "a@b.c", "pw")
			require.ErrorIs(t, err, ErrMalformedResponse)
		})
	}
}

func TestClient_UnreachableServerIsErrUnavailable(t *testing.T) {
	c := NewClient("http://127.0.0.1:0", Options{}, logging.NewNop())
	_, err := c.ListProjects(context.Background())
	require.ErrorIs(t, err, ErrUnavailable)
}

func TestClient_ListProjects(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/projects", r.URL.Path)
		json.NewEncoder(w).Encode([]models.Project{
			{ID: "p-1", Name: "Mangrove Restoration", Region: "Coastal Kenya"},
			{ID: "p-2", Name: "Agroforestry Belt"},
		})
	}))

	projects, err := c.ListProjects(context.Background())
	require.NoError(t, err)
	require.Len(t, projects, 2)
	require.Equal(t, "Mangrove Restoration", projects[0].Name)
}

func TestClient_PurchaseTreesForwardsBody(t *testing.T) {
	var got models.TreePurchaseRequest
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/api/v1/credits/purchase", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))

	err := c.PurchaseTrees(context.Background(), models.TreePurchaseRequest{
		SpeciesID: "s-1", FarmID: "f-1", Quantity: 40,
	})
	require.NoError(t, err)
	require.Equal(t, 40, got.Quantity)
}

func TestClient_ServerErrorPassesThrough(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(map[string]string{"message": "upstream down"})
	}))

	_, err := c.ListPartners(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.Status)
	require.Equal(t, "upstream down", apiErr.Message)
}

func TestClient_SendChatMessage(t *testing.T) {
	c := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Message string `json:"message"`
		}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		json.NewEncoder(w).Encode(models.ChatMessage{
			Role:    "assistant",
			Content: "You have 12 credits available. Asked: " + req.Message,
		})
	}))

	msg, err := c.SendChatMessage(context.Background(), "how many credits do I have?")
	require.NoError(t, err)
	require.Equal(t, "assistant", msg.Role)
	require.Contains(t, msg.Content, "12 credits")
}
