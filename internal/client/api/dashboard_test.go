package api

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/carbontrail/carbontrail/internal/client/models"
	"github.com/stretchr/testify/require"
)

func TestClient_DashboardSummary(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/projects", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Project{{ID: "p-1"}, {ID: "p-2"}})
	})
	mux.HandleFunc("/api/v1/farms", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Farm{{ID: "f-1"}})
	})
	mux.HandleFunc("/api/v1/credits", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.CarbonCredit{
			{ID: "c-1", Tonnes: 2.5},
			{ID: "c-2", Tonnes: 1.5},
		})
	})
	mux.HandleFunc("/api/v1/payments", func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]models.Payment{
			{ID: "pay-1", Amount: 100, Status: "COMPLETED"},
			{ID: "pay-2", Amount: 40, Status: "PENDING"},
		})
	})

	c := newTestClient(t, mux)

	sum, err := c.DashboardSummary(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, sum.Projects)
	require.Equal(t, 1, sum.Farms)
	require.Equal(t, 2, sum.Credits)
	require.Equal(t, 2, sum.Payments)
	require.InDelta(t, 4.0, sum.TotalTonnes, 1e-9)
	require.InDelta(t, 100.0, sum.TotalRevenue, 1e-9)
}

func TestClient_DashboardSummaryFailsWhole(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/api/v1/credits" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		json.NewEncoder(w).Encode([]any{})
	})

	c := newTestClient(t, mux)

	_, err := c.DashboardSummary(context.Background())
	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusInternalServerError, apiErr.Status)
}
