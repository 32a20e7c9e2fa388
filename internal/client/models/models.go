// Package models holds the data-transfer shapes the CarbonTrail backend
// exchanges with this client. The server owns these records and their
// invariants; the client only displays and forwards them.
package models

import "time"

type Project struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Region      string    `json:"region"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

type TreeSpecies struct {
	ID             string  `json:"id"`
	CommonName     string  `json:"common_name"`
	ScientificName string  `json:"scientific_name"`
	CO2PerYearKg   float64 `json:"co2_per_year_kg"`
	PricePerUnit   float64 `json:"price_per_unit"`
}

type Farm struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	OwnerID   string  `json:"owner_id"`
	Location  string  `json:"location"`
	AreaHa    float64 `json:"area_ha"`
	TreeCount int     `json:"tree_count"`
}

type Contract struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	PartnerID string    `json:"partner_id"`
	Status    string    `json:"status"`
	SignedAt  time.Time `json:"signed_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type CarbonCredit struct {
	ID        string    `json:"id"`
	ProjectID string    `json:"project_id"`
	OwnerID   string    `json:"owner_id"`
	Tonnes    float64   `json:"tonnes"`
	Status    string    `json:"status"`
	IssuedAt  time.Time `json:"issued_at"`
}

type Payment struct {
	ID        string    `json:"id"`
	PayerID   string    `json:"payer_id"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

type Partner struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ContactEmail string `json:"contact_email"`
	Country      string `json:"country"`
}

// TreePurchaseRequest is sent when a user buys trees of a species for a farm.
type TreePurchaseRequest struct {
	SpeciesID string `json:"species_id"`
	FarmID    string `json:"farm_id"`
	Quantity  int    `json:"quantity"`
}

// CreditAllocationRequest assigns issued credits to a partner contract.
type CreditAllocationRequest struct {
	CreditID   string  `json:"credit_id"`
	ContractID string  `json:"contract_id"`
	Tonnes     float64 `json:"tonnes"`
}

type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// DashboardSummary aggregates the counts shown on the landing view.
type DashboardSummary struct {
	Projects     int     `json:"projects"`
	Farms        int     `json:"farms"`
	Credits      int     `json:"credits"`
	Payments     int     `json:"payments"`
	TotalTonnes  float64 `json:"total_tonnes"`
	TotalRevenue float64 `json:"total_revenue"`
}
