package devstub

import (
	"time"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

var seedTime = time.Date(2026, time.March, 12, 9, 0, 0, 0, time.UTC)

var stubProjects = []models.Project{
	{ID: "p-1", Name: "Mangrove Restoration", Description: "Replanting coastal mangroves", Region: "Kilifi", Status: "ACTIVE", CreatedAt: seedTime},
	{ID: "p-2", Name: "Agroforestry Belt", Description: "Shade trees on smallholder farms", Region: "Nyeri", Status: "ACTIVE", CreatedAt: seedTime},
	{ID: "p-3", Name: "Bamboo Corridor", Description: "Riverbank bamboo planting", Region: "Kisumu", Status: "DRAFT", CreatedAt: seedTime},
}

var stubSpecies = []models.TreeSpecies{
	{ID: "s-1", CommonName: "Red Mangrove", ScientificName: "Rhizophora mucronata", CO2PerYearKg: 12.3, PricePerUnit: 1.5},
	{ID: "s-2", CommonName: "Grevillea", ScientificName: "Grevillea robusta", CO2PerYearKg: 21.8, PricePerUnit: 0.9},
	{ID: "s-3", CommonName: "Giant Bamboo", ScientificName: "Dendrocalamus giganteus", CO2PerYearKg: 35.1, PricePerUnit: 2.2},
}

var stubFarms = []models.Farm{
	{ID: "f-1", Name: "Njoroge Homestead", OwnerID: "u-farmer", Location: "Nyeri", AreaHa: 2.4, TreeCount: 310},
	{ID: "f-2", Name: "Kilifi Shore Plot", OwnerID: "u-farmer", Location: "Kilifi", AreaHa: 0.8, TreeCount: 95},
}

var stubContracts = []models.Contract{
	{ID: "ct-1", ProjectID: "p-1", PartnerID: "pa-1", Status: "SIGNED", SignedAt: seedTime, ExpiresAt: seedTime.AddDate(5, 0, 0)},
	{ID: "ct-2", ProjectID: "p-2", PartnerID: "pa-2", Status: "PENDING"},
}

var stubCredits = []models.CarbonCredit{
	{ID: "c-1", ProjectID: "p-1", OwnerID: "u-farmer", Tonnes: 3.2, Status: "ISSUED", IssuedAt: seedTime},
	{ID: "c-2", ProjectID: "p-2", OwnerID: "u-user", Tonnes: 1.1, Status: "ALLOCATED", IssuedAt: seedTime},
}

var stubPayments = []models.Payment{
	{ID: "pay-1", PayerID: "pa-1", Amount: 480, Currency: "USD", Status: "COMPLETED", CreatedAt: seedTime},
	{ID: "pay-2", PayerID: "pa-2", Amount: 165, Currency: "USD", Status: "PENDING", CreatedAt: seedTime},
}

var stubPartners = []models.Partner{
	{ID: "pa-1", Name: "Verdant Logistics", ContactEmail: "csr@verdant.example", Country: "KE"},
	{ID: "pa-2", Name: "Northwind Air", ContactEmail: "offsets@northwind.example", Country: "NL"},
}
