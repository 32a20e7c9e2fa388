package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/carbontrail/carbontrail/internal/client/api"
)

// render fetches and prints a view's data. Errors coming back from the
// API are shown to the user, not returned up the REPL.
func (a *App) render(ctx context.Context, name string) error {
	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	defer w.Flush()

	switch name {
	case "dashboard":
		sum, err := a.api.DashboardSummary(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintf(w, "Projects\t%d\n", sum.Projects)
		fmt.Fprintf(w, "Farms\t%d\n", sum.Farms)
		fmt.Fprintf(w, "Credits\t%d (%.1f t CO2)\n", sum.Credits, sum.TotalTonnes)
		fmt.Fprintf(w, "Payments\t%d (%.2f completed)\n", sum.Payments, sum.TotalRevenue)

	case "projects":
		items, err := a.api.ListProjects(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tNAME\tREGION\tSTATUS")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Region, p.Status)
		}

	case "species":
		items, err := a.api.ListTreeSpecies(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tNAME\tSCIENTIFIC\tCO2/YR (KG)\tPRICE")
		for _, s := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%.2f\n", s.ID, s.CommonName, s.ScientificName, s.CO2PerYearKg, s.PricePerUnit)
		}

	case "farms":
		items, err := a.api.ListFarms(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tNAME\tLOCATION\tAREA (HA)\tTREES")
		for _, f := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%.1f\t%d\n", f.ID, f.Name, f.Location, f.AreaHa, f.TreeCount)
		}

	case "contracts":
		items, err := a.api.ListContracts(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tPROJECT\tPARTNER\tSTATUS")
		for _, c := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", c.ID, c.ProjectID, c.PartnerID, c.Status)
		}

	case "credits":
		items, err := a.api.ListCarbonCredits(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tPROJECT\tTONNES\tSTATUS")
		for _, c := range items {
			fmt.Fprintf(w, "%s\t%s\t%.2f\t%s\n", c.ID, c.ProjectID, c.Tonnes, c.Status)
		}

	case "payments":
		items, err := a.api.ListPayments(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tPAYER\tAMOUNT\tSTATUS")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t%s\t%.2f %s\t%s\n", p.ID, p.PayerID, p.Amount, p.Currency, p.Status)
		}

	case "partners":
		items, err := a.api.ListPartners(ctx)
		if err != nil {
			return a.showError(err)
		}
		fmt.Fprintln(w, "ID\tNAME\tCOUNTRY\tCONTACT")
		for _, p := range items {
			fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", p.ID, p.Name, p.Country, p.ContactEmail)
		}

	case "chat":
		fmt.Fprintln(a.out, "Assistant ready. Use: ask <question>")

	default:
		fmt.Fprintf(a.out, "Unknown view: %s\n", name)
	}
	return nil
}

func (a *App) showError(err error) error {
	// A 401 already triggered the forced logout; the session-expired
	// notice is the only message the user gets for it.
	if api.IsUnauthorized(err) {
		return nil
	}
	fmt.Fprintf(a.out, "Error: %v\n", err)
	return nil
}
