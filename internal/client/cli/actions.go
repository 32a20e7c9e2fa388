package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/carbontrail/carbontrail/internal/client/models"
)

// Buy runs the tree-purchase form: species, farm, quantity. The server
// validates the order and issues the resulting credits.
func (a *App) Buy(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	speciesID, err := GetSimpleText(a.reader, "Species ID", a.out)
	if err != nil {
		return err
	}
	farmID, err := GetSimpleText(a.reader, "Farm ID", a.out)
	if err != nil {
		return err
	}
	qty, err := GetInt(a.reader, "Quantity", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid quantity: %v\n", err)
		return nil
	}

	req := models.TreePurchaseRequest{SpeciesID: speciesID, FarmID: farmID, Quantity: qty}
	if err := a.api.PurchaseTrees(ctx, req); err != nil {
		return a.showError(err)
	}
	fmt.Fprintf(a.out, "Purchased %d trees of %s for farm %s.\n", qty, speciesID, farmID)
	return nil
}

// Allocate assigns issued credits to a partner contract.
func (a *App) Allocate(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	creditID, err := GetSimpleText(a.reader, "Credit ID", a.out)
	if err != nil {
		return err
	}
	contractID, err := GetSimpleText(a.reader, "Contract ID", a.out)
	if err != nil {
		return err
	}
	tonnes, err := GetInt(a.reader, "Tonnes", a.out)
	if err != nil {
		fmt.Fprintf(a.out, "Invalid amount: %v\n", err)
		return nil
	}

	req := models.CreditAllocationRequest{CreditID: creditID, ContractID: contractID, Tonnes: float64(tonnes)}
	if err := a.api.AllocateCredits(ctx, req); err != nil {
		return a.showError(err)
	}
	fmt.Fprintf(a.out, "Allocated %d t from %s to contract %s.\n", tonnes, creditID, contractID)
	return nil
}

// Ask sends a question to the marketplace assistant.
func (a *App) Ask(ctx context.Context, question string) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Please log in first.")
		return nil
	}

	question = strings.TrimSpace(question)
	if question == "" {
		var err error
		question, err = GetSimpleText(a.reader, "Your question", a.out)
		if err != nil {
			return err
		}
	}

	reply, err := a.api.SendChatMessage(ctx, question)
	if err != nil {
		return a.showError(err)
	}
	fmt.Fprintf(a.out, "assistant> %s\n", reply.Content)
	return nil
}
