package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
)

var buildAmount int32

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build an item from a stored template",
	Long:  `Build an item from a stored template and print its tooltip and summary.`,
	RunE:  runBuild,
}

func init() {
	buildCmd.Flags().StringVar(&templateID, "id", "", "Template ID (required)")
	buildCmd.Flags().Int32Var(&buildAmount, "amount", 0, "Override the template amount")
	_ = buildCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init
}

func runBuild(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createForgeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.BuildItem(ctx, &forgev1alpha1.BuildItemRequest{
		TemplateId: templateID,
		Amount:     buildAmount,
	})
	if err != nil {
		return describe("build item", err)
	}

	fmt.Print(resp.Tooltip)

	item := resp.Item
	fmt.Printf("\nMaterial: %s x%d\n", item.Material, item.Amount)
	if item.Durability > 0 {
		fmt.Printf("Damage: %d\n", item.Durability)
	}
	if len(item.Flags) > 0 {
		fmt.Printf("Flags: %v\n", item.Flags)
	}
	for name, level := range item.Enchantments {
		fmt.Printf("  - %s %d\n", name, level)
	}

	return nil
}
