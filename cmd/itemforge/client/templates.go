package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/handlers/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/loader"
)

var (
	templateFile string
	templateID   string
	pageSize     int32
	pageToken    string
)

var createCmd = &cobra.Command{
	Use:   "create",
	Short: "Create templates from a YAML file",
	Long:  `Create every template in a YAML file. Templates without an id get a generated one.`,
	RunE:  runCreate,
}

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Replace templates from a YAML file",
	Long:  `Replace every template in a YAML file. Each template must carry the id it replaces.`,
	RunE:  runUpdate,
}

var getCmd = &cobra.Command{
	Use:   "get",
	Short: "Get a template by ID",
	RunE:  runGet,
}

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored templates",
	RunE:  runList,
}

var deleteCmd = &cobra.Command{
	Use:   "delete",
	Short: "Delete a template by ID",
	RunE:  runDelete,
}

func init() {
	createCmd.Flags().StringVarP(&templateFile, "file", "f", "", "Template YAML file (required)")
	_ = createCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	updateCmd.Flags().StringVarP(&templateFile, "file", "f", "", "Template YAML file (required)")
	_ = updateCmd.MarkFlagRequired("file") // nolint:errcheck // safe to ignore in init

	getCmd.Flags().StringVar(&templateID, "id", "", "Template ID (required)")
	_ = getCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	deleteCmd.Flags().StringVar(&templateID, "id", "", "Template ID (required)")
	_ = deleteCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	listCmd.Flags().Int32Var(&pageSize, "page-size", 20, "Templates per page")
	listCmd.Flags().StringVar(&pageToken, "page-token", "", "Token from a previous page")
}

func runCreate(_ *cobra.Command, _ []string) error {
	tmpls, err := loader.LoadFile(templateFile)
	if err != nil {
		return err
	}

	client, cleanup, err := createForgeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, t := range tmpls {
		resp, err := client.CreateTemplate(ctx, &forgev1alpha1.CreateTemplateRequest{
			Template: v1alpha1.TemplateToProto(t),
		})
		if err != nil {
			return describe(fmt.Sprintf("create %q", t.Name), err)
		}
		fmt.Printf("Created %s (%s)\n", resp.Template.Id, resp.Template.Name)
	}

	return nil
}

func runUpdate(_ *cobra.Command, _ []string) error {
	tmpls, err := loader.LoadFile(templateFile)
	if err != nil {
		return err
	}

	client, cleanup, err := createForgeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	for _, t := range tmpls {
		resp, err := client.UpdateTemplate(ctx, &forgev1alpha1.UpdateTemplateRequest{
			Template: v1alpha1.TemplateToProto(t),
		})
		if err != nil {
			return describe(fmt.Sprintf("update %q", t.ID), err)
		}
		fmt.Printf("Updated %s (%s)\n", resp.Template.Id, resp.Template.Name)
	}

	return nil
}

func runGet(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createForgeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.GetTemplate(ctx, &forgev1alpha1.GetTemplateRequest{
		TemplateId: templateID,
	})
	if err != nil {
		return describe("get template", err)
	}

	return printTemplate(resp.Template)
}

func runList(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createForgeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	resp, err := client.ListTemplates(ctx, &forgev1alpha1.ListTemplatesRequest{
		PageSize:  pageSize,
		PageToken: pageToken,
	})
	if err != nil {
		return describe("list templates", err)
	}

	fmt.Printf("Templates (%d of %d)\n\n", len(resp.Templates), resp.TotalSize)
	for _, t := range resp.Templates {
		fmt.Printf("  %-24s %-20s %s\n", t.Id, t.Material, t.Name)
	}
	if resp.NextPageToken != "" {
		fmt.Printf("\nNext page: --page-token %s\n", resp.NextPageToken)
	}

	return nil
}

func runDelete(_ *cobra.Command, _ []string) error {
	client, cleanup, err := createForgeClient()
	if err != nil {
		return err
	}
	defer cleanup()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if _, err := client.DeleteTemplate(ctx, &forgev1alpha1.DeleteTemplateRequest{
		TemplateId: templateID,
	}); err != nil {
		return describe("delete template", err)
	}

	fmt.Printf("Deleted %s\n", templateID)
	return nil
}
