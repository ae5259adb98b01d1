// Package client provides commands that talk to a running itemforge server
package client

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"gopkg.in/yaml.v3"

	forgev1alpha1 "github.com/KirkDiggler/itemforge/api/forge/v1alpha1"
	"github.com/KirkDiggler/itemforge/internal/errors"
	"github.com/KirkDiggler/itemforge/internal/handlers/forge/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Client commands for the itemforge server",
	Long:  `Client commands manage templates and build items by making gRPC requests.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(createCmd)
	ClientCmd.AddCommand(updateCmd)
	ClientCmd.AddCommand(getCmd)
	ClientCmd.AddCommand(listCmd)
	ClientCmd.AddCommand(deleteCmd)
	ClientCmd.AddCommand(buildCmd)
}

// createForgeClient creates a forge service client
func createForgeClient() (forgev1alpha1.ForgeServiceClient, func(), error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	cleanup := func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}

	return forgev1alpha1.NewForgeServiceClient(conn), cleanup, nil
}

// describe turns a gRPC failure back into a readable error, listing
// per-field validation problems
func describe(action string, err error) error {
	converted := errors.FromGRPCError(err)

	msg := fmt.Sprintf("failed to %s: %s", action, errors.GetMessage(converted))
	if fields, ok := errors.GetMeta(converted)[errors.MetaValidationErrors].(map[string][]string); ok {
		for field, problems := range fields {
			for _, p := range problems {
				msg += fmt.Sprintf("\n  %s: %s", field, p)
			}
		}
	}
	return errors.New(errors.GetCode(converted), msg)
}

// printTemplate writes the template as YAML, the same shape the loader reads
func printTemplate(p *forgev1alpha1.Template) error {
	tmpl := v1alpha1.TemplateFromProto(p)

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(tmpl); err != nil {
		return fmt.Errorf("failed to print template: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("failed to print template: %w", err)
	}
	if p.CreatedAt != 0 {
		fmt.Printf("# created %s, updated %s\n",
			time.Unix(p.CreatedAt, 0).UTC().Format(time.RFC3339),
			time.Unix(p.UpdatedAt, 0).UTC().Format(time.RFC3339))
	}
	return nil
}
