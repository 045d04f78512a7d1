package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/spf13/cobra"

	"github.com/azdomcp/azdomcp/pkg/azdomcp"
	"github.com/azdomcp/azdomcp/pkg/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the MCP tools this server exposes",
	Long: `List the Azure DevOps core tools registered by azdomcp.

Runs entirely offline; no credentials are needed.

Examples:
  azdomcp tools           List tools as a table
  azdomcp tools --json    Output as JSON`,
	RunE: runTools,
}

var toolsJSON bool

func init() {
	toolsCmd.Flags().BoolVar(&toolsJSON, "json", false, "Output as JSON")
}

func runTools(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	// Register against a throwaway server and list its tools through an
	// in-memory session, so the output always matches what serve exposes.
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "azdomcp",
		Version: azdomcp.Version,
	}, nil)
	(&tools.Toolset{}).Register(server)

	clientTransport, serverTransport := mcp.NewInMemoryTransports()
	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "azdomcp-cli",
		Version: azdomcp.Version,
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer session.Close()

	list, err := session.ListTools(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to list tools: %w", err)
	}

	if toolsJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(list.Tools)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDESCRIPTION")
	fmt.Fprintln(w, "----\t-----------")
	for _, tool := range list.Tools {
		fmt.Fprintf(w, "%s\t%s\n", tool.Name, tool.Description)
	}
	w.Flush()

	fmt.Printf("\nTotal: %d tools\n", len(list.Tools))
	return nil
}
