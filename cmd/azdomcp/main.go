package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "azdomcp",
	Short: "Azure DevOps core MCP server",
	Long: `azdomcp: Azure DevOps core operations as MCP tools.

An MCP (Model Context Protocol) server exposing the Azure DevOps core API
to AI agent hosts:
- list_teams          Teams of a project, with pagination
- list_projects       Projects of the organization, filterable by state and name
- get_identity_ids    Resolve identity IDs from a search string

Usage:
  azdomcp serve                 Run the MCP server on stdin/stdout
  azdomcp tools                 List the tools this server exposes
  azdomcp version               Show version information`,
}

func init() {
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(toolsCmd)
}
