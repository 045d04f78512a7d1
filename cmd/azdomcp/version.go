package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/azdomcp/azdomcp/pkg/azdomcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("azdomcp v%s\n", azdomcp.Version)
	},
}
