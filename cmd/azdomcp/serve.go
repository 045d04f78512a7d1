package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/azdomcp/azdomcp/pkg/azdomcp"
	"github.com/azdomcp/azdomcp/pkg/tools"
)

var configFile string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdin/stdout",
	Long: `Run an MCP server exposing the Azure DevOps core tools.

The server communicates over stdin/stdout using the MCP protocol, so all
logging goes to stderr (and optionally a log file).

Configuration comes from AZDO_* environment variables and an optional YAML
file:
  AZDO_ORGANIZATION_URL        e.g. https://dev.azure.com/myorg (required)
  AZDO_PERSONAL_ACCESS_TOKEN   PAT used for all API calls (required)
  AZDO_LOG_LEVEL               trace|debug|info|warn|error (default info)

Examples:
  AZDO_ORGANIZATION_URL=... AZDO_PERSONAL_ACCESS_TOKEN=... azdomcp serve
  azdomcp serve --config azdomcp.yaml`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&configFile, "config", "", "Path to a YAML config file")
}

// newLogger builds a zerolog logger writing to stderr and, when configured,
// a log file. stdout stays untouched: it carries the MCP protocol.
func newLogger(cfg *azdomcp.Config) (zerolog.Logger, func(), error) {
	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}

	var w io.Writer = zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	closeLog := func() {}

	if cfg.LogFile != "" {
		logFile, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return zerolog.Logger{}, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		w = io.MultiWriter(w, logFile)
		closeLog = func() { logFile.Close() }
	}

	return zerolog.New(w).Level(level).With().Timestamp().Logger(), closeLog, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := azdomcp.LoadConfig(configFile)
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, closeLog, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer closeLog()

	logger.Info().
		Str("version", azdomcp.Version).
		Str("organization_url", cfg.OrganizationURL).
		Msg("starting azdomcp server")

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	connection := azdomcp.NewPatConnectionProvider(cfg.OrganizationURL, cfg.PersonalAccessToken)
	toolset := &tools.Toolset{
		Connection:         connection,
		Tokens:             azdomcp.NewStaticTokenProvider(cfg.PersonalAccessToken),
		IdentityServiceURL: cfg.IdentityServiceURL,
	}

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "azdomcp",
		Version: azdomcp.Version,
	}, nil)
	toolset.Register(server)
	logger.Info().Msg("registered Azure DevOps core tools")

	err = server.Run(ctx, &mcp.StdioTransport{})
	if err != nil && ctx.Err() == nil {
		logger.Error().Err(err).Msg("server stopped")
		return err
	}
	logger.Info().Msg("server shut down")
	return nil
}
