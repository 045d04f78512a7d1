// Package tools implements the Azure DevOps core toolset: MCP tools for
// listing a project's teams, listing an organization's projects and
// resolving identity IDs.
package tools

import (
	"context"
	"net/http"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
)

const (
	// DefaultTop is the page size used when the caller does not ask for one.
	DefaultTop = 100

	// DefaultIdentityServiceURL is the public endpoint of the Azure DevOps
	// identity service (vssps). Sovereign clouds and tests override it.
	DefaultIdentityServiceURL = "https://vssps.dev.azure.com"

	// identityAPIVersion pins the identities endpoint revision.
	identityAPIVersion = "7.2-preview.1"
)

// CoreClient is the subset of the Azure DevOps core API the toolset calls.
type CoreClient interface {
	GetTeams(ctx context.Context, args core.GetTeamsArgs) (*[]core.WebApiTeam, error)
	GetProjects(ctx context.Context, args core.GetProjectsArgs) (*core.GetProjectsResponseValue, error)
}

// ConnectionProvider supplies an authenticated core client and the base
// server URL of the connection. Lifecycle and auth live behind it.
type ConnectionProvider interface {
	CoreClient(ctx context.Context) (CoreClient, error)
	ServerURL() string
}

// TokenProvider supplies a bearer credential for raw HTTP calls that bypass
// the structured client.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// Toolset wires the core tools to their collaborators. Register adds every
// tool to an MCP server.
type Toolset struct {
	Connection ConnectionProvider
	Tokens     TokenProvider

	// IdentityServiceURL overrides DefaultIdentityServiceURL when non-empty.
	IdentityServiceURL string

	// HTTPClient used for raw identity calls; http.DefaultClient when nil.
	HTTPClient *http.Client
}

func (t *Toolset) identityServiceURL() string {
	if t.IdentityServiceURL != "" {
		return t.IdentityServiceURL
	}
	return DefaultIdentityServiceURL
}

func (t *Toolset) httpClient() *http.Client {
	if t.HTTPClient != nil {
		return t.HTTPClient
	}
	return http.DefaultClient
}
