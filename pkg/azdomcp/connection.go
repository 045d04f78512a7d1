package azdomcp

import (
	"context"
	"sync"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7"
	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"

	"github.com/azdomcp/azdomcp/pkg/tools"
)

// PatConnectionProvider hands out an Azure DevOps core client authenticated
// with a personal access token. The client is created on first use and
// shared by later calls; the MCP host may invoke tools concurrently.
type PatConnectionProvider struct {
	connection *azuredevops.Connection

	mu     sync.Mutex
	client core.Client
}

// NewPatConnectionProvider creates a provider for the given organization
// URL and personal access token.
func NewPatConnectionProvider(organizationURL, pat string) *PatConnectionProvider {
	return &PatConnectionProvider{
		connection: azuredevops.NewPatConnection(organizationURL, pat),
	}
}

func (p *PatConnectionProvider) CoreClient(ctx context.Context) (tools.CoreClient, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.client == nil {
		client, err := core.NewClient(ctx, p.connection)
		if err != nil {
			return nil, err
		}
		p.client = client
	}
	return p.client, nil
}

func (p *PatConnectionProvider) ServerURL() string {
	return p.connection.BaseUrl
}

// StaticTokenProvider serves a fixed bearer credential, typically the
// configured personal access token.
type StaticTokenProvider struct {
	token string
}

func NewStaticTokenProvider(token string) *StaticTokenProvider {
	return &StaticTokenProvider{token: token}
}

func (p *StaticTokenProvider) Token(ctx context.Context) (string, error) {
	return p.token, nil
}
