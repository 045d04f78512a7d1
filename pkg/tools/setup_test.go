package tools

import (
	"context"
	"testing"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

const testServerURL = "https://dev.azure.com/myorg"

// fakeCoreClient records the last arguments passed and replays canned
// responses.
type fakeCoreClient struct {
	teams         *[]core.WebApiTeam
	teamsErr      error
	lastTeamsArgs core.GetTeamsArgs

	projects         *core.GetProjectsResponseValue
	projectsErr      error
	lastProjectsArgs core.GetProjectsArgs
}

func (f *fakeCoreClient) GetTeams(ctx context.Context, args core.GetTeamsArgs) (*[]core.WebApiTeam, error) {
	f.lastTeamsArgs = args
	if f.teamsErr != nil {
		return nil, f.teamsErr
	}
	return f.teams, nil
}

func (f *fakeCoreClient) GetProjects(ctx context.Context, args core.GetProjectsArgs) (*core.GetProjectsResponseValue, error) {
	f.lastProjectsArgs = args
	if f.projectsErr != nil {
		return nil, f.projectsErr
	}
	return f.projects, nil
}

type fakeConnection struct {
	client    *fakeCoreClient
	clientErr error
	serverURL string
}

func (f *fakeConnection) CoreClient(ctx context.Context) (CoreClient, error) {
	if f.clientErr != nil {
		return nil, f.clientErr
	}
	return f.client, nil
}

func (f *fakeConnection) ServerURL() string {
	return f.serverURL
}

type fakeTokens struct {
	token string
	err   error
}

func (f *fakeTokens) Token(ctx context.Context) (string, error) {
	return f.token, f.err
}

// blankError carries no message, to exercise the generic fallback text.
type blankError struct{}

func (blankError) Error() string { return "" }

// setupTestSession connects an in-memory MCP client to a server with the
// given toolset registered.
func setupTestSession(t *testing.T, toolset *Toolset) *mcp.ClientSession {
	t.Helper()

	server := mcp.NewServer(&mcp.Implementation{
		Name:    "test-azdomcp",
		Version: "0.0.1",
	}, nil)
	toolset.Register(server)

	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	if _, err := server.Connect(ctx, serverTransport, nil); err != nil {
		t.Fatalf("Failed to connect server: %v", err)
	}

	client := mcp.NewClient(&mcp.Implementation{
		Name:    "test-client",
		Version: "0.0.1",
	}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("Failed to connect client: %v", err)
	}
	t.Cleanup(func() { session.Close() })

	return session
}

func callTool(t *testing.T, session *mcp.ClientSession, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		t.Fatalf("CallTool(%s) failed: %v", name, err)
	}
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	if len(res.Content) != 1 {
		t.Fatalf("expected 1 content item, got %d", len(res.Content))
	}
	text, ok := res.Content[0].(*mcp.TextContent)
	if !ok {
		t.Fatalf("expected text content, got %T", res.Content[0])
	}
	return text.Text
}
