package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type getIdentityIDsArgs struct {
	SearchFilter string `json:"searchFilter"`
}

// identityRef is the trimmed view of a vssps identity record returned to
// the caller.
type identityRef struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Descriptor  string `json:"descriptor"`
}

// RegisterGetIdentityIDs adds the get_identity_ids tool to the server.
func (t *Toolset) RegisterGetIdentityIDs(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "get_identity_ids",
		Description: "Resolve Azure DevOps identity IDs from a search string matched " +
			"against unique names, display names and email addresses.",
		InputSchema: createSchema(map[string]any{
			"searchFilter": stringProperty("Free text matched against unique name, display name or email"),
		}, []string{"searchFilter"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args getIdentityIDsArgs) (*mcp.CallToolResult, any, error) {
		return runTool("get_identity_ids", func() (Result, error) {
			return t.getIdentityIDs(ctx, args)
		}), nil, nil
	})
}

func (t *Toolset) getIdentityIDs(ctx context.Context, args getIdentityIDsArgs) (Result, error) {
	if args.SearchFilter == "" {
		return Result{}, fmt.Errorf("searchFilter is required")
	}

	token, err := t.Tokens.Token(ctx)
	if err != nil {
		return Result{}, err
	}

	org, err := organizationName(t.Connection.ServerURL())
	if err != nil {
		return Result{}, err
	}

	// searchFilter=General is the service-side search mode; the caller's
	// search text travels as filterValue.
	endpoint := fmt.Sprintf("%s/%s/_apis/identities?api-version=%s&searchFilter=General&filterValue=%s",
		t.identityServiceURL(), url.PathEscape(org), identityAPIVersion, url.QueryEscape(args.SearchFilter))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return Result{}, err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := t.httpClient().Do(req)
	if err != nil {
		return Result{}, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{}, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{}, fmt.Errorf("identities request failed with status %d: %s", resp.StatusCode, string(body))
	}

	var payload struct {
		Value []struct {
			ID                  string `json:"id"`
			ProviderDisplayName string `json:"providerDisplayName"`
			Descriptor          string `json:"descriptor"`
		} `json:"value"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return Result{}, fmt.Errorf("failed to parse identities response: %w", err)
	}
	if len(payload.Value) == 0 {
		return Empty("No identities found"), nil
	}

	identities := make([]identityRef, 0, len(payload.Value))
	for _, v := range payload.Value {
		identities = append(identities, identityRef{
			ID:          v.ID,
			DisplayName: v.ProviderDisplayName,
			Descriptor:  v.Descriptor,
		})
	}

	out, err := json.MarshalIndent(identities, "", "  ")
	if err != nil {
		return Result{}, err
	}
	return Ok(string(out)), nil
}

// organizationName extracts the organization segment from a connection base
// URL of the shape scheme://host/orgName. Anything else fails explicitly
// rather than returning a wrong segment.
func organizationName(serverURL string) (string, error) {
	parts := strings.Split(serverURL, "/")
	if len(parts) < 4 || parts[3] == "" {
		return "", fmt.Errorf("cannot derive organization from server URL %q: expected scheme://host/organization", serverURL)
	}
	return parts[3], nil
}
