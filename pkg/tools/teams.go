package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listTeamsArgs struct {
	Project string `json:"project"`
	Mine    bool   `json:"mine,omitempty"`
	Top     int    `json:"top,omitempty"`
	Skip    int    `json:"skip,omitempty"`
}

// RegisterListTeams adds the list_teams tool to the server.
func (t *Toolset) RegisterListTeams(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "list_teams",
		Description: "Retrieve the list of teams for a given Azure DevOps project, " +
			"with top/skip pagination.",
		InputSchema: createSchema(map[string]any{
			"project": stringProperty("The name or ID of the Azure DevOps project"),
			"mine":    boolProperty("If true, return only teams the authenticated user is a member of"),
			"top": intProperty(fmt.Sprintf(
				"Maximum number of teams to return per page (default %d)", DefaultTop)),
			"skip": intProperty("Number of teams to skip for pagination (default 0)"),
		}, []string{"project"}),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listTeamsArgs) (*mcp.CallToolResult, any, error) {
		return runTool("list_teams", func() (Result, error) {
			return t.listTeams(ctx, args)
		}), nil, nil
	})
}

func (t *Toolset) listTeams(ctx context.Context, args listTeamsArgs) (Result, error) {
	if args.Project == "" {
		return Result{}, fmt.Errorf("project is required")
	}

	top := args.Top
	if top <= 0 {
		top = DefaultTop
	}
	skip := args.Skip
	if skip < 0 {
		skip = 0
	}

	client, err := t.Connection.CoreClient(ctx)
	if err != nil {
		return Result{}, err
	}

	expandIdentity := false
	teams, err := client.GetTeams(ctx, core.GetTeamsArgs{
		ProjectId:      &args.Project,
		Mine:           &args.Mine,
		Top:            &top,
		Skip:           &skip,
		ExpandIdentity: &expandIdentity,
	})
	if err != nil {
		return Result{}, err
	}
	if teams == nil {
		return Empty("No teams found"), nil
	}

	body, err := json.MarshalIndent(*teams, "", "  ")
	if err != nil {
		return Result{}, err
	}

	return Ok(string(body) + "\n\n" + teamPageNote(len(*teams), top, skip)), nil
}

// teamPageNote describes how the returned page relates to the full team
// list. A full page means another page may exist; a short first page means
// the listing is complete; a short later page is left unqualified because
// the remote API gives no way to tell.
func teamPageNote(count, top, skip int) string {
	note := fmt.Sprintf("Showing %d team(s)", count)
	if skip > 0 {
		note += fmt.Sprintf(", skipped first %d", skip)
	}
	switch {
	case count == top:
		note += fmt.Sprintf(". More teams may exist; call again with skip=%d to fetch the next page.", skip+count)
	case skip == 0:
		note += "; these are all teams in project."
	default:
		note += "."
	}
	return note
}
