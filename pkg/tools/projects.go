package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/microsoft/azure-devops-go-api/azuredevops/v7/core"
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type listProjectsArgs struct {
	StateFilter       string `json:"stateFilter,omitempty"`
	Top               int    `json:"top,omitempty"`
	Skip              int    `json:"skip,omitempty"`
	ContinuationToken int    `json:"continuationToken,omitempty"`
	ProjectNameFilter string `json:"projectNameFilter,omitempty"`
}

// projectStates maps the tool-facing state filter values onto the SDK enum.
var projectStates = map[string]core.ProjectState{
	"all":           core.ProjectStateValues.All,
	"wellFormed":    core.ProjectStateValues.WellFormed,
	"createPending": core.ProjectStateValues.CreatePending,
	"deleted":       core.ProjectStateValues.Deleted,
}

// RegisterListProjects adds the list_projects tool to the server.
func (t *Toolset) RegisterListProjects(s *mcp.Server) {
	mcp.AddTool(s, &mcp.Tool{
		Name: "list_projects",
		Description: "Retrieve the list of projects in the Azure DevOps organization, " +
			"optionally filtered by state and by a case-insensitive name substring.",
		InputSchema: createSchema(map[string]any{
			"stateFilter": stringProperty(
				"Filter projects by state: all, wellFormed, createPending or deleted (default wellFormed)"),
			"top": intProperty(fmt.Sprintf(
				"Maximum number of projects to return per page (default %d)", DefaultTop)),
			"skip":              intProperty("Number of projects to skip for pagination (default 0)"),
			"continuationToken": intProperty("Continuation token from a previous response to fetch the next page"),
			"projectNameFilter": stringProperty("Case-insensitive substring to match against project names"),
		}, nil),
	}, func(ctx context.Context, req *mcp.CallToolRequest, args listProjectsArgs) (*mcp.CallToolResult, any, error) {
		return runTool("list_projects", func() (Result, error) {
			return t.listProjects(ctx, args)
		}), nil, nil
	})
}

func (t *Toolset) listProjects(ctx context.Context, args listProjectsArgs) (Result, error) {
	state := args.StateFilter
	if state == "" {
		state = "wellFormed"
	}
	stateFilter, ok := projectStates[state]
	if !ok {
		return Result{}, fmt.Errorf("invalid stateFilter %q: must be one of all, wellFormed, createPending, deleted", state)
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

	includeImage := false
	getArgs := core.GetProjectsArgs{
		StateFilter:            &stateFilter,
		Top:                    &top,
		Skip:                   &skip,
		GetDefaultTeamImageUrl: &includeImage,
	}
	if args.ContinuationToken != 0 {
		getArgs.ContinuationToken = &args.ContinuationToken
	}

	projects, err := client.GetProjects(ctx, getArgs)
	if err != nil {
		return Result{}, err
	}
	if projects == nil {
		return Empty("No projects found"), nil
	}

	list := projects.Value
	if args.ProjectNameFilter != "" {
		list = filterProjectsByName(list, args.ProjectNameFilter)
	}

	body, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return Result{}, err
	}
	return Ok(string(body)), nil
}

// filterProjectsByName returns the projects whose name contains filter,
// compared case-insensitively. Projects without a name never match. Input
// order is preserved.
func filterProjectsByName(projects []core.TeamProjectReference, filter string) []core.TeamProjectReference {
	needle := strings.ToLower(filter)
	matched := make([]core.TeamProjectReference, 0, len(projects))
	for _, p := range projects {
		if p.Name == nil {
			continue
		}
		if strings.Contains(strings.ToLower(*p.Name), needle) {
			matched = append(matched, p)
		}
	}
	return matched
}
