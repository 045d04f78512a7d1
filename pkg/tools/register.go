package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterFunc registers a single tool on an MCP server.
type RegisterFunc func(s *mcp.Server)

func (t *Toolset) registrations() []RegisterFunc {
	return []RegisterFunc{
		t.RegisterListTeams,
		t.RegisterListProjects,
		t.RegisterGetIdentityIDs,
	}
}

// Register adds every Azure DevOps core tool to the server.
func (t *Toolset) Register(s *mcp.Server) {
	for _, register := range t.registrations() {
		register(s)
	}
}
