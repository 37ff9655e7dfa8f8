// Package mcpserver exposes questionnaire scoring as MCP tools over stdio.
package mcpserver

import (
	"github.com/mark3labs/mcp-go/server"
)

const instructions = `mindload scores two self-assessment questionnaires:
"growth" (obstacles to personal growth, index 0-10) and "drain" (mental energy
drain, score 0-100). Call list_questions to see the questions and answer
formats, then score_assessment with the collected answers.`

// New creates the MCP server with all tools registered. submitter may be
// nil, in which case score_assessment cannot save.
func New(version string, submitter Submitter) *server.MCPServer {
	s := server.NewMCPServer(
		"mindload",
		version,
		server.WithToolCapabilities(false),
		server.WithRecovery(),
		server.WithInstructions(instructions),
	)

	list := ListQuestionsTool{}
	s.AddTool(list.Definition(), list.Handle)

	score := NewScoreTool(submitter)
	s.AddTool(score.Definition(), score.Handle)

	return s
}

// ServeStdio runs the server on stdin/stdout until the client disconnects.
func ServeStdio(s *server.MCPServer) error {
	return server.ServeStdio(s)
}
