package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/report"
	"github.com/abhisek/mindload/internal/scoring"
)

// Submitter persists a scored response set.
type Submitter interface {
	Submit(ctx context.Context, model scoring.ModelID, responses questionnaire.Responses) (*report.Submission, error)
}

func modelEnum() []string {
	ids := scoring.ModelIDs()
	out := make([]string, len(ids))
	for i, id := range ids {
		out[i] = string(id)
	}
	return out
}

// ListQuestionsTool handles the list_questions tool.
type ListQuestionsTool struct{}

// Definition returns the tool schema.
func (ListQuestionsTool) Definition() mcp.Tool {
	return mcp.NewTool("list_questions",
		mcp.WithDescription(
			"List the questions of a self-assessment questionnaire. CHOICE questions are "+
				"answered with a zero-based option index, SCALE questions with a number from 1 "+
				"to 10 and OPEN questions with free text.",
		),
		mcp.WithString("model",
			mcp.Required(),
			mcp.Description("Questionnaire to list: growth (growth obstacles) or drain (mental energy drain)"),
			mcp.Enum(modelEnum()...),
		),
	)
}

// Handle processes a list_questions call.
func (ListQuestionsTool) Handle(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	m, err := scoring.ModelFor(scoring.ModelID(req.GetString("model", "")))
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	data, err := json.MarshalIndent(m.Catalog().Questions(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode questions: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// ScoreTool handles the score_assessment tool.
type ScoreTool struct {
	submitter Submitter // nil disables saving
}

// NewScoreTool creates a ScoreTool. submitter may be nil.
func NewScoreTool(submitter Submitter) *ScoreTool {
	return &ScoreTool{submitter: submitter}
}

// Definition returns the tool schema.
func (t *ScoreTool) Definition() mcp.Tool {
	return mcp.NewTool("score_assessment",
		mcp.WithDescription(
			"Score a completed questionnaire. Returns the overall index, severity level, "+
				"per-dimension scores and a one-line share text. Unanswered or invalid answers count as 0.",
		),
		mcp.WithString("model",
			mcp.Required(),
			mcp.Description("Questionnaire the answers belong to"),
			mcp.Enum(modelEnum()...),
		),
		mcp.WithObject("responses",
			mcp.Required(),
			mcp.Description(`Answers keyed by question id, e.g. {"1": 2, "5": 7, "36": "text"}`),
		),
		mcp.WithBoolean("save",
			mcp.Description("Store the assessment so a report can be generated later"),
		),
	)
}

type scoreResult struct {
	AssessmentID string          `json:"assessment_id,omitempty"`
	Reused       bool            `json:"reused,omitempty"`
	Share        string          `json:"share_text"`
	Scores       *scoring.Scores `json:"scores"`
}

// Handle processes a score_assessment call.
func (t *ScoreTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id := scoring.ModelID(req.GetString("model", ""))
	m, err := scoring.ModelFor(id)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	responses, err := responsesArg(req)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	res := scoreResult{}
	if req.GetBool("save", false) {
		if t.submitter == nil {
			return mcp.NewToolResultError("saving is not available on this server"), nil
		}
		sub, err := t.submitter.Submit(ctx, id, responses)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("save assessment: %v", err)), nil
		}
		res.AssessmentID = sub.Assessment.ID
		res.Reused = sub.Reused
		res.Scores = sub.Scores
	} else {
		res.Scores = m.Score(responses)
	}
	res.Share = scoring.ShareText(res.Scores)

	data, err := json.MarshalIndent(res, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode scores: %v", err)), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// responsesArg accepts the answers either as an object or as a JSON string
// holding one, since some clients flatten nested arguments.
func responsesArg(req mcp.CallToolRequest) (questionnaire.Responses, error) {
	raw, ok := req.GetArguments()["responses"]
	if !ok || raw == nil {
		return nil, fmt.Errorf("responses is required")
	}

	var data []byte
	switch v := raw.(type) {
	case string:
		data = []byte(strings.TrimSpace(v))
	case map[string]any:
		b, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("encode responses: %w", err)
		}
		data = b
	default:
		return nil, fmt.Errorf("responses must be an object keyed by question id")
	}

	var r questionnaire.Responses
	if err := json.Unmarshal(data, &r); err != nil {
		return nil, err
	}
	return r, nil
}
