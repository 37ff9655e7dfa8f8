package report

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/abhisek/mindload/internal/llm"
	"github.com/abhisek/mindload/internal/prompt"
	"github.com/abhisek/mindload/internal/scoring"
)

// Plan is the three-week practice plan of a brief report.
type Plan struct {
	Week1 []string `json:"week1"`
	Week2 []string `json:"week2"`
	Week3 []string `json:"week3"`
}

// RelapseWarning pairs an early warning sign with a coping strategy.
type RelapseWarning struct {
	Signal   string `json:"signal"`
	Strategy string `json:"strategy"`
}

// BriefReport is the short structured guide.
type BriefReport struct {
	Analysis         string           `json:"analysis"`
	ImmediateActions []string         `json:"immediate_actions"`
	Plan21Days       Plan             `json:"plan_21_days"`
	RelapseWarnings  []RelapseWarning `json:"relapse_warnings"`
	Scores           *scoring.Scores  `json:"scores"`

	// Defaulted lists the fields that were missing or malformed in the
	// model output and were filled with stock content.
	Defaulted []string `json:"defaulted,omitempty"`
}

// Field names the model is asked to produce.
const (
	fieldAnalysis = "analysis"
	fieldActions  = "immediateActions"
	fieldPlan     = "plan21Days"
	fieldWarnings = "relapseWarnings"
)

var stringList = map[string]any{
	"type":     "array",
	"minItems": 1,
	"items":    map[string]any{"type": "string", "minLength": 1},
}

var briefFieldSchemas = map[string]*llm.Schema{
	fieldAnalysis: {
		Name:       "brief-analysis",
		Definition: map[string]any{"type": "string", "minLength": 1},
	},
	fieldActions: {
		Name:       "brief-immediate-actions",
		Definition: stringList,
	},
	fieldPlan: {
		Name: "brief-plan",
		Definition: map[string]any{
			"type": "object",
			"properties": map[string]any{
				"week1": stringList,
				"week2": stringList,
				"week3": stringList,
			},
			"required": []any{"week1", "week2", "week3"},
		},
	},
	fieldWarnings: {
		Name: "brief-relapse-warnings",
		Definition: map[string]any{
			"type":     "array",
			"minItems": 1,
			"items": map[string]any{
				"type": "object",
				"properties": map[string]any{
					"signal":   map[string]any{"type": "string", "minLength": 1},
					"strategy": map[string]any{"type": "string", "minLength": 1},
				},
				"required": []any{"signal", "strategy"},
			},
		},
	},
}

func defaultAnalysis(model scoring.ModelID) string {
	if model == scoring.ModelDrain {
		return "正在分析您的内耗模式..."
	}
	return "正在分析您的成长阻碍模式..."
}

func defaultActions() []string {
	return []string{
		"今天花5分钟写下一个小小的成功经历",
		"对镜子里的自己说一句鼓励的话",
		"完成一件一直拖延的小事",
	}
}

func defaultPlan() Plan {
	return Plan{
		Week1: []string{"观察自己的内心声音", "记录触发情绪的时刻", "每天肯定自己一次"},
		Week2: []string{"尝试一个小小的改变", "与信任的人分享感受", `练习说"不"`},
		Week3: []string{"回顾进步", "调整策略", "建立新习惯"},
	}
}

func defaultWarnings() []RelapseWarning {
	return []RelapseWarning{
		{Signal: "开始自我批评", Strategy: "暂停，深呼吸，提醒自己进步需要时间"},
		{Signal: "想要放弃", Strategy: "回顾已取得的小进步"},
		{Signal: "感到焦虑", Strategy: "做一件让自己放松的事"},
	}
}

// Brief asks the provider for the short structured guide. Provider errors
// are returned; output that is not valid JSON, or fields that are missing
// or malformed, fall back to stock content.
func (s *Service) Brief(ctx context.Context, scores *scoring.Scores, answers []string) (*BriefReport, error) {
	if s.provider == nil {
		return nil, fmt.Errorf("no LLM provider configured")
	}

	user := prompt.Brief(prompt.BriefInput{Scores: scores, Answers: answers})
	key := cacheKey(llm.PurposeBriefReport, s.provider.ModelID(), prompt.BriefSystem, user)

	content, ok := s.cache.get(key)
	if !ok {
		genCtx := llm.WithPurpose(ctx, llm.PurposeBriefReport)
		if s.opts.Timeout > 0 {
			var cancel context.CancelFunc
			genCtx, cancel = context.WithTimeout(genCtx, s.opts.Timeout)
			defer cancel()
		}

		resp, err := s.provider.Generate(genCtx, llm.Request{
			System:      prompt.BriefSystem,
			Messages:    []llm.Message{{Role: llm.RoleUser, Content: user}},
			JSONMode:    true,
			MaxTokens:   s.opts.BriefMaxTokens,
			Temperature: s.opts.BriefTemperature,
		})
		if err != nil {
			return nil, fmt.Errorf("generate brief report: %w", err)
		}
		content = resp.Text()
		s.cache.add(key, content)
	}

	return ParseBrief(scores, content), nil
}

// ParseBrief decodes model output into a BriefReport, repairing common
// JSON slips and substituting stock content field by field.
func ParseBrief(scores *scoring.Scores, content string) *BriefReport {
	fields := decodeLenient(content)
	out := &BriefReport{Scores: scores}

	if !decodeField(fields, fieldAnalysis, &out.Analysis) {
		out.Analysis = defaultAnalysis(scores.Model)
		out.Defaulted = append(out.Defaulted, fieldAnalysis)
	}
	if !decodeField(fields, fieldActions, &out.ImmediateActions) {
		out.ImmediateActions = defaultActions()
		out.Defaulted = append(out.Defaulted, fieldActions)
	}
	if !decodeField(fields, fieldPlan, &out.Plan21Days) {
		out.Plan21Days = defaultPlan()
		out.Defaulted = append(out.Defaulted, fieldPlan)
	}
	if !decodeField(fields, fieldWarnings, &out.RelapseWarnings) {
		out.RelapseWarnings = defaultWarnings()
		out.Defaulted = append(out.Defaulted, fieldWarnings)
	}
	return out
}

var (
	jsonObject       = regexp.MustCompile(`(?s)\{.*\}`)
	trailingCommaObj = regexp.MustCompile(`,\s*}`)
	trailingCommaArr = regexp.MustCompile(`,\s*]`)
	controlChars     = regexp.MustCompile(`[\x00-\x1F\x7F]`)
)

// decodeLenient parses content as a JSON object. When that fails it takes
// the outermost brace span, drops trailing commas, blanks control
// characters and tries again. It returns nil when nothing parses.
func decodeLenient(content string) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(content), &fields); err == nil {
		return fields
	}

	span := jsonObject.FindString(content)
	if span == "" {
		return nil
	}
	span = trailingCommaObj.ReplaceAllString(span, "}")
	span = trailingCommaArr.ReplaceAllString(span, "]")
	span = controlChars.ReplaceAllString(span, " ")

	fields = nil
	if err := json.Unmarshal([]byte(span), &fields); err != nil {
		return nil
	}
	return fields
}

// decodeField validates one field against its schema and decodes it into
// dst. It reports whether dst was filled.
func decodeField(fields map[string]json.RawMessage, name string, dst any) bool {
	raw, ok := fields[name]
	if !ok {
		return false
	}
	if err := llm.Validate(briefFieldSchemas[name], raw); err != nil {
		return false
	}
	return json.Unmarshal(raw, dst) == nil
}
