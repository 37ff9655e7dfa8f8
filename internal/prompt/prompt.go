// Package prompt renders scored assessments into instruction documents for
// the report-writing LLM. It performs no scoring and no sanitization: every
// free-text field must already have passed through sanitize.ForAI.
package prompt

import (
	"encoding/json"
	"strconv"
	"strings"
)

// System prompts for the report personas.
const (
	GrowthSystem = `你是一位资深的"成长观察员"和个人成长导师，致力于通过行为细节揭示一个人的内在防御机制。你的分析深刻、温暖且具有洞察力。`

	DrainSystem = `你是一位温和而敏锐的"能量观察员"，擅长从日常小事里看见一个人的精神内耗从何而来、又流向哪里。你的文字真诚、轻盈，不说教。`

	BriefSystem = `你是一位专业的心理成长分析师，擅长输出结构化的 JSON 格式报告。只输出有效的 JSON，不要有任何其他文字。`
)

// Placeholder for open answers the user left blank.
const unanswered = "未填写"

// forbiddenWords must never appear in generated reports.
var forbiddenWords = []string{"架构师", "解码", "逻辑", "代码", "漏洞", "系统", "扫描"}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func quote(s string) string {
	b, err := json.Marshal(s)
	if err != nil {
		return strconv.Quote(s)
	}
	return string(b)
}

func orUnanswered(s string) string {
	if s == "" {
		return unanswered
	}
	return s
}

// entry is one key of an ordered JSON object; either value or fields is set.
type entry struct {
	key    string
	value  string
	fields []entry
}

// writeObject writes entries as a JSON object in the given order. With
// indent, output matches two-space pretty printing; otherwise it is compact.
func writeObject(b *strings.Builder, entries []entry, indent bool, depth int) {
	if len(entries) == 0 {
		b.WriteString("{}")
		return
	}
	pad := func(d int) {
		if indent {
			b.WriteString("\n")
			b.WriteString(strings.Repeat("  ", d))
		}
	}
	sep := ":"
	if indent {
		sep = ": "
	}

	b.WriteString("{")
	for i, e := range entries {
		if i > 0 {
			b.WriteString(",")
		}
		pad(depth + 1)
		b.WriteString(quote(e.key))
		b.WriteString(sep)
		if e.fields != nil {
			writeObject(b, e.fields, indent, depth+1)
		} else {
			b.WriteString(e.value)
		}
	}
	pad(depth)
	b.WriteString("}")
}

// numberObject renders name → value pairs in order.
func numberObject(order []string, values map[string]float64, indent bool) string {
	entries := make([]entry, len(order))
	for i, name := range order {
		entries[i] = entry{key: name, value: num(values[name])}
	}
	var b strings.Builder
	writeObject(&b, entries, indent, 0)
	return b.String()
}
