package prompt

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindload/internal/scoring"
)

// BriefInput carries the data for the short structured report.
type BriefInput struct {
	Scores *scoring.Scores

	// Answers are the user's open answers, one labeled line each.
	Answers []string
}

// Brief renders the prompt for the short JSON guide: an analysis paragraph,
// three immediate actions, a three-week plan and three relapse warnings.
func Brief(in BriefInput) string {
	s := in.Scores
	var b strings.Builder

	b.WriteString(`作为资深"成长观察员"与"个人成长导师"，根据以下探测量化结果生成一份针对性的简要指南。请保持冷静、客观且极具洞察力的分析风格，严禁出现任何医疗或心理咨询建议的措辞。

# 重要原则
- 严禁使用"架构师"、"解码"、"代码"、"逻辑扫描"等技术词汇。
- 使用人文、心理、成长相关的词汇，关注"生命脚本"与"重塑"。

# 探测数据
`)
	if s.Model == scoring.ModelDrain {
		fmt.Fprintf(&b, "- 4个内耗维度(%%): %s\n", numberObject(s.DimensionOrder, s.DimensionDisplay, false))
		fmt.Fprintf(&b, "- 内耗指数: %s/100\n", num(s.TotalScore))
		fmt.Fprintf(&b, "- 内耗类型: %s\n", s.Level.Label)
		fmt.Fprintf(&b, "- 最大能量黑洞: %s\n", s.TopDimension)
	} else {
		fmt.Fprintf(&b, "- 8个信念维度: %s\n", numberObject(s.DimensionOrder, s.DimensionDisplay, false))
		fmt.Fprintf(&b, "- 6个行为模式: %s\n", numberObject(s.BehaviorOrder, s.BehaviorDisplay, false))
		fmt.Fprintf(&b, "- 综合阻碍指数: %s/10\n", num(s.OverallIndex))
		fmt.Fprintf(&b, "- 核心卡点: %s\n", s.TopDimension)
	}

	b.WriteString("\n# 用户心声\n")
	b.WriteString(strings.Join(in.Answers, "\n"))

	b.WriteString(`

请输出严格的 JSON 格式报告，包含以下字段：
- analysis: 针对核心卡点的心智解读，指出潜意识是如何为了维持现状的"心理安全感"而牺牲了"真实成长"。(200-300字)
- immediateActions: 3个在24小时内可立即执行的小动作（具体、简单、不带压力）。
- plan21Days: 包含week1, week2, week3的对象，每周3条具体建议。
- relapseWarnings: 包含3个对象，每个对象有signal(预警信号)和strategy(应对策略)。

只输出 JSON，不要有其他内容。`)

	return b.String()
}
