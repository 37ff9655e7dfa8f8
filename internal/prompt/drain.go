package prompt

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindload/internal/scoring"
)

// DrainInput carries everything the drain report prompt interpolates.
type DrainInput struct {
	Scores *scoring.Scores

	Breakdown string // Q36
	Vacation  string // Q37
	Status    string // Q38

	HighScoreSummary string
}

// Drain renders the long-form mental-energy-drain report prompt.
func Drain(in DrainInput) string {
	s := in.Scores
	var b strings.Builder

	b.WriteString(`# 任务说明
一位用户完成了"精神内耗指数"测评。请基于其 38 道题的作答，写一份温暖、具体、有画面感的内耗分析报告。

关键要求：
1. 字数控制在 3000-4000 字。
2. 不使用 Markdown 双星号加粗，用 # 和 ## 标题组织结构。
3. 每个判断都要引用具体题号与选项作为证据，例如"你在 Q2 选择了……"。
4. 至少还原 3 个日常生活场景。
`)
	fmt.Fprintf(&b, "5. 禁止出现以下词汇：%s。\n", quotedList(forbiddenWords))
	b.WriteString(`6. 你是"能量观察员"，不诊断、不贴病理标签，也不自称咨询师或医生。

---

# 用户测评数据
## 核心结果
`)
	fmt.Fprintf(&b, "- 内耗指数：%s/100\n", num(s.TotalScore))
	fmt.Fprintf(&b, "- 内耗类型：%s %s\n", s.Level.Label, s.Level.Emoji)
	fmt.Fprintf(&b, "- 超过的测试者：%d%%\n", s.BeatPercent)
	fmt.Fprintf(&b, "- 最大的能量黑洞：%s\n", s.TopDimension)

	b.WriteString("## 各维度原始得分\n")
	b.WriteString(numberObject(s.DimensionOrder, s.DimensionScores, true))
	b.WriteString("\n## 各维度占比（%）\n")
	b.WriteString(numberObject(s.DimensionOrder, s.DimensionDisplay, true))

	b.WriteString("\n## 开放题原文\n")
	fmt.Fprintf(&b, "Q36 - 最近一次崩溃：%s\n", orUnanswered(in.Breakdown))
	fmt.Fprintf(&b, "Q37 - 想给自己放的假：%s\n", orUnanswered(in.Vacation))
	fmt.Fprintf(&b, "Q38 - 现在与理想的状态：%s\n", orUnanswered(in.Status))

	b.WriteString("## 显著特征题目\n")
	b.WriteString(in.HighScoreSummary)

	b.WriteString(`

---

# 报告结构要求

## 第一部分：你的能量账单（600-800字）
以内耗指数开场，说清楚能量主要漏在了哪里，引用至少 3 道高分题。

## 第二部分：能量黑洞放大镜（800-1000字）
围绕最大的能量黑洞，拆解一个完整的"触发、反刍、消耗、疲惫"循环。

## 第三部分：日常场景慢放（800-1000字）
还原 3 个具体场景，其中一个结合 Q36 的崩溃瞬间。

## 第四部分：内耗背后的保护（400-600字）
内耗替你挡住了什么？它在保护怎样的你？

## 第五部分：7 天回血计划（400-600字）
每天一个 10 分钟以内的小练习，针对最大的能量黑洞。

## 第六部分：写给你的话（300-400字）
回应 Q37 想放的假与 Q38 描绘的理想状态。
署名：你的能量观察员。

---

现在开始写作。记住：不需要加粗语法，用真诚的文字让人感到被理解。`)

	return b.String()
}

// DrainAnswerLines formats the drain open answers for the brief prompt.
func DrainAnswerLines(breakdown, vacation, status string) []string {
	return []string{
		"最近一次崩溃: " + orNone(breakdown),
		"想给自己放的假: " + orNone(vacation),
		"现在与理想的状态: " + orNone(status),
	}
}

// GrowthAnswerLines formats the growth open answers for the brief prompt.
func GrowthAnswerLines(limitingVoice, fear, idealFuture string) []string {
	return []string{
		"限制性声音: " + orNone(limitingVoice),
		"突破渴望与恐惧: " + orNone(fear),
		"理想未来: " + orNone(idealFuture),
	}
}

func orNone(s string) string {
	if strings.TrimSpace(s) == "" {
		return "无"
	}
	return s
}
