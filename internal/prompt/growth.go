package prompt

import (
	"fmt"
	"strings"

	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/scoring"
)

// GrowthInput carries everything the growth report prompt interpolates.
// Text fields are expected to be sanitized already.
type GrowthInput struct {
	Scores *scoring.Scores

	AgeGroup          string
	FocusAreas        []string
	StuckDuration     string
	ChangeExpectation string
	Satisfaction      float64

	LimitingVoice string // Q48
	Fear          string // Q49
	IdealFuture   string // Q50

	HighScoreSummary string
}

// Growth renders the long-form growth-obstacle report prompt.
func Growth(in GrowthInput) string {
	s := in.Scores
	class := s.Classification
	if class == nil {
		class = &scoring.Classification{}
	}

	var b strings.Builder

	b.WriteString(`# 任务说明
现在有一位用户完成了"成长阻碍探测器"测评，你需要基于其50道题的答题数据，撰写一份深度个性化的成长分析报告。

关键要求：
1. 字数严格控制在 5000-7000 字，这是硬性指标。
2. 严禁使用 Markdown 的双星号 (**) 进行加粗。请用 # 和 ## 标题结构区分段落，正文不出现任何加粗标记。
3. 每个判断必须有具体答题证据支撑，引用题号和选项，例如"你在 Q12 选择了……"。
4. 至少还原 4 个具体生活场景，像电影慢镜头一样拆解。
`)
	fmt.Fprintf(&b, "5. 绝对禁止工程类词汇：严禁出现%s。\n", quotedList(forbiddenWords))
	b.WriteString(`6. 身份统一：你是"成长观察员"，严禁自称"咨询师"、"医生"或"伙伴"。

---

# 用户测评数据
## 基础信息
`)
	fmt.Fprintf(&b, "- 年龄段：%s\n", orUnanswered(in.AgeGroup))
	fmt.Fprintf(&b, "- 关注领域：%s\n", orUnanswered(strings.Join(in.FocusAreas, "、")))
	fmt.Fprintf(&b, "- 被卡住时长：%s\n", orUnanswered(in.StuckDuration))
	fmt.Fprintf(&b, "- 改变期待：%s\n", orUnanswered(in.ChangeExpectation))
	fmt.Fprintf(&b, "- 生活满意度：%s/10\n", num(in.Satisfaction))

	b.WriteString("## 核心评分\n")
	fmt.Fprintf(&b, "- 阻碍指数：%s/10\n", num(s.OverallIndex))
	fmt.Fprintf(&b, "- 状态评估：%s\n", s.Level.Label)
	fmt.Fprintf(&b, "- 核心心智障碍：%s（分值：%s/%s）\n", class.PrimaryBlock,
		num(s.DimensionScores[class.PrimaryBlock]), num(beliefMax(class.PrimaryBlock)))
	fmt.Fprintf(&b, "- 次要心智障碍：%s\n", class.SecondaryBlock)
	fmt.Fprintf(&b, "- 关键行为模式：%s（%s）\n", class.KeyBehavior, class.PatternType)

	b.WriteString("## 信念维度详细得分（0-5）\n")
	b.WriteString(numberObject(s.DimensionOrder, s.DimensionDisplay, true))
	b.WriteString("\n## 行为模式详细得分（0-5）\n")
	b.WriteString(behaviorObject(s))

	b.WriteString("\n## 开放题原文\n")
	fmt.Fprintf(&b, "Q48 - 内心的声音：%s\n", orUnanswered(in.LimitingVoice))
	fmt.Fprintf(&b, "Q49 - 最害怕的是：%s\n", orUnanswered(in.Fear))
	fmt.Fprintf(&b, "Q50 - 理想中的我：%s\n", orUnanswered(in.IdealFuture))

	b.WriteString("## 显著特征题目\n")
	b.WriteString(in.HighScoreSummary)

	b.WriteString(`

---

# 报告结构要求

## 第一部分：深层心理机制透视（1200-1500字）
1. 开篇锚定：以上文的阻碍指数开启对话。
2. 核心矛盾揭示：基于核心心智障碍，通过至少 3 道具体题目拆解内心冲突。
3. 隐藏功能分析：分析 Q48 那句内心声音背后的自我保护意图。
4. 自动化循环推测：描述触发、想法、情绪、行为到结果的闭环。

## 第二部分：早期经验与生命印记（800-1000字）
1. 答题模式中的印记：从关系维度推测早期环境。
2. 三个可能的童年场景假设：生动描述场景、信念形成及当下影响。
3. 生存策略的当下后果：以前的"聪明选择"如何变成现在的"沉重负担"。

## 第三部分：典型场景深度还原（1500-1800字，最重要）
1. 场景1：机会来临的那一刻。结合 Q33 拆解 T-24h 到 T+24h 的内心戏剧。
2. 场景2：获得赞美的瞬间。结合 Q9 拆解自我否定带来的"不适感"。
3. 场景3：根据用户最突出的问题定制场景，例如做决定的时刻。
4. 场景4：理想与现实的对话。分析现实中的你与 Q50 中"理想我"之间的恐惧墙。

## 第四部分：限制性心智图谱（800-1000字）
1. 信念闭环：用文字描绘一张从核心恐惧到行为逃避的地图。
2. 最难撼动的那一环：它为什么能长久存在？
3. 撬动改变的缝隙：设计具体的替换实验。

## 第五部分：行为模式的维持力量（600-800字）
1. 现状的"奖赏"：拖延或防御在潜意识里为你争取到了什么？
2. 循环图解说：解释每个环节之间的心理连接。

## 第六部分：突破路径规划（1200-1500字）
1. 阶段1：意识觉醒期（1-2周）。每日练习：反例搜集、声音监测。
2. 阶段2：小范围实验期（3-4周）。针对关键行为模式的微突破动作。
3. 阶段3：重塑期（5-8周）。心智替换练习。
4. 阶段4：巩固期（9-12周）。应对反复，建立长期观察习惯。

## 第七部分：写给你的信（500-700字）
回应用户在 Q49 写下的恐惧。
署名：你的成长观察员。
注意：严禁展示日期。

---

现在，请开始生成这份专属于用户的深度生命报告。记住：不需要加粗语法，用文字的深度去触动内心。`)

	return b.String()
}

func beliefMax(name string) float64 {
	p := questionnaire.GrowthCatalog().MustPartition(questionnaire.PartitionBeliefs)
	d, _ := p.Lookup(name)
	return d.MaxScore
}

// behaviorObject renders each behavior pattern with its display score and
// severity, in catalog order.
func behaviorObject(s *scoring.Scores) string {
	entries := make([]entry, len(s.BehaviorOrder))
	for i, name := range s.BehaviorOrder {
		entries[i] = entry{key: name, fields: []entry{
			{key: "score", value: num(s.BehaviorDisplay[name])},
			{key: "level", value: quote(s.BehaviorLevels[name])},
		}}
	}
	var b strings.Builder
	writeObject(&b, entries, true, 0)
	return b.String()
}

func quotedList(words []string) string {
	q := make([]string, len(words))
	for i, w := range words {
		q[i] = `"` + w + `"`
	}
	return strings.Join(q, "、")
}
