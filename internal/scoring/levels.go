package scoring

// Level is a severity tier with its display decorations.
type Level struct {
	Label string   `json:"label"`
	Emoji string   `json:"emoji"`
	Tags  []string `json:"tags"`

	// SharePercent is the population share shown next to the tier.
	SharePercent string `json:"share_percent,omitempty"`
}

var growthLevels = []Level{
	{Label: "绿灯区 (轻度阻碍)", Emoji: "🟢", Tags: []string{"#状态在线", "#小卡点", "#稳步前进"}},
	{Label: "黄灯区 (中度阻碍)", Emoji: "🟡", Tags: []string{"#时常卡住", "#需要觉察", "#可以突破"}},
	{Label: "橙灯区 (中重度阻碍)", Emoji: "🟠", Tags: []string{"#反复打转", "#模式固化", "#该行动了"}},
	{Label: "红灯区 (重度阻碍)", Emoji: "🔴", Tags: []string{"#长期停滞", "#内在冲突", "#需要支持"}},
	{Label: "紧急区 (极重度阻碍)", Emoji: "🚨", Tags: []string{"#全面受阻", "#身心透支", "#请先照顾自己"}},
}

var drainLevels = []Level{
	{Label: "能量自由型", Emoji: "🌟", SharePercent: "12%", Tags: []string{"#人间清醒", "#松弛感天花板", "#低内耗体质"}},
	{Label: "轻度内耗型", Emoji: "🌤️", SharePercent: "38%", Tags: []string{"#还算正常人", "#偶尔emo", "#可控范围内"}},
	{Label: "中度内耗型", Emoji: "⛅", SharePercent: "35%", Tags: []string{"#精神内耗重灾区", "#长期疲惫", "#该重视了"}},
	{Label: "重度内耗型", Emoji: "🌧️", SharePercent: "15%", Tags: []string{"#能量耗竭", "#需要帮助", "#抱抱你"}},
}

// GrowthLevel maps a 0-10 growth index to its tier. The last tier catches
// everything above 8.4, including out-of-range values.
func GrowthLevel(index float64) Level {
	switch {
	case index <= 2.9:
		return growthLevels[0]
	case index <= 4.9:
		return growthLevels[1]
	case index <= 6.9:
		return growthLevels[2]
	case index <= 8.4:
		return growthLevels[3]
	default:
		return growthLevels[4]
	}
}

// DrainLevel maps a 0-100 drain score to its tier.
func DrainLevel(total float64) Level {
	switch {
	case total <= 25:
		return drainLevels[0]
	case total <= 50:
		return drainLevels[1]
	case total <= 75:
		return drainLevels[2]
	default:
		return drainLevels[3]
	}
}

// GrowthLevels returns all growth tiers from mildest to most severe.
func GrowthLevels() []Level { return append([]Level(nil), growthLevels...) }

// DrainLevels returns all drain tiers from mildest to most severe.
func DrainLevels() []Level { return append([]Level(nil), drainLevels...) }

// Behavior pattern severities.
const (
	BehaviorMild     = "轻度"
	BehaviorModerate = "中度"
	BehaviorSevere   = "重度"
)

// BehaviorLevel grades a raw behavior pattern total against the pattern's
// maximum. Patterns topping out at 13 get one extra point of headroom in the
// moderate band.
func BehaviorLevel(raw, maxScore float64) string {
	moderate := 8.0
	if maxScore >= 13 {
		moderate = 9
	}
	switch {
	case raw <= 4:
		return BehaviorMild
	case raw <= moderate:
		return BehaviorModerate
	default:
		return BehaviorSevere
	}
}
