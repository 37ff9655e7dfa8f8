package scoring

import (
	"fmt"
	"strconv"
)

// ScoreDescription is the one-line verdict shown on a drain share card.
func ScoreDescription(total float64) string {
	switch {
	case total <= 30:
		return "能量充沛，状态极佳！"
	case total <= 50:
		return "偶尔内耗，整体可控"
	case total <= 70:
		return "内耗明显，需要关注"
	case total <= 85:
		return "严重内耗，急需调整"
	default:
		return "能量告急，请立即行动"
	}
}

// ChallengeText invites friends to take the drain test.
func ChallengeText(total float64) string {
	switch {
	case total <= 30:
		return "你是怎么做到的？快来挑战我！"
	case total <= 50:
		return "我还行，你敢来比比吗？"
	case total <= 70:
		return "我需要充电了，你呢？"
	default:
		return "救救我！你的内耗指数是多少？"
	}
}

// ShareText renders a one-paragraph summary suitable for social sharing.
func ShareText(s *Scores) string {
	if s.Model == ModelGrowth {
		return fmt.Sprintf("我的成长阻碍指数是 %s/10，处于「%s」%s，核心卡点是「%s」。",
			strconv.FormatFloat(s.OverallIndex, 'f', -1, 64), s.Level.Label, s.Level.Emoji, s.TopDimension)
	}
	return fmt.Sprintf("我的内耗指数是 %s 分，属于「%s」%s，最大的能量黑洞是「%s」。%s",
		strconv.FormatFloat(s.TotalScore, 'f', -1, 64), s.Level.Label, s.Level.Emoji, s.TopDimension,
		ChallengeText(s.TotalScore))
}
