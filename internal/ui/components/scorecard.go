package components

import (
	"fmt"
	"strconv"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/mindload/internal/scoring"
	"github.com/abhisek/mindload/internal/ui/theme"
)

const defaultBarWidth = 20

// ScoreCard renders a scored assessment for the terminal.
type ScoreCard struct {
	Scores   *scoring.Scores
	BarWidth int
}

// NewScoreCard creates a score card with the default bar width.
func NewScoreCard(s *scoring.Scores) ScoreCard {
	return ScoreCard{Scores: s, BarWidth: defaultBarWidth}
}

// View renders the card.
func (c ScoreCard) View() string {
	s := c.Scores
	if s == nil {
		return ""
	}

	sections := []string{theme.Card.Render(c.banner())}
	if s.Model == scoring.ModelGrowth {
		sections = append(sections,
			theme.Section.Render("信念维度"),
			c.bars(s.DimensionOrder, s.DimensionDisplay, 5, nil),
			theme.Section.Render("行为模式"),
			c.bars(s.BehaviorOrder, s.BehaviorDisplay, 5, s.BehaviorLevels),
		)
		if cl := s.Classification; cl != nil {
			sections = append(sections,
				theme.Section.Render("阻碍结构"),
				fmt.Sprintf("主要卡点  %s\n次要卡点  %s\n关键行为  %s\n模式类型  %s",
					cl.PrimaryBlock, cl.SecondaryBlock, cl.KeyBehavior, cl.PatternType),
			)
		}
	} else {
		sections = append(sections,
			theme.Section.Render("内耗维度"),
			c.bars(s.DimensionOrder, s.DimensionDisplay, 100, nil),
		)
	}
	sections = append(sections, "", theme.Hint.Render(scoring.ShareText(s)))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (c ScoreCard) banner() string {
	s := c.Scores
	idx, n := levelIndex(s)
	level := theme.Level(idx, n)

	var head string
	if s.Model == scoring.ModelGrowth {
		head = fmt.Sprintf("成长阻碍指数  %s / 10", formatScore(s.OverallIndex))
	} else {
		head = fmt.Sprintf("内耗指数  %s / 100", formatScore(s.TotalScore))
	}

	lines := []string{
		theme.Title.Render(head),
		level.Render(strings.TrimSpace(s.Level.Emoji + " " + s.Level.Label)),
	}
	if s.Model == scoring.ModelDrain {
		lines = append(lines, theme.Body.Render(fmt.Sprintf("%s 超过了 %d%% 的人", scoring.ScoreDescription(s.TotalScore), s.BeatPercent)))
		if s.Level.SharePercent != "" {
			lines = append(lines, theme.Subtitle.Render(fmt.Sprintf("约 %s 的人属于这一类型", s.Level.SharePercent)))
		}
	}
	if len(s.Level.Tags) > 0 {
		lines = append(lines, theme.Tag.Render(strings.Join(s.Level.Tags, " ")))
	}
	return strings.Join(lines, "\n")
}

func (c ScoreCard) bars(order []string, values map[string]float64, full float64, levels map[string]string) string {
	labelWidth := 0
	for _, name := range order {
		labelWidth = max(labelWidth, lipgloss.Width(name))
	}

	rows := make([]string, 0, len(order))
	for _, name := range order {
		v := values[name]
		value := formatScore(v)
		if full == 100 {
			value += "%"
		}
		if lvl := levels[name]; lvl != "" {
			value += " " + lvl
		}
		bar := ProgressBar{
			Label:      name,
			LabelWidth: labelWidth,
			Percent:    v / full,
			Value:      value,
			Width:      c.BarWidth,
		}
		marker := "  "
		if name == c.Scores.TopDimension {
			marker = "▸ "
		}
		rows = append(rows, marker+bar.View())
	}
	return strings.Join(rows, "\n")
}

// levelIndex locates the scored tier among its model's tiers.
func levelIndex(s *scoring.Scores) (int, int) {
	levels := scoring.DrainLevels()
	if s.Model == scoring.ModelGrowth {
		levels = scoring.GrowthLevels()
	}
	for i, l := range levels {
		if l.Label == s.Level.Label {
			return i, len(levels)
		}
	}
	return 0, len(levels)
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
