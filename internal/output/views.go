package output

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/report"
	"github.com/abhisek/mindload/internal/scoring"
	"github.com/abhisek/mindload/internal/store"
	"github.com/abhisek/mindload/internal/ui/components"
)

// ScoreView renders a scored assessment.
type ScoreView struct {
	AssessmentID string
	Reused       bool
	Scores       *scoring.Scores
}

type scoreData struct {
	AssessmentID string          `json:"assessment_id,omitempty"`
	Reused       bool            `json:"reused,omitempty"`
	Share        string          `json:"share_text"`
	Scores       *scoring.Scores `json:"scores"`
}

func (v *ScoreView) RenderData() any {
	return scoreData{
		AssessmentID: v.AssessmentID,
		Reused:       v.Reused,
		Share:        scoring.ShareText(v.Scores),
		Scores:       v.Scores,
	}
}

func (v *ScoreView) RenderText(w io.Writer, colored bool) error {
	card := components.NewScoreCard(v.Scores).View()
	if !colored {
		card = ansi.Strip(card)
	}
	if _, err := fmt.Fprintln(w, card); err != nil {
		return err
	}
	if v.AssessmentID != "" {
		note := "saved as"
		if v.Reused {
			note = "identical answers already saved as"
		}
		_, err := fmt.Fprintf(w, "\n%s %s\n", note, v.AssessmentID)
		return err
	}
	return nil
}

func (v *ScoreView) RenderMarkdown(w io.Writer) error {
	s := v.Scores
	headline := fmt.Sprintf("成长阻碍指数：%s / 10", formatNum(s.OverallIndex))
	if s.Model == scoring.ModelDrain {
		headline = fmt.Sprintf("内耗指数：%s / 100（超过了 %d%% 的人）", formatNum(s.TotalScore), s.BeatPercent)
	}
	fmt.Fprintf(w, "# %s %s\n\n%s\n\n", s.Level.Emoji, s.Level.Label, headline)
	if len(s.Level.Tags) > 0 {
		fmt.Fprintf(w, "%s\n\n", strings.Join(s.Level.Tags, " "))
	}

	dims := dimensionTable("维度", s.DimensionOrder, s.DimensionScores, s.DimensionDisplay, nil)
	if err := dims.RenderMarkdown(w); err != nil {
		return err
	}
	if s.Model == scoring.ModelGrowth {
		behaviors := dimensionTable("行为模式", s.BehaviorOrder, s.BehaviorScores, s.BehaviorDisplay, s.BehaviorLevels)
		if err := behaviors.RenderMarkdown(w); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "> %s\n", scoring.ShareText(s))
	return err
}

func dimensionTable(title string, order []string, raw, display map[string]float64, levels map[string]string) *Table {
	headers := []string{"名称", "原始分", "得分"}
	if levels != nil {
		headers = append(headers, "程度")
	}
	rows := make([][]string, 0, len(order))
	for _, name := range order {
		row := []string{name, formatNum(raw[name]), formatNum(display[name])}
		if levels != nil {
			row = append(row, levels[name])
		}
		rows = append(rows, row)
	}
	return NewTable(title, headers, rows, nil)
}

// AssessmentTable lists saved assessments.
func AssessmentTable(items []*store.Assessment) *Table {
	rows := make([][]string, 0, len(items))
	for _, a := range items {
		rows = append(rows, []string{
			a.ID,
			a.Model,
			string(a.AIStatus),
			strconv.Itoa(a.AIWordCount),
			a.CreatedAt.Local().Format(time.DateTime),
		})
	}
	return NewTable("Assessments", []string{"ID", "Model", "Report", "Words", "Created"}, rows, items)
}

// AssessmentView shows one assessment with its scores and stored report.
type AssessmentView struct {
	Assessment *store.Assessment
	Scores     *scoring.Scores
}

type assessmentData struct {
	*store.Assessment
	Recomputed *scoring.Scores `json:"recomputed_scores"`
}

func (v *AssessmentView) RenderData() any {
	return assessmentData{Assessment: v.Assessment, Recomputed: v.Scores}
}

func (v *AssessmentView) RenderText(w io.Writer, colored bool) error {
	a := v.Assessment
	fmt.Fprintf(w, "Assessment %s (%s), created %s\n\n", a.ID, a.Model, a.CreatedAt.Local().Format(time.DateTime))
	sv := &ScoreView{Scores: v.Scores}
	if err := sv.RenderText(w, colored); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return v.reportSection().RenderText(w, colored)
}

func (v *AssessmentView) RenderMarkdown(w io.Writer) error {
	sv := &ScoreView{Scores: v.Scores}
	if err := sv.RenderMarkdown(w); err != nil {
		return err
	}
	fmt.Fprintln(w)
	return v.reportSection().RenderMarkdown(w)
}

func (v *AssessmentView) reportSection() *Section {
	a := v.Assessment
	sec := &Section{Title: "Report"}
	switch a.AIStatus {
	case store.AICompleted:
		sec.Content = a.AIAnalysis
	case store.AIFailed:
		sec.Content = "generation failed: " + a.AIError
	case store.AIGenerating:
		sec.Content = "generation in progress"
	default:
		sec.Content = "not generated yet (run `mindload report " + a.ID + "`)"
	}
	return sec
}

// DeepReportView shows a generated long-form report.
type DeepReportView struct {
	Report *report.DeepReport
	// Streamed is set when the content was already written while it arrived.
	Streamed bool
}

func (v *DeepReportView) RenderData() any { return v.Report }

func (v *DeepReportView) RenderText(w io.Writer, _ bool) error {
	if !v.Streamed {
		fmt.Fprintln(w, v.Report.Content)
	}
	_, err := fmt.Fprintf(w, "\n(%d 字)\n", v.Report.WordCount)
	return err
}

func (v *DeepReportView) RenderMarkdown(w io.Writer) error {
	if v.Streamed {
		return nil
	}
	_, err := fmt.Fprintln(w, v.Report.Content)
	return err
}

// BriefView renders a structured brief report.
func BriefView(b *report.BriefReport) *Section {
	sec := &Section{
		Title: "你的成长简报",
		Data:  b,
		Sections: []Section{
			{Title: "分析", Content: b.Analysis},
			{Title: "立即行动", Content: numbered(b.ImmediateActions)},
			{
				Title: "21 天计划",
				Sections: []Section{
					{Title: "第一周", Content: numbered(b.Plan21Days.Week1)},
					{Title: "第二周", Content: numbered(b.Plan21Days.Week2)},
					{Title: "第三周", Content: numbered(b.Plan21Days.Week3)},
				},
			},
		},
	}
	warnings := make([]string, 0, len(b.RelapseWarnings))
	for _, rw := range b.RelapseWarnings {
		warnings = append(warnings, fmt.Sprintf("- %s → %s", rw.Signal, rw.Strategy))
	}
	sec.Sections = append(sec.Sections, Section{Title: "复发预警", Content: strings.Join(warnings, "\n")})
	return sec
}

// QuestionTable lists a catalog's questions.
func QuestionTable(c *questionnaire.Catalog) *Table {
	rows := make([][]string, 0, c.Len())
	for _, q := range c.Questions() {
		labels := make([]string, len(q.Options))
		for i, o := range q.Options {
			labels[i] = fmt.Sprintf("%d:%s", i, o.Label)
		}
		answers := strings.Join(labels, " / ")
		switch q.Type {
		case questionnaire.TypeScale:
			answers = fmt.Sprintf("%d-%d", questionnaire.ScaleMin, questionnaire.ScaleMax)
		case questionnaire.TypeOpen:
			answers = q.Placeholder
		}
		rows = append(rows, []string{strconv.Itoa(q.ID), string(q.Type), q.Dimension, q.Text, answers})
	}
	return NewTable(c.Name(), []string{"ID", "Type", "Dimension", "Question", "Answers"}, rows, c.Questions())
}

func numbered(items []string) string {
	lines := make([]string, len(items))
	for i, it := range items {
		lines[i] = fmt.Sprintf("%d. %s", i+1, it)
	}
	return strings.Join(lines, "\n")
}

func formatNum(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
