package cmd

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/llm"
	"github.com/abhisek/mindload/internal/output"
	"github.com/abhisek/mindload/internal/store"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect LLM request/response events",
}

var llmListCmd = &cobra.Command{
	Use:   "list",
	Short: "List recent LLM events",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		purpose, _ := cmd.Flags().GetString("purpose")
		assessment, _ := cmd.Flags().GetString("assessment")

		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		events, err := s.QueryLLMEvents(cmd.Context(), store.QueryOpts{
			Limit:        limit,
			Purpose:      purpose,
			AssessmentID: assessment,
		})
		if err != nil {
			return fmt.Errorf("query events: %w", err)
		}

		if len(events) == 0 && f.Format() == output.FormatText {
			fmt.Fprintln(f.Writer(), "No LLM events found.")
			return nil
		}

		rows := make([][]string, 0, len(events))
		for _, e := range events {
			ok := "✓"
			if !e.Success {
				ok = "✗"
			}
			mode := ""
			if e.Streamed {
				mode = "stream"
			}
			rows = append(rows, []string{
				strconv.FormatInt(e.ID, 10),
				e.Timestamp.Local().Format(time.DateTime),
				e.Purpose,
				truncate(e.Model, 28),
				strconv.Itoa(e.InputTokens),
				strconv.Itoa(e.OutputTokens),
				strconv.FormatInt(e.LatencyMs, 10),
				mode,
				ok,
			})
		}
		return f.Output(output.NewTable("LLM Events",
			[]string{"ID", "Timestamp", "Purpose", "Model", "In", "Out", "Ms", "Mode", "OK"},
			rows, events))
	},
}

var llmViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "View full request/response for an LLM event",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := strconv.ParseInt(args[0], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid ID %q: %w", args[0], err)
		}

		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		e, err := s.GetLLMEvent(cmd.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			return fmt.Errorf("event %d not found", id)
		}
		if err != nil {
			return fmt.Errorf("get event: %w", err)
		}

		var meta strings.Builder
		fmt.Fprintf(&meta, "Time:        %s\n", e.Timestamp.Local().Format(time.DateTime))
		fmt.Fprintf(&meta, "Provider:    %s\n", e.Provider)
		fmt.Fprintf(&meta, "Model:       %s\n", e.Model)
		fmt.Fprintf(&meta, "Purpose:     %s\n", e.Purpose)
		if e.AssessmentID != "" {
			fmt.Fprintf(&meta, "Assessment:  %s\n", e.AssessmentID)
		}
		fmt.Fprintf(&meta, "Streamed:    %v\n", e.Streamed)
		fmt.Fprintf(&meta, "Tokens:      %d in / %d out\n", e.InputTokens, e.OutputTokens)
		fmt.Fprintf(&meta, "Latency:     %dms\n", e.LatencyMs)
		fmt.Fprintf(&meta, "Success:     %v", e.Success)
		if e.ErrorMessage != "" {
			fmt.Fprintf(&meta, "\nError:       %s", e.ErrorMessage)
		}

		return f.Output(&output.Section{
			Title:   fmt.Sprintf("LLM Event %d", e.ID),
			Content: meta.String(),
			Data:    e,
			Sections: []output.Section{
				{Title: "Request", Content: orNotCaptured(e.RequestBody)},
				{Title: "Response", Content: orNotCaptured(e.ResponseBody)},
			},
		})
	},
}

var llmStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show aggregated LLM token usage and estimated cost",
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := cmd.Context()
		stats, err := s.LLMUsageByPurpose(ctx)
		if err != nil {
			return fmt.Errorf("query usage: %w", err)
		}
		if len(stats) == 0 && f.Format() == output.FormatText {
			fmt.Fprintln(f.Writer(), "No LLM usage recorded yet.")
			return nil
		}

		modelUsage, err := s.LLMUsageByModel(ctx)
		if err != nil {
			return fmt.Errorf("query model usage: %w", err)
		}

		byPurpose := purposeTable(stats)
		byModel, unknown := costTable(modelUsage)

		if f.Format() == output.FormatJSON {
			return f.Output(map[string]any{
				"by_purpose": stats,
				"by_model":   byModel.Data,
			})
		}
		if err := f.Output(byPurpose); err != nil {
			return err
		}
		if len(modelUsage) > 0 {
			if err := f.Output(byModel); err != nil {
				return err
			}
		}
		if len(unknown) > 0 {
			fmt.Fprintf(f.Writer(), "Pricing unavailable for: %s\n", strings.Join(unknown, ", "))
		}
		return nil
	},
}

func purposeTable(stats []store.LLMUsageStats) *output.Table {
	rows := make([][]string, 0, len(stats))
	var totalCalls, totalIn, totalOut int
	for _, st := range stats {
		rows = append(rows, []string{
			st.Purpose,
			strconv.Itoa(st.Calls),
			strconv.Itoa(st.InputTokens),
			strconv.Itoa(st.OutputTokens),
			strconv.Itoa(st.InputTokens + st.OutputTokens),
			strconv.FormatInt(st.AvgLatencyMs, 10),
		})
		totalCalls += st.Calls
		totalIn += st.InputTokens
		totalOut += st.OutputTokens
	}
	t := output.NewTable("Usage by Purpose",
		[]string{"Purpose", "Calls", "Input", "Output", "Total", "Avg Ms"}, rows, stats)
	t.Footer = []string{"TOTAL", strconv.Itoa(totalCalls), strconv.Itoa(totalIn), strconv.Itoa(totalOut), strconv.Itoa(totalIn + totalOut), ""}
	return t
}

type modelCost struct {
	store.LLMModelUsage
	CostUSD *float64 `json:"cost_usd"` // nil when the model has no known pricing
}

// costTable prices usage per model and returns the models without pricing.
func costTable(usage []store.LLMModelUsage) (*output.Table, []string) {
	rows := make([][]string, 0, len(usage))
	data := make([]modelCost, 0, len(usage))
	var total float64
	var unknown []string
	for _, mu := range usage {
		row := []string{truncate(mu.Model, 32), strconv.Itoa(mu.Calls), strconv.Itoa(mu.InputTokens), strconv.Itoa(mu.OutputTokens)}
		mc := modelCost{LLMModelUsage: mu}
		if cost := llm.LookupCost(mu.Model); cost != nil {
			c := cost.Cost(mu.InputTokens, mu.OutputTokens)
			total += c
			mc.CostUSD = &c
			row = append(row, formatCost(c))
		} else {
			unknown = append(unknown, mu.Model)
			row = append(row, "?")
		}
		rows = append(rows, row)
		data = append(data, mc)
	}

	label := "TOTAL"
	if len(unknown) > 0 {
		label = "TOTAL (partial)"
	}
	t := output.NewTable("Estimated Cost (USD)",
		[]string{"Model", "Calls", "Input", "Output", "Cost"}, rows, data)
	t.Footer = []string{label, "", "", "", formatCost(total)}
	return t, unknown
}

func orNotCaptured(s string) string {
	if s == "" {
		return "(not captured)"
	}
	return s
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max])
}

func formatCost(usd float64) string {
	if usd < 0.01 {
		return fmt.Sprintf("$%.4f", usd)
	}
	return fmt.Sprintf("$%.2f", usd)
}

func init() {
	llmListCmd.Flags().IntP("limit", "n", 20, "Number of events to show")
	llmListCmd.Flags().StringP("purpose", "p", "", "Filter by purpose ("+llm.PurposeDeepReport+", "+llm.PurposeBriefReport+")")
	llmListCmd.Flags().String("assessment", "", "Filter by assessment id")

	llmCmd.AddCommand(llmListCmd)
	llmCmd.AddCommand(llmViewCmd)
	llmCmd.AddCommand(llmStatsCmd)
}
