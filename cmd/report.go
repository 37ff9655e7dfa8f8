package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/llm"
	"github.com/abhisek/mindload/internal/output"
	"github.com/abhisek/mindload/internal/report"
	"github.com/abhisek/mindload/internal/store"
)

var reportCmd = &cobra.Command{
	Use:   "report <assessment-id>",
	Short: "Generate or show the AI report of an assessment",
	Long: "Show the stored long-form report of an assessment, generating it first when " +
		"there is none. --brief asks for the short structured guide instead.",
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		brief, _ := cmd.Flags().GetBool("brief")
		regenerate, _ := cmd.Flags().GetBool("regenerate")
		noStream, _ := cmd.Flags().GetBool("no-stream")
		ctx := cmd.Context()

		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}

		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		a, responses, scores, err := loadAssessment(cmd, s, args[0])
		if err != nil {
			return err
		}

		if !brief && !regenerate && a.AIStatus == store.AICompleted {
			return f.Output(&output.DeepReportView{Report: &report.DeepReport{
				AssessmentID: a.ID,
				Content:      a.AIAnalysis,
				WordCount:    a.AIWordCount,
			}})
		}

		if err := cfg.LLM.Validate(); err != nil {
			return fmt.Errorf("LLM provider not configured: %w", err)
		}
		provider, err := llm.NewProvider(ctx, cfg.LLM, s)
		if err != nil {
			return err
		}
		svc, err := report.NewService(s, provider, reportOptions())
		if err != nil {
			return err
		}

		if brief {
			b, err := svc.Brief(ctx, scores, report.OpenAnswers(scores.Model, responses))
			if err != nil {
				return fmt.Errorf("brief report: %w", err)
			}
			if len(b.Defaulted) > 0 {
				slog.Warn("brief report incomplete, used stock content", "fields", b.Defaulted)
			}
			return f.Output(output.BriefView(b))
		}

		stream := cfg.Report.Stream && !noStream && f.Format() == output.FormatText
		if !stream {
			r, err := svc.Deep(ctx, a.ID)
			if err != nil {
				return fmt.Errorf("deep report: %w", err)
			}
			return f.Output(&output.DeepReportView{Report: r})
		}

		w := f.Writer()
		r, err := svc.DeepStream(ctx, a.ID, func(delta string) {
			fmt.Fprint(w, delta)
		})
		if err != nil {
			fmt.Fprintln(w)
			var cut *llm.ErrStreamInterrupted
			if errors.As(err, &cut) {
				f.Warning("report cut off after %d characters; run `mindload report %s --regenerate` to retry",
					utf8.RuneCountInString(cut.Partial), a.ID)
			}
			return fmt.Errorf("deep report: %w", err)
		}
		fmt.Fprintln(w)
		return f.Output(&output.DeepReportView{Report: r, Streamed: true})
	},
}

func init() {
	reportCmd.Flags().Bool("brief", false, "Generate the short structured guide")
	reportCmd.Flags().Bool("regenerate", false, "Generate a new report even if one is stored")
	reportCmd.Flags().Bool("no-stream", false, "Print the report only once it is complete")
}

func reportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.Temperature = cfg.Report.Temperature
	opts.MaxTokens = cfg.Report.MaxTokens
	opts.BriefTemperature = cfg.Report.BriefTemperature
	opts.BriefMaxTokens = cfg.Report.BriefMaxTokens
	opts.HighScoreThreshold = cfg.Report.HighScoreThreshold
	opts.CacheSize = cfg.Report.CacheSize
	return opts
}
