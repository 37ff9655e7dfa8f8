package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/intake"
	"github.com/abhisek/mindload/internal/output"
	"github.com/abhisek/mindload/internal/report"
	"github.com/abhisek/mindload/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score [file...]",
	Short: "Score answer files and save them as assessments",
	Long: "Score one or more JSON answer files. A file is either an object keyed by " +
		`question id ({"1": 2, "36": "..."}) or {"model": "growth", "responses": {...}}. ` +
		"Use - or no argument to read from stdin.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			args = []string{intake.Stdin}
		}
		noSave, _ := cmd.Flags().GetBool("no-save")

		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}

		inputs, err := intake.Load(args, scoring.ModelID(cfg.Model), cmd.InOrStdin())
		if err != nil {
			return err
		}

		views := make([]*output.ScoreView, 0, len(inputs))
		if noSave {
			for _, in := range inputs {
				views = append(views, &output.ScoreView{Scores: in.Scores})
			}
		} else {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			svc, err := report.NewService(s, nil, reportOptions())
			if err != nil {
				return err
			}
			// Saved one at a time so duplicate detection sees earlier files.
			for _, in := range inputs {
				sub, err := svc.Submit(cmd.Context(), in.Model, in.Responses)
				if err != nil {
					return fmt.Errorf("%s: %w", in.Path, err)
				}
				views = append(views, &output.ScoreView{
					AssessmentID: sub.Assessment.ID,
					Reused:       sub.Reused,
					Scores:       sub.Scores,
				})
			}
		}

		if f.Format() == output.FormatJSON && len(views) > 1 {
			data := make([]any, len(views))
			for i, v := range views {
				data[i] = v.RenderData()
			}
			return f.Output(data)
		}
		for i, v := range views {
			if i > 0 {
				fmt.Fprintln(f.Writer())
			}
			if err := f.Output(v); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	scoreCmd.Flags().Bool("no-save", false, "Only print scores, do not store an assessment")
}
