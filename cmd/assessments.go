package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/output"
	"github.com/abhisek/mindload/internal/questionnaire"
	"github.com/abhisek/mindload/internal/report"
	"github.com/abhisek/mindload/internal/scoring"
	"github.com/abhisek/mindload/internal/store"
)

var assessmentsCmd = &cobra.Command{
	Use:     "assessments",
	Aliases: []string{"a"},
	Short:   "Browse saved assessments",
}

var assessmentsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved assessments, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		limit, _ := cmd.Flags().GetInt("limit")
		model, _ := cmd.Flags().GetString("model")
		if !cmd.Flags().Changed("model") {
			model = ""
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

		items, err := s.ListAssessments(cmd.Context(), store.ListOpts{Model: model, Limit: limit})
		if err != nil {
			return fmt.Errorf("list assessments: %w", err)
		}
		if len(items) == 0 && f.Format() == output.FormatText {
			fmt.Fprintln(f.Writer(), "No assessments found.")
			return nil
		}
		return f.Output(output.AssessmentTable(items))
	},
}

var assessmentsViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show an assessment with its scores and stored report",
	Args:  cobra.ExactArgs(1),
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

		a, _, scores, err := loadAssessment(cmd, s, args[0])
		if err != nil {
			return err
		}
		return f.Output(&output.AssessmentView{Assessment: a, Scores: scores})
	},
}

func init() {
	assessmentsListCmd.Flags().IntP("limit", "n", 20, "Number of assessments to show (0 = all)")

	assessmentsCmd.AddCommand(assessmentsListCmd)
	assessmentsCmd.AddCommand(assessmentsViewCmd)
}

// loadAssessment fetches an assessment and recomputes its scores.
func loadAssessment(cmd *cobra.Command, s *store.Store, id string) (*store.Assessment, questionnaire.Responses, *scoring.Scores, error) {
	svc, err := report.NewService(s, nil, report.Options{})
	if err != nil {
		return nil, nil, nil, err
	}
	a, responses, scores, err := svc.Load(cmd.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil, nil, fmt.Errorf("assessment %s not found", id)
	}
	if err != nil {
		return nil, nil, nil, fmt.Errorf("load assessment: %w", err)
	}
	return a, responses, scores, nil
}
