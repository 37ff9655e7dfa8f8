package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/output"
	"github.com/abhisek/mindload/internal/scoring"
)

var questionsCmd = &cobra.Command{
	Use:   "questions [growth|drain]",
	Short: "List the questions of a questionnaire and how to answer them",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id := scoring.ModelID(cfg.Model)
		if len(args) == 1 {
			id = scoring.ModelID(args[0])
		}
		m, err := scoring.ModelFor(id)
		if err != nil {
			return err
		}

		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}
		return f.Output(output.QuestionTable(m.Catalog()))
	},
}
