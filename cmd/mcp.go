package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/mcpserver"
	"github.com/abhisek/mindload/internal/report"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve scoring tools to MCP clients over stdio",
	RunE: func(cmd *cobra.Command, args []string) error {
		readOnly, _ := cmd.Flags().GetBool("read-only")

		var submitter mcpserver.Submitter
		if !readOnly {
			s, err := openStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close()

			svc, err := report.NewService(s, nil, reportOptions())
			if err != nil {
				return err
			}
			submitter = svc
		}

		return mcpserver.ServeStdio(mcpserver.New(currentVersion().Version, submitter))
	},
}

func init() {
	mcpCmd.Flags().Bool("read-only", false, "Score without opening the database; saving is disabled")
}
