package cmd

import (
	"fmt"
	"runtime"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/abhisek/mindload/internal/output"
)

// version is set via -ldflags at build time.
var version = "(devel)"

type versionInfo struct {
	Version string `json:"version"`
	Go      string `json:"go"`
	Commit  string `json:"commit,omitempty"`
}

func currentVersion() versionInfo {
	v := versionInfo{Version: version, Go: runtime.Version()}
	if bi, ok := debug.ReadBuildInfo(); ok {
		if v.Version == "(devel)" && bi.Main.Version != "" {
			v.Version = bi.Main.Version
		}
		for _, s := range bi.Settings {
			if s.Key == "vcs.revision" && len(s.Value) >= 12 {
				v.Commit = s.Value[:12]
			}
		}
	}
	return v
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the mindload version",
	RunE: func(cmd *cobra.Command, args []string) error {
		v := currentVersion()
		f, err := newFormatter(cmd)
		if err != nil {
			return err
		}
		if f.Format() == output.FormatJSON {
			return f.Output(v)
		}
		fmt.Fprintf(f.Writer(), "mindload %s (%s)\n", v.Version, v.Go)
		return nil
	},
}
