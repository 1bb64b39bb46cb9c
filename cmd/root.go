/*
Copyright © 2025 riad@rsworld.eu

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"awardlog/config"
)

// application holds per-process state shared between the cobra hooks and
// the failure handler.
type application struct {
	cfg         *config.Config
	configPaths []string
	now         func() time.Time
}

func (a *application) diagnostics() config.Diagnostics {
	if a.cfg == nil {
		return config.Diagnostics{}
	}
	return a.cfg.Diagnostics
}

func newRootCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "awardlog <input_file> <first_name_filter> <output_for_time> <output_for_emails>",
		Short: "Build completed-time and reminder reports from an award roster.",
		Long: `
**********************************************
*                AWARD LOG                   *
**********************************************

Reads a pipe-delimited roster (or the first sheet of an .xlsx workbook),
keeps the participants whose first name contains <first_name_filter>, and writes:

- <output_for_time>: the summed "completed" value per participant, one per line,
  smallest first
- <output_for_emails>: "first middle last" for every participant who never logged
  or last logged 14 or more days ago, sorted by first name

Both output files are overwritten.

Diagnostics (never change report contents):
- AWARDLOG_LOG_LEVEL=debug|info|warn|error
- AWARDLOG_LOG_FORMAT=console|json
- AWARDLOG_DIAGNOSTICS_BACKTRACE=true prints a stack trace on failure
`,
		Example: `
  # Reports for everyone whose first name contains "Ann"
  awardlog roster.txt Ann time.txt emails.txt

  # Reports for the whole roster
  awardlog roster.txt "" time.txt emails.txt

  # Read an Excel export
  awardlog roster.xlsx Ann time.txt emails.txt
`,
		Args:          cobra.ExactArgs(4),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(config.New(app.configPaths...))
			if err != nil {
				return err
			}
			app.cfg = cfg

			return config.InitLogger(cfg.Log)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReports(reportOptions{
				InputPath:       args[0],
				FirstNameFilter: args[1],
				TimeOutput:      args[2],
				EmailOutput:     args[3],
			}, app.now())
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = zap.L().Sync()
		},
	}
}

// Execute runs the root command and exits non-zero on failure.
// This is called by main.main(). It only needs to happen once.
func Execute() {
	app := &application{
		configPaths: defaultConfigPaths(),
		now:         time.Now,
	}

	if err := newRootCmd(app).Execute(); err != nil {
		reportFailure(os.Stderr, err, app.diagnostics())
		os.Exit(1)
	}
}

// defaultConfigPaths lists $HOME and the working directory, in that order.
func defaultConfigPaths() []string {
	paths := make([]string, 0, 2)
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, home)
	}
	return append(paths, ".")
}
