package cli

import (
	"github.com/mgpai22/scriptkit/internal/config"
	"github.com/mgpai22/scriptkit/internal/logging"
	"github.com/spf13/cobra"
)

var (
	verbose   bool
	logger    *logging.Logger
	appConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scriptkit",
	Short: "Parse and inspect timed transcript files",
	Long: `Scriptkit turns subtitle and script files into timed transcript lines.

It reads SRT, WebVTT, bracketed SSWT and tab separated scripts, reports
malformed records as warnings instead of failing, and can preview tabular
files, extract plain text or convert between subtitle formats.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger = logging.NewLogger(verbose)

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		appConfig = cfg
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().
		BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output file path")
}
