package cli

import (
	"fmt"

	"github.com/mgpai22/scriptkit/internal/script"
	"github.com/spf13/cobra"
)

var convertCmd = &cobra.Command{
	Use:   "convert [script_file]",
	Short: "Convert a script to SRT or VTT subtitles",
	Long: `Parse a script file and render its lines as SRT or WebVTT subtitles.

Lines without an end time are rendered with the end equal to the start.

Examples:
  scriptkit convert episode.vtt --to srt
  scriptkit convert script.tsv --to vtt --columns columns.yaml -o episode.vtt`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	rootCmd.AddCommand(convertCmd)

	convertCmd.Flags().
		StringP("to", "t", "srt", "Output subtitle format (srt, vtt)")
	addColumnFlags(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	to, _ := cmd.Flags().GetString("to")
	target, err := script.ParseFormat(to)
	if err != nil {
		return err
	}
	if _, err := script.NewWriter(target); err != nil {
		return err
	}

	content, ext, err := readScript(scriptPath)
	if err != nil {
		return err
	}

	format, err := structuredFormat(scriptPath, ext)
	if err != nil {
		return err
	}

	cfg, err := columnConfig(cmd)
	if err != nil {
		return err
	}

	outcome, err := script.Parse(content, format, "", cfg)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", scriptPath, err)
	}
	logWarnings(scriptPath, outcome.Warnings)

	rendered, err := script.Render(outcome.Lines, target)
	if err != nil {
		return err
	}

	logger.Infow("Converted script",
		"file", scriptPath,
		"format", target,
		"lines", len(outcome.Lines),
	)

	return writeOutput(cmd, rendered)
}
