package cli

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/mgpai22/scriptkit/internal/script"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [script_file]",
	Short: "Parse a script file into timed transcript lines",
	Long: `Parse an SRT, VTT, SSWT or TSV script file and print the resulting
lines and warnings as JSON.

Malformed records are skipped and reported as warnings. TSV files need a
column mapping, given either with the index flags or a YAML file.

Examples:
  scriptkit parse episode.srt
  scriptkit parse episode.vtt --episode-id ep-12 --sort
  scriptkit parse script.tsv --start-col 0 --text-col 2 --end-col 1
  scriptkit parse script.tsv --columns columns.yaml -o lines.json`,
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)

	parseCmd.Flags().
		StringP("episode-id", "e", "", "Episode ID stamped on every line (default: random UUID)")
	parseCmd.Flags().
		Bool("sort", false, "Sort lines by start time")
	parseCmd.Flags().
		Bool("strict", false, "Exit with an error if any warnings were produced")
	addColumnFlags(parseCmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	episodeID, _ := cmd.Flags().GetString("episode-id")
	sortLines, _ := cmd.Flags().GetBool("sort")
	strict, _ := cmd.Flags().GetBool("strict")

	if episodeID == "" {
		episodeID = appConfig.DefaultEpisode
	}
	if episodeID == "" {
		episodeID = uuid.NewString()
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

	logger.Debugw("Parsing script",
		"file", scriptPath,
		"episode_id", episodeID,
	)

	outcome, err := script.Parse(content, format, episodeID, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse %s: %w", scriptPath, err)
	}
	logWarnings(scriptPath, outcome.Warnings)

	if sortLines {
		sort.SliceStable(outcome.Lines, func(i, j int) bool {
			return outcome.Lines[i].StartTimeMs < outcome.Lines[j].StartTimeMs
		})
	}

	logger.Infow("Parsed script",
		"file", scriptPath,
		"lines", len(outcome.Lines),
		"warnings", len(outcome.Warnings),
	)

	if err := writeJSON(cmd, outcome); err != nil {
		return err
	}

	if strict && len(outcome.Warnings) > 0 {
		return fmt.Errorf("%s produced %d warnings", scriptPath, len(outcome.Warnings))
	}
	return nil
}
