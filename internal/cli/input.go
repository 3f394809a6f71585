package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/scriptkit/internal/config"
	"github.com/mgpai22/scriptkit/internal/script"
	"github.com/spf13/cobra"
)

func readScript(path string) (content string, ext string, err error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("failed to read script file: %w", err)
	}
	return string(data), filepath.Ext(path), nil
}

// structuredFormat resolves ext and rejects formats without timing.
func structuredFormat(path, ext string) (script.Format, error) {
	format, err := script.ParseFormat(ext)
	if err != nil {
		return "", err
	}
	if !format.Structured() {
		return "", fmt.Errorf(
			"%w: %s has no timing, use the text command",
			script.ErrUnsupportedFormat,
			path,
		)
	}
	return format, nil
}

func addColumnFlags(cmd *cobra.Command) {
	cmd.Flags().
		String("columns", "", "YAML file mapping TSV columns (or set SCRIPTKIT_COLUMNS_FILE)")
	cmd.Flags().
		Int("start-col", 0, "Zero-based start time column for TSV scripts")
	cmd.Flags().
		Int("text-col", 0, "Zero-based text column for TSV scripts")
	cmd.Flags().
		Int("end-col", 0, "Zero-based end time column for TSV scripts (optional)")
}

// columnConfig resolves the TSV column mapping from the index flags, the
// --columns file or SCRIPTKIT_COLUMNS_FILE, in that order. It returns nil
// when nothing is configured.
func columnConfig(cmd *cobra.Command) (*script.ColumnConfig, error) {
	columnsPath, _ := cmd.Flags().GetString("columns")

	startSet := cmd.Flags().Changed("start-col")
	textSet := cmd.Flags().Changed("text-col")
	endSet := cmd.Flags().Changed("end-col")

	if startSet || textSet || endSet {
		if columnsPath != "" {
			return nil, fmt.Errorf(
				"%w: use either --columns or the column index flags, not both",
				script.ErrInvalidColumnConfig,
			)
		}
		if !startSet || !textSet {
			return nil, fmt.Errorf(
				"%w: --start-col and --text-col must be given together",
				script.ErrInvalidColumnConfig,
			)
		}

		start, _ := cmd.Flags().GetInt("start-col")
		text, _ := cmd.Flags().GetInt("text-col")
		cfg := &script.ColumnConfig{
			StartTimeColumnIndex: start,
			TextColumnIndex:      text,
		}
		if endSet {
			end, _ := cmd.Flags().GetInt("end-col")
			cfg.EndTimeColumnIndex = &end
		}
		return cfg, nil
	}

	if columnsPath == "" && appConfig != nil {
		columnsPath = appConfig.ColumnsFile
	}
	if columnsPath == "" {
		return nil, nil
	}

	logger.Debugw("Loading column config", "path", columnsPath)
	return config.LoadColumnConfig(columnsPath)
}

func logWarnings(path string, warnings []script.Warning) {
	for _, w := range warnings {
		logger.Warnw(w.Message,
			"file", path,
			"kind", w.Kind,
			"line", w.Line,
			"skipped", w.Skipped(),
		)
	}
}

// writeOutput writes to --output when given, stdout otherwise.
func writeOutput(cmd *cobra.Command, content string) error {
	outputPath, _ := cmd.Flags().GetString("output")
	if outputPath == "" {
		_, err := fmt.Fprint(cmd.OutOrStdout(), content)
		return err
	}

	if err := os.WriteFile(outputPath, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	absOutput, _ := filepath.Abs(outputPath)
	logger.Infow("Output written", "path", absOutput)
	return nil
}

func writeJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	return writeOutput(cmd, string(data)+"\n")
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
