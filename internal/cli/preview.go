package cli

import (
	"fmt"

	"github.com/mgpai22/scriptkit/internal/script"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview [script_file]",
	Short: "Show the header and first rows of a tabular script",
	Long: `Print the header row and the first few data rows of a delimited script
file as JSON, to help pick column mappings for the parse command.

Examples:
  scriptkit preview script.tsv
  scriptkit preview script.csv --delimiter , --rows 10
  scriptkit preview script.tsv --no-header`,
	Args: cobra.ExactArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)

	previewCmd.Flags().
		IntP("rows", "n", 5, "Number of data rows to show (or set SCRIPTKIT_PREVIEW_ROWS)")
	previewCmd.Flags().
		StringP("delimiter", "d", "\\t", "Column delimiter (or set SCRIPTKIT_DELIMITER)")
	previewCmd.Flags().
		Bool("no-header", false, "Treat the first line as data")
}

func runPreview(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	noHeader, _ := cmd.Flags().GetBool("no-header")

	opts := script.DefaultPreviewOptions()
	opts.HasHeader = !noHeader
	opts.RowCount = appConfig.PreviewRows
	opts.Delimiter = unescapeDelimiter(appConfig.Delimiter)
	if cmd.Flags().Changed("rows") {
		opts.RowCount, _ = cmd.Flags().GetInt("rows")
	}
	if cmd.Flags().Changed("delimiter") {
		delimiter, _ := cmd.Flags().GetString("delimiter")
		opts.Delimiter = unescapeDelimiter(delimiter)
	}

	content, _, err := readScript(scriptPath)
	if err != nil {
		return err
	}

	logger.Debugw("Previewing script",
		"file", scriptPath,
		"rows", opts.RowCount,
		"delimiter", fmt.Sprintf("%q", opts.Delimiter),
		"has_header", opts.HasHeader,
	)

	return writeJSON(cmd, script.Preview(content, opts))
}

// shells make a literal tab awkward to type
func unescapeDelimiter(d string) string {
	if d == `\t` {
		return "\t"
	}
	return d
}
