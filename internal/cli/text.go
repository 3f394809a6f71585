package cli

import (
	"fmt"

	"github.com/mgpai22/scriptkit/internal/script"
	"github.com/spf13/cobra"
)

var textCmd = &cobra.Command{
	Use:   "text [script_file]",
	Short: "Extract the plain text of a script",
	Long: `Print the text of a script file with timing stripped, one record per line.

Plain .txt files are printed as is. TSV files need the text column, either
with --text-col or through a column mapping file.

Examples:
  scriptkit text episode.srt
  scriptkit text script.tsv --start-col 0 --text-col 2 -o script.txt`,
	Args: cobra.ExactArgs(1),
	RunE: runText,
}

func init() {
	rootCmd.AddCommand(textCmd)
	addColumnFlags(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	scriptPath := args[0]

	content, ext, err := readScript(scriptPath)
	if err != nil {
		return err
	}

	cfg, err := textColumnConfig(cmd)
	if err != nil {
		return err
	}

	text, err := script.ExtractFileText(content, ext, cfg)
	if err != nil {
		return fmt.Errorf("failed to extract text from %s: %w", scriptPath, err)
	}

	logger.Infow("Extracted text", "file", scriptPath, "bytes", len(text))

	return writeOutput(cmd, withTrailingNewline(text))
}

// text extraction only reads the text column, so --text-col alone is enough
func textColumnConfig(cmd *cobra.Command) (*script.ColumnConfig, error) {
	if cmd.Flags().Changed("text-col") && !cmd.Flags().Changed("start-col") {
		textIndex, _ := cmd.Flags().GetInt("text-col")
		return &script.ColumnConfig{TextColumnIndex: textIndex}, nil
	}
	return columnConfig(cmd)
}
