package cmd

import (
	"fmt"
	"os"

	"github.com/ianfixes/Illuminator/internal/model"
	"github.com/ianfixes/Illuminator/internal/output"
	"github.com/spf13/cobra"
)

var diffCmd = &cobra.Command{
	Use:   "diff <before-file> <after-file>",
	Short: "Compare two dumps of the same screen",
	Long: `Parse two accessibility debug dumps and report the elements added,
removed, and changed between them. Elements are matched by semantic identity
(type, identifier, label, position in the tree), not by debug handle, so the
comparison is stable across separate dumps.`,
	Args: cobra.ExactArgs(2),
	RunE: runDiff,
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

func runDiff(cmd *cobra.Command, args []string) error {
	prev, err := flattenDumpFile(args[0])
	if err != nil {
		return err
	}
	curr, err := flattenDumpFile(args[1])
	if err != nil {
		return err
	}

	return output.Print(output.DiffResult{Diff: model.DiffDumps(prev, curr)})
}

func flattenDumpFile(path string) ([]model.FlatNode, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dump: %w", err)
	}
	root, err := model.ParseDescription(string(data))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return model.FlattenTree(root, "app"), nil
}
