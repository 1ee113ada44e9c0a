package cmd

import (
	"fmt"
	"strings"

	"github.com/ianfixes/Illuminator/internal/model"
	"github.com/ianfixes/Illuminator/internal/output"
	"github.com/spf13/cobra"
)

var treeCmd = &cobra.Command{
	Use:   "tree [dump-file]",
	Short: "Show the parsed element tree of a dump",
	Long: `Parse an accessibility debug dump and print the reconstructed element
tree. Use --flat for a breadcrumb list with one entry per element, including
its compiled accessor expression. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTree,
}

func init() {
	rootCmd.AddCommand(treeCmd)
	treeCmd.Flags().Bool("flat", false, "Flatten the tree into a breadcrumb list")
	treeCmd.Flags().String("types", "", "Filter flat output by type name (e.g. \"Button\", \"Button,Cell\")")
	treeCmd.Flags().String("root", "app", "Variable name used for accessor expressions in flat output")
}

func runTree(cmd *cobra.Command, args []string) error {
	flat, _ := cmd.Flags().GetBool("flat")
	typesStr, _ := cmd.Flags().GetString("types")
	rootVar, _ := cmd.Flags().GetString("root")

	text, err := readDumpInput(args)
	if err != nil {
		return err
	}

	root, err := model.ParseDescription(text)
	if err != nil {
		return fmt.Errorf("failed to parse dump: %w", err)
	}

	if !flat {
		if typesStr != "" {
			return fmt.Errorf("--types requires --flat")
		}
		return output.Print(output.TreeResult{Root: root})
	}

	elements := model.FlattenTree(root, rootVar)
	if typesStr != "" {
		var types []string
		for _, t := range strings.Split(typesStr, ",") {
			if t = strings.TrimSpace(t); t != "" {
				types = append(types, t)
			}
		}
		elements = model.FilterFlat(elements, types)
	}
	if elements == nil {
		elements = []model.FlatNode{}
	}
	return output.Print(output.TreeFlatResult{Elements: elements})
}
