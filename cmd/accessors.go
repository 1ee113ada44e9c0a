package cmd

import (
	"fmt"

	"github.com/ianfixes/Illuminator/internal/model"
	"github.com/ianfixes/Illuminator/internal/output"
	"github.com/spf13/cobra"
)

var accessorsCmd = &cobra.Command{
	Use:   "accessors [dump-file]",
	Short: "Generate accessor expressions for every element in a dump",
	Long: `Parse an accessibility debug dump and print one ready-to-paste accessor
expression per locatable element, e.g. app.buttons["Submit"] or
app.tables.cells.elementAtIndex(2). Reads stdin when no file is given.

Elements nested only under unclassified containers with no identifier or
label are omitted: no stable accessor exists for them.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runAccessors,
}

func init() {
	rootCmd.AddCommand(accessorsCmd)
	accessorsCmd.Flags().String("root", "app", "Variable name of the application root in generated expressions")
	accessorsCmd.Flags().Bool("plain", false, "Print one accessor per line instead of a structured result")
}

func runAccessors(cmd *cobra.Command, args []string) error {
	rootVar, _ := cmd.Flags().GetString("root")
	plain, _ := cmd.Flags().GetBool("plain")

	text, err := readDumpInput(args)
	if err != nil {
		return err
	}

	root, err := model.ParseDescription(text)
	if err != nil {
		return fmt.Errorf("failed to parse dump: %w", err)
	}

	accessors := model.AccessorDumpTree(root, rootVar)

	if plain {
		for _, a := range accessors {
			fmt.Fprintln(cmd.OutOrStdout(), a)
		}
		return nil
	}

	result := output.AccessorsResult{
		Root:      rootVar,
		Count:     len(accessors),
		Accessors: accessors,
	}
	if result.Accessors == nil {
		result.Accessors = []string{}
	}
	return output.Print(result)
}
