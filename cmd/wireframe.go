package cmd

import (
	"fmt"
	"image/png"
	"os"

	"github.com/ianfixes/Illuminator/internal/model"
	"github.com/spf13/cobra"
)

var wireframeCmd = &cobra.Command{
	Use:   "wireframe [dump-file]",
	Short: "Render a dump's element geometry as a PNG wireframe",
	Long: `Parse an accessibility debug dump and render every element's frame as an
outlined, labeled box. Useful for reviewing what a dump actually describes
without a device attached. Reads stdin when no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWireframe,
}

func init() {
	rootCmd.AddCommand(wireframeCmd)
	wireframeCmd.Flags().StringP("out", "o", "wireframe.png", "Output PNG file")
	wireframeCmd.Flags().Float64("scale", 1.0, "Scale factor from screen points to pixels")
}

func runWireframe(cmd *cobra.Command, args []string) error {
	outPath, _ := cmd.Flags().GetString("out")
	scale, _ := cmd.Flags().GetFloat64("scale")

	text, err := readDumpInput(args)
	if err != nil {
		return err
	}

	root, err := model.ParseDescription(text)
	if err != nil {
		return fmt.Errorf("failed to parse dump: %w", err)
	}

	img := RenderWireframe(root, scale)

	f, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%dx%d)\n", outPath, img.Bounds().Dx(), img.Bounds().Dy())
	return nil
}
