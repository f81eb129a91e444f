package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gridkit/gridkit/pkg/geobox"
	"github.com/gridkit/gridkit/pkg/gridio"
)

// infoCommand creates the info command for inspecting grid box descriptors.
func (c *CLI) infoCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "info <descriptor>",
		Short: "Inspect a grid box descriptor",
		Long: `Inspect a grid box descriptor file and print its geometry.

The descriptor may be JSON or TOML (detected by extension) and must carry
the pixel shape, the affine transform (or a GDAL geotransform), and
optionally a CRS string.

Examples:
  gridkit info scene.json
  gridkit info scene.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

// runInfo loads a descriptor and prints its geometry.
func runInfo(path string) error {
	box, err := gridio.Import(path)
	if err != nil {
		return err
	}

	fmt.Println(StyleTitle.Render(path))

	printKeyValue("Size", fmt.Sprintf("%d × %d px", box.Width(), box.Height()))
	printKeyValue("CRS", crsLabel(box.CRS()))
	printKeyValue("Transform", box.Transform().String())

	xres, yres := box.Resolution()
	printKeyValue("Resolution", fmt.Sprintf("%g × %g", xres, yres))

	ext := box.Extent()
	printKeyValue("Extent", fmt.Sprintf("[%g, %g, %g, %g]",
		ext.Min[0], ext.Min[1], ext.Max[0], ext.Max[1]))

	gt := box.Transform().ToGDAL()
	printDetail("geotransform: [%g, %g, %g, %g, %g, %g]",
		gt[0], gt[1], gt[2], gt[3], gt[4], gt[5])

	return nil
}

// crsLabel renders a CRS for display, marking undefined ones.
func crsLabel(crs geobox.CRS) string {
	if !crs.IsDefined() {
		return StyleDim.Render("(undefined)")
	}
	return string(crs)
}
