package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gridkit/gridkit/pkg/errors"
	"github.com/gridkit/gridkit/pkg/geobox"
	"github.com/gridkit/gridkit/pkg/geobox/transform"
	"github.com/gridkit/gridkit/pkg/gridio"
)

// transformOpts holds the command-line flags for the transform command.
type transformOpts struct {
	flipY     bool    // reverse row order
	flipX     bool    // reverse column order
	translate string  // pixel-origin offset as "TX,TY"
	pad       int     // symmetric padding in pixels
	padXY     string  // asymmetric padding as "PX,PY"
	zoomOut   float64 // zoom-out factor (> 0)
	zoomTo    string  // target shape as "HEIGHTxWIDTH"
	rotate    float64 // rotation in degrees around the pixel-plane center
	output    string  // output file path (stdout JSON if empty)
}

// transformCommand creates the transform command for applying geometric
// transformations to a grid box descriptor.
func (c *CLI) transformCommand() *cobra.Command {
	var opts transformOpts

	cmd := &cobra.Command{
		Use:   "transform <descriptor>",
		Short: "Apply geometric transforms to a grid box descriptor",
		Long: `Apply geometric transforms to a grid box descriptor and write the result.

Transforms are applied in a fixed order regardless of flag order:
flip-y, flip-x, translate, pad, zoom-out, zoom-to, rotate.
Run the command repeatedly to compose them in a different order.

Examples:
  gridkit transform scene.json --flip-y -o flipped.json
  gridkit transform scene.json --pad 16 --zoom-out 2
  gridkit transform scene.json --rotate 45 -o rotated.toml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTransform(cmd.Context(), cmd, &opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.flipY, "flip-y", false, "reverse row order (world extent preserved)")
	cmd.Flags().BoolVar(&opts.flipX, "flip-x", false, "reverse column order (world extent preserved)")
	cmd.Flags().StringVar(&opts.translate, "translate", "", "shift the pixel origin by TX,TY pixels")
	cmd.Flags().IntVar(&opts.pad, "pad", 0, "grow the box by N pixels on every side")
	cmd.Flags().StringVar(&opts.padXY, "pad-xy", "", "grow the box by PX,PY pixels per axis")
	cmd.Flags().Float64Var(&opts.zoomOut, "zoom-out", 0, "coarsen resolution by a factor > 0")
	cmd.Flags().StringVar(&opts.zoomTo, "zoom-to", "", "resample to an exact HEIGHTxWIDTH shape")
	cmd.Flags().Float64Var(&opts.rotate, "rotate", 0, "rotate by degrees around the pixel-plane center")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout JSON if empty)")

	cmd.MarkFlagsMutuallyExclusive("pad", "pad-xy")

	return cmd
}

// runTransform loads a descriptor, applies the requested transforms in
// order, and writes the result.
func runTransform(ctx context.Context, cmd *cobra.Command, opts *transformOpts, path string) error {
	logger := loggerFromContext(ctx)

	box, err := gridio.Import(path)
	if err != nil {
		return err
	}

	steps, err := buildSteps(cmd, opts)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no transforms requested")
	}

	for _, step := range steps {
		box = step.apply(box)
		logger.Debugf("Applied %s: now %dx%d px", step.name, box.Height(), box.Width())
	}

	if opts.output == "" {
		printSuccess("Applied %d transform(s)", len(steps))
		return gridio.WriteJSON(box, os.Stdout)
	}
	if err := gridio.Export(box, opts.output); err != nil {
		return err
	}
	printSuccess("Applied %d transform(s)", len(steps))
	printFile(opts.output)
	return nil
}

// step is one named transform to apply.
type step struct {
	name  string
	apply func(geobox.GeoBox) geobox.GeoBox
}

// buildSteps validates the flags and assembles the transforms to run, in
// the documented fixed order.
func buildSteps(cmd *cobra.Command, opts *transformOpts) ([]step, error) {
	var steps []step

	if opts.flipY {
		steps = append(steps, step{"flip-y", transform.FlipY})
	}
	if opts.flipX {
		steps = append(steps, step{"flip-x", transform.FlipX})
	}
	if opts.translate != "" {
		tx, ty, err := parseOffset(opts.translate)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{"translate", func(b geobox.GeoBox) geobox.GeoBox {
			return transform.TranslatePixels(b, tx, ty)
		}})
	}
	if cmd.Flags().Changed("pad") {
		if opts.pad < 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "padding must be non-negative, got %d", opts.pad)
		}
		pad := opts.pad
		steps = append(steps, step{"pad", func(b geobox.GeoBox) geobox.GeoBox {
			return transform.Pad(b, pad)
		}})
	}
	if opts.padXY != "" {
		padx, pady, err := parsePad(opts.padXY)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{"pad-xy", func(b geobox.GeoBox) geobox.GeoBox {
			return transform.PadXY(b, padx, pady)
		}})
	}
	if cmd.Flags().Changed("zoom-out") {
		if opts.zoomOut <= 0 {
			return nil, errors.New(errors.ErrCodeInvalidInput, "zoom-out factor must be > 0, got %g", opts.zoomOut)
		}
		factor := opts.zoomOut
		steps = append(steps, step{"zoom-out", func(b geobox.GeoBox) geobox.GeoBox {
			return transform.ZoomOut(b, factor)
		}})
	}
	if opts.zoomTo != "" {
		h, w, err := parseShape(opts.zoomTo)
		if err != nil {
			return nil, err
		}
		steps = append(steps, step{fmt.Sprintf("zoom-to %dx%d", h, w), func(b geobox.GeoBox) geobox.GeoBox {
			return transform.ZoomTo(b, h, w)
		}})
	}
	if cmd.Flags().Changed("rotate") {
		deg := opts.rotate
		steps = append(steps, step{"rotate", func(b geobox.GeoBox) geobox.GeoBox {
			return transform.Rotate(b, deg)
		}})
	}

	return steps, nil
}
