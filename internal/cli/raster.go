package cli

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/esvg/svgraster"
)

type rasterOpts struct {
	output        string
	width, height int
	strict        bool
}

func newRasterCmd() *cobra.Command {
	var opts rasterOpts

	cmd := &cobra.Command{
		Use:   "raster [file]",
		Short: "Render a document to PNG",
		Long: `Render a document to a PNG image.

The image size defaults to the view box of the document. Unsupported
elements and paints are skipped with a warning, or abort the rendering
with --strict.

The image is written next to the input file with a .png extension,
or to stdout when reading stdin, unless -o is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			if opts.output == "" && len(args) == 1 && args[0] != "-" {
				opts.output = strings.TrimSuffix(args[0], filepath.Ext(args[0])) + ".png"
			}
			return runRaster(cmd.Context(), cmd.OutOrStdout(), data, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output PNG file")
	cmd.Flags().IntVar(&opts.width, "width", 0, "image width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "image height in pixels")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail on unsupported content")
	cmd.MarkFlagsRequiredTogether("width", "height")

	return cmd
}

func runRaster(ctx context.Context, out io.Writer, data []byte, name string, opts rasterOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	if opts.width < 0 || opts.height < 0 {
		return errors.New("image size must be positive")
	}
	mode := svgraster.WarnErrorMode
	if opts.strict {
		mode = svgraster.StrictErrorMode
	}
	rasterOptions := []svgraster.Option{
		svgraster.WithErrorMode(mode),
		svgraster.WithLogger(logger.With("input", name)),
	}
	if opts.width > 0 && opts.height > 0 {
		rasterOptions = append(rasterOptions, svgraster.Size(opts.width, opts.height))
	}

	img, err := svgraster.RasterizeReader(bytes.NewReader(data), rasterOptions...)
	if err != nil {
		return err
	}
	logger.Debug("rasterized", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())

	if opts.output == "" {
		return svgraster.EncodePNG(out, img)
	}
	f, err := os.Create(opts.output)
	if err != nil {
		return err
	}
	if err := svgraster.EncodePNG(f, img); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	prog.done("Wrote " + opts.output)
	return nil
}
