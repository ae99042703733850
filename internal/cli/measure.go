package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/esvg/svgtext"
)

type measureOpts struct {
	font string
	size int
}

func newMeasureCmd() *cobra.Command {
	var opts measureOpts

	cmd := &cobra.Command{
		Use:   "measure <text>",
		Short: "Print the size of a text rendered with a font",
		Long: `Print the width and height, in pixels, of a text rendered with the
given font family and size.

The font is looked up by file name in the system font directories,
or used directly when --font is a path.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			opts.font = pick(cmd, "font", opts.font, cfg.Font)
			opts.size = pick(cmd, "size", opts.size, cfg.FontSize)
			return runMeasure(cmd.Context(), cmd.OutOrStdout(), args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.font, "font", DefaultConfig.Font, "font family or file")
	cmd.Flags().IntVar(&opts.size, "size", DefaultConfig.FontSize, "font size")

	return cmd
}

func runMeasure(ctx context.Context, out io.Writer, text string, opts measureOpts) error {
	logger := loggerFromContext(ctx)

	box, err := svgtext.MeasureText(text, svgtext.TextStyle{FontFamily: opts.font, FontSize: opts.size})
	if err != nil {
		return err
	}
	logger.Debug("measured text", "font", opts.font, "size", opts.size)
	_, err = fmt.Fprintf(out, "%g %g\n", box.W(), box.H())
	return err
}
