package cli

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/esvg/svgdoc"
	"github.com/benoitkugler/esvg/svgpage"
)

type newOpts struct {
	paper     string
	dpi       int
	margin    float64
	landscape bool
}

func newNewCmd() *cobra.Command {
	var opts newOpts

	cmd := &cobra.Command{
		Use:   "new [file]",
		Short: "Write an empty page document",
		Long: `Write an empty document sized for a paper preset (A5, A4, A3, Letter)
or a custom WIDTHxHEIGHT size like 200mmx8in.

The document is written to stdout when no file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			opts.paper = pick(cmd, "paper", opts.paper, cfg.Paper)
			opts.dpi = pick(cmd, "dpi", opts.dpi, cfg.DPI)
			opts.margin = pick(cmd, "margin", opts.margin, cfg.Margin)
			var path string
			if len(args) == 1 {
				path = args[0]
			}
			return runNew(cmd.Context(), cmd.OutOrStdout(), path, cfg.Indent, opts)
		},
	}

	cmd.Flags().StringVar(&opts.paper, "paper", DefaultConfig.Paper, "paper preset or WIDTHxHEIGHT")
	cmd.Flags().IntVar(&opts.dpi, "dpi", DefaultConfig.DPI, "resolution in pixels per inch")
	cmd.Flags().Float64Var(&opts.margin, "margin", DefaultConfig.Margin, "border size in inches")
	cmd.Flags().BoolVar(&opts.landscape, "landscape", false, "use landscape orientation")

	return cmd
}

func runNew(ctx context.Context, out io.Writer, path, indent string, opts newOpts) error {
	logger := loggerFromContext(ctx)

	page, err := svgpage.BuildPage(opts.paper, opts.dpi, opts.margin)
	if err != nil {
		return err
	}
	if opts.landscape && page.IsPortrait() {
		page = page.Rotate()
	}
	logger.Debug("page", "width", page.Width, "height", page.Height, "dpi", page.DPI)

	doc := svgpage.NewDocument(page)
	if path == "" {
		return svgdoc.Encode(out, doc, svgdoc.Indent(indent))
	}
	if err := svgdoc.Save(path, doc, svgdoc.Indent(indent)); err != nil {
		return err
	}
	logger.Info("Wrote page", "file", path, "width", page.Width, "height", page.Height)
	return nil
}
