package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/esvg/svgdoc"
)

type fmtOpts struct {
	output   string
	compact  bool
	indent   string
	comments bool
}

func newFmtCmd() *cobra.Command {
	var opts fmtOpts

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Pretty print a document",
		Long: `Parse a document and write it back in canonical form: pretty printed
with one element per line, or on a single line with --compact.

Comments are dropped unless --comments is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			opts.indent = pick(cmd, "indent", opts.indent, cfg.Indent)
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runFmt(cmd.Context(), cmd.OutOrStdout(), data, name, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "write the document on a single line")
	cmd.Flags().StringVar(&opts.indent, "indent", DefaultConfig.Indent, "indentation unit")
	cmd.Flags().BoolVar(&opts.comments, "comments", false, "keep comments")

	return cmd
}

func (opts fmtOpts) parseOptions() []svgdoc.ParseOption {
	if opts.comments {
		return []svgdoc.ParseOption{svgdoc.WithComments()}
	}
	return nil
}

func (opts fmtOpts) encodeOptions() []svgdoc.EncodeOption {
	if opts.compact {
		return []svgdoc.EncodeOption{svgdoc.Compact()}
	}
	return []svgdoc.EncodeOption{svgdoc.Indent(opts.indent)}
}

func runFmt(ctx context.Context, out io.Writer, data []byte, name string, opts fmtOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := svgdoc.ParseBytes(data, opts.parseOptions()...)
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	logger.Debug("parsed document", "input", name, "root", doc.Name)

	if opts.output == "" {
		return svgdoc.Encode(out, doc, opts.encodeOptions()...)
	}
	if err := svgdoc.Save(opts.output, doc, opts.encodeOptions()...); err != nil {
		return err
	}
	logger.Info("Formatted document", "input", name, "output", opts.output)
	return nil
}
