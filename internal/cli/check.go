package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
	"github.com/spf13/cobra"

	"github.com/benoitkugler/esvg/svgdoc"
)

// ErrNotCanonical is returned by check --strict when the document
// differs from its formatted form.
var ErrNotCanonical = errors.New("document is not in canonical form")

type checkOpts struct {
	strict  bool
	compact bool
	indent  string
}

func newCheckCmd() *cobra.Command {
	var opts checkOpts

	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Check that a document parses, and show formatting changes",
		Long: `Parse a document and compare it with its formatted form.

The lines fmt would change are printed as a diff. The command fails on
parse errors, and on any difference when --strict is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := configFromContext(cmd.Context())
			opts.indent = pick(cmd, "indent", opts.indent, cfg.Indent)
			data, name, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return runCheck(cmd.Context(), cmd.OutOrStdout(), string(data), name, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.strict, "strict", false, "fail if the document is not formatted")
	cmd.Flags().BoolVar(&opts.compact, "compact", false, "compare against the compact form")
	cmd.Flags().StringVar(&opts.indent, "indent", DefaultConfig.Indent, "indentation unit")

	return cmd
}

func runCheck(ctx context.Context, out io.Writer, input, name string, opts checkOpts) error {
	logger := loggerFromContext(ctx)

	doc, err := svgdoc.Parse(input, svgdoc.WithComments())
	if err != nil {
		return fmt.Errorf("%s: %w", name, err)
	}
	var encodeOpts []svgdoc.EncodeOption
	if opts.compact {
		encodeOpts = append(encodeOpts, svgdoc.Compact())
	} else {
		encodeOpts = append(encodeOpts, svgdoc.Indent(opts.indent))
	}
	var sb strings.Builder
	if err := svgdoc.Encode(&sb, doc, encodeOpts...); err != nil {
		return err
	}

	changed := writeLineDiff(out, input, sb.String())
	if changed == 0 {
		logger.Info("Document is formatted", "input", name)
		return nil
	}
	logger.Warn("Document is not formatted", "input", name, "lines", changed)
	if opts.strict {
		return fmt.Errorf("%s: %w", name, ErrNotCanonical)
	}
	return nil
}

var (
	insertLine = color.New(color.FgGreen).SprintFunc()
	deleteLine = color.New(color.FgRed).SprintFunc()
)

// writeLineDiff prints the lines changed between `from` and `to`,
// prefixed by "-" or "+", and returns their number.
func writeLineDiff(w io.Writer, from, to string) int {
	dmp := diffpatch.New()
	a, b, lines := dmp.DiffLinesToChars(from, to)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	changed := 0
	for _, diff := range diffs {
		var prefix string
		var paint func(...any) string
		switch diff.Type {
		case diffpatch.DiffInsert:
			prefix, paint = "+", insertLine
		case diffpatch.DiffDelete:
			prefix, paint = "-", deleteLine
		default:
			continue
		}
		for _, line := range strings.SplitAfter(diff.Text, "\n") {
			if line == "" {
				continue
			}
			changed++
			fmt.Fprint(w, paint(prefix+strings.TrimSuffix(line, "\n")), "\n")
		}
	}
	return changed
}
