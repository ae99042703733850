package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version = "dev" // semantic version, injected with ldflags
	commit  string  // git commit SHA
	date    string  // build timestamp
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the esvg command line with the process arguments.
//
// Logging goes to stderr at info level, or debug level with --verbose.
// The logger and the configuration loaded from --config are attached
// to the command context.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stderr).ExecuteContext(ctx)
}

// newRootCmd builds the command tree, logging to logOut.
func newRootCmd(logOut io.Writer) *cobra.Command {
	var (
		verbose    bool
		configPath string
	)

	root := &cobra.Command{
		Use:           "esvg",
		Short:         "esvg builds, formats and renders SVG documents",
		Long:          `esvg is a toolbox for SVG documents: it creates empty pages, pretty prints and checks existing files, rasterizes them to PNG and measures text.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			logger := newLogger(logOut, level)
			cfg, err := loadConfig(configPath)
			if err != nil {
				return err
			}
			if configPath != "" {
				logger.Debug("loaded config", "path", configPath, "dpi", cfg.DPI, "paper", cfg.Paper)
			}
			ctx := withConfig(withLogger(cmd.Context(), logger), cfg)
			cmd.SetContext(ctx)
			return nil
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("esvg %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
	root.PersistentFlags().StringVar(&configPath, "config", "", "TOML file with default settings")

	root.AddCommand(newNewCmd())
	root.AddCommand(newFmtCmd())
	root.AddCommand(newCheckCmd())
	root.AddCommand(newRasterCmd())
	root.AddCommand(newMeasureCmd())

	return root
}

// pick returns the flag value if it was set on the command line,
// or the configured one.
func pick[T any](cmd *cobra.Command, name string, flag, configured T) T {
	if cmd.Flags().Changed(name) {
		return flag
	}
	return configured
}

// readInput reads the file named by the first argument,
// or stdin if there is none or it is "-".
func readInput(cmd *cobra.Command, args []string) (data []byte, name string, err error) {
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, "", fmt.Errorf("read stdin: %w", err)
		}
		return data, "<stdin>", nil
	}
	data, err = os.ReadFile(args[0])
	if err != nil {
		return nil, "", err
	}
	return data, args[0], nil
}
