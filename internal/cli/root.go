// Package cli implements the tablefit command.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/bjaus/tablefit"
	"github.com/bjaus/tablefit/internal/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const envPrefix = "tablefit"

// terminalWidth is replaced in tests.
var terminalWidth = tablefit.TerminalWidth

type options struct {
	format     string
	maxWidth   int
	columns    []string
	border     string
	width      int
	prefix     string
	variables  []string
	noIndent   bool
	configFile string
	logLevel   string
}

// NewRootCommand returns the tablefit command.
func NewRootCommand() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "tablefit [file]",
		Short: "Render JSON or YAML records as a table fitted to the terminal",
		Long: `tablefit reads JSON or YAML from a file or standard input and renders it.

A sequence of mappings is rendered as a list with one column per key. A single
mapping is rendered as one record. Tables are fitted to the terminal width
unless --max-width or --width say otherwise.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if err := applyConfig(cmd, opts.configFile); err != nil {
				return err
			}
			level, err := logger.ParseLevel(opts.logLevel)
			if err != nil {
				return err
			}
			log := logger.New(cmd.ErrOrStderr(), level)
			log.Logger = log.WithValues(logger.CommandKey, cmd.Name())
			cmd.SetContext(logger.WithLogger(cmd.Context(), log))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&opts.format, "format", "f", string(tablefit.Table), "output format: "+formatNames()+", or go-template=<tmpl>")
	flags.IntVar(&opts.maxWidth, "max-width", 0, "maximum display width of each table column, 0 to fit the terminal")
	flags.StringSliceVarP(&opts.columns, "column", "c", nil, "column to include, can be repeated (default: all columns)")
	flags.StringVar(&opts.border, "border", "ascii", "table border style: ascii, rounded, heavy, double")
	flags.IntVar(&opts.width, "width", 0, "display width to fit tables to (default: terminal width)")
	flags.StringVar(&opts.prefix, "prefix", "", "prefix for variable names in shell format")
	flags.StringSliceVar(&opts.variables, "variable", nil, "variable to include in shell format, can be repeated (default: all)")
	flags.BoolVar(&opts.noIndent, "noindent", false, "compact JSON and YAML output")
	flags.StringVar(&opts.configFile, "config", "", "path to a YAML config file with flag defaults")
	flags.StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	return cmd
}

// Execute runs the root command with the process arguments.
func Execute(ctx context.Context) error {
	cmd := NewRootCommand()
	err := cmd.ExecuteContext(ctx)
	if cmd.Context() != nil {
		logger.FromContext(cmd.Context()).Sync()
	}
	return err
}

func formatNames() string {
	names := make([]string, 0, len(tablefit.Formats()))
	for _, f := range tablefit.Formats() {
		names = append(names, f.String())
	}
	return strings.Join(names, ", ")
}

// applyConfig fills flags the user did not set from TABLEFIT_* environment
// variables and, if given, a config file. Flags set on the command line win.
func applyConfig(cmd *cobra.Command, configFile string) error {
	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", configFile, err)
		}
	}

	var errs []string
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed || f.Name == "config" || !v.IsSet(f.Name) {
			return
		}
		if err := cmd.Flags().Set(f.Name, flagValue(v.Get(f.Name))); err != nil {
			errs = append(errs, err.Error())
		}
	})
	if len(errs) > 0 {
		return fmt.Errorf("error mapping configuration to flags: %s", strings.Join(errs, "; "))
	}
	return nil
}

// flagValue renders a config value the way pflag parses it. Lists become
// comma-separated strings for slice flags.
func flagValue(val any) string {
	switch t := val.(type) {
	case []any:
		parts := make([]string, len(t))
		for i, p := range t {
			parts[i] = fmt.Sprint(p)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(t, ",")
	default:
		return fmt.Sprint(t)
	}
}

func run(cmd *cobra.Command, args []string, opts *options) error {
	log := logger.FromContext(cmd.Context())

	format, err := tablefit.ParseFormat(opts.format)
	if err != nil {
		return err
	}
	border, err := tablefit.ParseBorder(opts.border)
	if err != nil {
		return err
	}

	in := cmd.InOrStdin()
	if len(args) == 1 && args[0] != "-" {
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	data, err := decodeInput(in)
	if err != nil {
		return err
	}
	data, err = data.selectColumns(opts.columns)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	renderOpts := tablefit.Options{
		MaxWidth:  opts.maxWidth,
		Width:     displayWidth(out, opts.width),
		Border:    border,
		Prefix:    opts.prefix,
		Variables: opts.variables,
		Logger:    log.Logger,
	}
	if !opts.noIndent {
		renderOpts.Indent = "  "
	}

	log.V(1).Info("rendering input",
		"format", format.String(),
		"columns", len(data.columns),
		"rows", len(data.rows),
		"single", data.single,
	)
	if data.single {
		return tablefit.WriteOne(out, format, data.columns, data.rows[0], renderOpts)
	}
	return tablefit.WriteList(out, format, data.columns, data.rows, renderOpts)
}

func displayWidth(out io.Writer, override int) tablefit.WidthFunc {
	if override > 0 {
		return tablefit.FixedWidth(override)
	}
	return terminalWidth(out)
}
