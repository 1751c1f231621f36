// Package cli implements the mailschema command line.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jakenesler/mailschema/config"
	"github.com/jakenesler/mailschema/internal"
	"github.com/jakenesler/mailschema/metrics"
	"github.com/jakenesler/mailschema/openapi"
	"github.com/jakenesler/mailschema/validate"
)

// app carries what every command needs once the configuration is loaded.
type app struct {
	v       *viper.Viper
	cfg     *config.Config
	catalog *openapi.Catalog
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: viper.New()}

	root := &cobra.Command{
		Use:               "mailschema",
		Short:             "Schema catalog and payload validation for the email marketing API",
		SilenceUsage:      true,
		PersistentPreRunE: a.load,
	}
	root.PersistentFlags().String("config", "", "path to config.yaml (default: ~/.config/mailschema/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")

	a.v.SetEnvPrefix(config.EnvPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(root.PersistentFlags()); err != nil {
		panic(err)
	}

	root.AddCommand(
		newOpsCmd(a),
		newSearchCmd(a),
		newShowCmd(a),
		newExampleCmd(a),
		newExportCmd(a),
		newSpecsCmd(a),
		newValidateCmd(a),
		newInterpretCmd(a),
		newServeCmd(a),
	)
	return root
}

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	if err := NewRootCmd().Execute(); err != nil {
		return 1
	}
	return 0
}

func (a *app) load(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.v.GetString("config"))
	if err != nil {
		return err
	}
	if lvl := a.v.GetString("log-level"); lvl != "" {
		cfg.LogLevel = lvl
	}
	if addr := a.v.GetString("metrics-addr"); addr != "" {
		cfg.MetricsAddr = addr
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	if err := internal.SetLevel(cfg.LogLevel); err != nil {
		return err
	}

	a.cfg = cfg
	a.catalog = openapi.Default()
	return nil
}

// store returns a store with every configured document loaded.
func (a *app) store(ctx context.Context) *openapi.Store {
	s := openapi.NewStore(a.catalog, a.cfg.Specs)
	s.LoadAll(ctx)
	return s
}

func (a *app) validator(m *metrics.Metrics) *validate.Validator {
	opts := []validate.Option{validate.WithUnknownParams(a.cfg.AllowUnknownParams)}
	if m != nil {
		opts = append(opts, validate.WithMetrics(m))
	}
	return validate.New(a.catalog, opts...)
}

func newTable() table.Writer {
	tw := table.NewWriter()
	tw.Style().Options.DrawBorder = false
	tw.Style().Options.SeparateColumns = false
	tw.Style().Options.SeparateFooter = false
	tw.Style().Options.SeparateHeader = false
	tw.Style().Options.SeparateRows = false
	return tw
}

// readInput reads a payload from a file, or stdin when path is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, nil
	}
	if path == "-" {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}
