// Package cli implements the recipe command.
package cli

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-recipe/internal/config"
	"github.com/KimNorgaard/go-recipe/internal/logging"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed, color.Bold)
	detailColor  = color.New(color.FgYellow)
)

// Execute runs the recipe command and exits non-zero on failure.
func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds the state shared by every subcommand. It is filled in by the
// root command before a subcommand runs.
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

func newRootCmd() *cobra.Command {
	var (
		configPath string
		debug      bool
	)
	a := &app{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:   "recipe",
		Short: "Format, check and convert KDL recipe files",
		Long: `recipe works with recipes written as KDL documents.

A file may hold several top-level recipe nodes. Every command decodes all
of them and reports errors with the path of the offending node.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = logging.New(cmd.ErrOrStderr(), debug)
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger.Debug("loaded config",
				zap.String("path", configPath),
				zap.Int("indent", cfg.Format.Indent),
				zap.String("export", cfg.Export.Format),
			)
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = a.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default ./recipe.yaml)")
	cmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")

	cmd.AddCommand(a.fmtCmd())
	cmd.AddCommand(a.checkCmd())
	cmd.AddCommand(a.exportCmd())
	cmd.AddCommand(a.hashCmd())
	cmd.AddCommand(a.newCmd())

	return cmd
}

func pluralize(n int, word string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
