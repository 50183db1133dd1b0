package cli

import (
	"bytes"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func (a *app) fmtCmd() *cobra.Command {
	var write, check bool

	c := &cobra.Command{
		Use:   "fmt [files...]",
		Short: "Rewrite recipe files in canonical form",
		Long: `Rewrite recipe files in canonical form.

By default the canonical text is printed to stdout. Use --write to update
the files in place, or --check to fail when any file is not canonical.
A file named - is read from stdin.

Examples:
  recipe fmt pancakes.kdl
  recipe fmt --write *.kdl
  recipe fmt --check *.kdl`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			unformatted := 0
			for _, path := range args {
				if write && path == stdinPath {
					return errors.New("cannot use --write with stdin")
				}

				original, err := a.readInput(cmd, path)
				if err != nil {
					return err
				}
				items, err := decodeAll(original)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				formatted, err := canonicalize(items, a.cfg.Options()...)
				if err != nil {
					return fmt.Errorf("%s: %w", path, err)
				}
				changed := !bytes.Equal(original, formatted)

				switch {
				case check:
					if changed {
						errorColor.Fprintf(cmd.ErrOrStderr(), "✗ %s needs formatting\n", path)
						unformatted++
					}
				case write:
					if !changed {
						continue
					}
					if err := os.WriteFile(path, formatted, 0o644); err != nil {
						return err
					}
					a.logger.Info("formatted file", zap.String("file", path), zap.Int("recipes", len(items)))
					successColor.Fprintf(cmd.OutOrStdout(), "✓ %s formatted\n", path)
				default:
					if _, err := cmd.OutOrStdout().Write(formatted); err != nil {
						return err
					}
				}
			}

			if unformatted > 0 {
				return fmt.Errorf("%s not canonical", pluralize(unformatted, "file"))
			}
			return nil
		},
	}

	c.Flags().BoolVarP(&write, "write", "w", false, "Write canonical output back to the files")
	c.Flags().BoolVarP(&check, "check", "c", false, "Exit with an error if any file is not canonical")
	c.MarkFlagsMutuallyExclusive("write", "check")

	return c
}
