package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/KimNorgaard/go-recipe/export"
)

func (a *app) exportCmd() *cobra.Command {
	var format string

	c := &cobra.Command{
		Use:   "export [file]",
		Short: "Convert a recipe file to YAML, JSON or CBOR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format == "" {
				format = a.cfg.Export.Format
			}
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			items, err := a.load(cmd, args[0])
			if err != nil {
				return err
			}
			out, err := export.Marshal(f, items...)
			if err != nil {
				return err
			}
			a.logger.Debug("exported", zap.String("format", string(f)), zap.Int("bytes", len(out)))
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	c.Flags().StringVarP(&format, "format", "f", "", "Output format: yaml, json or cbor (default from config)")
	return c
}
