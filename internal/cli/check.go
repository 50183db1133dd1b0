package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-recipe/document"
)

func (a *app) checkCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Report syntax and decode errors in recipe files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			failed := 0
			for _, path := range args {
				items, err := a.load(cmd, path)
				if err != nil {
					failed++
					reportError(cmd, err)
					continue
				}
				successColor.Fprintf(cmd.OutOrStdout(), "✓ %s (%s)\n", path, pluralize(len(items), "recipe"))
			}
			if failed > 0 {
				return fmt.Errorf("%d of %s failed", failed, pluralize(len(args), "file"))
			}
			return nil
		},
	}
}

// reportError prints err, listing every syntax error on its own line.
func reportError(cmd *cobra.Command, err error) {
	w := cmd.ErrOrStderr()
	errorColor.Fprintf(w, "✗ %v\n", err)

	var syntax document.ParseErrors
	if errors.As(err, &syntax) && len(syntax) > 1 {
		for _, e := range syntax {
			detailColor.Fprintf(w, "    %v\n", e)
		}
	}
}
