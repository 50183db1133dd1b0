package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-recipe/fingerprint"
)

func (a *app) hashCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hash [files...]",
		Short: "Print the content fingerprint of each recipe",
		Long: `Print the content fingerprint of each recipe, one per line, followed by
the recipe's node name. The fingerprint ignores layout, comments and the
choice between shorthand and explicit forms.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				items, err := a.load(cmd, path)
				if err != nil {
					return err
				}
				for _, it := range items {
					d, err := fingerprint.Of(it.Name, it.Recipe)
					if err != nil {
						return err
					}
					fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", d, it.Name)
				}
			}
			return nil
		},
	}
}
