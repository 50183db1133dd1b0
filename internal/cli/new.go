package cli

import (
	"github.com/spf13/cobra"

	"github.com/KimNorgaard/go-recipe"
)

func (a *app) newCmd() *cobra.Command {
	var name string

	c := &cobra.Command{
		Use:   "new",
		Short: "Print an empty recipe to start from",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if name == "" {
				name = a.cfg.Node.Name
			}
			out, err := recipe.Marshal(name, recipe.Recipe{}, a.cfg.Options()...)
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}

	c.Flags().StringVarP(&name, "name", "n", "", "Node name (default from config)")
	return c
}
