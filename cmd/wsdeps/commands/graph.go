package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newTreeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tree",
		Short: "Print the workspace dependency tree",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Tree(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newJSONCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Print the dependency graph as JSON",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.JSON(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newDotCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "dot",
		Short: "Print the dependency graph in Graphviz DOT format",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Dot(cmd.Context(), options(cmd))
		},
	}
}

func (c *CLI) newShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <package>",
		Short: "Show dependencies, dependents and build order of a package",
		Long: "Show dependencies, dependents and build order of a package.\n\n" +
			"The package is matched by its exact path first, then by a unique substring of its path.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Show(cmd.Context(), args[0], options(cmd))
		},
	}
}

func (c *CLI) newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Check for circular dependencies and cross-app dependencies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			watch, _ := cmd.Flags().GetBool("watch")
			if watch {
				return c.app.Watch(cmd.Context(), options(cmd))
			}
			return c.app.Check(cmd.Context(), options(cmd))
		},
	}
	cmd.Flags().BoolP("watch", "w", false, "Re-run the check whenever the lockfile or config changes")
	return cmd
}
