package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scaffoldkit/cli/internal/output"
	"github.com/scaffoldkit/cli/internal/scaffold"
)

// NewDataProjectCmd creates the root command for create-data-project.
func NewDataProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-data-project <project-name>",
		Short: "Create a data/analysis project skeleton",
		Long: `Create a starter directory tree for a data/analysis project.

The generated project contains data/, output/, logs/ and bash/
directories plus a configuration placeholder, path helpers, an MIT
license, a readme, ignore rules, and an executable pipeline runner.

Examples:
  # Create a project in the current directory
  create-data-project demo

  # Create a project under a specific base path
  create-data-project demo --path ~/projects`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runDataProject,
	}

	addGlobalFlags(cmd)
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runDataProject(cmd *cobra.Command, args []string) error {
	name := args[0]

	basePath, err := resolveBasePath()
	if err != nil {
		return err
	}

	gen := scaffold.NewGenerator(
		scaffold.ProjectRequest{Name: name, BasePath: basePath},
		scaffold.WithAuthor(resolveAuthor()),
	)

	var result *scaffold.Result
	err = output.RunWithSpinner(cmd.Context(), func() error {
		var genErr error
		result, genErr = gen.DataProject()
		return genErr
	}, output.WithTitle(fmt.Sprintf("Creating project %s...", name)))
	if err != nil {
		return err
	}

	styles := output.GetStyles()
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created data project %s in %s", styles.Noun.Render(name), result.RootPath)))
	output.Println("")
	output.Print(output.RenderFileTree(name, result.Descriptions))
	output.Println("")
	output.Println("Next steps:")
	output.Println(fmt.Sprintf("  cd %s", name))

	return nil
}
