package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/scaffoldkit/cli/internal/output"
	"github.com/scaffoldkit/cli/internal/scaffold"
)

// NewPackageProjectCmd creates the root command for create-package-project.
func NewPackageProjectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create-package-project <project-name>",
		Short: "Create a distributable package skeleton",
		Long: `Create a starter directory tree for a distributable code package.

The generated project contains src/<name>/, tests/test_data/ and
examples/ directories plus a package initializer, an abstract base
class template, packaging metadata, a readme, an MIT license, and
ignore rules.

Examples:
  # Create a package in the current directory
  create-package-project mypkg

  # Create a package under a specific base path
  create-package-project mypkg --path ~/projects`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initializeGlobals(cmd)
		},
		RunE: runPackageProject,
	}

	addGlobalFlags(cmd)
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

func runPackageProject(cmd *cobra.Command, args []string) error {
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
		result, genErr = gen.PackageProject()
		return genErr
	}, output.WithTitle(fmt.Sprintf("Creating package %s...", name)))
	if err != nil {
		return err
	}

	styles := output.GetStyles()
	output.Println(output.FormatCheckmark(fmt.Sprintf("Created package project %s in %s", styles.Noun.Render(name), result.RootPath)))
	output.Println("")
	output.Print(output.RenderFileTree(name, result.Descriptions))
	output.Println("")
	output.Println("Next steps:")
	output.Println(fmt.Sprintf("  1. cd %s", name))
	output.Println("  2. pip install -e .")

	return nil
}
