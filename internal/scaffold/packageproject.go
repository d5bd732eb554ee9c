package scaffold

import "path/filepath"

// packageProjectFiles is the fixed write order for the package kind.
// The src/<name> paths depend on the project name, so the list is built
// per request.
func packageProjectFiles(name string) []FileSpec {
	return []FileSpec{
		{
			RelPath:     filepath.Join("src", name, "__init__.py"),
			Template:    "templates/pkg/init.py.tmpl",
			Description: "Package initializer",
		},
		{
			RelPath:     filepath.Join("src", name, "base.py"),
			Template:    "templates/pkg/base.py.tmpl",
			Description: "Abstract base class template",
		},
		{
			RelPath:     filepath.Join("tests", "test_module1.py"),
			Template:    "templates/pkg/test_module1.py.tmpl",
			Description: "Unit-test placeholder",
		},
		{
			RelPath:     filepath.Join("examples", "basic_usage.py"),
			Template:    "templates/pkg/basic_usage.py.tmpl",
			Description: "Example usage placeholder",
		},
		{
			RelPath:     "pyproject.toml",
			Template:    "templates/pkg/pyproject.toml.tmpl",
			Description: "Packaging metadata",
		},
		{
			RelPath:     "README.md",
			Template:    "templates/pkg/readme.md.tmpl",
			Description: "Install and usage instructions",
		},
		{
			RelPath:     "LICENSE",
			Template:    "templates/license.tmpl",
			Description: "MIT license",
		},
		{
			RelPath:     ".gitignore",
			Template:    "templates/gitignore.tmpl",
			Description: "Ignore rules",
		},
	}
}

// PackageProject generates a distributable package tree:
// src/<name>/, tests/test_data/ and examples/ directories plus the
// package initializer, base class, placeholders, packaging metadata,
// readme, license, and ignore rules.
func (g *Generator) PackageProject() (*Result, error) {
	layout := PackageProjectLayout(g.req)
	return g.generate(layout, packageProjectFiles(g.req.Name))
}
