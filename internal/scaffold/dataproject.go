package scaffold

// dataProjectFiles is the fixed write order for the data-project kind.
// The .gitignore is written twice on purpose: the first write carries the
// narrow pattern, the final write replaces it with the broad pattern that
// keeps only README, gitignore, and all .py/.bash files. The second write
// is the intended final state.
func dataProjectFiles() []FileSpec {
	return []FileSpec{
		{
			RelPath:     "config.py",
			Description: "Empty configuration placeholder",
		},
		{
			RelPath:     "helpers.py",
			Template:    "templates/data/helpers.py.tmpl",
			Description: "Working-directory and path helpers",
		},
		{
			RelPath:     ".gitignore",
			Template:    "templates/gitignore.tmpl",
			Description: "Ignore rules",
		},
		{
			RelPath:     "LICENSE",
			Template:    "templates/license.tmpl",
			Description: "MIT license",
		},
		{
			RelPath:     "README.md",
			Template:    "templates/data/readme.md.tmpl",
			Description: "Project readme",
		},
		{
			RelPath:     "run.bash",
			Template:    "templates/data/run.bash.tmpl",
			Executable:  true,
			Description: "Pipeline runner",
		},
		{
			RelPath:     ".gitignore",
			Template:    "templates/data/gitignore_final.tmpl",
			Description: "Ignore rules",
		},
	}
}

// DataProject generates a data/analysis project tree:
// data/, output/, logs/ and bash/ directories plus config, helpers,
// license, readme, ignore rules, and the executable pipeline runner.
func (g *Generator) DataProject() (*Result, error) {
	layout := DataProjectLayout(g.req)
	return g.generate(layout, dataProjectFiles())
}
