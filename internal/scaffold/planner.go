package scaffold

import (
	"os"
	"path/filepath"

	oerrors "github.com/scaffoldkit/cli/internal/errors"
	"github.com/scaffoldkit/cli/internal/output"
)

// DataProjectLayout plans the directory tree for the data-project kind.
func DataProjectLayout(req ProjectRequest) ProjectLayout {
	return ProjectLayout{
		RootPath: filepath.Join(req.BasePath, req.Name),
		Subdirs: []string{
			"data",   // raw data
			"output", // output files
			"logs",   // log files
			"bash",   // bash scripts
		},
	}
}

// PackageProjectLayout plans the directory tree for the package kind.
func PackageProjectLayout(req ProjectRequest) ProjectLayout {
	return ProjectLayout{
		RootPath: filepath.Join(req.BasePath, req.Name),
		Subdirs: []string{
			filepath.Join("src", req.Name),
			filepath.Join("tests", "test_data"),
			"examples",
		},
	}
}

// Create makes the root path and every subdirectory. Creating an
// already-existing directory is a no-op; a collision with a non-directory
// path surfaces as a filesystem error.
func (l ProjectLayout) Create() error {
	if err := os.MkdirAll(l.RootPath, 0o755); err != nil {
		return oerrors.NewFileSystemError("cannot create project root", l.RootPath, err)
	}
	output.Debug("created directory", "path", l.RootPath)

	for _, sub := range l.Subdirs {
		dir := filepath.Join(l.RootPath, sub)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return oerrors.NewFileSystemError("cannot create directory", dir, err)
		}
		output.Debug("created directory", "path", dir)
	}

	return nil
}
