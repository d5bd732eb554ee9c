package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"text/template"

	oerrors "github.com/scaffoldkit/cli/internal/errors"
	"github.com/scaffoldkit/cli/internal/output"
)

//go:embed templates
var templateFS embed.FS

// Emitter writes planned files into a project layout.
type Emitter struct {
	data TemplateData
}

// NewEmitter creates an emitter with the given template data.
func NewEmitter(data TemplateData) *Emitter {
	return &Emitter{data: data}
}

// Render returns the content a FileSpec would be written with.
func (e *Emitter) Render(spec FileSpec) ([]byte, error) {
	if spec.Template == "" {
		return nil, nil
	}

	raw, err := templateFS.ReadFile(spec.Template)
	if err != nil {
		return nil, oerrors.Wrap(oerrors.ErrNotFound, fmt.Sprintf("template %s", spec.Template))
	}

	tmpl, err := template.New(filepath.Base(spec.Template)).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("parsing template %s: %w", spec.Template, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, e.data); err != nil {
		return nil, fmt.Errorf("executing template %s: %w", spec.Template, err)
	}

	return buf.Bytes(), nil
}

// Emit renders the FileSpec and writes it under the layout root,
// overwriting any existing file unconditionally. Executable specs get
// mode 0755, everything else 0644.
func (e *Emitter) Emit(layout ProjectLayout, spec FileSpec) error {
	content, err := e.Render(spec)
	if err != nil {
		return err
	}

	target := filepath.Join(layout.RootPath, spec.RelPath)

	mode := os.FileMode(0o644)
	if spec.Executable {
		mode = 0o755
	}

	if err := os.WriteFile(target, content, mode); err != nil {
		return oerrors.NewFileSystemError("cannot write file", target, err)
	}

	// WriteFile only applies the mode on creation; re-runs must still end
	// up executable.
	if spec.Executable {
		if err := os.Chmod(target, 0o755); err != nil {
			return oerrors.NewFileSystemError("cannot set permissions", target, err)
		}
	}

	output.Debug("wrote file", "path", spec.RelPath, "executable", spec.Executable)
	return nil
}
