package scaffold

import (
	"time"

	"github.com/scaffoldkit/cli/internal/config"
	"github.com/scaffoldkit/cli/internal/output"
)

// Generator creates project trees for one request.
type Generator struct {
	req    ProjectRequest
	clock  Clock
	author string
}

// Option configures a Generator.
type Option func(*Generator)

// WithClock overrides the clock used for the license year.
func WithClock(clock Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

// WithAuthor overrides the author stamped into LICENSE and package metadata.
func WithAuthor(author string) Option {
	return func(g *Generator) {
		g.author = author
	}
}

// NewGenerator creates a generator for the given request.
func NewGenerator(req ProjectRequest, opts ...Option) *Generator {
	g := &Generator{
		req:    req,
		clock:  time.Now,
		author: config.DefaultAuthor,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// generate creates the layout, then emits every FileSpec in order.
// The first failure aborts the remaining steps; nothing is rolled back.
func (g *Generator) generate(layout ProjectLayout, specs []FileSpec) (*Result, error) {
	if err := ValidateProjectName(g.req.Name); err != nil {
		return nil, err
	}

	if err := layout.Create(); err != nil {
		return nil, err
	}

	data := TemplateData{
		ProjectName: g.req.Name,
		PackageName: g.req.Name,
		Author:      g.author,
		Version:     InitialVersion,
		Year:        g.clock().Year(),
	}

	output.Debug("generating project",
		"name", g.req.Name,
		"root", layout.RootPath,
		"author", g.author,
		"year", data.Year)

	emitter := NewEmitter(data)
	result := &Result{
		RootPath:     layout.RootPath,
		Descriptions: make(map[string]string, len(specs)),
	}

	for _, spec := range specs {
		if err := emitter.Emit(layout, spec); err != nil {
			return nil, err
		}
		result.Files = append(result.Files, spec.RelPath)
		result.Descriptions[spec.RelPath] = spec.Description
	}

	return result, nil
}
