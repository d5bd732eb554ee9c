// Package scaffold generates starter project directory trees and
// boilerplate files for the two supported project kinds.
package scaffold

import "time"

// InitialVersion is the version string stamped into generated package metadata.
const InitialVersion = "0.1.0"

// Clock supplies the current time. Generation reads it once per run to
// stamp the license year; tests inject a fixed clock.
type Clock func() time.Time

// ProjectRequest describes a single generation request.
// It is immutable and consumed once.
type ProjectRequest struct {
	// Name is the project name (non-empty, filesystem-safe).
	Name string

	// BasePath is the absolute base path the project root is created under.
	BasePath string
}

// ProjectLayout is the planned directory tree for a project kind.
type ProjectLayout struct {
	// RootPath is BasePath/Name.
	RootPath string

	// Subdirs are the relative subdirectories to create, in order.
	Subdirs []string
}

// FileSpec is a planned (path, content, permissions) triple to be
// materialized on disk.
type FileSpec struct {
	// RelPath is the output path relative to the project root.
	RelPath string

	// Template is the path of the content template within the embedded
	// filesystem. Empty means an empty file.
	Template string

	// Executable marks the file to be written with mode 0755.
	Executable bool

	// Description is shown next to the file in the success output.
	Description string
}

// TemplateData holds the values interpolated into file templates.
type TemplateData struct {
	// ProjectName is the name of the project being generated.
	ProjectName string

	// PackageName is the name used in package metadata (same as ProjectName).
	PackageName string

	// Author is the name stamped into LICENSE and package metadata.
	Author string

	// Version is the initial package version.
	Version string

	// Year is the license copyright year, taken from the clock.
	Year int
}

// Result describes a completed generation run.
type Result struct {
	// RootPath is the absolute project root.
	RootPath string

	// Files lists the written files in write order. A path re-written
	// later in the run appears once per write.
	Files []string

	// Descriptions maps each written relative path to its description,
	// keyed for file-tree rendering. Later writes win.
	Descriptions map[string]string
}
