package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// KiCad file extensions derived from a project identifier.
const (
	ProjectExt   = ".kicad_pro"
	SchematicExt = ".kicad_sch"
	BoardExt     = ".kicad_pcb"
)

// Project identifies the KiCad design whose outputs are generated.
// The identifier may be a bare name, a path stem, or a full .kicad_pro
// path; all three normalise to the same Project. Appending the project
// extension is idempotent - an identifier that already carries
// .kicad_pro is never double-suffixed.
type Project struct {
	stem string
}

// NewProject normalises a project identifier.
// Returns ErrInvalidInput for an empty identifier.
func NewProject(id string) (Project, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return Project{}, fmt.Errorf("%w: project identifier is empty", ErrInvalidInput)
	}
	return Project{stem: strings.TrimSuffix(id, ProjectExt)}, nil
}

// Stem returns the base project name without directories or extension.
func (p Project) Stem() string {
	return filepath.Base(p.stem)
}

// ProFile returns the .kicad_pro path for the project.
func (p Project) ProFile() string {
	return p.stem + ProjectExt
}

// SchFile returns the sibling .kicad_sch path.
func (p Project) SchFile() string {
	return p.stem + SchematicExt
}

// PcbFile returns the sibling .kicad_pcb path.
func (p Project) PcbFile() string {
	return p.stem + BoardExt
}

// IsZero reports whether the project is unset.
func (p Project) IsZero() bool {
	return p.stem == ""
}

// String returns the normalised stem.
func (p Project) String() string {
	return p.stem
}
