package driving

import (
	"context"

	"github.com/fabworks/kifab/internal/core/domain"
)

// OutputPipeline generates the standardised output set for a project.
type OutputPipeline interface {
	// Generate runs the export steps in order (3D models, renders,
	// documentation, fabrication files, optional vendor package) and
	// returns a report of what was produced. The first failing step
	// aborts the run.
	Generate(ctx context.Context, proj domain.Project, plan domain.OutputPlan) (*domain.RunReport, error)
}
