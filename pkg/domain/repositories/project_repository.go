package repositories

import "github.com/emko/mpr/pkg/domain/entities"

// ProjectRepository holds the live project snapshot for a session. Recompute
// passes and imports replace the whole snapshot; there is no partial update.
type ProjectRepository interface {
	Current() entities.ProjectContext
	Replace(pc entities.ProjectContext)
}
