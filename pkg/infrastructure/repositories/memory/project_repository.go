package memory

import (
	"sync"

	"github.com/emko/mpr/pkg/domain/entities"
	"github.com/emko/mpr/pkg/domain/repositories"
)

// ProjectRepository provides in-memory session storage for the current
// project snapshot.
type ProjectRepository struct {
	mu      sync.RWMutex
	current entities.ProjectContext
}

// NewProjectRepository creates a session store seeded with the given project.
func NewProjectRepository(initial entities.ProjectContext) *ProjectRepository {
	return &ProjectRepository{current: snapshot(initial)}
}

// Verify interface compliance
var _ repositories.ProjectRepository = (*ProjectRepository)(nil)

// Current returns the live snapshot. The item table is copied so callers can
// never mutate the stored state in place.
func (r *ProjectRepository) Current() entities.ProjectContext {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return snapshot(r.current)
}

// Replace swaps in a whole new snapshot, as happens on import and after every
// recompute pass.
func (r *ProjectRepository) Replace(pc entities.ProjectContext) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.current = snapshot(pc)
}

func snapshot(pc entities.ProjectContext) entities.ProjectContext {
	pc.Items = entities.CloneItems(pc.Items)
	return pc
}
