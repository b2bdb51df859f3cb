package job

import (
	"fmt"
	"strings"

	"github.com/osse101/NeoCity_Go/internal/catalog"
	"github.com/osse101/NeoCity_Go/internal/domain"
)

// Catalog is the fixed, ordered list of jobs on offer.
// It is built once and never modified.
type Catalog struct {
	jobs []domain.Job
}

// NewCatalog builds the job catalog from the embedded seed data
func NewCatalog() (*Catalog, error) {
	jobs, err := catalog.Jobs()
	if err != nil {
		return nil, fmt.Errorf("failed to load job catalog: %w", err)
	}
	return &Catalog{jobs: jobs}, nil
}

// List returns copies of all jobs, or only those of jobType when it is non-empty.
// Catalog order is preserved.
func (c *Catalog) List(jobType domain.JobType) []domain.Job {
	result := make([]domain.Job, 0, len(c.jobs))
	for _, j := range c.jobs {
		if jobType == "" || j.Type == jobType {
			result = append(result, j.Clone())
		}
	}
	return result
}

// FindByTitle returns the first job whose title matches, ignoring case
func (c *Catalog) FindByTitle(title string) (domain.Job, bool) {
	for _, j := range c.jobs {
		if strings.EqualFold(j.Title, title) {
			return j.Clone(), true
		}
	}
	return domain.Job{}, false
}

// Len returns the number of jobs in the catalog
func (c *Catalog) Len() int {
	return len(c.jobs)
}
