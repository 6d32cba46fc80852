package service

import (
	"context"
	"errors"

	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
)

// ProgramCatalog holds the programs loaded at startup. It is never mutated
// after construction, so handlers may read it concurrently.
type ProgramCatalog struct {
	programs domain.ProgramList
}

func NewProgramCatalog(programs domain.ProgramList) *ProgramCatalog {
	if programs == nil {
		programs = domain.ProgramList{}
	}
	return &ProgramCatalog{programs: programs}
}

func (c *ProgramCatalog) GetPrograms() domain.ProgramList {
	result := make(domain.ProgramList, len(c.programs))
	copy(result, c.programs)
	return result
}

func (c *ProgramCatalog) Count() int {
	return len(c.programs)
}

// LoadResult is the outcome of a single startup load.
type LoadResult struct {
	Source   string
	Programs domain.ProgramList
	// Absent reports that the store did not exist; it is not an error.
	Absent bool
	Err    error
}

func (r LoadResult) OK() bool {
	return r.Err == nil
}

// ProgramsOrEmpty returns the loaded programs, or an empty list when the
// load failed.
func (r LoadResult) ProgramsOrEmpty() domain.ProgramList {
	if r.Err != nil || r.Programs == nil {
		return domain.ProgramList{}
	}
	return r.Programs
}

type CatalogLoader struct {
	repository domain.ProgramRepository
}

func NewCatalogLoader(repository domain.ProgramRepository) *CatalogLoader {
	return &CatalogLoader{repository: repository}
}

// Load reads the Program Store once. Errors are returned in the result and
// left to the caller to report.
func (l *CatalogLoader) Load(ctx context.Context) LoadResult {
	result := LoadResult{Source: l.repository.Source()}

	programs, err := l.repository.LoadPrograms(ctx)
	switch {
	case errors.Is(err, domain.ErrProgramStoreNotFound):
		result.Absent = true
		result.Programs = domain.ProgramList{}
	case err != nil:
		result.Err = err
	default:
		result.Programs = programs
	}
	return result
}
