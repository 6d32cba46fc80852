package repository

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
)

type FileProgramRepository struct {
	path string
}

func NewFileProgramRepository(path string) *FileProgramRepository {
	return &FileProgramRepository{path: path}
}

func (r *FileProgramRepository) Source() string {
	return "file://" + r.path
}

func (r *FileProgramRepository) LoadPrograms(ctx context.Context) (domain.ProgramList, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", r.path, domain.ErrProgramStoreNotFound)
		}
		return nil, fmt.Errorf("read %s: %w", r.path, err)
	}

	programs, err := domain.DecodePrograms(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", r.path, err)
	}
	return programs, nil
}
