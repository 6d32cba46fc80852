package domain

import (
	"context"
	"errors"
	"strings"
)

// ErrProgramStoreNotFound is returned by a ProgramRepository when the
// configured store does not exist.
var ErrProgramStoreNotFound = errors.New("program store not found")

// ProgramRecord is one entry of the "programs" array. Its shape is owned by
// the template, so keys are not validated here.
type ProgramRecord map[string]any

// ProgramList keeps the order of the source document.
type ProgramList []ProgramRecord

type ProgramRepository interface {
	LoadPrograms(ctx context.Context) (ProgramList, error)
	// Source describes where the programs are read from, for logs.
	Source() string
}

func (p ProgramRecord) Name() string {
	return p.str("name")
}

func (p ProgramRecord) Logo() string {
	return p.str("logo")
}

func (p ProgramRecord) Status() string {
	return p.str("status")
}

// Categories accepts "category" as a single string or a list of strings.
func (p ProgramRecord) Categories() []string {
	switch v := p["category"].(type) {
	case string:
		if strings.TrimSpace(v) == "" {
			return nil
		}
		return []string{v}
	case []any:
		out := make([]string, 0, len(v))
		for _, c := range v {
			if s, ok := c.(string); ok && strings.TrimSpace(s) != "" {
				out = append(out, s)
			}
		}
		return out
	case []string:
		return v
	}
	return nil
}

func (p ProgramRecord) Social(kind string) string {
	return p.nested("socials", kind)
}

func (p ProgramRecord) Detail(key string) string {
	return p.nested("details", key)
}

func (p ProgramRecord) str(key string) string {
	s, _ := p[key].(string)
	return s
}

func (p ProgramRecord) nested(parent, key string) string {
	m, ok := p[parent].(map[string]any)
	if !ok {
		return ""
	}
	s, _ := m[key].(string)
	return s
}
