package domain

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"
)

var ErrInvalidDocument = errors.New("invalid program store document")

// DecodePrograms extracts the "programs" array from a Program Store
// document. A document without the key yields an empty list. When the key
// repeats, the last occurrence wins, as with encoding/json.
func DecodePrograms(raw []byte) (ProgramList, error) {
	if !gjson.ValidBytes(raw) {
		return nil, fmt.Errorf("%w: malformed JSON", ErrInvalidDocument)
	}
	root := gjson.ParseBytes(raw)
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: top level is not an object", ErrInvalidDocument)
	}

	var result gjson.Result
	root.ForEach(func(key, value gjson.Result) bool {
		if key.String() == "programs" {
			result = value
		}
		return true
	})
	if !result.Exists() || result.Type == gjson.Null {
		return ProgramList{}, nil
	}
	if !result.IsArray() {
		return nil, fmt.Errorf("%w: \"programs\" is not an array", ErrInvalidDocument)
	}
	return ProgramsFromValues(result.Value().([]any)), nil
}

// ProgramsFromValues converts an already decoded "programs" array. Entries
// that are not objects become empty records and render as blank rows.
func ProgramsFromValues(values []any) ProgramList {
	programs := make(ProgramList, 0, len(values))
	for _, v := range values {
		m, ok := v.(map[string]any)
		if !ok {
			m = map[string]any{}
		}
		programs = append(programs, ProgramRecord(m))
	}
	return programs
}
