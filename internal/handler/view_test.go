package handler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProgramView(t *testing.T) {
	record := domain.ProgramRecord{
		"name":     "Élan",
		"category": "Payment",
		"status":   " Active ",
		"socials":  map[string]any{"discord": "https://discord.gg/elan"},
		"details":  map[string]any{"announcement_url": "https://elan.example/news"},
	}

	v := NewProgramView(record)

	assert.Equal(t, "Élan", v.Name)
	assert.Equal(t, "É", v.Initial)
	assert.Equal(t, []string{"Payment"}, v.Categories)
	assert.Equal(t, "ACTIVE", v.Status)
	assert.True(t, v.Active)
	assert.Equal(t, "https://discord.gg/elan", v.Discord)
	assert.Equal(t, "https://elan.example/news", v.AnnouncementURL)
	assert.Empty(t, v.ApplyURL)
	assert.Equal(t, record, v.Record)
}

func TestNewProgramView_EmptyRecord(t *testing.T) {
	v := NewProgramView(domain.ProgramRecord{})

	assert.Empty(t, v.Name)
	assert.Empty(t, v.Initial)
	assert.Equal(t, "UNKNOWN", v.Status)
	assert.False(t, v.Active)
}

func TestNewHomePage(t *testing.T) {
	programs := domain.ProgramList{{"name": "A"}, {"name": "B", "extra": true}}

	page, err := NewHomePage("Programs", "/", programs)
	require.NoError(t, err)

	assert.Equal(t, 2, page.Count)
	require.Len(t, page.Programs, 2)
	assert.Equal(t, "A", page.Programs[0].Name)
	assert.Equal(t, "B", page.Programs[1].Name)
	assert.Equal(t, `{"programs":[{"name":"A"},{"extra":true,"name":"B"}]}`, string(page.ProgramsJSON))
}

func TestLoadTemplates(t *testing.T) {
	tmpl, err := LoadTemplates(templateDir)
	require.NoError(t, err)
	assert.NotNil(t, tmpl.Lookup(IndexTemplate))
}

func TestLoadTemplates_Errors(t *testing.T) {
	_, err := LoadTemplates(filepath.Join(t.TempDir(), "missing"))
	assert.Error(t, err)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.html"), []byte(`<p>{{.Title}}</p>`), 0o644))
	_, err = LoadTemplates(dir)
	assert.ErrorContains(t, err, IndexTemplate)

	dir = t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, IndexTemplate), []byte(`{{if}}`), 0o644))
	_, err = LoadTemplates(dir)
	assert.Error(t, err)
}
