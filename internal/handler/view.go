package handler

import (
	"encoding/json"
	"fmt"
	"html/template"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/Connor-Kenway3/AmbassadorHub/internal/domain"
)

const IndexTemplate = "index.html"

// HomePage is the data handed to index.html.
type HomePage struct {
	Title       string
	RequestPath string
	Count       int
	Programs    []ProgramView
	// ProgramsJSON is {"programs": [...]} for window.programsData.
	ProgramsJSON template.JS
}

// ProgramView projects one record onto the fields the template shows.
// Record keeps the untouched source object.
type ProgramView struct {
	Name            string
	Initial         string
	Logo            string
	Categories      []string
	Status          string
	Active          bool
	Website         string
	Twitter         string
	Discord         string
	Description     string
	AnnouncementURL string
	ApplyURL        string
	Record          domain.ProgramRecord
}

func NewProgramView(p domain.ProgramRecord) ProgramView {
	status := strings.ToUpper(strings.TrimSpace(p.Status()))
	if status == "" {
		status = "UNKNOWN"
	}
	name := p.Name()
	initial := ""
	if r, _ := utf8.DecodeRuneInString(name); r != utf8.RuneError {
		initial = string(r)
	}
	return ProgramView{
		Name:            name,
		Initial:         initial,
		Logo:            p.Logo(),
		Categories:      p.Categories(),
		Status:          status,
		Active:          status == "ACTIVE",
		Website:         p.Social("website"),
		Twitter:         p.Social("twitter"),
		Discord:         p.Social("discord"),
		Description:     p.Detail("description"),
		AnnouncementURL: p.Detail("announcement_url"),
		ApplyURL:        p.Detail("apply_url"),
		Record:          p,
	}
}

func NewHomePage(title, requestPath string, programs domain.ProgramList) (HomePage, error) {
	views := make([]ProgramView, 0, len(programs))
	for _, p := range programs {
		views = append(views, NewProgramView(p))
	}

	data, err := json.Marshal(map[string]domain.ProgramList{"programs": programs})
	if err != nil {
		return HomePage{}, fmt.Errorf("marshal programs: %w", err)
	}

	return HomePage{
		Title:        title,
		RequestPath:  requestPath,
		Count:        len(programs),
		Programs:     views,
		ProgramsJSON: template.JS(data),
	}, nil
}

func TemplateFuncs() template.FuncMap {
	return template.FuncMap{
		"join":  strings.Join,
		"lower": strings.ToLower,
		"plural": func(n int, one, many string) string {
			if n == 1 {
				return one
			}
			return many
		},
	}
}

// LoadTemplates parses every *.html file in dir.
func LoadTemplates(dir string) (*template.Template, error) {
	pattern := filepath.Join(dir, "*.html")
	tmpl, err := template.New("pages").Funcs(TemplateFuncs()).ParseGlob(pattern)
	if err != nil {
		return nil, fmt.Errorf("parse templates %s: %w", pattern, err)
	}
	if tmpl.Lookup(IndexTemplate) == nil {
		return nil, fmt.Errorf("template %s not found in %s", IndexTemplate, dir)
	}
	return tmpl, nil
}
