// Package content loads the static profile and project data the views
// render. Data is read once at startup and never mutated afterwards.
package content

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var embedded embed.FS

var (
	ErrProjectNotFound = errors.New("project not found")
	ErrInvalidContent  = errors.New("invalid content")
)

const (
	profileFile  = "profile.yaml"
	projectsFile = "projects.yaml"
)

type projectList struct {
	Projects []Project `yaml:"projects"`
}

// Default loads the data compiled into the binary.
func Default() (*Site, error) {
	return Load(embedded, "data")
}

// FromDir loads profile.yaml and projects.yaml from a directory on disk.
func FromDir(dir string) (*Site, error) {
	return Load(os.DirFS(dir), ".")
}

// Load reads and validates the site data from fsys.
func Load(fsys fs.FS, dir string) (*Site, error) {
	var profile Profile
	if err := decode(fsys, path.Join(dir, profileFile), &profile); err != nil {
		return nil, err
	}
	var list projectList
	if err := decode(fsys, path.Join(dir, projectsFile), &list); err != nil {
		return nil, err
	}

	site := &Site{Profile: profile, Projects: list.Projects}
	if err := site.validate(); err != nil {
		return nil, err
	}
	return site, nil
}

func decode(fsys fs.FS, name string, v any) error {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := yaml.Unmarshal(data, v); err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	return nil
}

// validate enforces unique non-empty ids and gives slide-less projects their
// cover image as the only slide.
func (s *Site) validate() error {
	seen := make(map[string]struct{}, len(s.Projects))
	for i := range s.Projects {
		p := &s.Projects[i]
		if p.ID == "" || p.Title == "" {
			return fmt.Errorf("%w: project %d needs an id and a title", ErrInvalidContent, i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("%w: duplicate project id %q", ErrInvalidContent, p.ID)
		}
		seen[p.ID] = struct{}{}

		if len(p.Slides) == 0 {
			if p.Image == "" {
				return fmt.Errorf("%w: project %q has no slides and no image", ErrInvalidContent, p.ID)
			}
			p.Slides = []string{p.Image}
		}
	}
	return nil
}
