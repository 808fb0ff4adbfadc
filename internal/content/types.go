package content

// Project is a portfolio project shown on the Projects view.
type Project struct {
	ID           string   `yaml:"id" json:"id"`
	Title        string   `yaml:"title" json:"title"`
	Description  string   `yaml:"description" json:"description"`
	Image        string   `yaml:"image" json:"image"`
	Technologies []string `yaml:"technologies" json:"technologies"`
	GitHubURL    string   `yaml:"github,omitempty" json:"github_url,omitempty"`
	LiveURL      string   `yaml:"live,omitempty" json:"live_url,omitempty"`
	Slides       []string `yaml:"slides" json:"slides"`
}

// HasTech reports whether the project is tagged with tech.
func (p Project) HasTech(tech string) bool {
	for _, t := range p.Technologies {
		if t == tech {
			return true
		}
	}
	return false
}

// TimelineEntry is one row of an About-page timeline. Role holds the job
// title, degree or award name; Organization the company, school or issuer.
type TimelineEntry struct {
	Year         string `yaml:"year" json:"year"`
	Role         string `yaml:"role" json:"role"`
	Organization string `yaml:"organization" json:"organization"`
	Description  string `yaml:"description" json:"description"`
	Icon         string `yaml:"icon" json:"icon"`
	IconColor    string `yaml:"icon_color,omitempty" json:"icon_color,omitempty"`
}

// Skill is a card in the About tech-stack matrix.
type Skill struct {
	Icon        string `yaml:"icon" json:"icon"`
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
}

// Contact holds the outbound contact links.
type Contact struct {
	Email    string `yaml:"email" json:"email"`
	Phone    string `yaml:"phone,omitempty" json:"phone,omitempty"`
	Location string `yaml:"location,omitempty" json:"location,omitempty"`
	GitHub   string `yaml:"github" json:"github"`
	LinkedIn string `yaml:"linkedin" json:"linkedin"`
	LeetCode string `yaml:"leetcode,omitempty" json:"leetcode,omitempty"`
}

// Profile is everything the About and Contact views render.
type Profile struct {
	Name        string          `yaml:"name" json:"name"`
	Bio         string          `yaml:"bio" json:"bio"`
	ResumeURL   string          `yaml:"resume_url" json:"resume_url"`
	Contact     Contact         `yaml:"contact" json:"contact"`
	Phrases     []string        `yaml:"phrases" json:"phrases"`
	Skills      []Skill         `yaml:"skills" json:"skills"`
	Experiences []TimelineEntry `yaml:"experiences" json:"experiences"`
	Education   []TimelineEntry `yaml:"education" json:"education"`
	Awards      []TimelineEntry `yaml:"awards" json:"awards"`
}

// Site bundles the immutable data loaded at startup.
type Site struct {
	Profile  Profile
	Projects []Project
}

// ProjectByID returns the project with the given id.
func (s *Site) ProjectByID(id string) (Project, error) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, nil
		}
	}
	return Project{}, ErrProjectNotFound
}
