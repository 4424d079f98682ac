package models

type SiteConfig struct {
	Name     string       `yaml:"name"`
	Tagline  string       `yaml:"tagline"`
	About    string       `yaml:"about"`
	Email    string       `yaml:"email"`
	Social   []SocialLink `yaml:"social"`
	Services []Service    `yaml:"services"`
	Projects []Project    `yaml:"projects"`
}

type SocialLink struct {
	Label string `yaml:"label"`
	URL   string `yaml:"url"`
}

type Service struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Icon        string `yaml:"icon,omitempty"`
}

type Project struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	URL         string   `yaml:"url,omitempty"`
	Repo        string   `yaml:"repo,omitempty"`
	Image       string   `yaml:"image,omitempty"`
	Tags        []string `yaml:"tags,omitempty"`
}
