package services

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/saent-x/tors-x.dev/pkg/models"
)

// LoadSiteConfig reads the site profile (about, services, projects, social
// links) from the given YAML file.
func LoadSiteConfig(path string) (*models.SiteConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read site config: %w", err)
	}

	var cfg models.SiteConfig
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		return nil, fmt.Errorf("parse site config: %w", err)
	}
	return &cfg, nil
}
