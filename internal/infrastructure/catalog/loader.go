// Package catalog loads the static service catalog supplied by the hosting
// application. The catalog is read once at startup and treated as read-only.
package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sulabook/sulabook/internal/core/domain"
)

type catalogFile struct {
	Services []domain.Service `yaml:"services"`
}

// Load parses the YAML catalog at path. A missing or malformed catalog is an
// error: unlike user state, the catalog is an input the host must supply.
func Load(path string) ([]domain.Service, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return file.Services, nil
}
