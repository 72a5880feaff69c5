package repository

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

var (
	ErrEmptyCatalog    = errors.New("project catalog is empty")
	ErrInvalidCategory = errors.New("invalid category tag")
)

// ProjectRepository serves the project cards loaded from a YAML catalog.
type ProjectRepository struct {
	projects   []entities.Project
	categories []string
}

// NewProjectRepository loads the catalog at path.
func NewProjectRepository(path string) (*ProjectRepository, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read project catalog: %w", err)
	}
	return ParseProjectCatalog(data)
}

// ParseProjectCatalog builds a repository from raw YAML.
func ParseProjectCatalog(data []byte) (*ProjectRepository, error) {
	var wrapper struct {
		Projects []entities.Project `yaml:"projects"`
	}
	if err := yaml.Unmarshal(data, &wrapper); err != nil {
		return nil, fmt.Errorf("failed to unmarshal project catalog: %w", err)
	}

	if len(wrapper.Projects) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool)
	categories := make([]string, 0)
	for i, p := range wrapper.Projects {
		if p.ID == "" || p.Category == "" {
			return nil, fmt.Errorf("project #%d: id and category are required", i+1)
		}
		if p.Category == entities.CategoryAll {
			return nil, fmt.Errorf("project %s: category %q is reserved", p.ID, entities.CategoryAll)
		}
		if err := validateCategory(p.Category); err != nil {
			return nil, fmt.Errorf("project %s: %w", p.ID, err)
		}
		if !seen[p.Category] {
			seen[p.Category] = true
			categories = append(categories, p.Category)
		}
	}

	return &ProjectRepository{
		projects:   wrapper.Projects,
		categories: categories,
	}, nil
}

// GetAll returns every project in catalog order.
func (r *ProjectRepository) GetAll() []entities.Project {
	return r.projects
}

// Telegram caps callback data at 64 bytes and filter buttons send the tag
// as "filter:<tag>".
const maxCategoryBytes = 64 - len("filter:")

func validateCategory(tag string) error {
	if strings.Contains(tag, ":") {
		return fmt.Errorf("%w: %q contains ':'", ErrInvalidCategory, tag)
	}
	if len(tag) > maxCategoryBytes {
		return fmt.Errorf("%w: %q is longer than %d bytes", ErrInvalidCategory, tag, maxCategoryBytes)
	}
	return nil
}
