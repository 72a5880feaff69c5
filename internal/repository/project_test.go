package repository

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
projects:
  - id: site
    title: Portfolio site
    category: web
    summary: This site.
  - id: grades
    title: Mark converter
    category: teaching
    summary: HSC bands.
  - id: shop
    title: Shop front
    category: web
    summary: A store.
`

func TestParseProjectCatalog(t *testing.T) {
	repo, err := ParseProjectCatalog([]byte(sampleCatalog))
	require.NoError(t, err)

	assert.Len(t, repo.GetAll(), 3)
	assert.Equal(t, []string{"web", "teaching"}, repo.Categories())
	assert.Equal(t, "Mark converter", repo.GetAll()[0].Title)
}

func TestParseProjectCatalog_Invalid(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"empty", "projects: []"},
		{"missing category", "projects:\n  - id: a\n"},
		{"reserved category", "projects:\n  - id: a\n    category: all\n"},
		{"bad yaml", "projects: [:"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseProjectCatalog([]byte(tc.data))
			assert.Error(t, err)
		})
	}
}

func TestParseProjectCatalog_CategoryMustFitCallbackData(t *testing.T) {
	catalog := func(category string) []byte {
		return []byte("projects:\n  - id: a\n    category: \"" + category + "\"\n")
	}

	_, err := ParseProjectCatalog(catalog("web:mobile"))
	assert.ErrorIs(t, err, ErrInvalidCategory)

	_, err = ParseProjectCatalog(catalog(strings.Repeat("x", 58)))
	assert.ErrorIs(t, err, ErrInvalidCategory)

	longest := strings.Repeat("x", 57)
	repo, err := ParseProjectCatalog(catalog(longest))
	require.NoError(t, err)
	assert.Len(t, "filter:"+repo.Categories()[0], 64)

	repo, err = ParseProjectCatalog(catalog("école"))
	require.NoError(t, err)
	assert.Equal(t, []string{"école"}, repo.Categories())
}

func TestNewProjectRepository_ReadsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "projects.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sampleCatalog), 0o600))

	repo, err := NewProjectRepository(path)
	require.NoError(t, err)
	assert.Len(t, repo.GetAll(), 3)

	_, err = NewProjectRepository(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
