package service

import (
	"errors"
	"slices"

	"github.com/aliskhannn/portfolio-bot/internal/domain/entities"
)

var ErrUnknownCategory = errors.New("unknown project category")

// ProjectService filters the project cards of a page session.
type ProjectService struct {
	repository ProjectRepository
}

func NewProjectService(repository ProjectRepository) *ProjectService {
	return &ProjectService{repository: repository}
}

// Categories returns the filter buttons after "all", in catalog order.
func (s *ProjectService) Categories() []string {
	return s.repository.Categories()
}

// Filter returns the session's filter, creating it with every card visible.
func (s *ProjectService) Filter(sess *entities.PageSession) *entities.CategoryFilter {
	if sess.Filter == nil {
		sess.Filter = entities.NewCategoryFilter(s.repository.GetAll())
	}
	return sess.Filter
}

// Toggle applies a click on the filter button for tag.
func (s *ProjectService) Toggle(sess *entities.PageSession, tag string) (*entities.CategoryFilter, error) {
	if tag != entities.CategoryAll && !slices.Contains(s.repository.Categories(), tag) {
		return nil, ErrUnknownCategory
	}

	f := s.Filter(sess)
	f.Toggle(tag)
	return f, nil
}
