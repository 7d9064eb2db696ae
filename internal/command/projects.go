package command

import (
	"fmt"
	"time"

	"github.com/scobrodev/logbook/pkg/types"
)

// CreateProject creates a project with the default swatch when no
// color is supplied.
func (s *Service) CreateProject(req types.CreateProjectRequest) (*types.ProjectResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.store.CreateProject(req.Name, req.Description, req.Color)
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	resp := projectResponse(*project)
	return &resp, nil
}

// GetAllProjects lists every project.
func (s *Service) GetAllProjects() ([]types.ProjectResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	projects, err := s.store.GetAllProjects()
	if err != nil {
		return nil, fmt.Errorf("get projects: %w", err)
	}
	result := make([]types.ProjectResponse, 0, len(projects))
	for _, p := range projects {
		result = append(result, projectResponse(p))
	}
	return result, nil
}

// UpdateProject applies a partial update and returns the persisted row.
func (s *Service) UpdateProject(req types.UpdateProjectRequest) (*types.ProjectResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	project, err := s.store.UpdateProject(req)
	if err != nil {
		return nil, fmt.Errorf("update project: %w", err)
	}
	resp := projectResponse(*project)
	return &resp, nil
}

// DeleteProject removes a project.
func (s *Service) DeleteProject(projectID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteProject(projectID); err != nil {
		return fmt.Errorf("delete project: %w", err)
	}
	return nil
}

// CreateTag creates a tag explicitly; unlike the get-or-create path
// used during item linking, a duplicate name is an error here.
func (s *Service) CreateTag(req types.CreateTagRequest) (*types.TagResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag, err := s.store.CreateTag(req.Name, req.Description, req.Color, req.Category)
	if err != nil {
		return nil, fmt.Errorf("create tag: %w", err)
	}
	resp := tagResponse(*tag)
	return &resp, nil
}

// GetAllTags lists every tag.
func (s *Service) GetAllTags() ([]types.TagResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tags, err := s.store.GetAllTags()
	if err != nil {
		return nil, fmt.Errorf("get tags: %w", err)
	}
	result := make([]types.TagResponse, 0, len(tags))
	for _, t := range tags {
		result = append(result, tagResponse(t))
	}
	return result, nil
}

// UpdateTag applies a partial update and returns the persisted row.
func (s *Service) UpdateTag(req types.UpdateTagRequest) (*types.TagResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tag, err := s.store.UpdateTag(req)
	if err != nil {
		return nil, fmt.Errorf("update tag: %w", err)
	}
	resp := tagResponse(*tag)
	return &resp, nil
}

// DeleteTag removes a tag and its join rows.
func (s *Service) DeleteTag(tagID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.DeleteTag(tagID); err != nil {
		return fmt.Errorf("delete tag: %w", err)
	}
	return nil
}

func projectResponse(p types.Project) types.ProjectResponse {
	return types.ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Color:       p.Color,
		CreatedAt:   p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   p.UpdatedAt.Format(time.RFC3339),
	}
}

func tagResponse(t types.Tag) types.TagResponse {
	return types.TagResponse{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		Color:       t.Color,
		Category:    t.Category,
		CreatedAt:   t.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   t.UpdatedAt.Format(time.RFC3339),
	}
}
