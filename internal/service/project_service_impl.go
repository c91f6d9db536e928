package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/repository"
)

type projectService struct {
	projects repository.ProjectRepo
}

// NewProjectService creates the project manager.
func NewProjectService(projects repository.ProjectRepo) ProjectService {
	return &projectService{projects: projects}
}

func (s *projectService) Create(ctx context.Context, p *domain.Project) error {
	now := time.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.Active = true
	p.CreatedAt = now
	p.UpdatedAt = now
	return s.projects.Create(ctx, p)
}

func (s *projectService) GetByID(ctx context.Context, userID, id string) (*domain.Project, error) {
	proj, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if proj.UserID != userID {
		return nil, fmt.Errorf("project %s: %w", id, ErrForbidden)
	}
	return proj, nil
}

func (s *projectService) List(ctx context.Context, userID string) ([]*domain.Project, error) {
	return s.projects.List(ctx, userID)
}
