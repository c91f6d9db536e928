package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/saish1609/timetrack/internal/domain"
	"github.com/saish1609/timetrack/internal/repository"
)

type taskService struct {
	tasks    repository.TaskRepo
	projects repository.ProjectRepo
}

// NewTaskService creates the task manager.
func NewTaskService(tasks repository.TaskRepo, projects repository.ProjectRepo) TaskService {
	return &taskService{tasks: tasks, projects: projects}
}

func (s *taskService) Create(ctx context.Context, t *domain.Task) error {
	// Parent and project references must exist and belong to the same
	// user before the task is linked under them; the task tree stays
	// acyclic because children only ever attach to existing tasks.
	if t.ProjectID != nil {
		proj, err := s.projects.GetByID(ctx, *t.ProjectID)
		if err != nil {
			return err
		}
		if proj.UserID != t.UserID {
			return fmt.Errorf("project %s: %w", *t.ProjectID, ErrForbidden)
		}
	}
	if t.ParentID != nil {
		parent, err := s.tasks.GetByID(ctx, *t.ParentID)
		if err != nil {
			return err
		}
		if parent.UserID != t.UserID {
			return fmt.Errorf("task %s: %w", *t.ParentID, ErrForbidden)
		}
	}

	now := time.Now().UTC()
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	if t.Status == "" {
		t.Status = domain.TaskTodo
	}
	if t.Priority == "" {
		t.Priority = domain.PriorityMedium
	}
	t.CreatedAt = now
	t.UpdatedAt = now

	return s.tasks.Create(ctx, t)
}

func (s *taskService) GetByID(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if task.UserID != userID {
		return nil, fmt.Errorf("task %s: %w", id, ErrForbidden)
	}
	return task, nil
}

func (s *taskService) List(ctx context.Context, userID string, includeArchived bool) ([]*domain.Task, error) {
	return s.tasks.List(ctx, userID, includeArchived)
}

func (s *taskService) Complete(ctx context.Context, userID, id string) (*domain.Task, error) {
	task, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	task.Complete(time.Now())
	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *taskService) Archive(ctx context.Context, userID, id string) error {
	task, err := s.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}
	task.Status = domain.TaskArchived
	return s.tasks.Update(ctx, task)
}
