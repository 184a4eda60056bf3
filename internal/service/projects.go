package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_project_service.go -package=mocks -mock_names=ProjectService=MockProjectService devdiary/internal/service ProjectService

import (
	"context"
	"strings"
	"time"

	"devdiary/internal/contextutil"
	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

// ProjectInput holds the fields of a new project.
type ProjectInput struct {
	Name        string
	Description *string
}

// ProjectPatch holds the fields to change on a project. Nil fields are left as is.
type ProjectPatch struct {
	Name        *string
	Description *string
}

// ProjectService manages projects.
type ProjectService interface {
	List(ctx context.Context, s journal.Session) ([]storage.Project, error)
	Create(ctx context.Context, s journal.Session, in ProjectInput) (storage.Project, error)
	Update(ctx context.Context, s journal.Session, id int64, patch ProjectPatch) (storage.Project, error)
	// Delete removes the project. Entries that reference it keep the dangling id.
	Delete(ctx context.Context, s journal.Session, id int64) error
}

// projectService implements ProjectService.
type projectService struct {
	store storage.RecordStore
	now   func() time.Time
}

// NewProjectService creates a new ProjectService.
func NewProjectService(store storage.RecordStore) ProjectService {
	return &projectService{store: store, now: time.Now}
}

func (s *projectService) List(ctx context.Context, sess journal.Session) ([]storage.Project, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	projects, err := s.store.Projects(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err, "projects")
	}
	return projects, nil
}

func (s *projectService) Create(ctx context.Context, sess journal.Session, in ProjectInput) (storage.Project, error) {
	if err := requireSession(sess); err != nil {
		return storage.Project{}, err
	}
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return storage.Project{}, &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	project, err := s.store.InsertProject(ctx, storage.Project{
		UserID:      sess.UserID,
		Name:        name,
		Description: blankToNil(in.Description),
		CreatedAt:   s.now().UTC(),
	})
	if err != nil {
		return storage.Project{}, storeError(err, "projects")
	}

	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "project created", "project_id", project.ID)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, sess journal.Session, id int64, patch ProjectPatch) (storage.Project, error) {
	if err := requireSession(sess); err != nil {
		return storage.Project{}, err
	}
	var name string
	if patch.Name != nil {
		name = strings.TrimSpace(*patch.Name)
		if name == "" {
			return storage.Project{}, &ValidationError{Field: "name", Message: "cannot be empty"}
		}
	}

	updated, err := s.store.UpdateProject(ctx, sess.UserID, id, func(p *storage.Project) error {
		if patch.Name != nil {
			p.Name = name
		}
		if patch.Description != nil {
			p.Description = blankToNil(patch.Description)
		}
		return nil
	})
	if err != nil {
		return storage.Project{}, storeError(err, "project")
	}
	return updated, nil
}

func (s *projectService) Delete(ctx context.Context, sess journal.Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if err := s.store.DeleteProject(ctx, sess.UserID, id); err != nil {
		return storeError(err, "project")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "project deleted", "project_id", id)
	return nil
}

func blankToNil(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := *s
	return &v
}
