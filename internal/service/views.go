package service

import (
	"context"
	"time"

	"devdiary/internal/storage"
)

// UserView is a user as returned to callers. The password hash is never exposed.
type UserView struct {
	ID        int64     `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserView(u storage.User) UserView {
	return UserView{ID: u.ID, Email: u.Email, CreatedAt: u.CreatedAt}
}

// TagView is a tag resolved from an entry's tag name.
type TagView struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ProjectRef is the project summary embedded in an entry.
type ProjectRef struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`
}

// EntryView is an entry with its tags and project resolved.
// Tag names and project ids that no longer resolve are left out.
type EntryView struct {
	ID           int64                `json:"id"`
	UserID       int64                `json:"user_id"`
	ProjectID    *int64               `json:"project_id"`
	Date         string               `json:"date"`
	Title        *string              `json:"title"`
	Body         *string              `json:"body"`
	LookingAhead *string              `json:"looking_ahead"`
	Mood         *int                 `json:"mood"`
	FocusScore   *int                 `json:"focus_score"`
	Tags         []TagView            `json:"tags"`
	Project      *ProjectRef          `json:"project"`
	Attachments  []storage.Attachment `json:"attachments"`
	CreatedAt    time.Time            `json:"created_at"`
	UpdatedAt    time.Time            `json:"updated_at"`
}

// refIndex resolves tag names and project ids of one user.
type refIndex struct {
	tags     map[string]storage.Tag
	projects map[int64]storage.Project
}

func loadRefIndex(ctx context.Context, store storage.RecordStore, userID int64) (refIndex, error) {
	tags, err := store.Tags(ctx, userID)
	if err != nil {
		return refIndex{}, storeError(err, "tags")
	}
	projects, err := store.Projects(ctx, userID)
	if err != nil {
		return refIndex{}, storeError(err, "projects")
	}

	idx := refIndex{
		tags:     make(map[string]storage.Tag, len(tags)),
		projects: make(map[int64]storage.Project, len(projects)),
	}
	for _, t := range tags {
		idx.tags[t.Name] = t
	}
	for _, p := range projects {
		idx.projects[p.ID] = p
	}
	return idx, nil
}

func (idx refIndex) view(e storage.Entry) EntryView {
	v := EntryView{
		ID:           e.ID,
		UserID:       e.UserID,
		ProjectID:    e.ProjectID,
		Date:         e.Date,
		Title:        e.Title,
		Body:         e.Body,
		LookingAhead: e.LookingAhead,
		Mood:         e.Mood,
		FocusScore:   e.FocusScore,
		Tags:         make([]TagView, 0, len(e.Tags)),
		Attachments:  e.Attachments,
		CreatedAt:    e.CreatedAt,
		UpdatedAt:    e.UpdatedAt,
	}
	if v.Attachments == nil {
		v.Attachments = []storage.Attachment{}
	}
	for _, name := range e.Tags {
		if t, ok := idx.tags[name]; ok {
			v.Tags = append(v.Tags, TagView{ID: t.ID, Name: t.Name})
		}
	}
	if e.ProjectID != nil {
		if p, ok := idx.projects[*e.ProjectID]; ok {
			v.Project = &ProjectRef{ID: p.ID, Name: p.Name, Description: p.Description}
		}
	}
	return v
}
