package storage

import (
	"slices"
	"time"
)

// User is an account in the users collection.
type User struct {
	ID           int64     `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"password_hash,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// Project groups entries. Owned by a single user.
type Project struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

// Tag is a per-user label. Entries reference tags by name, not by id.
type Tag struct {
	ID     int64  `json:"id"`
	UserID int64  `json:"user_id"`
	Name   string `json:"name"`
}

// Attachment is a link or reference stored alongside an entry.
type Attachment struct {
	Type        string `json:"type"` // link, document or reference
	Title       string `json:"title"`
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// Entry is a single dated journal record.
type Entry struct {
	ID           int64        `json:"id"`
	UserID       int64        `json:"user_id"`
	ProjectID    *int64       `json:"project_id"`
	Date         string       `json:"date"` // YYYY-MM-DD
	Title        *string      `json:"title"`
	Body         *string      `json:"body"`
	LookingAhead *string      `json:"looking_ahead"`
	Mood         *int         `json:"mood"`
	FocusScore   *int         `json:"focus_score"`
	Tags         []string     `json:"tags"`
	Attachments  []Attachment `json:"attachments,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Clone returns a deep copy so callers never share memory with the store.
func (e Entry) Clone() Entry {
	c := e
	c.ProjectID = clonePtr(e.ProjectID)
	c.Title = clonePtr(e.Title)
	c.Body = clonePtr(e.Body)
	c.LookingAhead = clonePtr(e.LookingAhead)
	c.Mood = clonePtr(e.Mood)
	c.FocusScore = clonePtr(e.FocusScore)
	c.Tags = slices.Clone(e.Tags)
	if c.Tags == nil {
		c.Tags = []string{}
	}
	c.Attachments = slices.Clone(e.Attachments)
	return c
}

// Clone returns a deep copy of the project.
func (p Project) Clone() Project {
	c := p
	c.Description = clonePtr(p.Description)
	return c
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
