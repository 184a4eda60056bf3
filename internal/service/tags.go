package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_tag_service.go -package=mocks -mock_names=TagService=MockTagService devdiary/internal/service TagService

import (
	"context"
	"strings"

	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

// TagService manages tags.
type TagService interface {
	List(ctx context.Context, s journal.Session) ([]TagView, error)
	// Create returns the existing tag when the name is already in use.
	Create(ctx context.Context, s journal.Session, name string) (TagView, error)
	// Delete removes the tag. Entries keep the tag name.
	Delete(ctx context.Context, s journal.Session, id int64) error
}

// tagService implements TagService.
type tagService struct {
	store storage.RecordStore
}

// NewTagService creates a new TagService.
func NewTagService(store storage.RecordStore) TagService {
	return &tagService{store: store}
}

func (s *tagService) List(ctx context.Context, sess journal.Session) ([]TagView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	tags, err := s.store.Tags(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err, "tags")
	}
	views := make([]TagView, len(tags))
	for i, t := range tags {
		views[i] = TagView{ID: t.ID, Name: t.Name}
	}
	return views, nil
}

func (s *tagService) Create(ctx context.Context, sess journal.Session, name string) (TagView, error) {
	if err := requireSession(sess); err != nil {
		return TagView{}, err
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return TagView{}, &ValidationError{Field: "name", Message: "cannot be empty"}
	}
	tag, err := s.store.EnsureTag(ctx, sess.UserID, name)
	if err != nil {
		return TagView{}, storeError(err, "tags")
	}
	return TagView{ID: tag.ID, Name: tag.Name}, nil
}

func (s *tagService) Delete(ctx context.Context, sess journal.Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if err := s.store.DeleteTag(ctx, sess.UserID, id); err != nil {
		return storeError(err, "tag")
	}
	return nil
}
