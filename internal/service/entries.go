package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_entry_service.go -package=mocks -mock_names=EntryService=MockEntryService devdiary/internal/service EntryService

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"

	"devdiary/internal/contextutil"
	"devdiary/internal/journal"
	"devdiary/internal/storage"
)

const (
	minScore = 1
	maxScore = 5
)

var attachmentTypes = []string{"link", "document", "reference"}

// EntryInput holds the fields of a new entry.
type EntryInput struct {
	ProjectID    *int64
	Date         string
	Title        *string
	Body         *string
	LookingAhead *string
	Mood         *int
	FocusScore   *int
	Tags         []string
	Attachments  []storage.Attachment
}

// EntryPatch holds the fields to change on an entry. Nil fields are left as is.
// A ProjectID of 0 removes the entry from its project.
type EntryPatch struct {
	ProjectID    *int64
	Date         *string
	Title        *string
	Body         *string
	LookingAhead *string
	Mood         *int
	FocusScore   *int
	Tags         *[]string
	Attachments  *[]storage.Attachment
}

// EntryService manages journal entries.
type EntryService interface {
	List(ctx context.Context, s journal.Session, f journal.Filter) ([]EntryView, error)
	Get(ctx context.Context, s journal.Session, id int64) (EntryView, error)
	Create(ctx context.Context, s journal.Session, in EntryInput) (EntryView, error)
	Update(ctx context.Context, s journal.Session, id int64, patch EntryPatch) (EntryView, error)
	Delete(ctx context.Context, s journal.Session, id int64) error
}

// entryService implements EntryService.
type entryService struct {
	store storage.RecordStore
	now   func() time.Time
}

// NewEntryService creates a new EntryService.
func NewEntryService(store storage.RecordStore) EntryService {
	return &entryService{
		store: store,
		now:   time.Now,
	}
}

// List returns the session's entries matching f, newest first.
func (s *entryService) List(ctx context.Context, sess journal.Session, f journal.Filter) ([]EntryView, error) {
	if err := requireSession(sess); err != nil {
		return nil, err
	}
	if err := validateFilter(f); err != nil {
		return nil, err
	}

	entries, err := s.store.Entries(ctx, sess.UserID)
	if err != nil {
		return nil, storeError(err, "entries")
	}
	idx, err := loadRefIndex(ctx, s.store, sess.UserID)
	if err != nil {
		return nil, err
	}

	matched := journal.Apply(entries, f)
	views := make([]EntryView, len(matched))
	for i, e := range matched {
		views[i] = idx.view(e)
	}
	return views, nil
}

// Get returns one entry.
func (s *entryService) Get(ctx context.Context, sess journal.Session, id int64) (EntryView, error) {
	if err := requireSession(sess); err != nil {
		return EntryView{}, err
	}
	entry, err := s.store.Entry(ctx, sess.UserID, id)
	if err != nil {
		return EntryView{}, storeError(err, "entry")
	}
	return s.resolve(ctx, sess.UserID, entry)
}

// Create stores a new entry. Tag names are created as tags when missing.
func (s *entryService) Create(ctx context.Context, sess journal.Session, in EntryInput) (EntryView, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireSession(sess); err != nil {
		return EntryView{}, err
	}

	if !journal.ValidDate(in.Date) {
		return EntryView{}, &ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"}
	}
	if err := validateScores(in.Mood, in.FocusScore); err != nil {
		return EntryView{}, err
	}
	if err := validateAttachments(in.Attachments); err != nil {
		return EntryView{}, err
	}

	tags := normalizeTags(in.Tags)

	now := s.now().UTC()
	entry, err := s.store.InsertEntry(ctx, storage.Entry{
		UserID:       sess.UserID,
		ProjectID:    normalizeProjectID(in.ProjectID),
		Date:         in.Date,
		Title:        in.Title,
		Body:         in.Body,
		LookingAhead: in.LookingAhead,
		Mood:         in.Mood,
		FocusScore:   in.FocusScore,
		Tags:         tags,
		Attachments:  in.Attachments,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to insert entry", "error", err)
		return EntryView{}, storeError(err, "entries")
	}

	if err := s.ensureTags(ctx, sess.UserID, tags); err != nil {
		logger.ErrorContext(ctx, "entry stored without its tag records", "entry_id", entry.ID, "error", err)
		return EntryView{}, err
	}

	logger.InfoContext(ctx, "entry created", "entry_id", entry.ID, "date", entry.Date)
	return s.resolve(ctx, sess.UserID, entry)
}

// Update applies patch to an entry and bumps its updated_at.
func (s *entryService) Update(ctx context.Context, sess journal.Session, id int64, patch EntryPatch) (EntryView, error) {
	logger := contextutil.LoggerFromContext(ctx)
	if err := requireSession(sess); err != nil {
		return EntryView{}, err
	}

	if err := validatePatch(patch); err != nil {
		return EntryView{}, err
	}
	var tags []string
	if patch.Tags != nil {
		tags = normalizeTags(*patch.Tags)
	}

	now := s.now().UTC()
	updated, err := s.store.UpdateEntry(ctx, sess.UserID, id, func(e *storage.Entry) error {
		applyPatch(e, patch, tags)
		e.UpdatedAt = now
		return nil
	})
	if errors.Is(err, storage.ErrNotFound) {
		return EntryView{}, storeError(err, "entry")
	}
	if err != nil {
		logger.ErrorContext(ctx, "failed to update entry", "entry_id", id, "error", err)
		return EntryView{}, storeError(err, "entry")
	}

	if patch.Tags != nil {
		if err := s.ensureTags(ctx, sess.UserID, tags); err != nil {
			logger.ErrorContext(ctx, "entry stored without its tag records", "entry_id", id, "error", err)
			return EntryView{}, err
		}
	}

	logger.InfoContext(ctx, "entry updated", "entry_id", id)
	return s.resolve(ctx, sess.UserID, updated)
}

// Delete removes an entry.
func (s *entryService) Delete(ctx context.Context, sess journal.Session, id int64) error {
	if err := requireSession(sess); err != nil {
		return err
	}
	if err := s.store.DeleteEntry(ctx, sess.UserID, id); err != nil {
		return storeError(err, "entry")
	}
	contextutil.LoggerFromContext(ctx).InfoContext(ctx, "entry deleted", "entry_id", id)
	return nil
}

func validatePatch(patch EntryPatch) error {
	if patch.Date != nil && !journal.ValidDate(*patch.Date) {
		return &ValidationError{Field: "date", Message: "must be a date in YYYY-MM-DD format"}
	}
	if err := validateScores(patch.Mood, patch.FocusScore); err != nil {
		return err
	}
	if patch.Attachments != nil {
		return validateAttachments(*patch.Attachments)
	}
	return nil
}

// applyPatch copies the set fields of patch onto e. tags is the normalized
// form of patch.Tags.
func applyPatch(e *storage.Entry, patch EntryPatch, tags []string) {
	if patch.Date != nil {
		e.Date = *patch.Date
	}
	if patch.ProjectID != nil {
		e.ProjectID = normalizeProjectID(patch.ProjectID)
	}
	if patch.Title != nil {
		e.Title = patch.Title
	}
	if patch.Body != nil {
		e.Body = patch.Body
	}
	if patch.LookingAhead != nil {
		e.LookingAhead = patch.LookingAhead
	}
	if patch.Mood != nil {
		e.Mood = patch.Mood
	}
	if patch.FocusScore != nil {
		e.FocusScore = patch.FocusScore
	}
	if patch.Tags != nil {
		e.Tags = slices.Clone(tags)
	}
	if patch.Attachments != nil {
		e.Attachments = slices.Clone(*patch.Attachments)
	}
}

func (s *entryService) resolve(ctx context.Context, userID int64, e storage.Entry) (EntryView, error) {
	idx, err := loadRefIndex(ctx, s.store, userID)
	if err != nil {
		return EntryView{}, err
	}
	return idx.view(e), nil
}

// ensureTags creates missing tag records for names. Callers run it after the
// entry write so a failed write leaves no orphan tags.
func (s *entryService) ensureTags(ctx context.Context, userID int64, names []string) error {
	for _, name := range names {
		if _, err := s.store.EnsureTag(ctx, userID, name); err != nil {
			return storeError(err, "tags")
		}
	}
	return nil
}

// normalizeTags trims names and drops blanks and duplicates, keeping first-seen order.
func normalizeTags(names []string) []string {
	out := make([]string, 0, len(names))
	for _, name := range names {
		name = strings.TrimSpace(name)
		if name == "" || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}
	return out
}

func normalizeProjectID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	v := *id
	return &v
}

func validateScores(mood, focus *int) error {
	if mood != nil && (*mood < minScore || *mood > maxScore) {
		return &ValidationError{Field: "mood", Message: fmt.Sprintf("must be between %d and %d", minScore, maxScore)}
	}
	if focus != nil && (*focus < minScore || *focus > maxScore) {
		return &ValidationError{Field: "focus_score", Message: fmt.Sprintf("must be between %d and %d", minScore, maxScore)}
	}
	return nil
}

func validateAttachments(attachments []storage.Attachment) error {
	for i, a := range attachments {
		if !slices.Contains(attachmentTypes, a.Type) {
			return &ValidationError{
				Field:   fmt.Sprintf("attachments[%d].type", i),
				Message: "must be one of " + strings.Join(attachmentTypes, ", "),
			}
		}
		if strings.TrimSpace(a.Title) == "" {
			return &ValidationError{Field: fmt.Sprintf("attachments[%d].title", i), Message: "cannot be empty"}
		}
	}
	return nil
}

func validateFilter(f journal.Filter) error {
	if f.DateFrom != "" && !journal.ValidDate(f.DateFrom) {
		return &ValidationError{Field: "date_from", Message: "must be a date in YYYY-MM-DD format"}
	}
	if f.DateTo != "" && !journal.ValidDate(f.DateTo) {
		return &ValidationError{Field: "date_to", Message: "must be a date in YYYY-MM-DD format"}
	}
	return nil
}
