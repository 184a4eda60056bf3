package service_test

import (
	"errors"
	"testing"

	"devdiary/internal/journal"
	"devdiary/internal/service"
)

func TestTagService_CreateIsIdempotent(t *testing.T) {
	st := newTestStack(t)
	svc := service.NewTagService(st.records)
	ctx := testContext()

	first, err := svc.Create(ctx, session(1), "focus")
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	second, err := svc.Create(ctx, session(1), " focus ")
	if err != nil {
		t.Fatalf("Create() second call error = %v", err)
	}
	if first.ID != second.ID {
		t.Errorf("Create() ids = %d, %d, want the same tag", first.ID, second.ID)
	}

	list, _ := svc.List(ctx, session(1))
	if len(list) != 1 {
		t.Errorf("List() = %+v, want one tag", list)
	}
}

func TestTagService_DeleteKeepsEntryTagNames(t *testing.T) {
	st := newTestStack(t)
	svc := service.NewTagService(st.records)
	ctx := testContext()

	tag, _ := svc.Create(ctx, session(1), "focus")
	if _, err := st.records.InsertEntry(ctx, entryWithTags(1, "focus")); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	if err := svc.Delete(ctx, session(1), tag.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	entries, _ := st.records.Entries(ctx, 1)
	if len(entries) != 1 || len(entries[0].Tags) != 1 || entries[0].Tags[0] != "focus" {
		t.Errorf("entries after tag delete = %+v, want tag name kept", entries)
	}
}

func TestTagService_Errors(t *testing.T) {
	st := newTestStack(t)
	svc := service.NewTagService(st.records)
	ctx := testContext()

	if _, err := svc.Create(ctx, journal.Session{}, "x"); !errors.Is(err, service.ErrUnauthenticated) {
		t.Errorf("Create() anonymous error = %v, want ErrUnauthenticated", err)
	}
	var validationErr *service.ValidationError
	if _, err := svc.Create(ctx, session(1), ""); !errors.As(err, &validationErr) {
		t.Errorf("Create() empty name error = %v, want validation error", err)
	}

	theirs, _ := svc.Create(ctx, session(2), "private")
	if err := svc.Delete(ctx, session(1), theirs.ID); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("Delete() other user's tag error = %v, want ErrNotFound", err)
	}
}
