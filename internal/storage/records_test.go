package storage

import (
	"context"
	"errors"
	"testing"
	"time"
)

// failingKV wraps a KVStore and fails every Put once armed.
type failingKV struct {
	KVStore
	failPut bool
}

func (f *failingKV) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errors.New("disk full")
	}
	return f.KVStore.Put(ctx, key, value)
}

func newTestRecordRepo(t *testing.T) (*RecordRepo, *KVRepo) {
	t.Helper()
	kv := NewKVRepo(newTestDB(t))
	repo := NewRecordRepo(kv)
	if err := repo.Load(context.Background()); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	return repo, kv
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }

func TestRecordRepo_CreateUser(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	u1, err := repo.CreateUser(ctx, User{Email: "a@example.com", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	u2, err := repo.CreateUser(ctx, User{Email: "b@example.com", CreatedAt: time.Now()})
	if err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if u1.ID != 1 || u2.ID != 2 {
		t.Errorf("CreateUser() ids = %d, %d, want 1, 2", u1.ID, u2.ID)
	}

	if _, err := repo.CreateUser(ctx, User{Email: "a@example.com"}); !errors.Is(err, ErrDuplicate) {
		t.Errorf("CreateUser() duplicate error = %v, want ErrDuplicate", err)
	}

	got, err := repo.UserByEmail(ctx, "b@example.com")
	if err != nil || got.ID != u2.ID {
		t.Errorf("UserByEmail() = %+v, %v", got, err)
	}
	if _, err := repo.UserByID(ctx, 99); !errors.Is(err, ErrNotFound) {
		t.Errorf("UserByID() missing error = %v, want ErrNotFound", err)
	}
	if repo.CountUsers() != 2 {
		t.Errorf("CountUsers() = %d, want 2", repo.CountUsers())
	}
}

func TestRecordRepo_EntriesScopedToOwner(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	for _, e := range []Entry{
		{UserID: 1, Date: "2024-03-01", Title: strPtr("mine")},
		{UserID: 2, Date: "2024-03-02", Title: strPtr("theirs")},
		{UserID: 1, Date: "2024-03-03", Title: strPtr("mine too")},
	} {
		if _, err := repo.InsertEntry(ctx, e); err != nil {
			t.Fatalf("InsertEntry() error = %v", err)
		}
	}

	entries, err := repo.Entries(ctx, 1)
	if err != nil {
		t.Fatalf("Entries() error = %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Entries() len = %d, want 2", len(entries))
	}
	for _, e := range entries {
		if e.UserID != 1 {
			t.Errorf("Entries() returned entry of user %d", e.UserID)
		}
	}

	if _, err := repo.Entry(ctx, 1, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("Entry() of other user error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteEntry(ctx, 1, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteEntry() of other user error = %v, want ErrNotFound", err)
	}
}

func TestRecordRepo_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	created, err := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01", Mood: intPtr(3), Tags: []string{"a"}})
	if err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}
	*created.Mood = 5
	created.Tags[0] = "changed"

	got, err := repo.Entry(ctx, 1, created.ID)
	if err != nil {
		t.Fatalf("Entry() error = %v", err)
	}
	if *got.Mood != 3 || got.Tags[0] != "a" {
		t.Errorf("Entry() = mood %d tags %v, store was mutated through a returned value", *got.Mood, got.Tags)
	}
}

func TestRecordRepo_UpdateAndDeleteEntry(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	e, err := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01", Title: strPtr("kept")})
	if err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}
	updated, err := repo.UpdateEntry(ctx, 1, e.ID, func(e *Entry) error {
		e.Body = strPtr("updated")
		e.ID, e.UserID = 99, 2
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateEntry() error = %v", err)
	}
	if updated.ID != e.ID || updated.UserID != 1 {
		t.Errorf("UpdateEntry() moved the entry to id %d user %d", updated.ID, updated.UserID)
	}
	got, _ := repo.Entry(ctx, 1, e.ID)
	if got.Body == nil || *got.Body != "updated" || got.Title == nil || *got.Title != "kept" {
		t.Errorf("Entry() after update = %+v", got)
	}

	if _, err := repo.UpdateEntry(ctx, 2, e.ID, func(*Entry) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEntry() of other user error = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateEntry(ctx, 1, 42, func(*Entry) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateEntry() missing error = %v, want ErrNotFound", err)
	}

	if err := repo.DeleteEntry(ctx, 1, e.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if _, err := repo.Entry(ctx, 1, e.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Entry() after delete error = %v, want ErrNotFound", err)
	}
}

func TestRecordRepo_UpdateEntryApplyError(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	e, _ := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01", Mood: intPtr(2)})
	rejected := errors.New("rejected")
	_, err := repo.UpdateEntry(ctx, 1, e.ID, func(e *Entry) error {
		e.Mood = intPtr(5)
		return rejected
	})
	if !errors.Is(err, rejected) {
		t.Fatalf("UpdateEntry() error = %v, want %v", err, rejected)
	}

	got, _ := repo.Entry(ctx, 1, e.ID)
	if *got.Mood != 2 {
		t.Errorf("Entry().Mood = %d, want 2 after rejected update", *got.Mood)
	}
}

func TestRecordRepo_IDsNotReusedAfterDelete(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTestRecordRepo(t)

	// Deleting the newest record of each collection must not free its id.
	entry, _ := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01"})
	project, _ := repo.InsertProject(ctx, Project{UserID: 1, Name: "old"})
	tag, _ := repo.EnsureTag(ctx, 1, "old")
	if err := repo.DeleteEntry(ctx, 1, entry.ID); err != nil {
		t.Fatalf("DeleteEntry() error = %v", err)
	}
	if err := repo.DeleteProject(ctx, 1, project.ID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	if err := repo.DeleteTag(ctx, 1, tag.ID); err != nil {
		t.Fatalf("DeleteTag() error = %v", err)
	}

	otherEntry, _ := repo.InsertEntry(ctx, Entry{UserID: 2, Date: "2024-03-02"})
	if otherEntry.ID == entry.ID {
		t.Errorf("InsertEntry() reused deleted id %d", entry.ID)
	}
	fresh, _ := repo.InsertProject(ctx, Project{UserID: 1, Name: "fresh"})
	if fresh.ID == project.ID {
		t.Errorf("InsertProject() reused deleted id %d", project.ID)
	}
	freshTag, _ := repo.EnsureTag(ctx, 1, "fresh")
	if freshTag.ID == tag.ID {
		t.Errorf("EnsureTag() reused deleted id %d", tag.ID)
	}

	// The counters survive a reload even when the collections are empty again.
	if err := repo.DeleteProject(ctx, 1, fresh.ID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	reloaded := NewRecordRepo(kv)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	afterReload, _ := reloaded.InsertProject(ctx, Project{UserID: 1, Name: "later"})
	if afterReload.ID <= fresh.ID {
		t.Errorf("InsertProject() after reload id = %d, want above %d", afterReload.ID, fresh.ID)
	}
}

func TestRecordRepo_CounterNeverBelowHighestID(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepo(newTestDB(t))

	if err := kv.Put(ctx, KeyProjects, []byte(`[{"id":7,"user_id":1,"name":"p"}]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := kv.Put(ctx, KeyProjects+seqSuffix, []byte("3")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := kv.Put(ctx, KeyTags+seqSuffix, []byte("garbage")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	repo := NewRecordRepo(kv)
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	p, _ := repo.InsertProject(ctx, Project{UserID: 1, Name: "q"})
	if p.ID != 8 {
		t.Errorf("InsertProject() id = %d, want 8", p.ID)
	}
	tag, _ := repo.EnsureTag(ctx, 1, "go")
	if tag.ID != 1 {
		t.Errorf("EnsureTag() id = %d, want 1 with a damaged counter and no tags", tag.ID)
	}
}

func TestRecordRepo_DeleteProjectDoesNotCascade(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	p, err := repo.InsertProject(ctx, Project{UserID: 1, Name: "diary"})
	if err != nil {
		t.Fatalf("InsertProject() error = %v", err)
	}
	e, err := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01", ProjectID: &p.ID})
	if err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	if err := repo.DeleteProject(ctx, 1, p.ID); err != nil {
		t.Fatalf("DeleteProject() error = %v", err)
	}
	projects, _ := repo.Projects(ctx, 1)
	if len(projects) != 0 {
		t.Errorf("Projects() after delete = %v, want empty", projects)
	}

	got, err := repo.Entry(ctx, 1, e.ID)
	if err != nil {
		t.Fatalf("Entry() after project delete error = %v", err)
	}
	if got.ProjectID == nil || *got.ProjectID != p.ID {
		t.Errorf("Entry().ProjectID = %v, want dangling %d", got.ProjectID, p.ID)
	}
}

func TestRecordRepo_UpdateProject(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	p, _ := repo.InsertProject(ctx, Project{UserID: 1, Name: "old"})
	if _, err := repo.UpdateProject(ctx, 1, p.ID, func(p *Project) error {
		p.Name = "new"
		return nil
	}); err != nil {
		t.Fatalf("UpdateProject() error = %v", err)
	}
	got, err := repo.Project(ctx, 1, p.ID)
	if err != nil || got.Name != "new" {
		t.Errorf("Project() = %+v, %v", got, err)
	}
	if _, err := repo.Project(ctx, 2, p.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("Project() of other user error = %v, want ErrNotFound", err)
	}
	if _, err := repo.UpdateProject(ctx, 2, p.ID, func(*Project) error { return nil }); !errors.Is(err, ErrNotFound) {
		t.Errorf("UpdateProject() of other user error = %v, want ErrNotFound", err)
	}
}

func TestRecordRepo_EnsureTagIdempotent(t *testing.T) {
	ctx := context.Background()
	repo, _ := newTestRecordRepo(t)

	first, err := repo.EnsureTag(ctx, 1, "go")
	if err != nil {
		t.Fatalf("EnsureTag() error = %v", err)
	}
	again, err := repo.EnsureTag(ctx, 1, "go")
	if err != nil {
		t.Fatalf("EnsureTag() second call error = %v", err)
	}
	if first.ID != again.ID {
		t.Errorf("EnsureTag() ids = %d, %d, want the same", first.ID, again.ID)
	}

	other, _ := repo.EnsureTag(ctx, 2, "go")
	if other.ID == first.ID {
		t.Error("EnsureTag() shared a tag across users")
	}

	tags, _ := repo.Tags(ctx, 1)
	if len(tags) != 1 {
		t.Errorf("Tags() len = %d, want 1", len(tags))
	}

	if err := repo.DeleteTag(ctx, 2, first.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("DeleteTag() of other user error = %v, want ErrNotFound", err)
	}
	if err := repo.DeleteTag(ctx, 1, first.ID); err != nil {
		t.Errorf("DeleteTag() error = %v", err)
	}
}

func TestRecordRepo_PersistsAcrossLoad(t *testing.T) {
	ctx := context.Background()
	repo, kv := newTestRecordRepo(t)

	if _, err := repo.CreateUser(ctx, User{Email: "a@example.com"}); err != nil {
		t.Fatalf("CreateUser() error = %v", err)
	}
	if _, err := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01", Tags: []string{"x"}}); err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}
	if _, err := repo.InsertProject(ctx, Project{UserID: 1, Name: "p"}); err != nil {
		t.Fatalf("InsertProject() error = %v", err)
	}
	if _, err := repo.EnsureTag(ctx, 1, "x"); err != nil {
		t.Fatalf("EnsureTag() error = %v", err)
	}

	reloaded := NewRecordRepo(kv)
	if err := reloaded.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if _, err := reloaded.UserByEmail(ctx, "a@example.com"); err != nil {
		t.Errorf("UserByEmail() after reload error = %v", err)
	}
	entries, _ := reloaded.Entries(ctx, 1)
	projects, _ := reloaded.Projects(ctx, 1)
	tags, _ := reloaded.Tags(ctx, 1)
	if len(entries) != 1 || len(projects) != 1 || len(tags) != 1 {
		t.Errorf("after reload: %d entries, %d projects, %d tags, want 1 each", len(entries), len(projects), len(tags))
	}
}

func TestRecordRepo_CorruptCollectionLoadsEmpty(t *testing.T) {
	ctx := context.Background()
	kv := NewKVRepo(newTestDB(t))

	if err := kv.Put(ctx, KeyEntries, []byte("{not json")); err != nil {
		t.Fatalf("Put() error = %v", err)
	}
	if err := kv.Put(ctx, KeyUsers, []byte(`[{"id":1,"email":"a@example.com"}]`)); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	repo := NewRecordRepo(kv)
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v, want corrupt data treated as empty", err)
	}
	entries, _ := repo.Entries(ctx, 1)
	if len(entries) != 0 {
		t.Errorf("Entries() = %v, want empty", entries)
	}
	if _, err := repo.UserByID(ctx, 1); err != nil {
		t.Errorf("UserByID() error = %v, healthy collection should load", err)
	}
}

func TestRecordRepo_FailedPersistKeepsMirror(t *testing.T) {
	ctx := context.Background()
	kv := &failingKV{KVStore: NewKVRepo(newTestDB(t))}
	repo := NewRecordRepo(kv)
	if err := repo.Load(ctx); err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	kept, err := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-01"})
	if err != nil {
		t.Fatalf("InsertEntry() error = %v", err)
	}

	kv.failPut = true
	if _, err := repo.InsertEntry(ctx, Entry{UserID: 1, Date: "2024-03-02"}); err == nil {
		t.Fatal("InsertEntry() expected error when persist fails")
	}
	if err := repo.DeleteEntry(ctx, 1, kept.ID); err == nil {
		t.Fatal("DeleteEntry() expected error when persist fails")
	}

	entries, _ := repo.Entries(ctx, 1)
	if len(entries) != 1 || entries[0].ID != kept.ID {
		t.Errorf("Entries() = %v, want only the persisted entry", entries)
	}
}
