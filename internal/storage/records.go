package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_record_store.go -package=mocks devdiary/internal/storage RecordStore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"sync"
)

// Keys of the persisted collections in the kv table.
const (
	KeyUsers       = "users"
	KeyEntries     = "entries"
	KeyProjects    = "projects"
	KeyTags        = "tags"
	KeyCurrentUser = "current_user_id"
)

// seqSuffix names the kv row holding the last id assigned in a collection.
const seqSuffix = "_seq"

var (
	// ErrDuplicate is returned when a unique field (user email) is already taken.
	ErrDuplicate = errors.New("record already exists")
)

// RecordStore defines the record collection operations used by the service layer.
// Every owned-record method filters by userID before anything else.
type RecordStore interface {
	CreateUser(ctx context.Context, user User) (User, error)
	UserByEmail(ctx context.Context, email string) (User, error)
	UserByID(ctx context.Context, id int64) (User, error)

	Entries(ctx context.Context, userID int64) ([]Entry, error)
	Entry(ctx context.Context, userID, id int64) (Entry, error)
	InsertEntry(ctx context.Context, entry Entry) (Entry, error)
	UpdateEntry(ctx context.Context, userID, id int64, apply func(*Entry) error) (Entry, error)
	DeleteEntry(ctx context.Context, userID, id int64) error

	Projects(ctx context.Context, userID int64) ([]Project, error)
	Project(ctx context.Context, userID, id int64) (Project, error)
	InsertProject(ctx context.Context, project Project) (Project, error)
	UpdateProject(ctx context.Context, userID, id int64, apply func(*Project) error) (Project, error)
	DeleteProject(ctx context.Context, userID, id int64) error

	Tags(ctx context.Context, userID int64) ([]Tag, error)
	EnsureTag(ctx context.Context, userID int64, name string) (Tag, error)
	DeleteTag(ctx context.Context, userID, id int64) error
}

// RecordRepo holds the four record collections in memory and mirrors every
// mutation to the kv table by rewriting the whole affected collection.
// Ids come from a persisted per-collection counter and are never reused.
// It implements the RecordStore interface.
type RecordRepo struct {
	kv     KVStore
	logger *slog.Logger

	mu       sync.RWMutex
	seq      map[string]int64
	users    []User
	entries  []Entry
	projects []Project
	tags     []Tag
}

// NewRecordRepo creates an empty RecordRepo. Call Load before use.
func NewRecordRepo(kv KVStore) *RecordRepo {
	return &RecordRepo{
		kv:     kv,
		logger: slog.Default(),
		seq:    make(map[string]int64),
	}
}

// Load reads every collection from the kv table. A missing or corrupt
// collection loads as empty; only storage access failures are returned.
func (r *RecordRepo) Load(ctx context.Context) error {
	users, err := loadCollection[User](ctx, r.kv, KeyUsers, r.logger)
	if err != nil {
		return err
	}
	entries, err := loadCollection[Entry](ctx, r.kv, KeyEntries, r.logger)
	if err != nil {
		return err
	}
	projects, err := loadCollection[Project](ctx, r.kv, KeyProjects, r.logger)
	if err != nil {
		return err
	}
	tags, err := loadCollection[Tag](ctx, r.kv, KeyTags, r.logger)
	if err != nil {
		return err
	}

	seq := make(map[string]int64, 4)
	for key, highest := range map[string]int64{
		KeyUsers:    highestID(users, func(u User) int64 { return u.ID }),
		KeyEntries:  highestID(entries, func(e Entry) int64 { return e.ID }),
		KeyProjects: highestID(projects, func(p Project) int64 { return p.ID }),
		KeyTags:     highestID(tags, func(t Tag) int64 { return t.ID }),
	} {
		if seq[key], err = loadSeq(ctx, r.kv, key, highest, r.logger); err != nil {
			return err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.users, r.entries, r.projects, r.tags = users, entries, projects, tags
	r.seq = seq

	r.logger.DebugContext(ctx, "record collections loaded",
		"users", len(users), "entries", len(entries), "projects", len(projects), "tags", len(tags))
	return nil
}

func loadCollection[T any](ctx context.Context, kv KVStore, key string, logger *slog.Logger) ([]T, error) {
	raw, err := kv.Get(ctx, key)
	if errors.Is(err, ErrNotFound) {
		return []T{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", key, err)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		logger.WarnContext(ctx, "corrupt collection treated as empty", "key", key, "error", err)
		return []T{}, nil
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

// loadSeq reads the id counter of a collection. It never goes below the
// highest id present, so a missing or damaged counter cannot hand out a live id.
func loadSeq(ctx context.Context, kv KVStore, key string, highest int64, logger *slog.Logger) (int64, error) {
	raw, err := kv.Get(ctx, key+seqSuffix)
	if errors.Is(err, ErrNotFound) {
		return highest, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to load %s counter: %w", key, err)
	}
	n, err := strconv.ParseInt(string(raw), 10, 64)
	if err != nil {
		logger.WarnContext(ctx, "corrupt id counter ignored", "key", key, "error", err)
		return highest, nil
	}
	return max(n, highest), nil
}

// persist serializes the full collection under key.
func persist[T any](ctx context.Context, kv KVStore, key string, items []T) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return kv.Put(ctx, key, data)
}

// commit persists next and swaps it in only when the write succeeded,
// so the mirror never runs ahead of durable state.
func commit[T any](ctx context.Context, kv KVStore, key string, coll *[]T, next []T) error {
	if err := persist(ctx, kv, key, next); err != nil {
		return err
	}
	*coll = next
	return nil
}

func highestID[T any](items []T, id func(T) int64) int64 {
	var highest int64
	for _, item := range items {
		highest = max(highest, id(item))
	}
	return highest
}

// allocID reserves the next id of a collection and persists the counter.
// Callers hold r.mu. An id reserved for a write that later fails is skipped.
func (r *RecordRepo) allocID(ctx context.Context, key string) (int64, error) {
	id := r.seq[key] + 1
	if err := r.kv.Put(ctx, key+seqSuffix, []byte(strconv.FormatInt(id, 10))); err != nil {
		return 0, err
	}
	r.seq[key] = id
	return id, nil
}

// CreateUser appends a user with a fresh id. Fails with ErrDuplicate if the email is taken.
func (r *RecordRepo) CreateUser(ctx context.Context, user User) (User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return User{}, ErrDuplicate
		}
	}

	id, err := r.allocID(ctx, KeyUsers)
	if err != nil {
		return User{}, err
	}
	user.ID = id
	next := append(slices.Clone(r.users), user)
	if err := commit(ctx, r.kv, KeyUsers, &r.users, next); err != nil {
		return User{}, err
	}
	return user, nil
}

// UserByEmail returns the user with the given email.
func (r *RecordRepo) UserByEmail(ctx context.Context, email string) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// UserByID returns the user with the given id.
func (r *RecordRepo) UserByID(ctx context.Context, id int64) (User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return User{}, ErrNotFound
}

// CountUsers returns the number of registered users.
func (r *RecordRepo) CountUsers() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.users)
}

// Entries returns copies of all entries owned by userID in stored order.
func (r *RecordRepo) Entries(ctx context.Context, userID int64) ([]Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Entry, 0)
	for _, e := range r.entries {
		if e.UserID == userID {
			out = append(out, e.Clone())
		}
	}
	return out, nil
}

// Entry returns one entry owned by userID.
func (r *RecordRepo) Entry(ctx context.Context, userID, id int64) (Entry, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.entryIndex(userID, id)
	if i < 0 {
		return Entry{}, ErrNotFound
	}
	return r.entries[i].Clone(), nil
}

// InsertEntry assigns an id to entry and appends it.
func (r *RecordRepo) InsertEntry(ctx context.Context, entry Entry) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.allocID(ctx, KeyEntries)
	if err != nil {
		return Entry{}, err
	}
	entry = entry.Clone()
	entry.ID = id
	next := append(slices.Clone(r.entries), entry)
	if err := commit(ctx, r.kv, KeyEntries, &r.entries, next); err != nil {
		return Entry{}, err
	}
	return entry.Clone(), nil
}

// UpdateEntry applies apply to a copy of the stored entry and persists the
// result in one critical section. apply must not call back into the store.
// If apply fails nothing is written and its error is returned unchanged.
func (r *RecordRepo) UpdateEntry(ctx context.Context, userID, id int64, apply func(*Entry) error) (Entry, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.entryIndex(userID, id)
	if i < 0 {
		return Entry{}, ErrNotFound
	}
	entry := r.entries[i].Clone()
	if err := apply(&entry); err != nil {
		return Entry{}, err
	}
	entry.ID, entry.UserID = id, userID

	next := slices.Clone(r.entries)
	next[i] = entry
	if err := commit(ctx, r.kv, KeyEntries, &r.entries, next); err != nil {
		return Entry{}, err
	}
	return entry.Clone(), nil
}

// DeleteEntry hard-removes an entry.
func (r *RecordRepo) DeleteEntry(ctx context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.entryIndex(userID, id)
	if i < 0 {
		return ErrNotFound
	}
	next := slices.Delete(slices.Clone(r.entries), i, i+1)
	return commit(ctx, r.kv, KeyEntries, &r.entries, next)
}

func (r *RecordRepo) entryIndex(userID, id int64) int {
	return slices.IndexFunc(r.entries, func(e Entry) bool {
		return e.ID == id && e.UserID == userID
	})
}

// Projects returns copies of all projects owned by userID.
func (r *RecordRepo) Projects(ctx context.Context, userID int64) ([]Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Project, 0)
	for _, p := range r.projects {
		if p.UserID == userID {
			out = append(out, p.Clone())
		}
	}
	return out, nil
}

// Project returns one project owned by userID.
func (r *RecordRepo) Project(ctx context.Context, userID, id int64) (Project, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.projectIndex(userID, id)
	if i < 0 {
		return Project{}, ErrNotFound
	}
	return r.projects[i].Clone(), nil
}

// InsertProject assigns an id to project and appends it.
func (r *RecordRepo) InsertProject(ctx context.Context, project Project) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, err := r.allocID(ctx, KeyProjects)
	if err != nil {
		return Project{}, err
	}
	project = project.Clone()
	project.ID = id
	next := append(slices.Clone(r.projects), project)
	if err := commit(ctx, r.kv, KeyProjects, &r.projects, next); err != nil {
		return Project{}, err
	}
	return project.Clone(), nil
}

// UpdateProject is the project counterpart of UpdateEntry.
func (r *RecordRepo) UpdateProject(ctx context.Context, userID, id int64, apply func(*Project) error) (Project, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.projectIndex(userID, id)
	if i < 0 {
		return Project{}, ErrNotFound
	}
	project := r.projects[i].Clone()
	if err := apply(&project); err != nil {
		return Project{}, err
	}
	project.ID, project.UserID = id, userID

	next := slices.Clone(r.projects)
	next[i] = project
	if err := commit(ctx, r.kv, KeyProjects, &r.projects, next); err != nil {
		return Project{}, err
	}
	return project.Clone(), nil
}

// DeleteProject hard-removes a project. Entries referencing it are left untouched.
func (r *RecordRepo) DeleteProject(ctx context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.projectIndex(userID, id)
	if i < 0 {
		return ErrNotFound
	}
	next := slices.Delete(slices.Clone(r.projects), i, i+1)
	return commit(ctx, r.kv, KeyProjects, &r.projects, next)
}

func (r *RecordRepo) projectIndex(userID, id int64) int {
	return slices.IndexFunc(r.projects, func(p Project) bool {
		return p.ID == id && p.UserID == userID
	})
}

// Tags returns all tags owned by userID.
func (r *RecordRepo) Tags(ctx context.Context, userID int64) ([]Tag, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Tag, 0)
	for _, t := range r.tags {
		if t.UserID == userID {
			out = append(out, t)
		}
	}
	return out, nil
}

// EnsureTag returns the user's tag with the given name, creating it if absent.
func (r *RecordRepo) EnsureTag(ctx context.Context, userID int64, name string) (Tag, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, t := range r.tags {
		if t.UserID == userID && t.Name == name {
			return t, nil
		}
	}

	id, err := r.allocID(ctx, KeyTags)
	if err != nil {
		return Tag{}, err
	}
	tag := Tag{
		ID:     id,
		UserID: userID,
		Name:   name,
	}
	next := append(slices.Clone(r.tags), tag)
	if err := commit(ctx, r.kv, KeyTags, &r.tags, next); err != nil {
		return Tag{}, err
	}
	return tag, nil
}

// DeleteTag hard-removes a tag. Entries keep the tag name.
func (r *RecordRepo) DeleteTag(ctx context.Context, userID, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := slices.IndexFunc(r.tags, func(t Tag) bool {
		return t.ID == id && t.UserID == userID
	})
	if i < 0 {
		return ErrNotFound
	}
	next := slices.Delete(slices.Clone(r.tags), i, i+1)
	return commit(ctx, r.kv, KeyTags, &r.tags, next)
}
