package storage

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
)

// SessionGate persists the id of the current user next to the record
// collections, so a local session survives restarts.
type SessionGate struct {
	kv     KVStore
	logger *slog.Logger
}

// NewSessionGate creates a new SessionGate.
func NewSessionGate(kv KVStore) *SessionGate {
	return &SessionGate{kv: kv, logger: slog.Default()}
}

// SetCurrent marks userID as the current user.
func (g *SessionGate) SetCurrent(ctx context.Context, userID int64) error {
	data, err := json.Marshal(userID)
	if err != nil {
		return err
	}
	return g.kv.Put(ctx, KeyCurrentUser, data)
}

// ClearCurrent forgets the current user.
func (g *SessionGate) ClearCurrent(ctx context.Context) error {
	return g.kv.Delete(ctx, KeyCurrentUser)
}

// Current returns the current user id. ok is false when nobody is logged in
// or the stored value is unreadable.
func (g *SessionGate) Current(ctx context.Context) (userID int64, ok bool, err error) {
	raw, err := g.kv.Get(ctx, KeyCurrentUser)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	if err := json.Unmarshal(raw, &userID); err != nil || userID <= 0 {
		g.logger.WarnContext(ctx, "ignoring unreadable current user id", "value", string(raw))
		return 0, false, nil
	}
	return userID, true, nil
}
