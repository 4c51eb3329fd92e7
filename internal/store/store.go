// Package store is the typed access layer over the named storage collections.
// It owns serialization: a missing or corrupt collection decodes to the empty
// value rather than failing, and every write replaces the whole collection in
// one atomic Set.
package store

import (
	"context"
	"encoding/json"

	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/kv"
	"github.com/finwise/finwise-server/internal/model"
)

// Collection names. These are the complete storage surface of the system.
const (
	CollectionUsers       = "users"
	CollectionExperts     = "experts"
	CollectionArticles    = "articles"
	CollectionCurrentUser = "currentUser"
	CollectionInitialized = "appDataInitialized"
	CollectionDraft       = "articleDraft"
	CollectionExpertView  = "currentExpertView"
)

// Store reads and writes the typed collections. It is the only component that
// touches kv directly; the repository is the only component that mutates
// entity collections through it.
type Store struct {
	kv  kv.Store
	log zerolog.Logger
}

// New wires a Store over the given driver.
func New(backend kv.Store, log zerolog.Logger) *Store {
	return &Store{kv: backend, log: log}
}

// Ping verifies the backing driver is reachable.
func (s *Store) Ping(ctx context.Context) error { return s.kv.Ping(ctx) }

// Close releases the backing driver.
func (s *Store) Close() error { return s.kv.Close() }

// readInto decodes a collection into v, treating an absent or corrupt value as
// empty. Corruption is logged and the collection is left untouched until the
// next write replaces it.
func (s *Store) readInto(ctx context.Context, collection string, v interface{}) error {
	raw, ok, err := s.kv.Get(ctx, collection)
	if err != nil {
		return err
	}
	if !ok || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, v); err != nil {
		s.log.Warn().Err(err).Str("collection", collection).
			Msg("corrupt collection, treating as empty")
	}
	return nil
}

func (s *Store) write(ctx context.Context, collection string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.kv.Set(ctx, collection, raw)
}

// Users returns the users collection; never nil.
func (s *Store) Users(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := s.readInto(ctx, CollectionUsers, &users); err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// SaveUsers replaces the users collection.
func (s *Store) SaveUsers(ctx context.Context, users []model.User) error {
	return s.write(ctx, CollectionUsers, users)
}

// Experts returns the display-profile collection; never nil.
func (s *Store) Experts(ctx context.Context) ([]model.ExpertProfile, error) {
	var experts []model.ExpertProfile
	if err := s.readInto(ctx, CollectionExperts, &experts); err != nil {
		return nil, err
	}
	if experts == nil {
		experts = []model.ExpertProfile{}
	}
	return experts, nil
}

// SaveExperts replaces the display-profile collection.
func (s *Store) SaveExperts(ctx context.Context, experts []model.ExpertProfile) error {
	return s.write(ctx, CollectionExperts, experts)
}

// Articles returns the articles collection; never nil.
func (s *Store) Articles(ctx context.Context) ([]model.Article, error) {
	var articles []model.Article
	if err := s.readInto(ctx, CollectionArticles, &articles); err != nil {
		return nil, err
	}
	if articles == nil {
		articles = []model.Article{}
	}
	return articles, nil
}

// SaveArticles replaces the articles collection.
func (s *Store) SaveArticles(ctx context.Context, articles []model.Article) error {
	return s.write(ctx, CollectionArticles, articles)
}

// CurrentUser reads the session pointer. Returns nil when no session is set.
func (s *Store) CurrentUser(ctx context.Context) (*model.User, error) {
	var u model.User
	raw, ok, err := s.kv.Get(ctx, CollectionCurrentUser)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	if err := json.Unmarshal(raw, &u); err != nil {
		s.log.Warn().Err(err).Msg("corrupt session pointer, treating as logged out")
		return nil, nil
	}
	if u.ID == "" {
		return nil, nil
	}
	return &u, nil
}

// SetCurrentUser persists the session pointer.
func (s *Store) SetCurrentUser(ctx context.Context, u *model.User) error {
	return s.write(ctx, CollectionCurrentUser, u)
}

// ClearCurrentUser removes the session pointer.
func (s *Store) ClearCurrentUser(ctx context.Context) error {
	return s.kv.Delete(ctx, CollectionCurrentUser)
}

// Initialized reports whether the one-time data seeding has run.
func (s *Store) Initialized(ctx context.Context) (bool, error) {
	raw, ok, err := s.kv.Get(ctx, CollectionInitialized)
	if err != nil {
		return false, err
	}
	return ok && string(raw) == "true", nil
}

// SetInitialized marks the one-time data seeding as done.
func (s *Store) SetInitialized(ctx context.Context) error {
	return s.kv.Set(ctx, CollectionInitialized, []byte("true"))
}

// Draft reads the parked article draft. Returns nil when no draft exists.
func (s *Store) Draft(ctx context.Context) (*model.ArticleDraft, error) {
	raw, ok, err := s.kv.Get(ctx, CollectionDraft)
	if err != nil {
		return nil, err
	}
	if !ok || len(raw) == 0 {
		return nil, nil
	}
	var d model.ArticleDraft
	if err := json.Unmarshal(raw, &d); err != nil {
		s.log.Warn().Err(err).Msg("corrupt article draft, discarding")
		return nil, nil
	}
	return &d, nil
}

// SaveDraft parks an article draft.
func (s *Store) SaveDraft(ctx context.Context, d *model.ArticleDraft) error {
	return s.write(ctx, CollectionDraft, d)
}

// ClearDraft discards the parked draft.
func (s *Store) ClearDraft(ctx context.Context) error {
	return s.kv.Delete(ctx, CollectionDraft)
}

// ExpertView reads the last-viewed-expert pointer; empty when unset.
func (s *Store) ExpertView(ctx context.Context) (string, error) {
	raw, ok, err := s.kv.Get(ctx, CollectionExpertView)
	if err != nil || !ok {
		return "", err
	}
	return string(raw), nil
}

// SetExpertView records the last-viewed-expert pointer.
func (s *Store) SetExpertView(ctx context.Context, expertID string) error {
	return s.kv.Set(ctx, CollectionExpertView, []byte(expertID))
}
