// Package repo is the entity repository: the sole mutator of the storage
// collections. Every operation that logically touches two mirrored records
// goes through a single repository function here, so both halves land in one
// collection write wherever the mirrors share a collection.
package repo

import (
	"context"
	"strings"

	"github.com/rs/zerolog"

	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/store"
)

// Repository exposes CRUD and dual-write operations over the entity
// collections.
type Repository struct {
	store *store.Store
	log   zerolog.Logger
}

// New creates a Repository over the given storage access layer.
func New(st *store.Store, log zerolog.Logger) *Repository {
	return &Repository{store: st, log: log}
}

// Store exposes the underlying storage access layer for components that only
// read auxiliary collections (drafts, pointers, seed flag).
func (r *Repository) Store() *store.Store { return r.store }

// NormalizeEmail is the single email normalization policy: trimmed and
// lowercased before any compare or store.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// saveUsers persists the users collection and refreshes the session pointer
// when the session's user was among the mutated records.
func (r *Repository) saveUsers(ctx context.Context, users []model.User, touched ...string) error {
	if err := r.store.SaveUsers(ctx, users); err != nil {
		return err
	}
	cur, err := r.store.CurrentUser(ctx)
	if err != nil || cur == nil {
		return err
	}
	for _, id := range touched {
		if id != cur.ID {
			continue
		}
		for i := range users {
			if users[i].ID == cur.ID {
				return r.store.SetCurrentUser(ctx, &users[i])
			}
		}
	}
	return nil
}

func indexByID(users []model.User, id string) int {
	for i := range users {
		if users[i].ID == id {
			return i
		}
	}
	return -1
}

// FindUserByID returns the user with the given id.
func (r *Repository) FindUserByID(ctx context.Context, id string) (*model.User, error) {
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	if i := indexByID(users, id); i >= 0 {
		u := users[i]
		return &u, nil
	}
	return nil, model.NewNotFoundError("user", id)
}

// FindUserByEmail returns the user registered under the normalized email.
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*model.User, error) {
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	want := NormalizeEmail(email)
	for i := range users {
		if NormalizeEmail(users[i].Email) == want {
			u := users[i]
			return &u, nil
		}
	}
	return nil, model.NewNotFoundError("user", email)
}

// FindExpertByID returns the user with the given id when it holds the expert
// role. The users collection is authoritative for experts; the experts
// collection only contributes display fields (see ExpertProfile).
func (r *Repository) FindExpertByID(ctx context.Context, id string) (*model.User, error) {
	u, err := r.FindUserByID(ctx, id)
	if err != nil {
		return nil, model.NewNotFoundError("expert", id)
	}
	if !u.IsExpert() {
		return nil, model.NewNotFoundError("expert", id)
	}
	return u, nil
}

// InsertUser appends a new user record.
func (r *Repository) InsertUser(ctx context.Context, u *model.User) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	users = append(users, *u)
	return r.store.SaveUsers(ctx, users)
}

// UpdateUser rewrites the user matched by id, keeps the expert display mirror
// in sync, and refreshes the session pointer when the subject is the current
// session's user.
func (r *Repository) UpdateUser(ctx context.Context, u *model.User) error {
	users, err := r.store.Users(ctx)
	if err != nil {
		return err
	}
	i := indexByID(users, u.ID)
	if i < 0 {
		return model.NewNotFoundError("user", u.ID)
	}
	users[i] = *u
	if err := r.saveUsers(ctx, users, u.ID); err != nil {
		return err
	}
	if u.IsExpert() {
		return r.SyncExpertProfile(ctx, u)
	}
	return nil
}

// SyncExpertProfile mirrors the authoritative user fields into the display
// profile, creating it when absent and preserving display-only fields
// (rating, review count, image) that have no authoritative source.
func (r *Repository) SyncExpertProfile(ctx context.Context, u *model.User) error {
	experts, err := r.store.Experts(ctx)
	if err != nil {
		return err
	}
	for i := range experts {
		if experts[i].ID == u.ID {
			experts[i].Name = u.FullName
			experts[i].Email = u.Email
			experts[i].Bio = u.Bio
			experts[i].Specialty = u.Specialty
			experts[i].Credentials = u.Credentials
			experts[i].Experience = u.Experience
			experts[i].Articles = u.Articles
			return r.store.SaveExperts(ctx, experts)
		}
	}
	experts = append(experts, model.ExpertProfile{
		ID:          u.ID,
		Name:        u.FullName,
		Email:       u.Email,
		Title:       u.Specialty,
		Bio:         u.Bio,
		Rating:      "0.0",
		ReviewCount: 0,
		Specialty:   u.Specialty,
		Credentials: u.Credentials,
		Experience:  u.Experience,
		Articles:    u.Articles,
		Type:        model.AccountExpert,
	})
	return r.store.SaveExperts(ctx, experts)
}

// SetExpertTitle updates the display title, which lives only in the
// experts collection.
func (r *Repository) SetExpertTitle(ctx context.Context, expertID, title string) error {
	experts, err := r.store.Experts(ctx)
	if err != nil {
		return err
	}
	for i := range experts {
		if experts[i].ID == expertID {
			experts[i].Title = title
			return r.store.SaveExperts(ctx, experts)
		}
	}
	return model.NewNotFoundError("expert", expertID)
}

// ExpertProfile returns the merged display view of an expert: authoritative
// fields from the user record, display-only fields from the experts
// collection.
func (r *Repository) ExpertProfile(ctx context.Context, id string) (*model.ExpertProfile, error) {
	u, err := r.FindExpertByID(ctx, id)
	if err != nil {
		return nil, err
	}
	experts, err := r.store.Experts(ctx)
	if err != nil {
		return nil, err
	}
	return mergeProfile(u, experts), nil
}

// ListExperts returns the merged display view of every expert account.
func (r *Repository) ListExperts(ctx context.Context) ([]model.ExpertProfile, error) {
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	experts, err := r.store.Experts(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.ExpertProfile{}
	for i := range users {
		if users[i].IsExpert() {
			out = append(out, *mergeProfile(&users[i], experts))
		}
	}
	return out, nil
}

func mergeProfile(u *model.User, experts []model.ExpertProfile) *model.ExpertProfile {
	p := model.ExpertProfile{
		ID:          u.ID,
		Name:        u.FullName,
		Email:       u.Email,
		Title:       u.Specialty,
		Bio:         u.Bio,
		Rating:      "0.0",
		Specialty:   u.Specialty,
		Credentials: u.Credentials,
		Experience:  u.Experience,
		Articles:    u.Articles,
		Type:        model.AccountExpert,
	}
	for i := range experts {
		if experts[i].ID == u.ID {
			p.Title = experts[i].Title
			p.ImgSrc = experts[i].ImgSrc
			p.Rating = experts[i].Rating
			p.ReviewCount = experts[i].ReviewCount
			p.Specialties = experts[i].Specialties
			break
		}
	}
	return &p
}

// Clients resolves an expert's client roster to user records. Roster ids that
// no longer resolve are skipped.
func (r *Repository) Clients(ctx context.Context, expertID string) ([]model.User, error) {
	expert, err := r.FindExpertByID(ctx, expertID)
	if err != nil {
		return nil, err
	}
	users, err := r.store.Users(ctx)
	if err != nil {
		return nil, err
	}
	out := []model.User{}
	for _, id := range expert.Clients {
		if i := indexByID(users, id); i >= 0 {
			out = append(out, users[i])
		} else {
			r.log.Warn().Str("expertId", expertID).Str("clientId", id).
				Msg("client roster entry does not resolve to a user")
		}
	}
	return out, nil
}
