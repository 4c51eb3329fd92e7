// Package seed installs the sample marketplace data on first use. Seeding is
// idempotent: it is guarded by the appDataInitialized flag, only fills
// collections that are empty, and never overwrites existing records.
package seed

import (
	"context"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/finwise/finwise-server/internal/store"
)

// Ensure seeds the sample users, expert profiles and articles when the store
// has never been initialized. Sample experts are written into both the users
// collection (authoritative) and the experts collection (display), so the
// one-entity-one-lifecycle invariant holds from the first write.
func Ensure(ctx context.Context, st *store.Store, log zerolog.Logger, hashCost int) error {
	initialized, err := st.Initialized(ctx)
	if err != nil {
		return err
	}
	if initialized {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(SamplePassword), hashCost)
	if err != nil {
		return err
	}

	users, err := st.Users(ctx)
	if err != nil {
		return err
	}
	if len(users) == 0 {
		users = append(users, sampleUsers(string(hash))...)
		if err := st.SaveUsers(ctx, users); err != nil {
			return err
		}
	}

	experts, err := st.Experts(ctx)
	if err != nil {
		return err
	}
	if len(experts) == 0 {
		if err := st.SaveExperts(ctx, sampleExperts()); err != nil {
			return err
		}
	}

	articles, err := st.Articles(ctx)
	if err != nil {
		return err
	}
	if len(articles) == 0 {
		if err := st.SaveArticles(ctx, sampleArticles()); err != nil {
			return err
		}
	}

	if err := st.SetInitialized(ctx); err != nil {
		return err
	}
	log.Info().Int("users", len(users)).Msg("sample data seeded")
	return nil
}
