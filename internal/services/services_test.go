package services

import (
	"context"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finwise/finwise-server/internal/kv/memory"
	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
	"github.com/finwise/finwise-server/internal/store"
)

type rig struct {
	store    *store.Store
	repo     *repo.Repository
	auth     *AuthService
	users    *UserService
	meetings *MeetingService
	messages *MessageService
	articles *ArticleService
}

// newRig builds the full service stack over the in-memory driver with
// sample seeding disabled, so each test starts from empty collections.
func newRig(t *testing.T) *rig {
	t.Helper()
	log := zerolog.Nop()
	st := store.New(memory.NewMemoryStore(), log)
	t.Cleanup(func() { _ = st.Close() })
	r := repo.New(st, log)
	return &rig{
		store:    st,
		repo:     r,
		auth:     NewAuthService(r, log, bcrypt.MinCost, false),
		users:    NewUserService(r, log, bcrypt.MinCost),
		meetings: NewMeetingService(r, log),
		messages: NewMessageService(r, log),
		articles: NewArticleService(r, log),
	}
}

func (rg *rig) register(t *testing.T, name, email string, typ model.AccountType) *model.User {
	t.Helper()
	u, err := rg.auth.Register(context.Background(), RegisterRequest{
		FullName:    name,
		Email:       email,
		Password:    "secret123",
		AccountType: string(typ),
	})
	require.NoError(t, err)
	return u
}

func (rg *rig) userByID(t *testing.T, id string) *model.User {
	t.Helper()
	u, err := rg.repo.FindUserByID(context.Background(), id)
	require.NoError(t, err)
	return u
}

// TestConsultationScenario walks one user/expert pair through the whole
// flow: booking mirrors the meeting into both records, rescheduling moves
// both copies, cancelling empties both and repeats as NotFound, and a
// first message arrives behind the expert's greeting.
func TestConsultationScenario(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	user := rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)
	expert := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	m, err := rg.meetings.Schedule(ctx, ScheduleRequest{
		UserID: user.ID, ExpertID: expert.ID,
		Date: "2099-05-20", Time: "10:00", Topic: "Budgeting",
	})
	require.NoError(t, err)

	uRec := rg.userByID(t, user.ID)
	eRec := rg.userByID(t, expert.ID)
	require.Len(t, uRec.Meetings, 1)
	require.Len(t, eRec.Meetings, 1)
	assert.Equal(t, m.ID, uRec.Meetings[0].ID)
	assert.Equal(t, m.ID, eRec.Meetings[0].ID)
	assert.Equal(t, model.MeetingScheduled, uRec.Meetings[0].Status)

	_, err = rg.meetings.Reschedule(ctx, user.ID, m.ID, "2099-06-01", "11:00", "conflict")
	require.NoError(t, err)
	for _, id := range []string{user.ID, expert.ID} {
		rec := rg.userByID(t, id)
		require.Len(t, rec.Meetings, 1)
		assert.Equal(t, "2099-06-01", rec.Meetings[0].Date)
		assert.Equal(t, model.MeetingRescheduled, rec.Meetings[0].Status)
	}

	require.NoError(t, rg.meetings.Cancel(ctx, m.ID))
	assert.Empty(t, rg.userByID(t, user.ID).Meetings)
	assert.Empty(t, rg.userByID(t, expert.ID).Meetings)
	assert.True(t, model.IsNotFound(rg.meetings.Cancel(ctx, m.ID)))

	_, err = rg.messages.Send(ctx, user.ID, expert.ID, "Thanks for the session")
	require.NoError(t, err)
	for _, id := range []string{user.ID, expert.ID} {
		rec := rg.userByID(t, id)
		require.Len(t, rec.Messages, 2)
		assert.Equal(t, expert.ID, rec.Messages[0].SenderID)
	}
}
