package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/finwise/finwise-server/internal/model"
)

func TestUpdateProfile(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	u := rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)

	got, err := rg.users.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		FullName: "Jane Q. Doe",
		Email:    "Jane.New@Example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Q. Doe", got.FullName)
	assert.Equal(t, "jane.new@example.com", got.Email)

	// session pointer follows the edit
	cur, err := rg.auth.CurrentUser(ctx)
	require.NoError(t, err)
	require.NotNil(t, cur)
	assert.Equal(t, "Jane Q. Doe", cur.FullName)
}

func TestUpdateProfilePasswordChange(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	u := rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)

	_, err := rg.users.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		CurrentPassword: "wrong",
		NewPassword:     "newsecret",
	})
	assert.True(t, model.IsInvalidCredentials(err))

	_, err = rg.users.UpdateProfile(ctx, u.ID, UpdateProfileRequest{
		FullName:        "Jane Doe",
		Email:           "jane@example.com",
		CurrentPassword: "secret123",
		NewPassword:     "newsecret",
	})
	require.NoError(t, err)

	require.NoError(t, rg.auth.Logout(ctx))
	_, err = rg.auth.Login(ctx, "jane@example.com", "newsecret", model.AccountUser)
	assert.NoError(t, err)
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)
	other := rg.register(t, "Bob Smith", "bob@example.com", model.AccountUser)

	_, err := rg.users.UpdateProfile(ctx, other.ID, UpdateProfileRequest{
		FullName: "Bob Smith",
		Email:    "jane@example.com",
	})
	assert.True(t, model.IsDuplicateEmail(err))
}

func TestUpdateExpertProfileSyncsDisplayMirror(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	e := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	_, err := rg.users.UpdateExpertProfile(ctx, e.ID, UpdateExpertProfileRequest{
		FullName:    "Eva M. Expert",
		Title:       "Senior Financial Planner",
		Email:       "eva@example.com",
		Specialty:   "Estate Planning",
		Bio:         "Twenty years of estate work.",
		Credentials: "CFP, JD",
		Experience:  "20+ years",
	})
	require.NoError(t, err)

	profile, err := rg.repo.ExpertProfile(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "Eva M. Expert", profile.Name)
	assert.Equal(t, "Senior Financial Planner", profile.Title)
	assert.Equal(t, "Estate Planning", profile.Specialty)

	_, err = rg.users.UpdateExpertProfile(ctx, e.ID, UpdateExpertProfileRequest{
		FullName: "Eva", Title: "x", Email: "eva@example.com",
		Specialty: "y", Bio: "", Credentials: "z", Experience: "w",
	})
	assert.True(t, model.IsMissingField(err))
}

func TestSetInterests(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	u := rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)

	got, err := rg.users.SetInterests(ctx, u.ID, []string{"Tax", "Debt"})
	require.NoError(t, err)
	assert.Equal(t, []string{"Tax", "Debt"}, got.Interests)

	got, err = rg.users.SetInterests(ctx, u.ID, nil)
	require.NoError(t, err)
	assert.Empty(t, got.Interests)
}

func TestPromoteToExpert(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	u := rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)

	_, err := rg.users.PromoteToExpert(ctx, u.ID, PromoteRequest{
		Specialty: "Debt Management", Experience: "5 years",
		Credentials: "AFC", Bio: "Helping people out of debt.",
	})
	assert.True(t, model.IsMissingField(err), "motivation is required")

	got, err := rg.users.PromoteToExpert(ctx, u.ID, PromoteRequest{
		Specialty: "Debt Management", Experience: "5 years",
		Credentials: "AFC", Bio: "Helping people out of debt.",
		Motivation: "I want to share what worked for me.",
	})
	require.NoError(t, err)
	assert.Equal(t, model.AccountExpert, got.Type)
	assert.NotNil(t, got.Clients)

	// promotion publishes the display profile
	profile, err := rg.repo.ExpertProfile(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Debt Management", profile.Specialty)
}

func TestClients(t *testing.T) {
	rg := newRig(t)
	ctx := context.Background()
	user := rg.register(t, "Jane Doe", "jane@example.com", model.AccountUser)
	expert := rg.register(t, "Eva Expert", "eva@example.com", model.AccountExpert)

	_, err := rg.meetings.Schedule(ctx, ScheduleRequest{
		UserID: user.ID, ExpertID: expert.ID,
		Date: "2026-09-15", Time: "10:00", Topic: "Budgeting",
	})
	require.NoError(t, err)

	clients, err := rg.users.Clients(ctx, expert.ID)
	require.NoError(t, err)
	require.Len(t, clients, 1)
	assert.Equal(t, user.ID, clients[0].ID)

	_, err = rg.users.Clients(ctx, user.ID)
	assert.True(t, model.IsNotFound(err))
}
