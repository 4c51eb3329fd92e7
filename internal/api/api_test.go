package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/finwise/finwise-server/internal/kv/memory"
	"github.com/finwise/finwise-server/internal/model"
	"github.com/finwise/finwise-server/internal/repo"
	"github.com/finwise/finwise-server/internal/services"
	"github.com/finwise/finwise-server/internal/store"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	log := zerolog.Nop()
	st := store.New(memory.NewMemoryStore(), log)
	t.Cleanup(func() { _ = st.Close() })
	r := repo.New(st, log)

	router := NewRouter(Deps{
		Repo:     r,
		Auth:     services.NewAuthService(r, log, bcrypt.MinCost, false),
		Users:    services.NewUserService(r, log, bcrypt.MinCost),
		Meetings: services.NewMeetingService(r, log),
		Messages: services.NewMessageService(r, log),
		Articles: services.NewArticleService(r, log),
		Log:      log,
	})
	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body interface{}, out interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer func() { _ = resp.Body.Close() }()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func registerViaAPI(t *testing.T, srv *httptest.Server, name, email, accountType string) model.User {
	t.Helper()
	var u model.User
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", map[string]string{
		"fullname":    name,
		"email":       email,
		"password":    "secret123",
		"accountType": accountType,
	}, &u)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	return u
}

func TestAuthEndpoints(t *testing.T) {
	srv := newTestServer(t)

	u := registerViaAPI(t, srv, "Jane Doe", "jane@example.com", "user")
	assert.NotEmpty(t, u.ID)

	// duplicate email maps to 409
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/auth/register", map[string]string{
		"fullname": "Jane Again", "email": "jane@example.com",
		"password": "pw", "accountType": "user",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	// wrong password maps to 401
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]string{
		"email": "jane@example.com", "password": "wrong", "accountType": "user",
	}, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	var got model.User
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/login", map[string]string{
		"email": "jane@example.com", "password": "secret123", "accountType": "user",
	}, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, u.ID, got.ID)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/auth/session", nil, &got)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, u.ID, got.ID)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/auth/session", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMeetingLifecycleOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	user := registerViaAPI(t, srv, "Jane Doe", "jane@example.com", "user")
	expert := registerViaAPI(t, srv, "Eva Expert", "eva@example.com", "expert")

	var m model.Meeting
	resp := doJSON(t, http.MethodPost, srv.URL+"/api/meetings", map[string]string{
		"userId": user.ID, "expertId": expert.ID,
		"date": "2099-01-15", "time": "10:30", "topic": "Retirement",
	}, &m)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, expert.ID, m.ExpertID)

	// missing topic maps to 400
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/meetings", map[string]string{
		"userId": user.ID, "expertId": expert.ID, "date": "2099-01-15", "time": "10:30",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// unknown expert maps to 404
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/meetings", map[string]string{
		"userId": user.ID, "expertId": "ghost",
		"date": "2099-01-15", "time": "10:30", "topic": "x",
	}, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var moved model.Meeting
	resp = doJSON(t, http.MethodPut, fmt.Sprintf("%s/api/meetings/%s", srv.URL, m.ID), map[string]string{
		"actorId": expert.ID, "date": "2099-02-01", "time": "09:00", "reason": "conflict",
	}, &moved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.MeetingRescheduled, moved.Status)

	var upcoming []model.Meeting
	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/users/%s/meetings?filter=upcoming", srv.URL, user.ID), nil, &upcoming)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, upcoming, 1)
	assert.Equal(t, "2099-02-01", upcoming[0].Date)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/meetings/%s", srv.URL, m.ID), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodDelete, fmt.Sprintf("%s/api/meetings/%s", srv.URL, m.ID), nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestMessagingOverHTTP(t *testing.T) {
	srv := newTestServer(t)
	user := registerViaAPI(t, srv, "Jane Doe", "jane@example.com", "user")
	expert := registerViaAPI(t, srv, "Eva Expert", "eva@example.com", "expert")

	// first contact seeds the expert greeting
	var welcome model.Message
	resp := doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/users/%s/threads/%s", srv.URL, user.ID, expert.ID), nil, &welcome)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, expert.ID, welcome.SenderID)

	// reopening is a no-op
	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/users/%s/threads/%s", srv.URL, user.ID, expert.ID), nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var sent model.Message
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/messages", map[string]string{
		"senderId": user.ID, "recipientId": expert.ID, "content": "Hi Eva",
	}, &sent)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, http.MethodPost, srv.URL+"/api/messages", map[string]string{
		"senderId": user.ID, "recipientId": expert.ID, "content": "   ",
	}, nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var threads []services.Thread
	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/users/%s/threads", srv.URL, expert.ID), nil, &threads)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, threads, 1)
	assert.Equal(t, user.ID, threads[0].ContactID)
	assert.Equal(t, 1, threads[0].Unread)

	resp = doJSON(t, http.MethodPost, fmt.Sprintf("%s/api/users/%s/threads/%s/read", srv.URL, expert.ID, user.ID), nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, fmt.Sprintf("%s/api/users/%s/threads", srv.URL, expert.ID), nil, &threads)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 0, threads[0].Unread)
}

func TestArticleEndpoints(t *testing.T) {
	srv := newTestServer(t)
	expert := registerViaAPI(t, srv, "Eva Expert", "eva@example.com", "expert")

	// park a draft
	resp := doJSON(t, http.MethodPut, srv.URL+"/api/articles/draft", map[string]string{
		"title": "WIP", "category": "tax", "summary": "s", "content": "half", "tags": "tax",
	}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var draft model.ArticleDraft
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/articles/draft", nil, &draft)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "WIP", draft.Title)

	var a model.Article
	resp = doJSON(t, http.MethodPost, srv.URL+"/api/articles", map[string]string{
		"authorId": expert.ID, "title": "Tax Basics", "category": "tax",
		"summary": "s", "content": "c", "tags": "tax, basics",
	}, &a)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Eva Expert", a.Author)

	// publishing cleared the draft
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/articles/draft", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)

	var list []model.Article
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/articles?category=tax", nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/articles?authorId="+expert.ID, nil, &list)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, list, 1)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/articles/"+a.ID, nil, nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doJSON(t, http.MethodGet, srv.URL+"/api/articles/nope", nil, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestExpertEndpoints(t *testing.T) {
	srv := newTestServer(t)
	expert := registerViaAPI(t, srv, "Eva Expert", "eva@example.com", "expert")

	var experts []model.ExpertProfile
	resp := doJSON(t, http.MethodGet, srv.URL+"/api/experts", nil, &experts)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, experts, 1)

	resp = doJSON(t, http.MethodPut, srv.URL+"/api/experts/view", map[string]string{"expertId": expert.ID}, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var view map[string]string
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/experts/view", nil, &view)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, expert.ID, view["expertId"])

	var profile model.ExpertProfile
	resp = doJSON(t, http.MethodGet, srv.URL+"/api/experts/"+expert.ID, nil, &profile)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Eva Expert", profile.Name)
}
