//go:build e2e
// +build e2e

package e2e

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

// TestDevEnv_Smoke walks the primary user journey against a running
// finwise-service: sign in with a seeded account, book a meeting with a
// seeded expert, open the message thread, and read back both sides.
func TestDevEnv_Smoke(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping in short mode")
	}

	baseURL := env("FINWISE_API", "http://localhost:8080")
	waitForHealthy(t, baseURL, 30*time.Second)
	c := newClient(baseURL)

	// 1. Sign in with the seeded demo user
	var user struct {
		ID       string `json:"id"`
		FullName string `json:"fullname"`
	}
	resp, err := c.R().
		SetBody(map[string]string{"email": "user@example.com", "password": "password", "accountType": "user"}).
		SetResult(&user).
		Post("/api/auth/login")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.StatusCode() != http.StatusOK {
		t.Fatalf("login http %d: %s", resp.StatusCode(), resp.String())
	}

	// 2. Pick a seeded expert
	var experts []struct {
		ID   string `json:"id"`
		Name string `json:"name"`
	}
	if _, err := c.R().SetResult(&experts).Get("/api/experts"); err != nil {
		t.Fatalf("list experts: %v", err)
	}
	if len(experts) == 0 {
		t.Fatal("no seeded experts")
	}
	expertID := experts[0].ID

	// 3. Book a meeting far in the future so it lists as upcoming
	var meeting struct {
		ID string `json:"id"`
	}
	resp, err = c.R().
		SetBody(map[string]string{
			"userId": user.ID, "expertId": expertID,
			"date": "2099-06-01", "time": "10:00", "topic": "e2e smoke",
		}).
		SetResult(&meeting).
		Post("/api/meetings")
	if err != nil || resp.StatusCode() != http.StatusCreated {
		t.Fatalf("schedule: %v http %d %s", err, resp.StatusCode(), resp.String())
	}
	defer func() {
		_, _ = c.R().Delete(fmt.Sprintf("/api/meetings/%s", meeting.ID))
	}()

	var upcoming []struct {
		ID string `json:"id"`
	}
	if _, err := c.R().SetResult(&upcoming).Get(fmt.Sprintf("/api/users/%s/meetings?filter=upcoming", user.ID)); err != nil {
		t.Fatalf("list meetings: %v", err)
	}
	found := false
	for _, m := range upcoming {
		if m.ID == meeting.ID {
			found = true
		}
	}
	if !found {
		t.Fatalf("booked meeting %s not in upcoming list", meeting.ID)
	}

	// 4. Open the thread; the expert greeting should appear on both sides
	resp, err = c.R().Post(fmt.Sprintf("/api/users/%s/threads/%s", user.ID, expertID))
	if err != nil {
		t.Fatalf("open thread: %v", err)
	}
	if resp.StatusCode() != http.StatusCreated && resp.StatusCode() != http.StatusOK {
		t.Fatalf("open thread http %d: %s", resp.StatusCode(), resp.String())
	}

	for _, id := range []string{user.ID, expertID} {
		var threads []struct {
			ContactID string `json:"contactId"`
		}
		if _, err := c.R().SetResult(&threads).Get(fmt.Sprintf("/api/users/%s/threads", id)); err != nil {
			t.Fatalf("threads for %s: %v", id, err)
		}
		if len(threads) == 0 {
			t.Fatalf("no threads for %s", id)
		}
	}
}
