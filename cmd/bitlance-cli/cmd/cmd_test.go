package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/bitlance/web/internal/auth"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/events"
	"github.com/bitlance/web/internal/testutils"
	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run executes the root command against fake and returns its output.
func run(t *testing.T, fake *testutils.FakeMarketplace, args ...string) (string, error) {
	t.Helper()

	orig := newMarketplace
	newMarketplace = func() (domain.Marketplace, error) { return fake, nil }
	t.Cleanup(func() { newMarketplace = orig })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	err := rootCmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestVersion(t *testing.T) {
	out, err := run(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Bitlance CLI v")
}

func TestPing(t *testing.T) {
	fake := &testutils.FakeMarketplace{}
	out, err := run(t, fake, "ping")
	require.NoError(t, err)
	assert.Contains(t, out, "reachable")
	assert.Equal(t, 1, fake.CallCount("Ping"))
}

func TestLogin(t *testing.T) {
	t.Run("prints the user", func(t *testing.T) {
		user := testutils.NewUser()
		fake := &testutils.FakeMarketplace{
			LoginResult: &domain.LoginResult{Status: 200, User: &user, Token: "tok"},
		}
		out, err := run(t, fake, "login", "--email", "ada@example.com", "--password", "secret", "--show-token=false")
		require.NoError(t, err)
		assert.Contains(t, out, "ada@example.com")
		assert.Contains(t, out, "Ada Lovelace")
		assert.NotContains(t, out, "Token:")
	})

	t.Run("reports the backend message", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{
			LoginResult: &domain.LoginResult{Status: 401, Error: "AuthError: Invalid credentials"},
		}
		_, err := run(t, fake, "login", "--email", "ada@example.com", "--password", "wrong")
		require.Error(t, err)
		assert.Equal(t, "Invalid credentials", err.Error())
	})

	t.Run("reads the user from a token-only response", func(t *testing.T) {
		tok, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, auth.Claims{
			UserID: "user-7",
			Email:  "grace@example.com",
			Role:   "client",
		}).SignedString([]byte("cli-secret"))
		require.NoError(t, err)
		fake := &testutils.FakeMarketplace{
			LoginResult: &domain.LoginResult{Status: 200, Token: tok},
		}

		out, err := run(t, fake, "login", "--email", "grace@example.com", "--password", "secret", "--token-secret", "cli-secret")
		require.NoError(t, err)
		assert.Contains(t, out, "user-7")
		assert.Contains(t, out, "grace@example.com")
		assert.Contains(t, out, "client")
	})

	t.Run("rejects a response without a user", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{
			LoginResult: &domain.LoginResult{Status: 200, Token: "opaque"},
		}
		_, err := run(t, fake, "login", "--email", "ada@example.com", "--password", "secret", "--token-secret", "")
		require.Error(t, err)
		assert.ErrorIs(t, err, auth.ErrNoUserID)
	})

	t.Run("requires both fields", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{}
		_, err := run(t, fake, "login", "--email", "ada@example.com", "--password", "")
		require.Error(t, err)
		assert.Zero(t, fake.CallCount("UserLogin"))
	})
}

func TestDashboard(t *testing.T) {
	fake := &testutils.FakeMarketplace{
		Freelancer: &domain.FreelancerProfile{Bio: "Gopher", Skills: domain.SkillList{"go", "sql"}},
		UserJobs:   []domain.Job{{ID: "j1", Title: "Build API", Description: "REST"}},
	}
	out, err := run(t, fake, "dashboard", "--user-id", "u-1", "--role", "freelancer", "--token", "tok")
	require.NoError(t, err)
	assert.Contains(t, out, "Role: Freelancer")
	assert.Contains(t, out, "go, sql")
	assert.Contains(t, out, "/requests/j1  Build API: REST")
	assert.Equal(t, "tok", fake.LastToken)

	fake = &testutils.FakeMarketplace{ClientErr: domain.ErrNoProfile}
	out, err = run(t, fake, "dashboard", "--user-id", "u-1", "--role", "client", "--token", "")
	require.NoError(t, err)
	assert.Contains(t, out, "User doesn't have a client profile.")
	assert.Contains(t, out, "No jobs found.")
}

func TestEvents(t *testing.T) {
	out, err := run(t, nil, "events", "--format", "json")
	require.NoError(t, err)

	var topics []string
	require.NoError(t, json.Unmarshal([]byte(out), &topics))
	assert.Equal(t, events.All, topics)

	_, err = run(t, nil, "events", "--format", "xml")
	assert.Error(t, err)
}
