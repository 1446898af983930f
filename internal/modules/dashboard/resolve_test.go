package dashboard

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/bitlance/web/internal/apiconfig"
	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	user := testutils.NewUser()
	jobs := []domain.Job{{ID: "j1", Title: "Build API"}}
	noProfile := fmt.Errorf("%w: %w", domain.ErrNoProfile, errors.New("data is null"))

	tests := []struct {
		name      string
		role      domain.Role
		fake      *testutils.FakeMarketplace
		wantError string
		wantJobs  int
	}{
		{
			name:     "freelancer loaded",
			role:     domain.RoleFreelancer,
			fake:     &testutils.FakeMarketplace{Freelancer: &domain.FreelancerProfile{Bio: "Go"}, UserJobs: jobs},
			wantJobs: 1,
		},
		{
			name:      "freelancer without profile",
			role:      domain.RoleFreelancer,
			fake:      &testutils.FakeMarketplace{FreelancerErr: noProfile, UserJobs: jobs},
			wantError: MsgNoFreelancerProfile,
			wantJobs:  1,
		},
		{
			name:      "client without profile",
			role:      domain.RoleClient,
			fake:      &testutils.FakeMarketplace{ClientErr: noProfile},
			wantError: MsgNoClientProfile,
		},
		{
			name:      "profile request fails",
			role:      domain.RoleClient,
			fake:      &testutils.FakeMarketplace{ClientErr: errors.New("boom")},
			wantError: MsgProfileError,
		},
		{
			name:      "job failure replaces profile failure",
			role:      domain.RoleFreelancer,
			fake:      &testutils.FakeMarketplace{FreelancerErr: noProfile, UserJobsErr: errors.New("boom")},
			wantError: MsgJobsError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := Resolve(context.Background(), tt.fake, user, tt.role)
			require.NoError(t, err)

			assert.Equal(t, tt.role, data.Role)
			assert.Equal(t, user, data.User)
			assert.Equal(t, tt.wantError, data.Error)
			assert.Len(t, data.Jobs, tt.wantJobs)
			assert.Equal(t, 1, tt.fake.CallCount("GetUserJobs"))
			if tt.role.IsFreelancer() {
				assert.Equal(t, 1, tt.fake.CallCount("FreelancerDetails"))
				assert.Zero(t, tt.fake.CallCount("ClientDetails"))
			} else {
				assert.Equal(t, 1, tt.fake.CallCount("ClientDetails"))
				assert.Zero(t, tt.fake.CallCount("FreelancerDetails"))
			}
		})
	}
}

func TestResolve_RejectedToken(t *testing.T) {
	user := testutils.NewUser()
	rejected := &apiconfig.APIError{StatusCode: http.StatusUnauthorized, Message: "invalid token"}

	t.Run("profile call", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{FreelancerErr: rejected}
		_, err := Resolve(context.Background(), fake, user, domain.RoleFreelancer)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Zero(t, fake.CallCount("GetUserJobs"))
	})

	t.Run("jobs call", func(t *testing.T) {
		fake := &testutils.FakeMarketplace{Client: &domain.ClientProfile{}, UserJobsErr: rejected}
		data, err := Resolve(context.Background(), fake, user, domain.RoleClient)
		assert.ErrorIs(t, err, domain.ErrUnauthorized)
		assert.Equal(t, MsgJobsError, data.Error)
	})
}
