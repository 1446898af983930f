package dashboard

import (
	"context"
	"errors"

	"github.com/bitlance/web/internal/domain"
	"github.com/bitlance/web/internal/middleware"
	"github.com/bitlance/web/web/src/templates/pages"
)

// Messages shown in place of the role details.
const (
	MsgNoFreelancerProfile = "User doesn't have a freelancer profile."
	MsgNoClientProfile     = "User doesn't have a client profile."
	MsgProfileError        = "An error occurred. Please try again."
	MsgJobsError           = "Failed to fetch user jobs. Please try again."
)

// Resolve loads what the dashboard shows for user acting as role: the role's
// profile first, then the user's jobs. Failures become a single message; a
// job list failure replaces a profile failure.
//
// The returned error is non-nil only when the API rejected the token, in
// which case it matches domain.ErrUnauthorized and no further calls are made.
func Resolve(ctx context.Context, m domain.Marketplace, user domain.User, role domain.Role) (pages.DashboardData, error) {
	logger := middleware.FromContext(ctx).With("user_id", user.ID, "role", string(role))
	data := pages.DashboardData{User: user, Role: role}

	var err error
	if role.IsFreelancer() {
		data.Freelancer, err = m.FreelancerDetails(ctx, user.ID)
	} else {
		data.Client, err = m.ClientDetails(ctx, user.ID)
	}
	switch {
	case err == nil:
	case errors.Is(err, domain.ErrUnauthorized):
		logger.Info("API rejected the session token", "error", err)
		data.Error = MsgProfileError
		return data, err
	case errors.Is(err, domain.ErrNoProfile):
		logger.Info("User has no profile for role")
		data.Error = profileMessage(role, err)
	default:
		logger.Error("Failed to fetch profile", "error", err)
		data.Error = profileMessage(role, err)
	}

	jobs, err := m.GetUserJobs(ctx, user.ID, role.IsFreelancer())
	if err != nil {
		data.Error = MsgJobsError
		if errors.Is(err, domain.ErrUnauthorized) {
			logger.Info("API rejected the session token", "error", err)
			return data, err
		}
		logger.Error("Failed to fetch user jobs", "error", err)
		return data, nil
	}
	data.Jobs = jobs
	return data, nil
}

func profileMessage(role domain.Role, err error) string {
	if !errors.Is(err, domain.ErrNoProfile) {
		return MsgProfileError
	}
	if role.IsFreelancer() {
		return MsgNoFreelancerProfile
	}
	return MsgNoClientProfile
}
