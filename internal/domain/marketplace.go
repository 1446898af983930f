package domain

import "context"

// LoginResult is the outcome of an authentication attempt. A rejected login
// is not a Go error: Status carries the HTTP status and Error the message
// returned by the backend.
type LoginResult struct {
	Status int
	User   *User
	Token  string
	Error  string
}

// OK reports whether the backend accepted the credentials.
func (r *LoginResult) OK() bool {
	return r != nil && r.Status == 200
}

// Marketplace is the contract of the upstream marketplace API as used by the
// web front end.
type Marketplace interface {
	UserLogin(ctx context.Context, creds Credentials) (*LoginResult, error)
	FreelancerDetails(ctx context.Context, userID string) (*FreelancerProfile, error)
	ClientDetails(ctx context.Context, userID string) (*ClientProfile, error)
	GetUserJobs(ctx context.Context, userID string, isFreelancer bool) ([]Job, error)
	CreateJob(ctx context.Context, job NewJob) (*Job, error)
	ListJobs(ctx context.Context) ([]Job, error)
	GetJob(ctx context.Context, jobID string) (*Job, error)
	Ping(ctx context.Context) error
}
