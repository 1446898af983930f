package testutils

import (
	"context"
	"sync"

	"github.com/bitlance/web/internal/apiconfig"
	"github.com/bitlance/web/internal/domain"
)

// FakeMarketplace is an in-memory domain.Marketplace. Each call is counted
// in Calls by method name.
type FakeMarketplace struct {
	mu    sync.Mutex
	Calls map[string]int

	LoginResult *domain.LoginResult
	LoginErr    error
	LastCreds   domain.Credentials

	Freelancer    *domain.FreelancerProfile
	FreelancerErr error
	Client        *domain.ClientProfile
	ClientErr     error

	UserJobs    []domain.Job
	UserJobsErr error

	Created   []domain.NewJob
	CreateErr error
	OpenJobs  []domain.Job
	ListErr   error
	Jobs      map[string]domain.Job
	PingErr   error

	// LastToken is the bearer token carried by the most recent call.
	LastToken string
}

var _ domain.Marketplace = (*FakeMarketplace)(nil)

func (f *FakeMarketplace) record(ctx context.Context, name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Calls == nil {
		f.Calls = map[string]int{}
	}
	f.Calls[name]++
	f.LastToken = apiconfig.TokenFromContext(ctx)
}

// CallCount returns how many times method was called.
func (f *FakeMarketplace) CallCount(method string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.Calls[method]
}

func (f *FakeMarketplace) UserLogin(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	f.record(ctx, "UserLogin")
	f.mu.Lock()
	f.LastCreds = creds
	f.mu.Unlock()
	return f.LoginResult, f.LoginErr
}

func (f *FakeMarketplace) FreelancerDetails(ctx context.Context, userID string) (*domain.FreelancerProfile, error) {
	f.record(ctx, "FreelancerDetails")
	return f.Freelancer, f.FreelancerErr
}

func (f *FakeMarketplace) ClientDetails(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	f.record(ctx, "ClientDetails")
	return f.Client, f.ClientErr
}

func (f *FakeMarketplace) GetUserJobs(ctx context.Context, userID string, isFreelancer bool) ([]domain.Job, error) {
	f.record(ctx, "GetUserJobs")
	return f.UserJobs, f.UserJobsErr
}

func (f *FakeMarketplace) CreateJob(ctx context.Context, job domain.NewJob) (*domain.Job, error) {
	f.record(ctx, "CreateJob")
	if f.CreateErr != nil {
		return nil, f.CreateErr
	}
	f.mu.Lock()
	f.Created = append(f.Created, job)
	f.mu.Unlock()
	return &domain.Job{
		ID:          "job-new",
		Title:       job.Title,
		Description: job.Description,
		Category:    job.Category,
		Status:      domain.StatusOpen,
		ClientID:    job.ClientID,
		UserID:      job.UserID,
		Price:       job.Price,
	}, nil
}

func (f *FakeMarketplace) ListJobs(ctx context.Context) ([]domain.Job, error) {
	f.record(ctx, "ListJobs")
	return f.OpenJobs, f.ListErr
}

func (f *FakeMarketplace) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	f.record(ctx, "GetJob")
	job, ok := f.Jobs[jobID]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &job, nil
}

func (f *FakeMarketplace) Ping(ctx context.Context) error {
	f.record(ctx, "Ping")
	return f.PingErr
}
