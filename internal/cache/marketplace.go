package cache

import (
	"context"
	"log/slog"
	"time"

	"github.com/bitlance/web/internal/domain"
)

// Marketplace decorates a domain.Marketplace with read-through caching of the
// dashboard's profile and job-list reads. Writes go straight through and
// invalidate the affected keys.
type Marketplace struct {
	domain.Marketplace
	cache Cache
	ttl   time.Duration
}

// NewMarketplace wraps next with c.
func NewMarketplace(next domain.Marketplace, c Cache, ttl time.Duration) *Marketplace {
	return &Marketplace{Marketplace: next, cache: c, ttl: ttl}
}

func freelancerKey(userID string) string { return "profile:freelancer:" + userID }
func clientKey(userID string) string     { return "profile:client:" + userID }

func jobsKey(userID string, isFreelancer bool) string {
	if isFreelancer {
		return "jobs:" + userID + ":freelancer"
	}
	return "jobs:" + userID + ":client"
}

// UserKeys lists every key cached for a user.
func UserKeys(userID string) []string {
	return []string{
		freelancerKey(userID),
		clientKey(userID),
		jobsKey(userID, true),
		jobsKey(userID, false),
	}
}

// readThrough serves key from the cache or loads and stores it. Cache
// failures are logged and never fail the read.
func readThrough[T any](ctx context.Context, m *Marketplace, key string, load func() (T, error)) (T, error) {
	var cached T
	hit, err := m.cache.GetJSON(ctx, key, &cached)
	if err != nil {
		slog.Debug("Cache read failed", "key", key, "error", err)
	}
	if hit {
		return cached, nil
	}

	v, err := load()
	if err != nil {
		return v, err
	}
	if err := m.cache.SetJSON(ctx, key, v, m.ttl); err != nil {
		slog.Debug("Cache write failed", "key", key, "error", err)
	}
	return v, nil
}

func (m *Marketplace) FreelancerDetails(ctx context.Context, userID string) (*domain.FreelancerProfile, error) {
	return readThrough(ctx, m, freelancerKey(userID), func() (*domain.FreelancerProfile, error) {
		return m.Marketplace.FreelancerDetails(ctx, userID)
	})
}

func (m *Marketplace) ClientDetails(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	return readThrough(ctx, m, clientKey(userID), func() (*domain.ClientProfile, error) {
		return m.Marketplace.ClientDetails(ctx, userID)
	})
}

func (m *Marketplace) GetUserJobs(ctx context.Context, userID string, isFreelancer bool) ([]domain.Job, error) {
	return readThrough(ctx, m, jobsKey(userID, isFreelancer), func() ([]domain.Job, error) {
		return m.Marketplace.GetUserJobs(ctx, userID, isFreelancer)
	})
}

func (m *Marketplace) CreateJob(ctx context.Context, job domain.NewJob) (*domain.Job, error) {
	created, err := m.Marketplace.CreateJob(ctx, job)
	if err != nil {
		return nil, err
	}
	if job.UserID != "" {
		m.Invalidate(ctx, job.UserID)
	}
	return created, nil
}

// Invalidate drops every cached entry for the user.
func (m *Marketplace) Invalidate(ctx context.Context, userID string) {
	if err := m.cache.Delete(ctx, UserKeys(userID)...); err != nil {
		slog.Warn("Failed to invalidate cached user data", "user_id", userID, "error", err)
	}
}
