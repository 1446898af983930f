package apiconfig

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/bitlance/web/internal/domain"
)

// GetUserJobs returns the jobs a user takes part in, either as the assigned
// freelancer or as the client that posted them.
func (c *Client) GetUserJobs(ctx context.Context, userID string, isFreelancer bool) ([]domain.Job, error) {
	path := "/jobs/user/" + url.PathEscape(userID) + "?freelancer=" + strconv.FormatBool(isFreelancer)
	return c.getJobList(ctx, path)
}

// ListJobs returns the jobs open for browsing.
func (c *Client) ListJobs(ctx context.Context) ([]domain.Job, error) {
	return c.getJobList(ctx, "/jobs")
}

// GetJob fetches a single job.
func (c *Client) GetJob(ctx context.Context, jobID string) (*domain.Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, "/jobs/"+url.PathEscape(jobID), nil)
	if err != nil {
		return nil, err
	}
	var out envelope[*domain.JobListing]
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("job %s: %w", jobID, domain.ErrNotFound)
	}
	return &out.Data.Job, nil
}

// CreateJob posts a new job on behalf of a client.
func (c *Client) CreateJob(ctx context.Context, job domain.NewJob) (*domain.Job, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/jobs", job)
	if err != nil {
		return nil, err
	}
	var out envelope[*domain.Job]
	if err := c.do(req, &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, fmt.Errorf("marketplace api create job: empty response")
	}
	return out.Data, nil
}

func (c *Client) getJobList(ctx context.Context, path string) ([]domain.Job, error) {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err := c.do(req, &raw); err != nil {
		return nil, err
	}
	listings, err := decodeJobList(raw)
	if err != nil {
		return nil, fmt.Errorf("marketplace api GET %s: %w", path, err)
	}

	jobs := make([]domain.Job, 0, len(listings))
	for _, l := range listings {
		jobs = append(jobs, l.Job)
	}
	return jobs, nil
}

// decodeJobList accepts a bare JSON array, an {"data": [...]} envelope, or
// null (no jobs).
func decodeJobList(raw json.RawMessage) ([]domain.JobListing, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	var listings []domain.JobListing
	if trimmed[0] == '[' {
		if err := json.Unmarshal(trimmed, &listings); err != nil {
			return nil, fmt.Errorf("failed to decode job list: %w", err)
		}
		return listings, nil
	}

	var env envelope[[]domain.JobListing]
	if err := json.Unmarshal(trimmed, &env); err != nil {
		return nil, fmt.Errorf("failed to decode job list: %w", err)
	}
	return env.Data, nil
}
