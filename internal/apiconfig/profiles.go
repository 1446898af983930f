package apiconfig

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/bitlance/web/internal/domain"
)

// FreelancerDetails fetches the freelancer profile of a user. A missing
// profile (null data, 400 or 404) is reported as domain.ErrNoProfile.
func (c *Client) FreelancerDetails(ctx context.Context, userID string) (*domain.FreelancerProfile, error) {
	var out envelope[*domain.FreelancerProfile]
	if err := c.getProfile(ctx, "/freelancer/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, domain.ErrNoProfile
	}
	return out.Data, nil
}

// ClientDetails fetches the client (company) profile of a user.
func (c *Client) ClientDetails(ctx context.Context, userID string) (*domain.ClientProfile, error) {
	var out envelope[*domain.ClientProfile]
	if err := c.getProfile(ctx, "/client/"+url.PathEscape(userID), &out); err != nil {
		return nil, err
	}
	if out.Data == nil {
		return nil, domain.ErrNoProfile
	}
	return out.Data, nil
}

func (c *Client) getProfile(ctx context.Context, path string, out any) error {
	req, err := c.newRequest(ctx, http.MethodGet, path, nil)
	if err != nil {
		return err
	}
	err = c.do(req, out)
	if err == nil {
		return nil
	}
	if code := StatusCode(err); code == http.StatusBadRequest || errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: %w", domain.ErrNoProfile, err)
	}
	return err
}
