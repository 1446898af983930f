package apiconfig

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/bitlance/web/internal/domain"
)

type loginResponse struct {
	Status int          `json:"status"`
	Data   *domain.User `json:"data"`
	Token  string       `json:"token"`
	Error  string       `json:"error"`
}

// UserLogin submits credentials to the authentication endpoint. A rejected
// login is reported through LoginResult.Status and LoginResult.Error; only
// transport and decoding failures are returned as errors.
func (c *Client) UserLogin(ctx context.Context, creds domain.Credentials) (*domain.LoginResult, error) {
	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", creds)
	if err != nil {
		return nil, err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("marketplace api login: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("marketplace api login: failed to read response: %w", err)
	}

	var body loginResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		if resp.StatusCode >= 200 && resp.StatusCode < 300 {
			return nil, fmt.Errorf("marketplace api login: failed to decode response: %w", err)
		}
		// Non-JSON error pages still become a rejected login.
		body.Error = errorMessage(raw)
	}

	result := &domain.LoginResult{
		Status: body.Status,
		User:   body.Data,
		Token:  body.Token,
		Error:  body.Error,
	}
	// The HTTP status wins when it signals failure or the body omits one.
	if result.Status == 0 || resp.StatusCode >= 300 {
		result.Status = resp.StatusCode
	}
	if result.OK() && result.User == nil && result.Token == "" {
		return nil, fmt.Errorf("marketplace api login: accepted without user data")
	}
	return result, nil
}
