package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/fletnix/fletnix/internal/domain"
)

// Login exchanges credentials for a token and user record
func (c *Client) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/auth/login", nil, loginRequest{Email: email, Password: password}, "")
	if err != nil {
		return "", domain.User{}, err
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp.Token, resp.User, nil
}

// Register creates an account and returns a token and user record
func (c *Client) Register(ctx context.Context, email, password string, age int) (string, domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodPost, "/auth/register", nil, registerRequest{Email: email, Password: password, Age: age}, "")
	if err != nil {
		return "", domain.User{}, err
	}

	var resp authResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return "", domain.User{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp.Token, resp.User, nil
}

// Profile fetches the current user for the given token
func (c *Client) Profile(ctx context.Context, token string) (domain.User, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/auth/profile", nil, nil, token)
	if err != nil {
		return domain.User{}, err
	}

	var resp profileResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return domain.User{}, fmt.Errorf("failed to parse response: %w", err)
	}
	return resp.User, nil
}
