package nmtapi

import (
	"context"
	"net/http"
	"net/url"
	"strings"

	"release-management-service/internal/core/domain"
)

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login posts the OAuth2 password form and returns the access token.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	form := url.Values{}
	form.Set("username", username)
	form.Set("password", password)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := c.newRequest(ctx, http.MethodPost, "/auth/login", nil, strings.NewReader(form.Encode()))
	if err != nil {
		return "", err
	}
	req.Header.Del("Authorization")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.do(req)
	if err != nil {
		return "", err
	}
	var tok tokenResponse
	if err := decode(resp, &tok); err != nil {
		return "", err
	}
	if tok.AccessToken == "" {
		return "", domain.ErrUnauthorized
	}
	return tok.AccessToken, nil
}

func (c *Client) CurrentUser(ctx context.Context) (*domain.User, error) {
	var u domain.User
	if err := c.getJSON(ctx, "/auth/me", nil, &u); err != nil {
		return nil, err
	}
	return &u, nil
}
