package cafeapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/renoh/cafe-web/internal/domain/model"
)

// GetProfile fetches a user's public profile.
// GET /user/{username}: 200 JSON object; 404 not-found; 500 server error.
func (c *Client) GetProfile(ctx context.Context, username string) (model.Profile, error) {
	resp, err := c.do(ctx, http.MethodGet, "/user/"+url.PathEscape(username), "", nil)
	if err != nil {
		return model.Profile{}, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		closeBody(resp)
		return model.Profile{}, &NotFoundError{Kind: "user", ID: username}
	default:
		closeBody(resp)
		return model.Profile{}, serverError(resp.StatusCode)
	}

	var profile model.Profile
	if err := decodeBody(resp, &profile); err != nil {
		return model.Profile{}, err
	}
	return profile, nil
}

// DeleteAccount removes the token's user account.
// DELETE /user/{username}: 200 ok; 400 credential mismatch; 404 not-found;
// 401/419 classified auth error.
func (c *Client) DeleteAccount(ctx context.Context, token, username string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/user/"+url.PathEscape(username), token, nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if authErr := CheckAuth(resp.StatusCode); authErr != nil {
		return authErr
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrCredentialMismatch
	case http.StatusNotFound:
		return &NotFoundError{Kind: "user", ID: username}
	default:
		return serverError(resp.StatusCode)
	}
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

// Login exchanges credentials for an API token.
// POST /user/login: 200 JSON with token; 401 bad password; 404 unknown user.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/user/login", "", credentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return "", err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusUnauthorized:
		closeBody(resp)
		return "", ErrWrongPassword
	case http.StatusNotFound:
		closeBody(resp)
		return "", &NotFoundError{Kind: "user", ID: username}
	default:
		closeBody(resp)
		return "", serverError(resp.StatusCode)
	}

	var login loginResponse
	if err := decodeBody(resp, &login); err != nil {
		return "", err
	}
	return login.Token, nil
}

// Signup registers a new account.
// POST /user/signup: 200 ok; 400 username taken; 500 server error.
func (c *Client) Signup(ctx context.Context, username, password string) error {
	resp, err := c.do(ctx, http.MethodPost, "/user/signup", "", credentialsRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return err
	}
	defer closeBody(resp)

	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusBadRequest:
		return ErrUsernameTaken
	default:
		return serverError(resp.StatusCode)
	}
}
