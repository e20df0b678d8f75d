package cafeapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/renoh/cafe-web/internal/domain/model"
)

// PopularCafes lists the cafes with the most members.
// GET /cafe/popular: 200 JSON array; anything else is a server error.
func (c *Client) PopularCafes(ctx context.Context) ([]model.CafeSummary, error) {
	resp, err := c.do(ctx, http.MethodGet, "/cafe/popular", "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		closeBody(resp)
		return nil, serverError(resp.StatusCode)
	}

	var cafes []model.CafeSummary
	if err := decodeBody(resp, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

// SearchCafes finds cafes whose name contains term.
// GET /cafe/search/{term}: 200 JSON array; 500 server error.
func (c *Client) SearchCafes(ctx context.Context, term string) ([]model.CafeSummary, error) {
	resp, err := c.do(ctx, http.MethodGet, "/cafe/search/"+url.PathEscape(term), "", nil)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		closeBody(resp)
		return nil, serverError(resp.StatusCode)
	}

	var cafes []model.CafeSummary
	if err := decodeBody(resp, &cafes); err != nil {
		return nil, err
	}
	return cafes, nil
}

// GetCafe fetches a cafe detail.
// GET /cafe/{id}: 200 JSON object; 404 not-found; 500 server error.
func (c *Client) GetCafe(ctx context.Context, id string) (model.Cafe, error) {
	resp, err := c.do(ctx, http.MethodGet, "/cafe/"+url.PathEscape(id), "", nil)
	if err != nil {
		return model.Cafe{}, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		closeBody(resp)
		return model.Cafe{}, &NotFoundError{Kind: "cafe", ID: id}
	default:
		closeBody(resp)
		return model.Cafe{}, serverError(resp.StatusCode)
	}

	var cafe model.Cafe
	if err := decodeBody(resp, &cafe); err != nil {
		return model.Cafe{}, err
	}
	return cafe, nil
}

type createCafeRequest struct {
	CafeName string `json:"cafeName"`
}

type createCafeResponse struct {
	ID string `json:"id"`
}

// CreateCafe creates a cafe owned by the token's user and returns its ID.
// POST /cafe: 200 JSON with id; 401/419 classified auth error.
func (c *Client) CreateCafe(ctx context.Context, token, cafeName string) (string, error) {
	resp, err := c.do(ctx, http.MethodPost, "/cafe", token, createCafeRequest{CafeName: cafeName})
	if err != nil {
		return "", err
	}
	if authErr := CheckAuth(resp.StatusCode); authErr != nil {
		closeBody(resp)
		return "", authErr
	}
	if resp.StatusCode != http.StatusOK {
		closeBody(resp)
		return "", serverError(resp.StatusCode)
	}

	var created createCafeResponse
	if err := decodeBody(resp, &created); err != nil {
		return "", err
	}
	return created.ID, nil
}

// DeleteCafe deletes a cafe the token's user owns.
// DELETE /cafe/{id}: 200 ok; 400 not-owner; 500 server error;
// 401/419 classified auth error.
func (c *Client) DeleteCafe(ctx context.Context, token, id string) error {
	resp, err := c.do(ctx, http.MethodDelete, "/cafe/"+url.PathEscape(id), token, nil)
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
		return ErrNotOwner
	default:
		return serverError(resp.StatusCode)
	}
}

// JoinCafe adds the token's user to a cafe's member list.
// GET /cafe/join/{id}: 200 ok; 500 server error; 401/419 auth error.
func (c *Client) JoinCafe(ctx context.Context, token, id string) error {
	return c.membership(ctx, token, "join", id)
}

// LeaveCafe removes the token's user from a cafe's member list.
// GET /cafe/leave/{id}: 200 ok; 500 server error; 401/419 auth error.
func (c *Client) LeaveCafe(ctx context.Context, token, id string) error {
	return c.membership(ctx, token, "leave", id)
}

func (c *Client) membership(ctx context.Context, token, action, id string) error {
	resp, err := c.do(ctx, http.MethodGet, "/cafe/"+action+"/"+url.PathEscape(id), token, nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if authErr := CheckAuth(resp.StatusCode); authErr != nil {
		return authErr
	}
	if resp.StatusCode != http.StatusOK {
		return serverError(resp.StatusCode)
	}
	return nil
}
