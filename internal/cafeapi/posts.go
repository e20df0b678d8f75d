package cafeapi

import (
	"context"
	"net/http"
	"net/url"

	"github.com/renoh/cafe-web/internal/domain/model"
)

// GetPost fetches a post detail with its comments.
// GET /post/{id}: 200 JSON object; 404 not-found; 500 server error.
func (c *Client) GetPost(ctx context.Context, id string) (model.Post, error) {
	resp, err := c.do(ctx, http.MethodGet, "/post/"+url.PathEscape(id), "", nil)
	if err != nil {
		return model.Post{}, err
	}
	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		closeBody(resp)
		return model.Post{}, &NotFoundError{Kind: "post", ID: id}
	default:
		closeBody(resp)
		return model.Post{}, serverError(resp.StatusCode)
	}

	var post model.Post
	if err := decodeBody(resp, &post); err != nil {
		return model.Post{}, err
	}
	return post, nil
}

type createPostRequest struct {
	CafeID  string `json:"cafeID"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// CreatePost writes a post to a cafe the token's user is a member of.
// POST /post: 200 ok; 400 not-a-member; 500 server error; 401/419 auth error.
func (c *Client) CreatePost(ctx context.Context, token, cafeID, title, content string) error {
	resp, err := c.do(ctx, http.MethodPost, "/post", token, createPostRequest{
		CafeID:  cafeID,
		Title:   title,
		Content: content,
	})
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
		return ErrNotMember
	default:
		return serverError(resp.StatusCode)
	}
}

// DeletePost deletes a post the token's user wrote.
// DELETE /post/{id}: 200 ok; 400 not-author; 500 server error;
// 401/419 auth error.
func (c *Client) DeletePost(ctx context.Context, token, id string) error {
	return c.deleteAuthored(ctx, token, "/post/"+url.PathEscape(id))
}

// DeleteComment deletes a comment the token's user wrote.
// DELETE /post/comment/{id}: 200 ok; 400 not-author; 500 server error;
// 401/419 auth error.
func (c *Client) DeleteComment(ctx context.Context, token, id string) error {
	return c.deleteAuthored(ctx, token, "/post/comment/"+url.PathEscape(id))
}

func (c *Client) deleteAuthored(ctx context.Context, token, path string) error {
	resp, err := c.do(ctx, http.MethodDelete, path, token, nil)
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
		return ErrNotAuthor
	default:
		return serverError(resp.StatusCode)
	}
}

type createCommentRequest struct {
	PostID  string `json:"postID"`
	Content string `json:"content"`
}

// CreateComment adds a comment to a post.
// POST /post/comment: 200 ok; 500 server error; 401/419 auth error.
func (c *Client) CreateComment(ctx context.Context, token, postID, content string) error {
	resp, err := c.do(ctx, http.MethodPost, "/post/comment", token, createCommentRequest{
		PostID:  postID,
		Content: content,
	})
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
