package cafeapi

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPost_OK(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.payload["/post/p1"] = `{
		"_id": "p1",
		"title": "hello",
		"content": "first post",
		"createDate": "2023-05-01T12:00:00Z",
		"writer": {"username": "alice"},
		"comments": [{"_id": "m1", "content": "welcome", "createDate": "2023-05-01T13:00:00Z", "writer": {"username": "bob"}}]
	}`
	c := upstream.client(t)

	post, err := c.GetPost(context.Background(), "p1")
	require.NoError(t, err)
	assert.Equal(t, "hello", post.Title)
	assert.Equal(t, "alice", post.WriterName())
	require.Len(t, post.Comments, 1)
	assert.Equal(t, "welcome", post.Comments[0].Content)
}

func TestGetPost_NotFound(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.status["/post/p9"] = http.StatusNotFound
	c := upstream.client(t)

	_, err := c.GetPost(context.Background(), "p9")

	var nf *NotFoundError
	require.ErrorAs(t, err, &nf)
	assert.Equal(t, "post", nf.Kind)
	assert.Equal(t, "p9", nf.ID)
}

func TestCreatePost_SendsBody(t *testing.T) {
	upstream := newFakeUpstream(t)
	c := upstream.client(t)

	require.NoError(t, c.CreatePost(context.Background(), "tok1", "c1", "hello", "first post"))

	req := upstream.lastRequest(t)
	assert.Equal(t, http.MethodPost, req.Method)
	assert.Equal(t, "/post", req.Path)
	assert.Equal(t, "tok1", req.Auth)
	assert.Equal(t, "c1", req.Body["cafeID"])
	assert.Equal(t, "hello", req.Body["title"])
	assert.Equal(t, "first post", req.Body["content"])
}

func TestCreatePost_NotMember(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.status["/post"] = http.StatusBadRequest
	c := upstream.client(t)

	err := c.CreatePost(context.Background(), "tok1", "c1", "t", "c")
	assert.ErrorIs(t, err, ErrNotMember)
}

func TestDeletePostAndComment_NotAuthor(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.status["/post/p1"] = http.StatusBadRequest
	upstream.status["/post/comment/m1"] = http.StatusBadRequest
	c := upstream.client(t)
	ctx := context.Background()

	assert.ErrorIs(t, c.DeletePost(ctx, "tok1", "p1"), ErrNotAuthor)
	assert.ErrorIs(t, c.DeleteComment(ctx, "tok1", "m1"), ErrNotAuthor)
}

func TestCreateComment(t *testing.T) {
	upstream := newFakeUpstream(t)
	c := upstream.client(t)

	require.NoError(t, c.CreateComment(context.Background(), "tok1", "p1", "nice post"))

	req := upstream.lastRequest(t)
	assert.Equal(t, "/post/comment", req.Path)
	assert.Equal(t, "p1", req.Body["postID"])
	assert.Equal(t, "nice post", req.Body["content"])
}

func TestCreateComment_ServerError(t *testing.T) {
	upstream := newFakeUpstream(t)
	upstream.status["/post/comment"] = http.StatusInternalServerError
	c := upstream.client(t)

	err := c.CreateComment(context.Background(), "tok1", "p1", "x")
	assert.ErrorIs(t, err, ErrServer)
}
