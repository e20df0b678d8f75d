package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPost_WrittenBy(t *testing.T) {
	post := Post{Writer: &UserRef{Username: "alice"}}

	assert.True(t, post.WrittenBy("alice"))
	assert.False(t, post.WrittenBy("bob"))
	assert.False(t, post.WrittenBy(""))
	assert.False(t, Post{}.WrittenBy("alice"), "deleted writer matches nobody")
}

func TestComment_WriterName(t *testing.T) {
	assert.Equal(t, "carol", Comment{Writer: &UserRef{Username: "carol"}}.WriterName())
	assert.Equal(t, "", Comment{}.WriterName())
}

func TestPost_DecodesWireShape(t *testing.T) {
	raw := `{
		"_id": "p1",
		"title": "hello",
		"content": "first post",
		"createDate": "2023-05-01T12:00:00Z",
		"writer": {"username": "alice"},
		"comments": [
			{"_id": "m1", "content": "welcome", "createDate": "2023-05-01T13:00:00Z", "writer": {"username": "bob"}},
			{"_id": "m2", "content": "orphaned", "createDate": "2023-05-01T14:00:00Z"}
		]
	}`

	var post Post
	require.NoError(t, json.Unmarshal([]byte(raw), &post))

	assert.Equal(t, "hello", post.Title)
	assert.Equal(t, "alice", post.WriterName())
	require.Len(t, post.Comments, 2)
	assert.Equal(t, "bob", post.Comments[0].WriterName())
	assert.Equal(t, "", post.Comments[1].WriterName(), "deleted commenter decodes as absent writer")
}
