// Package model contains the domain shapes exchanged with the cafe API.
// Field tags follow the JSON names the API uses on the wire.
package model

import "time"

// UserRef identifies a user referenced from cafes, posts, and comments.
// The API omits the owner/writer object entirely when the account has
// been deleted, so references are pointers wherever deletion is possible.
type UserRef struct {
	Username string `json:"username"`
}

// Profile is the public profile returned by GET /user/{username}.
type Profile struct {
	Username     string    `json:"username"`
	JoinDate     time.Time `json:"joinDate"`
	CafeCount    int       `json:"cafeCount"`
	PostCount    int       `json:"postCount"`
	CommentCount int       `json:"commentCount"`
}
