package model

import "time"

// CafeSummary is the list-item shape returned by GET /cafe/popular and
// GET /cafe/search/{term}.
type CafeSummary struct {
	ID       string    `json:"_id"`
	CafeName string    `json:"cafeName"`
	Members  []UserRef `json:"members"`
	Owner    *UserRef  `json:"owner"`
}

// MemberTotal counts the owner plus joined members.
func (c CafeSummary) MemberTotal() int { return len(c.Members) + 1 }

// OwnerName returns the owner's username, or empty for a deleted account.
func (c CafeSummary) OwnerName() string {
	if c.Owner == nil {
		return ""
	}
	return c.Owner.Username
}

// Cafe is the detail shape returned by GET /cafe/{id}.
type Cafe struct {
	CafeName   string        `json:"cafeName"`
	Posts      []PostSummary `json:"posts"`
	Members    []UserRef     `json:"members"`
	Owner      *UserRef      `json:"owner"`
	CreateDate time.Time     `json:"createDate"`
}

// MemberTotal counts the owner plus joined members.
func (c Cafe) MemberTotal() int { return len(c.Members) + 1 }

// OwnerName returns the owner's username, or empty for a deleted account.
func (c Cafe) OwnerName() string {
	if c.Owner == nil {
		return ""
	}
	return c.Owner.Username
}

// OwnedBy reports whether username is the cafe owner.
func (c Cafe) OwnedBy(username string) bool {
	return username != "" && c.Owner != nil && c.Owner.Username == username
}

// HasMember reports whether username has joined the cafe. The owner is
// not part of the members list.
func (c Cafe) HasMember(username string) bool {
	if username == "" {
		return false
	}
	for _, m := range c.Members {
		if m.Username == username {
			return true
		}
	}
	return false
}
