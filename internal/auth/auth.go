// Package auth is the login boundary: a pluggable credential check
// with a static username/password map as the default implementation.
package auth

import (
	"crypto/subtle"
	"strings"
)

// CredentialChecker validates a login attempt.
type CredentialChecker interface {
	Check(username, password string) bool
}

// StaticChecker checks against a fixed allow-list.
type StaticChecker struct {
	users map[string]string
}

var _ CredentialChecker = (*StaticChecker)(nil)

// NewStaticChecker builds a checker over a username→password map.
func NewStaticChecker(users map[string]string) *StaticChecker {
	copied := make(map[string]string, len(users))
	for u, p := range users {
		copied[u] = p
	}
	return &StaticChecker{users: copied}
}

// ParseUserList parses "user:pass,user2:pass2" as used in config.
// Malformed entries are skipped.
func ParseUserList(s string) map[string]string {
	users := map[string]string{}
	for _, pair := range strings.Split(s, ",") {
		user, pass, ok := strings.Cut(strings.TrimSpace(pair), ":")
		if !ok || user == "" || pass == "" {
			continue
		}
		users[user] = pass
	}
	return users
}

// Check compares in constant time.
func (c *StaticChecker) Check(username, password string) bool {
	expected, ok := c.users[username]
	if !ok {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(expected), []byte(password)) == 1
}
