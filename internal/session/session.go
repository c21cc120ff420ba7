// Package session carries the caller's identity explicitly through the app.
//
// The bearer token is issued and verified by the external auth service;
// this package only reads its claims for display and defaults.
package session

import (
	"fmt"
	"os"
	"os/user"
	"strconv"
	"strings"

	"github.com/dgrijalva/jwt-go"
)

// Role is the user's role within a course
type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
	RoleUnknown Role = "unknown"
)

// ParseRole maps a token role claim onto a Role
func ParseRole(raw string) Role {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "student", "estudiante":
		return RoleStudent
	case "teacher", "docente":
		return RoleTeacher
	}
	return RoleUnknown
}

// Session is everything a component needs to know about who is calling and where
type Session struct {
	BaseURL string
	Token   string
	UserID  int
	Name    string
	Role    Role
	GroupID int
}

// New builds a session from a bearer token. An empty token yields an
// anonymous session named after the local OS user.
// groupID overrides the token's group_id claim when non-zero.
func New(baseURL, token string, groupID int) (*Session, error) {
	s := &Session{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   strings.TrimSpace(token),
		Role:    RoleUnknown,
		GroupID: groupID,
	}
	if s.Token == "" {
		s.Name = localUsername()
		return s, nil
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(s.Token, claims); err != nil {
		return nil, fmt.Errorf("failed to read session token: %w", err)
	}

	s.UserID = intClaim(claims["sub"])
	if name, ok := claims["name"].(string); ok {
		s.Name = name
	}
	if role, ok := claims["role"].(string); ok {
		s.Role = ParseRole(role)
	}
	if s.GroupID == 0 {
		s.GroupID = intClaim(claims["group_id"])
	}
	if s.Name == "" {
		s.Name = localUsername()
	}
	return s, nil
}

// Anonymous reports whether the session has no token
func (s *Session) Anonymous() bool {
	return s.Token == ""
}

// AuthorizationHeader returns the bearer header value, or "" when anonymous
func (s *Session) AuthorizationHeader() string {
	if s.Token == "" {
		return ""
	}
	return "Bearer " + s.Token
}

// String is the header label, e.g. "Ana (student)"
func (s *Session) String() string {
	if s.Role == RoleUnknown {
		return s.Name
	}
	return fmt.Sprintf("%s (%s)", s.Name, s.Role)
}

// claims decode numbers as float64, but some issuers send ids as strings
func intClaim(v interface{}) int {
	switch id := v.(type) {
	case float64:
		return int(id)
	case string:
		n, err := strconv.Atoi(id)
		if err != nil {
			return 0
		}
		return n
	}
	return 0
}

// localUsername falls back from the OS user to $USER to "unknown"
func localUsername() string {
	currentUser, err := user.Current()
	if err != nil {
		if username := os.Getenv("USER"); username != "" {
			return username
		}
		return "unknown"
	}
	return currentUser.Username
}
