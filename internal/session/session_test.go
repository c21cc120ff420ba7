package session

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return token
}

func TestNew_ReadsClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"sub":      float64(42),
		"name":     "Ana Rojas",
		"role":     "estudiante",
		"group_id": "7",
	})

	s, err := New("http://localhost:8080/", token, 0)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080", s.BaseURL)
	assert.Equal(t, 42, s.UserID)
	assert.Equal(t, "Ana Rojas", s.Name)
	assert.Equal(t, RoleStudent, s.Role)
	assert.Equal(t, 7, s.GroupID)
	assert.False(t, s.Anonymous())
	assert.Equal(t, "Bearer "+token, s.AuthorizationHeader())
	assert.Equal(t, "Ana Rojas (student)", s.String())
}

func TestNew_GroupOverride(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"sub": "3", "role": "teacher", "group_id": float64(7)})
	s, err := New("http://x", token, 9)
	require.NoError(t, err)
	assert.Equal(t, 9, s.GroupID)
	assert.Equal(t, 3, s.UserID)
	assert.Equal(t, RoleTeacher, s.Role)
	assert.NotEmpty(t, s.Name, "falls back to the local user")
}

func TestNew_Anonymous(t *testing.T) {
	s, err := New("http://x", "  ", 1)
	require.NoError(t, err)
	assert.True(t, s.Anonymous())
	assert.Equal(t, "", s.AuthorizationHeader())
	assert.Equal(t, RoleUnknown, s.Role)
	assert.NotEmpty(t, s.Name)
	assert.Equal(t, s.Name, s.String())
}

func TestNew_MalformedToken(t *testing.T) {
	_, err := New("http://x", "not-a-jwt", 1)
	assert.Error(t, err)
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleStudent, ParseRole("Student"))
	assert.Equal(t, RoleTeacher, ParseRole("docente"))
	assert.Equal(t, RoleUnknown, ParseRole("admin"))
}
