package app

import (
	"testing"

	"github.com/dgrijalva/jwt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackmaster/trackmaster/internal/config"
	"github.com/trackmaster/trackmaster/internal/session"
)

func TestNew(t *testing.T) {
	cfg := config.Default()
	cfg.API.GroupID = 4

	app, err := New(cfg)
	require.NoError(t, err)

	assert.NotNil(t, app.TaskService)
	assert.NotNil(t, app.Gateway)
	assert.Equal(t, 4, app.Session.GroupID)
	assert.True(t, app.Session.Anonymous())
	assert.NoError(t, app.Close())
}

func TestNew_NilConfigUsesDefaults(t *testing.T) {
	app, err := New(nil)
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", app.Session.BaseURL)
}

func TestNew_TokenClaims(t *testing.T) {
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  "9",
		"name": "Eva",
		"role": "teacher",
	}).SignedString([]byte("k"))
	require.NoError(t, err)

	cfg := config.Default()
	cfg.API.Token = token
	app, err := New(cfg)
	require.NoError(t, err)
	assert.Equal(t, "Eva (teacher)", app.Session.String())
	assert.Equal(t, 9, app.Session.UserID)
}

func TestNew_BadToken(t *testing.T) {
	cfg := config.Default()
	cfg.API.Token = "not-a-jwt"
	_, err := New(cfg)
	assert.Error(t, err)
}

func TestNew_WithSession(t *testing.T) {
	sess := &session.Session{BaseURL: "http://example.test", Name: "Ana", Role: session.RoleStudent}
	app, err := New(config.Default(), WithSession(sess))
	require.NoError(t, err)
	assert.Same(t, sess, app.Session)
}

func TestNewStore_UsesRetryBudget(t *testing.T) {
	cfg := config.Default()
	cfg.API.MaxAttempts = 5
	app, err := New(cfg)
	require.NoError(t, err)

	store := app.NewStore()
	assert.Zero(t, store.SprintID())
}
