// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/models"
)

func newTestClientStorages(t *testing.T) *ClientStorages {
	t.Helper()
	dsn := filepath.Join(t.TempDir(), "client", "sheetcharts.db")

	storages, err := NewClientStorages(context.Background(), config.ClientStorage{DB: config.ClientDB{DSN: dsn}}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })
	return storages
}

func TestSessionRepository_RoundTrip(t *testing.T) {
	repo := newTestClientStorages(t).SessionRepository
	ctx := context.Background()

	_, err := repo.GetSession(ctx)
	require.ErrorIs(t, err, ErrSessionNotFound)

	saved := models.ClientSession{
		ServerURL: "http://localhost:8080",
		Token:     "token-1",
		User:      models.User{UserID: 3, Email: "ann@example.com", Name: "Ann", Role: models.RoleAdmin},
		SavedAt:   time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	require.NoError(t, repo.SaveSession(ctx, saved))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, saved.ServerURL, got.ServerURL)
	assert.Equal(t, saved.Token, got.Token)
	assert.Equal(t, saved.User.UserID, got.User.UserID)
	assert.Equal(t, models.RoleAdmin, got.User.Role)
	assert.True(t, saved.SavedAt.Equal(got.SavedAt))
}

func TestSessionRepository_SaveReplaces(t *testing.T) {
	repo := newTestClientStorages(t).SessionRepository
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, models.ClientSession{Token: "old", User: models.User{UserID: 1}}))
	require.NoError(t, repo.SaveSession(ctx, models.ClientSession{Token: "new", User: models.User{UserID: 2}}))

	got, err := repo.GetSession(ctx)
	require.NoError(t, err)
	assert.Equal(t, "new", got.Token)
	assert.Equal(t, int64(2), got.User.UserID)
	assert.False(t, got.SavedAt.IsZero())
}

func TestSessionRepository_Delete(t *testing.T) {
	repo := newTestClientStorages(t).SessionRepository
	ctx := context.Background()

	require.NoError(t, repo.SaveSession(ctx, models.ClientSession{Token: "t"}))
	require.NoError(t, repo.DeleteSession(ctx))
	require.NoError(t, repo.DeleteSession(ctx))

	_, err := repo.GetSession(ctx)
	assert.ErrorIs(t, err, ErrSessionNotFound)
}
