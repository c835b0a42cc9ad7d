package workers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/sheetcharts/internal/config"
	"github.com/MKhiriev/sheetcharts/internal/logger"
	"github.com/MKhiriev/sheetcharts/internal/mock"
	"github.com/MKhiriev/sheetcharts/internal/store"
	"github.com/MKhiriev/sheetcharts/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var now = time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

func newSweeper(t *testing.T) (*UploadSweeper, *mock.MockFileStorage, *mock.MockHistoryRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	files := mock.NewMockFileStorage(ctrl)
	histories := mock.NewMockHistoryRepository(ctrl)

	s := NewUploadSweeper(files, histories, config.Workers{SweepInterval: time.Minute, OrphanTTL: time.Hour}, logger.Nop())
	s.now = func() time.Time { return now }
	return s, files, histories
}

func TestSweep_RemovesOnlyOldUnreferencedFiles(t *testing.T) {
	s, files, histories := newSweeper(t)
	ctx := context.Background()

	files.EXPECT().List(ctx).Return([]models.StoredFile{
		{Name: "old-orphan.xlsx", ModTime: now.Add(-2 * time.Hour)},
		{Name: "old-kept.xlsx", ModTime: now.Add(-3 * time.Hour)},
		{Name: "fresh.xlsx", ModTime: now.Add(-time.Minute)},
	}, nil)
	histories.EXPECT().ReferencedStoredNames(ctx, []string{"old-orphan.xlsx", "old-kept.xlsx"}).
		Return(map[string]struct{}{"old-kept.xlsx": {}}, nil)
	files.EXPECT().Remove(ctx, "old-orphan.xlsx").Return(nil)

	removed, err := s.Sweep(ctx)

	require.NoError(t, err)
	assert.Equal(t, 1, removed)
}

func TestSweep_NothingOldEnough(t *testing.T) {
	s, files, _ := newSweeper(t)
	// репозиторий не должен вызываться
	files.EXPECT().List(gomock.Any()).Return([]models.StoredFile{{Name: "a.xlsx", ModTime: now}}, nil)

	removed, err := s.Sweep(context.Background())

	require.NoError(t, err)
	assert.Zero(t, removed)
}

func TestSweep_Errors(t *testing.T) {
	t.Run("listing fails", func(t *testing.T) {
		s, files, _ := newSweeper(t)
		files.EXPECT().List(gomock.Any()).Return(nil, errors.New("permission denied"))

		_, err := s.Sweep(context.Background())
		assert.Error(t, err)
	})

	t.Run("lookup fails, nothing removed", func(t *testing.T) {
		s, files, histories := newSweeper(t)
		files.EXPECT().List(gomock.Any()).Return([]models.StoredFile{{Name: "a.xlsx", ModTime: now.Add(-48 * time.Hour)}}, nil)
		histories.EXPECT().ReferencedStoredNames(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))

		_, err := s.Sweep(context.Background())
		assert.Error(t, err)
	})

	t.Run("already gone counts as removed", func(t *testing.T) {
		s, files, histories := newSweeper(t)
		files.EXPECT().List(gomock.Any()).Return([]models.StoredFile{
			{Name: "a.xlsx", ModTime: now.Add(-48 * time.Hour)},
			{Name: "b.xlsx", ModTime: now.Add(-48 * time.Hour)},
		}, nil)
		histories.EXPECT().ReferencedStoredNames(gomock.Any(), gomock.Any()).Return(map[string]struct{}{}, nil)
		files.EXPECT().Remove(gomock.Any(), "a.xlsx").Return(store.ErrFileNotFound)
		files.EXPECT().Remove(gomock.Any(), "b.xlsx").Return(errors.New("busy"))

		removed, err := s.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, removed)
	})
}

func TestRun_StopsOnCancel(t *testing.T) {
	s, files, _ := newSweeper(t)
	files.EXPECT().List(gomock.Any()).Return(nil, nil).MinTimes(1)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	time.Sleep(20 * time.Millisecond)
	cancel()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("sweeper did not stop")
	}
}
