package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vmd/internal/models"
	"vmd/internal/repository"
	"vmd/internal/testutil"
)

func newFileManagerFixture(t *testing.T) (*FileManager, *repository.MemoryStore, string) {
	t.Helper()

	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)

	store := repository.NewMemoryStore()
	fm := NewFileManager(c, store, &testutil.MockLogger{})
	return fm, store, filepath.Join(t.TempDir(), "vmd.dat")
}

func seedStore(t *testing.T, store *repository.MemoryStore) {
	t.Helper()
	ctx := context.Background()
	now := time.Now().UTC()

	require.NoError(t, store.Upsert(ctx, "P-1", "Patient P-1"))
	require.NoError(t, store.CreateReading(ctx, models.VitalReading{
		PatientID: "P-1",
		HeartRate: 80,
		Timestamp: now,
		CreatedAt: now,
	}))
	require.NoError(t, store.CreateAlert(ctx, models.Alert{
		AlertID:   "ALT-1",
		PatientID: "P-1",
		Status:    models.AlertStatusActive,
		CreatedAt: now,
	}))
	require.NoError(t, store.PutThresholds(ctx, models.DefaultThresholds()))
}

func TestFileManager_SaveAndLoad(t *testing.T) {
	fm, store, path := newFileManagerFixture(t)
	seedStore(t, store)

	require.NoError(t, fm.SaveToFile(path))

	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)
	restoredStore := repository.NewMemoryStore()
	restoredFM := NewFileManager(c, restoredStore, &testutil.MockLogger{})

	require.NoError(t, restoredFM.LoadFromFile(path))

	ctx := context.Background()
	p, err := restoredStore.FindByPatientID(ctx, "P-1")
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, "Patient P-1", p.PatientName)

	n, err := restoredStore.CountByPatient(ctx, "P-1")
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	a, err := restoredStore.FindByAlertID(ctx, "ALT-1")
	require.NoError(t, err)
	require.NotNil(t, a)

	cfg, err := restoredStore.GetThresholds(ctx)
	require.NoError(t, err)
	require.NotNil(t, cfg)
}

func TestFileManager_LoadMissingFileIsNoop(t *testing.T) {
	fm, store, path := newFileManagerFixture(t)

	require.NoError(t, fm.LoadFromFile(path))

	n, err := store.CountAll(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, n)
}

func TestFileManager_LoadCorruptFileFails(t *testing.T) {
	fm, _, path := newFileManagerFixture(t)

	require.NoError(t, os.WriteFile(path, []byte("garbage"), 0644))
	assert.Error(t, fm.LoadFromFile(path))
}

func TestFileManager_SaveLeavesNoTmpFile(t *testing.T) {
	fm, store, path := newFileManagerFixture(t)
	seedStore(t, store)

	require.NoError(t, fm.SaveToFile(path))

	_, err := os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err))
}

func TestFileManager_CloseReleasesCompressor(t *testing.T) {
	mc := &testutil.MockCompressor{}
	fm := NewFileManager(mc, repository.NewMemoryStore(), &testutil.MockLogger{})

	fm.Close()
	assert.True(t, mc.Closed)
}

func TestFileManager_SaveOverwritesPreviousSnapshot(t *testing.T) {
	fm, store, path := newFileManagerFixture(t)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "P-1", "Patient P-1"))
	require.NoError(t, fm.SaveToFile(path))

	require.NoError(t, store.Upsert(ctx, "P-2", "Patient P-2"))
	require.NoError(t, fm.SaveToFile(path))

	c, err := NewZstdCompressor()
	require.NoError(t, err)
	t.Cleanup(c.Close)
	restored := repository.NewMemoryStore()
	require.NoError(t, NewFileManager(c, restored, &testutil.MockLogger{}).LoadFromFile(path))

	n, err := restored.CountAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, n)
}
