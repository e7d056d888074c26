package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"vmd/internal/models"
	"vmd/internal/repository"
)

func TestPatientService_Get(t *testing.T) {
	store := repository.NewMemoryStore()
	ps := NewPatientService(store)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "P-1", "Patient P-1"))

	p, err := ps.Get(ctx, "P-1")
	require.NoError(t, err)
	assert.Equal(t, "P-1", p.PatientID)
}

func TestPatientService_GetUnknown(t *testing.T) {
	ps := NewPatientService(repository.NewMemoryStore())

	_, err := ps.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, models.ErrPatientNotFound)
}

func TestPatientService_ListPagination(t *testing.T) {
	store := repository.NewMemoryStore()
	ps := NewPatientService(store)
	ctx := context.Background()

	for _, id := range []string{"P-1", "P-2", "P-3"} {
		require.NoError(t, store.Upsert(ctx, id, "Patient "+id))
	}

	list, err := ps.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, list.Items, 1)
	assert.Equal(t, "P-3", list.Items[0].PatientID)
	assert.Equal(t, 3, list.Total)
	assert.Equal(t, 2, list.Page)
	assert.Equal(t, 2, list.PageSize)
}

func TestPatientService_ListDefaults(t *testing.T) {
	store := repository.NewMemoryStore()
	ps := NewPatientService(store)
	ctx := context.Background()

	require.NoError(t, store.Upsert(ctx, "P-1", "Patient P-1"))

	list, err := ps.List(ctx, 0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, list.Page)
	assert.Equal(t, 20, list.PageSize)
	assert.Len(t, list.Items, 1)
}

func TestPatientService_MonitoredCount(t *testing.T) {
	store := repository.NewMemoryStore()
	ps := NewPatientService(store)
	ctx := context.Background()

	n, err := ps.MonitoredCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 0, n)

	require.NoError(t, store.Upsert(ctx, "P-1", "Patient P-1"))

	n, err = ps.MonitoredCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
