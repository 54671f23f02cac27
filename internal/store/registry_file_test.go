package store

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opsforge/secretsync/internal/logger"
	"github.com/opsforge/secretsync/models"
)

func newTestRegistry(t *testing.T) (*fileDeviceRegistry, *time.Time) {
	t.Helper()

	current := time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)
	registry := &fileDeviceRegistry{
		path:   filepath.Join(t.TempDir(), "devices.json"),
		now:    func() time.Time { return current },
		logger: logger.Nop(),
	}
	return registry, &current
}

func TestListDevices_MissingFileIsEmptyRegistry(t *testing.T) {
	registry, _ := newTestRegistry(t)

	devices, err := registry.ListDevices(context.Background())

	require.NoError(t, err)
	assert.Empty(t, devices)
}

func TestUpsertDevice_RegistersNewDevice(t *testing.T) {
	registry, _ := newTestRegistry(t)

	saved, err := registry.UpsertDevice(context.Background(), models.Device{
		ID:           "laptop-01",
		Hostname:     "laptop",
		Platform:     "linux",
		Architecture: "amd64",
		SyncEndpoint: "http://laptop:9321",
	})

	require.NoError(t, err)
	assert.Equal(t, "laptop-01", saved.ID)
	assert.False(t, saved.RegisteredAt.IsZero())
	assert.Equal(t, saved.RegisteredAt, saved.LastSeen)

	devices, err := registry.ListDevices(context.Background())
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, saved, devices[0])
}

func TestUpsertDevice_SameIDUpdatesInPlace(t *testing.T) {
	registry, current := newTestRegistry(t)
	ctx := context.Background()

	first, err := registry.UpsertDevice(ctx, models.Device{
		ID:       "laptop-01",
		Hostname: "laptop-old",
		Platform: "linux",
	})
	require.NoError(t, err)

	*current = current.Add(time.Hour)

	second, err := registry.UpsertDevice(ctx, models.Device{
		ID:       "laptop-01",
		Hostname: "laptop-new",
	})
	require.NoError(t, err)

	devices, err := registry.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)

	assert.Equal(t, "laptop-new", second.Hostname)
	assert.Equal(t, first.RegisteredAt, second.RegisteredAt)
	assert.Equal(t, first.LastSeen.Add(time.Hour), second.LastSeen)
	// zero fields in the update do not wipe stored values
	assert.Equal(t, "linux", second.Platform)
}

func TestTouchHeartbeat_RefreshesLastSeen(t *testing.T) {
	registry, current := newTestRegistry(t)
	ctx := context.Background()

	saved, err := registry.UpsertDevice(ctx, models.Device{ID: "laptop-01", Hostname: "laptop"})
	require.NoError(t, err)

	*current = current.Add(time.Minute)
	require.NoError(t, registry.TouchHeartbeat(ctx, "laptop-01"))

	devices, err := registry.ListDevices(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 1)
	assert.Equal(t, saved.LastSeen.Add(time.Minute), devices[0].LastSeen)
	assert.Equal(t, saved.RegisteredAt, devices[0].RegisteredAt)
}

func TestTouchHeartbeat_UnknownDeviceIsIgnored(t *testing.T) {
	registry, _ := newTestRegistry(t)

	assert.NoError(t, registry.TouchHeartbeat(context.Background(), "never-registered"))
}

func TestLoad_CorruptFileIsReadError(t *testing.T) {
	registry, _ := newTestRegistry(t)
	require.NoError(t, writeFileAtomic(registry.path, []byte("{not json"), 0o600))

	_, err := registry.ListDevices(context.Background())

	assert.ErrorIs(t, err, ErrReadingStateFile)
}
