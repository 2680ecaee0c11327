package managerchan

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DevlopRishi/manager-chan/pkg/core"
)

func TestOpenFreshDirectory(t *testing.T) {
	app, err := Open(t.TempDir(), WithMisplaceChance(-1))
	require.NoError(t, err)

	assert.Equal(t, NotesFileName, filepath.Base(app.NotesPath))
	assert.Equal(t, core.DataVersion, app.Settings.Version())

	msg, mood := app.Store.Load(context.Background())
	assert.Equal(t, "No notes file found. Starting fresh!", msg)
	assert.Equal(t, core.MoodIdle, mood)
	assert.Zero(t, app.Store.Len())
}

func TestAddSaveReopen(t *testing.T) {
	dir := t.TempDir()

	app, err := Open(dir, WithMisplaceChance(-1), WithDontForget(true))
	require.NoError(t, err)

	note := core.NewNote("remember the milk")
	app.Store.Add(note)
	msg, mood := app.Store.Save(context.Background())
	assert.Equal(t, "Saved 1 notes! Phew!", msg)
	assert.Equal(t, core.MoodHappy, mood)

	reopened, err := Open(dir, WithMisplaceChance(-1), WithDontForget(true))
	require.NoError(t, err)
	msg, _ = reopened.Store.Load(context.Background())
	assert.Equal(t, "Loaded 1 notes!", msg)

	got, err := reopened.Store.Find(note.ID)
	require.NoError(t, err)
	assert.Equal(t, "remember the milk", got.Text)
}

func TestSettingsAutoSave(t *testing.T) {
	dir := t.TempDir()

	app, err := Open(dir, WithSettingsAutoSave(true))
	require.NoError(t, err)
	require.NoError(t, app.Settings.Set("forget_enabled", false))

	// The settings file landed on disk without an explicit Save.
	_, statErr := os.Stat(filepath.Join(dir, SettingsFileName))
	assert.NoError(t, statErr)

	reopened, err := Open(dir)
	require.NoError(t, err)
	assert.False(t, reopened.Settings.Forget().Enabled)
}

func TestSettingsManualSaveByDefault(t *testing.T) {
	dir := t.TempDir()

	app, err := Open(dir)
	require.NoError(t, err)
	require.NoError(t, app.Settings.Set("forget_enabled", false))

	_, statErr := os.Stat(filepath.Join(dir, SettingsFileName))
	assert.True(t, os.IsNotExist(statErr), "no auto-save without the option")
}

func TestWithRepositoryBypassesFilesystem(t *testing.T) {
	repo := &memoryRepo{}
	app, err := Open(t.TempDir(), WithRepository(repo), WithMisplaceChance(-1))
	require.NoError(t, err)

	app.Store.Add(core.NewNote("held in memory"))
	_, mood := app.Store.Save(context.Background())
	assert.Equal(t, core.MoodHappy, mood)
	require.Len(t, repo.written, 1)
	assert.Len(t, repo.written[0].Records, 1)

	// Nothing reached the disk.
	_, statErr := os.Stat(app.NotesPath)
	assert.True(t, os.IsNotExist(statErr))
}

type memoryRepo struct {
	written []core.Envelope
}

func (m *memoryRepo) Read(ctx context.Context) (core.FileShape, error) {
	if len(m.written) == 0 {
		return nil, os.ErrNotExist
	}
	return m.written[len(m.written)-1], nil
}

func (m *memoryRepo) Write(ctx context.Context, env core.Envelope) error {
	m.written = append(m.written, env)
	return nil
}
