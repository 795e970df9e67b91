package main

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestApp builds an App whose managers all live under a temp dir so
// tests never touch the real home directory.
func newTestApp(t *testing.T) *App {
	t.Helper()
	dir := t.TempDir()
	app := &App{
		tabs: NewTabStore(&DocumentStateManager{
			filePath: filepath.Join(dir, "open_documents.json"),
		}),
		settings: &EditorSettingsManager{
			configPath: filepath.Join(dir, "config.toml"),
		},
		recentFiles: &RecentFilesManager{
			configPath: filepath.Join(dir, "recent-files.toml"),
		},
	}
	app.RestoreDocuments()
	return app
}

func TestGetVersion(t *testing.T) {
	app := newTestApp(t)
	version := app.GetVersion()
	assert.NotEmpty(t, version)
	assert.True(t, strings.Contains(version, "."), "Version should contain a dot")
}

func TestNewApp(t *testing.T) {
	app := NewApp()
	assert.NotNil(t, app)
	assert.NotNil(t, app.tabs)
	assert.NotNil(t, app.settings)
	assert.NotNil(t, app.recentFiles)
}

func TestAppStartup(t *testing.T) {
	app := newTestApp(t)
	app.startup(context.Background())
	assert.NotNil(t, app.ctx)
}

func TestAppRestoreYieldsUntitled(t *testing.T) {
	app := newTestApp(t)

	docs := app.GetDocuments()
	require.Len(t, docs, 1)
	assert.Equal(t, "Untitled.txt", docs[0].Name)
	assert.Equal(t, docs[0].ID, app.GetActiveDocumentID())
}

func TestAppOpenRecordsRecentFile(t *testing.T) {
	app := newTestApp(t)

	id, err := app.OpenDocument("meeting-notes.txt", "agenda")
	require.NoError(t, err)
	assert.Equal(t, id, app.GetActiveDocumentID())

	recents, err := app.GetRecentFiles()
	require.NoError(t, err)
	require.Len(t, recents, 1)
	assert.Equal(t, "meeting-notes.txt", recents[0].Name)
}

func TestAppCloseFlow(t *testing.T) {
	app := newTestApp(t)

	id, err := app.NewDocument()
	require.NoError(t, err)

	content := "unsaved"
	require.NoError(t, app.EditDocument(id, &content))

	result, err := app.CloseDocument(id)
	require.NoError(t, err)
	assert.True(t, result.ConfirmationRequired)
	assert.False(t, result.Closed)

	// Cancelling keeps the tab
	app.CancelCloseDocument(id)
	assert.Len(t, app.GetDocuments(), 2)

	// A second request plus confirm removes it
	_, err = app.CloseDocument(id)
	require.NoError(t, err)
	confirmed, err := app.ConfirmCloseDocument(id)
	require.NoError(t, err)
	assert.True(t, confirmed.Closed)
	assert.Len(t, app.GetDocuments(), 1)
}

func TestAppMarkSavedThenCleanClose(t *testing.T) {
	app := newTestApp(t)

	id, _ := app.NewDocument()
	content := "final text"
	require.NoError(t, app.EditDocument(id, &content))
	require.NoError(t, app.MarkDocumentSaved(id))

	result, err := app.CloseDocument(id)
	require.NoError(t, err)
	assert.True(t, result.Closed, "clean document should close without confirmation")
}

func TestAppFontSizeSteps(t *testing.T) {
	app := newTestApp(t)

	assert.Equal(t, defaultFontSize, app.GetFontSize())

	size, err := app.IncreaseFontSize()
	require.NoError(t, err)
	assert.Equal(t, defaultFontSize+1, size)

	size, err = app.DecreaseFontSize()
	require.NoError(t, err)
	assert.Equal(t, defaultFontSize, size)

	// Steps clamp at the bounds
	require.NoError(t, app.SetFontSize(maxFontSize))
	size, err = app.IncreaseFontSize()
	require.NoError(t, err)
	assert.Equal(t, maxFontSize, size)

	size, err = app.ResetFontSize()
	require.NoError(t, err)
	assert.Equal(t, defaultFontSize, size)
	assert.Equal(t, defaultFontSize, app.GetFontSize())
}

func TestAppToggleWordWrap(t *testing.T) {
	app := newTestApp(t)

	assert.True(t, app.GetWordWrap())

	enabled, err := app.ToggleWordWrap()
	require.NoError(t, err)
	assert.False(t, enabled)
	assert.False(t, app.GetWordWrap())

	enabled, err = app.ToggleWordWrap()
	require.NoError(t, err)
	assert.True(t, enabled)
}

func TestAppClearSavedState(t *testing.T) {
	app := newTestApp(t)

	id, _ := app.NewDocument()
	content := "scratch"
	app.EditDocument(id, &content)

	docs, err := app.ClearSavedState()
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Untitled.txt", docs[0].Name)
	assert.False(t, docs[0].Dirty)
	assert.Equal(t, docs[0].ID, app.GetActiveDocumentID())
}

func TestAppEditorSettingsMap(t *testing.T) {
	app := newTestApp(t)

	settings := app.GetEditorSettings()
	assert.Equal(t, "dark", settings["theme"])
	assert.Equal(t, defaultFontSize, settings["fontSize"])
	assert.Equal(t, true, settings["wordWrap"])
	assert.Equal(t, defaultTabWidth, settings["tabWidth"])
}
