package main

import (
	"context"

	wailsRuntime "github.com/wailsapp/wails/v2/pkg/runtime"
)

// Version is set at build time via ldflags.
var Version = "0.1.0-dev"

// App struct holds the application state.
type App struct {
	ctx         context.Context
	tabs        *TabStore
	settings    *EditorSettingsManager
	recentFiles *RecentFilesManager
}

// NewApp creates a new App application struct.
func NewApp() *App {
	return &App{
		tabs:        NewTabStore(NewDocumentStateManager()),
		settings:    NewEditorSettingsManager(),
		recentFiles: NewRecentFilesManager(),
	}
}

// startup is called when the app starts.
func (a *App) startup(ctx context.Context) {
	a.ctx = ctx
}

// shutdown is called when the app is closing.
func (a *App) shutdown(ctx context.Context) {
	if a.ctx == nil {
		return
	}
	w, h := wailsRuntime.WindowGetSize(a.ctx)
	x, y := wailsRuntime.WindowGetPosition(a.ctx)
	saveWindowGeometry(w, h, x, y, wailsRuntime.WindowIsMaximised(a.ctx))
}

// GetVersion returns the application version.
func (a *App) GetVersion() string {
	return Version
}

// ==================== Document Methods ====================

// RestoreDocuments loads the persisted document set from the last run.
// Called once by the frontend at startup; a missing or corrupt record
// yields a single untitled document rather than an error.
func (a *App) RestoreDocuments() []Document {
	return a.tabs.Restore()
}

// GetDocuments returns the current open documents in tab order.
func (a *App) GetDocuments() []Document {
	return a.tabs.Documents()
}

// GetActiveDocumentID returns the id of the active document.
func (a *App) GetActiveDocumentID() string {
	return a.tabs.ActiveID()
}

// GetActiveDocument returns the active document.
func (a *App) GetActiveDocument() Document {
	return a.tabs.ActiveDocument()
}

// NewDocument creates a fresh untitled document and makes it active.
func (a *App) NewDocument() (string, error) {
	return a.tabs.CreateDocument()
}

// OpenDocument adds a document from a (name, content) pair supplied by the
// frontend's file picker and makes it active. The backend never reads the
// file itself.
func (a *App) OpenDocument(name, content string) (string, error) {
	id, err := a.tabs.OpenDocument(name, content)
	if err != nil {
		return "", err
	}
	if rfErr := a.recentFiles.AddRecentFile(name); rfErr != nil {
		// Recents are best-effort; the open itself succeeded
		a.logWarning("could not record recent file: " + rfErr.Error())
	}
	return id, nil
}

// ActivateDocument switches the active tab.
func (a *App) ActivateDocument(id string) error {
	return a.tabs.ActivateDocument(id)
}

// EditDocument replaces a document's content and marks it dirty.
// Unknown ids and absent content are silent no-ops.
func (a *App) EditDocument(id string, content *string) error {
	return a.tabs.EditDocument(id, content)
}

// CloseDocument requests closing a tab. Dirty documents are not removed;
// the result carries confirmationRequired and the frontend must follow up
// with ConfirmCloseDocument or CancelCloseDocument.
func (a *App) CloseDocument(id string) (CloseResult, error) {
	return a.tabs.CloseDocument(id)
}

// ConfirmCloseDocument force-closes a tab, discarding unsaved edits.
func (a *App) ConfirmCloseDocument(id string) (CloseResult, error) {
	return a.tabs.ConfirmClose(id)
}

// CancelCloseDocument abandons a pending close request.
func (a *App) CancelCloseDocument(id string) {
	a.tabs.CancelClose(id)
}

// MarkDocumentSaved clears the dirty flag after the frontend has delivered
// the document's bytes (export/download).
func (a *App) MarkDocumentSaved(id string) error {
	return a.tabs.MarkSaved(id)
}

// ClearSavedState discards the persisted document record and resets to a
// single untitled document.
func (a *App) ClearSavedState() ([]Document, error) {
	return a.tabs.ClearAll()
}

// ==================== Editor Settings Methods ====================

// GetEditorSettings returns all editor settings for the frontend.
func (a *App) GetEditorSettings() map[string]interface{} {
	config, err := a.settings.GetEditorConfig()
	if err != nil {
		config = defaultEditorConfig()
	}
	return map[string]interface{}{
		"theme":    config.Theme,
		"fontSize": config.FontSize,
		"wordWrap": config.WordWrap,
		"tabWidth": config.TabWidth,
	}
}

// GetTheme returns the current theme preference.
// Returns "dark", "light", or "auto".
func (a *App) GetTheme() string {
	theme, err := a.settings.GetTheme()
	if err != nil {
		return "dark"
	}
	return theme
}

// SetTheme sets the theme preference.
// Valid values: "dark", "light", "auto".
func (a *App) SetTheme(theme string) error {
	if err := a.settings.SetTheme(theme); err != nil {
		return err
	}
	a.emitEditorSettings()
	return nil
}

// GetFontSize returns the editor font size (8-32, default 14).
func (a *App) GetFontSize() int {
	size, err := a.settings.GetFontSize()
	if err != nil {
		return defaultFontSize
	}
	return size
}

// SetFontSize sets the editor font size (clamped to 8-32).
func (a *App) SetFontSize(size int) error {
	if err := a.settings.SetFontSize(size); err != nil {
		return err
	}
	a.emitEditorSettings()
	return nil
}

// IncreaseFontSize bumps the font size one step and returns the new value.
func (a *App) IncreaseFontSize() (int, error) {
	return a.stepFontSize(1)
}

// DecreaseFontSize lowers the font size one step and returns the new value.
func (a *App) DecreaseFontSize() (int, error) {
	return a.stepFontSize(-1)
}

// ResetFontSize restores the default font size and returns it.
func (a *App) ResetFontSize() (int, error) {
	if err := a.SetFontSize(defaultFontSize); err != nil {
		return 0, err
	}
	return defaultFontSize, nil
}

func (a *App) stepFontSize(delta int) (int, error) {
	size, err := a.settings.GetFontSize()
	if err != nil {
		size = defaultFontSize
	}
	if err := a.SetFontSize(size + delta); err != nil {
		return 0, err
	}
	return a.GetFontSize(), nil
}

// GetWordWrap returns whether soft line wrapping is enabled.
func (a *App) GetWordWrap() bool {
	enabled, err := a.settings.GetWordWrap()
	if err != nil {
		return true
	}
	return enabled
}

// SetWordWrap enables or disables soft line wrapping.
func (a *App) SetWordWrap(enabled bool) error {
	if err := a.settings.SetWordWrap(enabled); err != nil {
		return err
	}
	a.emitEditorSettings()
	return nil
}

// ToggleWordWrap flips the word wrap setting and returns the new value.
func (a *App) ToggleWordWrap() (bool, error) {
	enabled := a.GetWordWrap()
	if err := a.SetWordWrap(!enabled); err != nil {
		return enabled, err
	}
	return !enabled, nil
}

// GetTabWidth returns the rendered tab width (2-8, default 4).
func (a *App) GetTabWidth() int {
	width, err := a.settings.GetTabWidth()
	if err != nil {
		return defaultTabWidth
	}
	return width
}

// SetTabWidth sets the rendered tab width (clamped to 2-8).
func (a *App) SetTabWidth(width int) error {
	if err := a.settings.SetTabWidth(width); err != nil {
		return err
	}
	a.emitEditorSettings()
	return nil
}

// emitEditorSettings notifies the editing widget of a settings change so it
// can update live without a reload.
func (a *App) emitEditorSettings() {
	if a.ctx == nil {
		return
	}
	wailsRuntime.EventsEmit(a.ctx, "settings:editor", a.GetEditorSettings())
}

// logWarning routes a warning through the wails logger when running under
// the runtime, so it lands in the same place as the framework's own logs.
func (a *App) logWarning(msg string) {
	if a.ctx == nil {
		return
	}
	wailsRuntime.LogWarning(a.ctx, msg)
}

// ==================== Recent Files Methods ====================

// GetRecentFiles returns the recently opened files, most recent first.
func (a *App) GetRecentFiles() ([]RecentFile, error) {
	return a.recentFiles.GetRecentFiles()
}

// RemoveRecentFile removes one entry from the recent files list.
func (a *App) RemoveRecentFile(name string) error {
	return a.recentFiles.RemoveRecentFile(name)
}

// ClearRecentFiles empties the recent files list.
func (a *App) ClearRecentFiles() error {
	return a.recentFiles.ClearRecentFiles()
}
