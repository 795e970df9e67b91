package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// DocumentStateManager manages persistence of the open document set.
// The state is a single JSON slot written whole on every mutation and
// read once at startup.
type DocumentStateManager struct {
	filePath string
}

// NewDocumentStateManager creates a new DocumentStateManager using the default path.
func NewDocumentStateManager() *DocumentStateManager {
	home, _ := os.UserHomeDir()
	return &DocumentStateManager{
		filePath: filepath.Join(home, ".draftpad", "desktop", "open_documents.json"),
	}
}

// Load reads the document state from disk.
// Returns nil (not an error) when no state has been saved. A corrupt file
// is treated the same as a missing one so startup never fails.
func (m *DocumentStateManager) Load() (*DocumentState, error) {
	data, err := os.ReadFile(m.filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var state DocumentState
	if err := json.Unmarshal(data, &state); err != nil {
		// Corrupt file — recover to the default state upstream
		return nil, nil
	}

	return &state, nil
}

// Save writes the document state to disk, replacing any previous record.
func (m *DocumentStateManager) Save(state DocumentState) error {
	dir := filepath.Dir(m.filePath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	state.SavedAt = time.Now().Unix()
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(m.filePath, data, 0600)
}

// Clear removes the persisted record entirely.
func (m *DocumentStateManager) Clear() error {
	err := os.Remove(m.filePath)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}
