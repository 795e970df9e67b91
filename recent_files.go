package main

import (
	"bytes"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// maxRecentFiles caps the MRU list; the oldest entry falls off the end.
const maxRecentFiles = 10

// RecentFile represents one previously opened file, metadata only.
// Contents are never stored or re-read here.
type RecentFile struct {
	Name     string `json:"name" toml:"name"`
	OpenedAt int64  `json:"openedAt" toml:"opened_at"`
}

// RecentFilesConfig represents the recent-files.toml file
type RecentFilesConfig struct {
	Files []RecentFile `toml:"files"`
}

// RecentFilesManager manages the recently opened files list
type RecentFilesManager struct {
	configPath string
}

// NewRecentFilesManager creates a new recent files manager
func NewRecentFilesManager() *RecentFilesManager {
	home, _ := os.UserHomeDir()
	return &RecentFilesManager{
		configPath: filepath.Join(home, ".draftpad", "recent-files.toml"),
	}
}

// loadConfig loads the recent files config from disk
func (rfm *RecentFilesManager) loadConfig() (*RecentFilesConfig, error) {
	config := &RecentFilesConfig{
		Files: []RecentFile{},
	}

	data, err := os.ReadFile(rfm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, config); err != nil {
		// Corrupt file — start over with an empty list
		return &RecentFilesConfig{Files: []RecentFile{}}, nil
	}

	return config, nil
}

// saveConfig saves the recent files config to disk
func (rfm *RecentFilesManager) saveConfig(config *RecentFilesConfig) error {
	// Ensure directory exists
	dir := filepath.Dir(rfm.configPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	var buf bytes.Buffer
	buf.WriteString("# Recently opened files\n\n")

	if err := toml.NewEncoder(&buf).Encode(config); err != nil {
		return err
	}

	return os.WriteFile(rfm.configPath, buf.Bytes(), 0600)
}

// GetRecentFiles returns the recent files list, most recent first
func (rfm *RecentFilesManager) GetRecentFiles() ([]RecentFile, error) {
	config, err := rfm.loadConfig()
	if err != nil {
		return nil, err
	}
	return config.Files, nil
}

// AddRecentFile records a file open, moving an existing entry to the front
func (rfm *RecentFilesManager) AddRecentFile(name string) error {
	config, err := rfm.loadConfig()
	if err != nil {
		return err
	}

	entry := RecentFile{Name: name, OpenedAt: time.Now().Unix()}

	// Drop any existing entry for the same name
	files := make([]RecentFile, 0, len(config.Files)+1)
	files = append(files, entry)
	for _, f := range config.Files {
		if f.Name != name {
			files = append(files, f)
		}
	}

	if len(files) > maxRecentFiles {
		files = files[:maxRecentFiles]
	}

	config.Files = files
	return rfm.saveConfig(config)
}

// RemoveRecentFile removes an entry by name
func (rfm *RecentFilesManager) RemoveRecentFile(name string) error {
	config, err := rfm.loadConfig()
	if err != nil {
		return err
	}

	newFiles := make([]RecentFile, 0, len(config.Files))
	for _, f := range config.Files {
		if f.Name != name {
			newFiles = append(newFiles, f)
		}
	}

	config.Files = newFiles
	return rfm.saveConfig(config)
}

// ClearRecentFiles empties the recent files list
func (rfm *RecentFilesManager) ClearRecentFiles() error {
	return rfm.saveConfig(&RecentFilesConfig{Files: []RecentFile{}})
}
