package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"syscall"
	"time"
)

const windowStateFile = "window-state.json"

const (
	defaultWindowWidth  = 1100
	defaultWindowHeight = 760
)

// Package-level hook for testing. In production, this uses the real implementation.
var getStatePath = defaultGetStatePath

// WindowGeometry tracks the window size and position across runs.
type WindowGeometry struct {
	Width     int       `json:"width"`
	Height    int       `json:"height"`
	X         int       `json:"x"`
	Y         int       `json:"y"`
	Maximised bool      `json:"maximised"`
	SavedAt   time.Time `json:"savedAt"`
}

// defaultWindowGeometry is used on first run or when the saved record is unusable.
func defaultWindowGeometry() WindowGeometry {
	return WindowGeometry{Width: defaultWindowWidth, Height: defaultWindowHeight}
}

// defaultGetStatePath returns the path to the window state file.
func defaultGetStatePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		// Fall back to /tmp if home dir unavailable (rare edge case)
		log.Printf("warning: could not determine home directory, using /tmp: %v", err)
		return filepath.Join("/tmp", ".draftpad", windowStateFile)
	}
	return filepath.Join(home, ".draftpad", windowStateFile)
}

// withGeometryLock executes fn while holding an exclusive lock on the state
// file, so concurrent launches cannot interleave partial writes.
func withGeometryLock(fn func(geo *WindowGeometry) error) error {
	path := getStatePath()

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Open or create file
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return fmt.Errorf("failed to open window state: %w", err)
	}
	defer f.Close()

	// Acquire exclusive lock (blocks until available)
	if err := syscall.Flock(int(f.Fd()), syscall.LOCK_EX); err != nil {
		return fmt.Errorf("failed to lock window state: %w", err)
	}
	defer syscall.Flock(int(f.Fd()), syscall.LOCK_UN)

	geo := defaultWindowGeometry()

	// Try to decode existing state
	decoder := json.NewDecoder(f)
	if err := decoder.Decode(&geo); err != nil {
		if err != io.EOF {
			// Log non-EOF errors (actual JSON parse failures) but continue with defaults
			log.Printf("warning: failed to parse window state, using defaults: %v", err)
			geo = defaultWindowGeometry()
		}
		// Empty file (io.EOF) is normal for first run - silently use defaults
	}

	// Reject nonsense sizes from hand-edited or stale records
	if geo.Width <= 0 || geo.Height <= 0 {
		geo = defaultWindowGeometry()
	}

	// Execute the function
	if err := fn(&geo); err != nil {
		return err
	}

	// Write back state
	if err := f.Truncate(0); err != nil {
		return fmt.Errorf("failed to truncate window state: %w", err)
	}
	if _, err := f.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to seek window state: %w", err)
	}
	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	return encoder.Encode(&geo)
}

// loadWindowGeometry returns the saved window geometry, or defaults when
// there is no usable record.
func loadWindowGeometry() WindowGeometry {
	geo := defaultWindowGeometry()
	err := withGeometryLock(func(saved *WindowGeometry) error {
		geo = *saved
		return nil
	})
	if err != nil {
		log.Printf("warning: could not load window geometry: %v", err)
		return defaultWindowGeometry()
	}
	return geo
}

// saveWindowGeometry persists the current window geometry on shutdown.
func saveWindowGeometry(width, height, x, y int, maximised bool) {
	err := withGeometryLock(func(geo *WindowGeometry) error {
		if width > 0 && height > 0 {
			geo.Width = width
			geo.Height = height
			geo.X = x
			geo.Y = y
		}
		geo.Maximised = maximised
		geo.SavedAt = time.Now()
		return nil
	})
	if err != nil {
		log.Printf("warning: could not save window geometry: %v", err)
	}
}
