package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

const (
	minFontSize     = 8
	maxFontSize     = 32
	defaultFontSize = 14

	minTabWidth     = 2
	maxTabWidth     = 8
	defaultTabWidth = 4
)

// EditorConfig represents the [editor] section of config.toml
type EditorConfig struct {
	Theme string `toml:"theme"` // "dark", "light", or "auto"
	// FontSize controls the editor font size in pixels
	// Range: 8-32, Default: 14
	FontSize int `toml:"font_size"`
	// WordWrap controls soft wrapping of long lines in the editing widget
	WordWrap bool `toml:"word_wrap"`
	// TabWidth controls the rendered width of a tab character
	// Range: 2-8, Default: 4
	TabWidth int `toml:"tab_width"`
}

// EditorSettingsManager manages editor settings in config.toml
type EditorSettingsManager struct {
	configPath string
}

// NewEditorSettingsManager creates a new editor settings manager
func NewEditorSettingsManager() *EditorSettingsManager {
	home, _ := os.UserHomeDir()
	return &EditorSettingsManager{
		configPath: filepath.Join(home, ".draftpad", "config.toml"),
	}
}

// fullConfig represents the config.toml structure we care about
type fullConfig struct {
	Editor editorConfigFile `toml:"editor"`
	// Other sections are preserved as raw TOML
}

// editorConfigFile mirrors EditorConfig with a pointer for WordWrap so an
// absent key can be distinguished from an explicit false.
type editorConfigFile struct {
	Theme    string `toml:"theme"`
	FontSize int    `toml:"font_size"`
	WordWrap *bool  `toml:"word_wrap"`
	TabWidth int    `toml:"tab_width"`
}

func defaultEditorConfig() *EditorConfig {
	return &EditorConfig{
		Theme:    "dark",
		FontSize: defaultFontSize,
		WordWrap: true,
		TabWidth: defaultTabWidth,
	}
}

// loadEditorSettings loads the editor section from config.toml
func (esm *EditorSettingsManager) loadEditorSettings() (*EditorConfig, error) {
	defaults := defaultEditorConfig()

	data, err := os.ReadFile(esm.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults, nil
		}
		return nil, err
	}

	var config fullConfig
	if err := toml.Unmarshal(data, &config); err != nil {
		return defaults, nil // Return defaults on parse error
	}

	result := &EditorConfig{
		Theme:    config.Editor.Theme,
		FontSize: config.Editor.FontSize,
		TabWidth: config.Editor.TabWidth,
		WordWrap: true,
	}
	if config.Editor.WordWrap != nil {
		result.WordWrap = *config.Editor.WordWrap
	}

	// Validate theme value
	switch result.Theme {
	case "dark", "light", "auto":
		// Valid
	default:
		result.Theme = "dark"
	}

	// Validate and apply defaults for font size
	if result.FontSize == 0 {
		result.FontSize = defaultFontSize
	} else if result.FontSize < minFontSize {
		result.FontSize = minFontSize
	} else if result.FontSize > maxFontSize {
		result.FontSize = maxFontSize
	}

	// Validate and apply defaults for tab width
	if result.TabWidth == 0 {
		result.TabWidth = defaultTabWidth
	} else if result.TabWidth < minTabWidth {
		result.TabWidth = minTabWidth
	} else if result.TabWidth > maxTabWidth {
		result.TabWidth = maxTabWidth
	}

	return result, nil
}

// saveEditorSettings saves the editor config, preserving other sections
func (esm *EditorSettingsManager) saveEditorSettings(editor *EditorConfig) error {
	// Read existing config to preserve other sections
	existingData, _ := os.ReadFile(esm.configPath)

	// Parse existing config into a map to preserve unknown sections
	var existingConfig map[string]interface{}
	if len(existingData) > 0 {
		if err := toml.Unmarshal(existingData, &existingConfig); err != nil {
			existingConfig = make(map[string]interface{})
		}
	} else {
		existingConfig = make(map[string]interface{})
	}

	// Update the editor section
	existingConfig["editor"] = map[string]interface{}{
		"theme":     editor.Theme,
		"font_size": editor.FontSize,
		"word_wrap": editor.WordWrap,
		"tab_width": editor.TabWidth,
	}

	// Ensure directory exists
	dir := filepath.Dir(esm.configPath)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	var buf bytes.Buffer

	if len(existingData) == 0 {
		buf.WriteString("# Draftpad Configuration\n\n")
	}

	if err := toml.NewEncoder(&buf).Encode(existingConfig); err != nil {
		return err
	}

	return os.WriteFile(esm.configPath, buf.Bytes(), 0600)
}

// GetEditorConfig returns the full editor configuration
func (esm *EditorSettingsManager) GetEditorConfig() (*EditorConfig, error) {
	return esm.loadEditorSettings()
}

// GetTheme returns the current theme preference
func (esm *EditorSettingsManager) GetTheme() (string, error) {
	config, err := esm.loadEditorSettings()
	if err != nil {
		return "dark", err
	}
	return config.Theme, nil
}

// SetTheme sets the theme preference
func (esm *EditorSettingsManager) SetTheme(theme string) error {
	// Validate theme
	theme = strings.ToLower(strings.TrimSpace(theme))
	switch theme {
	case "dark", "light", "auto":
		// Valid
	default:
		theme = "dark"
	}

	config, err := esm.loadEditorSettings()
	if err != nil {
		config = defaultEditorConfig()
	}

	config.Theme = theme
	return esm.saveEditorSettings(config)
}

// GetFontSize returns the editor font size
// Returns: 8-32, default 14
func (esm *EditorSettingsManager) GetFontSize() (int, error) {
	config, err := esm.loadEditorSettings()
	if err != nil {
		return defaultFontSize, err
	}
	return config.FontSize, nil
}

// SetFontSize sets the editor font size
// Valid range: 8-32
func (esm *EditorSettingsManager) SetFontSize(size int) error {
	// Clamp to valid range
	if size < minFontSize {
		size = minFontSize
	} else if size > maxFontSize {
		size = maxFontSize
	}

	config, err := esm.loadEditorSettings()
	if err != nil {
		config = defaultEditorConfig()
	}

	config.FontSize = size
	return esm.saveEditorSettings(config)
}

// GetWordWrap returns whether soft line wrapping is enabled
func (esm *EditorSettingsManager) GetWordWrap() (bool, error) {
	config, err := esm.loadEditorSettings()
	if err != nil {
		return true, err
	}
	return config.WordWrap, nil
}

// SetWordWrap enables or disables soft line wrapping
func (esm *EditorSettingsManager) SetWordWrap(enabled bool) error {
	config, err := esm.loadEditorSettings()
	if err != nil {
		config = defaultEditorConfig()
	}

	config.WordWrap = enabled
	return esm.saveEditorSettings(config)
}

// GetTabWidth returns the rendered tab width
// Returns: 2-8, default 4
func (esm *EditorSettingsManager) GetTabWidth() (int, error) {
	config, err := esm.loadEditorSettings()
	if err != nil {
		return defaultTabWidth, err
	}
	return config.TabWidth, nil
}

// SetTabWidth sets the rendered tab width
// Valid range: 2-8
func (esm *EditorSettingsManager) SetTabWidth(width int) error {
	// Clamp to valid range
	if width < minTabWidth {
		width = minTabWidth
	} else if width > maxTabWidth {
		width = maxTabWidth
	}

	config, err := esm.loadEditorSettings()
	if err != nil {
		config = defaultEditorConfig()
	}

	config.TabWidth = width
	return esm.saveEditorSettings(config)
}
