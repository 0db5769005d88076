// Package config provides configuration types, defaults and validation for parley.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/tracing"
)

// Config holds all configuration options for parley.
type Config struct {
	Team     TeamConfig     `mapstructure:"team"`
	Emoji    EmojiConfig    `mapstructure:"emoji"`
	Storage  StorageConfig  `mapstructure:"storage"`
	Tutorial TutorialConfig `mapstructure:"tutorial"`
	UI       UIConfig       `mapstructure:"ui"`
	Theme    ThemeConfig    `mapstructure:"theme"`
	Tracing  tracing.Config `mapstructure:"tracing"`

	// Flags overrides feature flag defaults by name.
	Flags map[string]bool `mapstructure:"flags"`
}

// TeamConfig identifies the workspace shown in the client.
type TeamConfig struct {
	Name     string `mapstructure:"name"`     // URL slug, e.g. "core"
	Username string `mapstructure:"username"` // the signed-in user
}

// EmojiConfig holds emoji picker options.
type EmojiConfig struct {
	RowWidth        int           `mapstructure:"row_width"`
	RecentLimit     int           `mapstructure:"recent_limit"`
	CustomEnabled   bool          `mapstructure:"custom_enabled"`
	CustomDir       string        `mapstructure:"custom_dir"`
	ScrollDebounce  time.Duration `mapstructure:"scroll_debounce"`
	DefaultSkinTone string        `mapstructure:"default_skin_tone"`
}

// StorageConfig locates the preference database. An empty path keeps
// preferences in memory for the session only.
type StorageConfig struct {
	DBPath string `mapstructure:"db_path"`
}

// TutorialConfig controls the onboarding tips.
type TutorialConfig struct {
	Enabled  bool `mapstructure:"enabled"`
	AutoTour bool `mapstructure:"auto_tour"`
}

// UIConfig holds user interface configuration options.
type UIConfig struct {
	MarkdownStyle string `mapstructure:"markdown_style"` // "dark" (default) or "light"
	ShowPreview   bool   `mapstructure:"show_preview"`   // emoji picker preview footer
}

// ThemeConfig selects a color preset and optional per-token overrides.
type ThemeConfig struct {
	Preset string            `mapstructure:"preset"`
	Colors map[string]string `mapstructure:"colors"`
}

// Dir returns the user config directory for parley.
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".parley")
	}
	return filepath.Join(home, ".config", "parley")
}

// DefaultDBPath is where preferences are stored unless configured.
func DefaultDBPath() string { return filepath.Join(Dir(), "parley.db") }

// DefaultCustomDir is where custom emoji packs are read from.
func DefaultCustomDir() string { return filepath.Join(Dir(), "emoji") }

// DefaultTracesFilePath is the trace output for the file exporter.
func DefaultTracesFilePath() string { return filepath.Join(Dir(), "traces", "traces.jsonl") }

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	tr := tracing.DefaultConfig()
	tr.FilePath = DefaultTracesFilePath()
	return Config{
		Team: TeamConfig{
			Name:     "core",
			Username: "me",
		},
		Emoji: EmojiConfig{
			RowWidth:        emoji.DefaultRowWidth,
			RecentLimit:     emoji.MaxRecentEmojis,
			CustomEnabled:   true,
			CustomDir:       DefaultCustomDir(),
			ScrollDebounce:  150 * time.Millisecond,
			DefaultSkinTone: string(emoji.SkinToneDefault),
		},
		Storage: StorageConfig{
			DBPath: DefaultDBPath(),
		},
		Tutorial: TutorialConfig{
			Enabled:  true,
			AutoTour: true,
		},
		UI: UIConfig{
			MarkdownStyle: "dark",
			ShowPreview:   true,
		},
		Tracing: tr,
	}
}

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if err := ValidateEmoji(c.Emoji); err != nil {
		return err
	}
	if err := ValidateUI(c.UI); err != nil {
		return err
	}
	if err := ValidateTracing(c.Tracing); err != nil {
		return err
	}
	if c.Team.Name == "" {
		return fmt.Errorf("team.name is required")
	}
	return nil
}

// ValidateEmoji checks emoji picker options.
func ValidateEmoji(e EmojiConfig) error {
	if e.RowWidth < 1 || e.RowWidth > 20 {
		return fmt.Errorf("emoji.row_width must be between 1 and 20, got %d", e.RowWidth)
	}
	if e.RecentLimit < 1 || e.RecentLimit > emoji.MaxRecentEmojis {
		return fmt.Errorf("emoji.recent_limit must be between 1 and %d, got %d", emoji.MaxRecentEmojis, e.RecentLimit)
	}
	if e.ScrollDebounce < 0 {
		return fmt.Errorf("emoji.scroll_debounce must not be negative, got %s", e.ScrollDebounce)
	}
	if e.DefaultSkinTone != "" && string(emoji.ParseSkinTone(e.DefaultSkinTone)) != e.DefaultSkinTone {
		return fmt.Errorf("emoji.default_skin_tone must be \"default\" or a tone modifier like \"1f3fb\", got %q", e.DefaultSkinTone)
	}
	if e.CustomEnabled && e.CustomDir == "" {
		return fmt.Errorf("emoji.custom_dir is required when custom_enabled is true")
	}
	return nil
}

// ValidateUI checks user interface options.
func ValidateUI(ui UIConfig) error {
	switch ui.MarkdownStyle {
	case "", "dark", "light":
		return nil
	default:
		return fmt.Errorf("ui.markdown_style must be \"dark\" or \"light\", got %q", ui.MarkdownStyle)
	}
}

// ValidateTracing checks tracing configuration for errors.
// Returns nil if the configuration is valid (empty values use defaults).
func ValidateTracing(t tracing.Config) error {
	if t.SampleRate < 0.0 || t.SampleRate > 1.0 {
		return fmt.Errorf("tracing.sample_rate must be between 0.0 and 1.0, got %v", t.SampleRate)
	}

	switch t.Exporter {
	case "", tracing.ExporterNone, tracing.ExporterFile, tracing.ExporterStdout, tracing.ExporterOTLP:
	default:
		return fmt.Errorf("tracing.exporter must be \"none\", \"file\", \"stdout\", or \"otlp\", got %q", t.Exporter)
	}

	if t.Enabled {
		if t.Exporter == tracing.ExporterFile && t.FilePath == "" {
			return fmt.Errorf("tracing.file_path is required when exporter is \"file\"")
		}
		if t.Exporter == tracing.ExporterOTLP && t.OTLPEndpoint == "" {
			return fmt.Errorf("tracing.otlp_endpoint is required when exporter is \"otlp\"")
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Parley Configuration

# Workspace shown in the client
team:
  name: core          # URL slug; custom emoji live under /{name}/emoji
  username: me        # Your username, used for "(you)" labels

# Emoji picker
emoji:
  row_width: 9              # Emoji per grid row
  recent_limit: 27          # Recently used emoji kept (max 27)
  custom_enabled: true      # Load custom emoji packs
  # custom_dir: ~/.config/parley/emoji   # Directory of *.toml packs (watched for changes)
  scroll_debounce: 150ms    # Delay before the active category follows scrolling
  default_skin_tone: default  # default, 1f3fb, 1f3fc, 1f3fd, 1f3fe or 1f3ff

# Preference storage (skin tone, recent emoji, tutorial progress)
# storage:
#   db_path: ~/.config/parley/parley.db   # Leave empty to keep preferences in memory

# Onboarding tips
tutorial:
  enabled: true
  auto_tour: true     # Continue to the next tip automatically

# UI settings
ui:
  # markdown_style: dark  # Markdown rendering style: "dark" (default) or "light"
  show_preview: true      # Show the emoji preview footer

# Theme
# theme:
#   preset: default        # default, high-contrast
#   colors:
#     text.primary: "#FFFFFF"
#     picker.selected: "#3498DB"

# Tracing of catalog builds, searches and preference writes
# tracing:
#   enabled: false                 # Enable/disable tracing (default: false)
#   exporter: file                 # Export backend: none, file, stdout, otlp (default: file)
#   file_path: ~/.config/parley/traces/traces.jsonl
#   otlp_endpoint: localhost:4317  # OTLP collector endpoint (for otlp exporter)
#   sample_rate: 1.0               # Trace sampling rate 0.0-1.0 (default: 1.0)

# Feature flags (all on by default)
# flags:
#   custom-emoji-search: true   # Ask custom packs for matches while filtering
#   custom-emoji-watch: true    # Reload packs when the directory changes
#   draft-profile-fetch: true   # Load unknown DM teammates for draft titles
`
}

// WriteDefaultConfig creates a config file at the given path with default settings and comments.
// Creates the parent directory if it doesn't exist.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}

// ExpandPath replaces a leading "~" with the user's home directory.
func ExpandPath(p string) string {
	if p == "~" || len(p) > 1 && p[:2] == "~/" {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	return p
}
