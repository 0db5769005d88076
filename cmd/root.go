package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/parley/internal/app"
	"github.com/zjrosen/parley/internal/chat"
	"github.com/zjrosen/parley/internal/config"
	"github.com/zjrosen/parley/internal/customemoji"
	"github.com/zjrosen/parley/internal/emoji"
	"github.com/zjrosen/parley/internal/flags"
	"github.com/zjrosen/parley/internal/log"
	"github.com/zjrosen/parley/internal/prefs"
	"github.com/zjrosen/parley/internal/tracing"
	"github.com/zjrosen/parley/internal/ui/markdown"
	"github.com/zjrosen/parley/internal/ui/styles"
)

func init() {
	// Force lipgloss/termenv to query terminal background color BEFORE
	// any Bubble Tea program starts. This prevents the terminal's OSC 11
	// response from racing with Bubble Tea's input loop and appearing as
	// garbage text in input fields.
	//
	// See: https://github.com/charmbracelet/bubbletea/issues/1036
	_ = lipgloss.HasDarkBackground()
}

const localConfigPath = ".parley/config.yaml"

var (
	version = "dev"
	cfgFile string
	debug   bool
	cfg     config.Config
)

var rootCmd = &cobra.Command{
	Use:     "parley",
	Short:   "A terminal team chat playground",
	Long:    `A terminal team chat client playground: drafts, thread replies, onboarding tips and an emoji picker.`,
	Version: version,
	RunE:    runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"config file (default: ~/.config/parley/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false,
		"write a debug log and enable the log overlay (ctrl+x)")
	rootCmd.PersistentFlags().String("team", "", "team name used in URLs")
	rootCmd.Flags().Bool("no-custom-emoji", false, "disable custom emoji packs")

	_ = viper.BindPFlag("team.name", rootCmd.PersistentFlags().Lookup("team"))
}

func setDefaults(v *viper.Viper) {
	d := config.Defaults()
	v.SetDefault("team.name", d.Team.Name)
	v.SetDefault("team.username", d.Team.Username)
	v.SetDefault("emoji.row_width", d.Emoji.RowWidth)
	v.SetDefault("emoji.recent_limit", d.Emoji.RecentLimit)
	v.SetDefault("emoji.custom_enabled", d.Emoji.CustomEnabled)
	v.SetDefault("emoji.custom_dir", d.Emoji.CustomDir)
	v.SetDefault("emoji.scroll_debounce", d.Emoji.ScrollDebounce)
	v.SetDefault("emoji.default_skin_tone", d.Emoji.DefaultSkinTone)
	v.SetDefault("storage.db_path", d.Storage.DBPath)
	v.SetDefault("tutorial.enabled", d.Tutorial.Enabled)
	v.SetDefault("tutorial.auto_tour", d.Tutorial.AutoTour)
	v.SetDefault("ui.markdown_style", d.UI.MarkdownStyle)
	v.SetDefault("ui.show_preview", d.UI.ShowPreview)
	v.SetDefault("tracing.enabled", d.Tracing.Enabled)
	v.SetDefault("tracing.exporter", d.Tracing.Exporter)
	v.SetDefault("tracing.file_path", d.Tracing.FilePath)
	v.SetDefault("tracing.otlp_endpoint", d.Tracing.OTLPEndpoint)
	v.SetDefault("tracing.sample_rate", d.Tracing.SampleRate)
	v.SetDefault("tracing.service_name", d.Tracing.ServiceName)
}

func initConfig() {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		// Config lookup order:
		// 1. .parley/config.yaml (current directory)
		// 2. ~/.config/parley/config.yaml (user config)
		if _, err := os.Stat(localConfigPath); err == nil {
			viper.SetConfigFile(localConfigPath)
		} else {
			viper.AddConfigPath(config.Dir())
			viper.SetConfigName("config")
			viper.SetConfigType("yaml")
		}
	}

	if err := viper.ReadInConfig(); err != nil {
		// No config file found anywhere - create the user config
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			defaultPath := filepath.Join(config.Dir(), "config.yaml")
			if writeErr := config.WriteDefaultConfig(defaultPath); writeErr == nil {
				viper.SetConfigFile(defaultPath)
				_ = viper.ReadInConfig()
			}
			// If write fails, just continue with defaults (no config file)
		}
	}

	_ = viper.Unmarshal(&cfg)
}

// startLogging enables the debug log when --debug or PARLEY_DEBUG asks for it.
func startLogging() (bool, func(), error) {
	if !debug && !log.DebugRequested() {
		return false, func() {}, nil
	}
	path := filepath.Join(config.Dir(), "debug.log")
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return false, nil, fmt.Errorf("creating log directory: %w", err)
	}
	cleanup, err := log.Init(path)
	if err != nil {
		return false, nil, err
	}
	log.Info(log.CatConfig, "debug logging enabled", "path", path, "config", viper.ConfigFileUsed())
	return true, cleanup, nil
}

// openPrefs opens the preference database, or keeps preferences in memory
// when no path is configured.
func openPrefs(ctx context.Context, path string) (prefs.Store, error) {
	if path == "" {
		return prefs.NewMemoryStore(), nil
	}
	path = config.ExpandPath(path)
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	return prefs.OpenSQLite(ctx, path)
}

// loadLibrary returns the custom emoji library, or nil when disabled.
func loadLibrary(ctx context.Context, c config.Config, provider *tracing.Provider) *customemoji.Library {
	if !c.Emoji.CustomEnabled {
		return nil
	}
	lib := customemoji.NewLibrary(config.ExpandPath(c.Emoji.CustomDir), provider.Tracer())
	if err := lib.Reload(ctx); err != nil {
		log.Warn(log.CatCustom, "custom emoji unavailable", "dir", lib.Dir(), "error", err)
	}
	return lib
}

func runApp(cmd *cobra.Command, _ []string) error {
	if off, _ := cmd.Flags().GetBool("no-custom-emoji"); off {
		cfg.Emoji.CustomEnabled = false
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	debugMode, stopLogging, err := startLogging()
	if err != nil {
		return err
	}
	defer stopLogging()

	if err := styles.ApplyTheme(styles.ThemeConfig{Preset: cfg.Theme.Preset, Colors: cfg.Theme.Colors}); err != nil {
		return fmt.Errorf("invalid theme: %w", err)
	}

	ctx := context.Background()
	provider, err := tracing.NewProvider(cfg.Tracing)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() { _ = provider.Shutdown(ctx) }()

	store, err := openPrefs(ctx, cfg.Storage.DBPath)
	if err != nil {
		return fmt.Errorf("opening preferences: %w", err)
	}
	svc := prefs.NewService(store,
		prefs.WithRecentLimit(cfg.Emoji.RecentLimit),
		prefs.WithTracer(provider.Tracer()),
	)
	defer func() { _ = svc.Close() }()

	src, err := emoji.DefaultSource()
	if err != nil {
		return fmt.Errorf("loading emoji data: %w", err)
	}

	configPath := viper.ConfigFileUsed()
	if configPath == "" {
		configPath = localConfigPath
	}

	model := app.New(app.Services{
		Config:     cfg,
		ConfigPath: configPath,
		Source:     src,
		Prefs:      svc,
		Custom:     loadLibrary(ctx, cfg, provider),
		Directory:  chat.NewDemoDirectory(cfg.Team.Name, cfg.Team.Username),
		Tracer:     provider.Tracer(),
		Markdown:   markdown.NewPool(cfg.UI.MarkdownStyle),
		Flags:      flags.New(cfg.Flags),
		Debug:      debugMode,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		model = m
	}

	// Stop listeners and the custom emoji watcher
	if closeErr := model.Close(); closeErr != nil && err == nil {
		err = closeErr
	}

	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command
func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

// SetVersion sets the version string (called from main with ldflags)
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
