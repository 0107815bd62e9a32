// clock-deck is a terminal clock deck: one card at a time out of a home
// clock, alarm, stopwatch, countdown timer and weather lookup.
//
// Usage:
//
//	clock-deck [flags]
//
// Flags:
//
//	-config string    Path to configuration file (default: XDG search)
//	-view string      Card to open on launch (home|alarm|stopwatch|timer|weather)
//	-banner           Print a single clock frame and exit
//	-term-width int   Terminal width override for -banner (0 = auto-detect)
//	-theme string     Color theme name
//	-list-themes      List available themes and exit
//	-no-weather       Disable the weather service for this run
//	-verbose          Enable verbose logging
//	-version          Print version and exit
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/term"
	zone "github.com/lrstanley/bubblezone"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"gitlab.com/tinyland/lab/clock-deck/pkg/app"
	"gitlab.com/tinyland/lab/clock-deck/pkg/banner"
	"gitlab.com/tinyland/lab/clock-deck/pkg/cache"
	"gitlab.com/tinyland/lab/clock-deck/pkg/clock"
	"gitlab.com/tinyland/lab/clock-deck/pkg/config"
	"gitlab.com/tinyland/lab/clock-deck/pkg/cue"
	"gitlab.com/tinyland/lab/clock-deck/pkg/theme"
	"gitlab.com/tinyland/lab/clock-deck/pkg/weather"
	"gitlab.com/tinyland/lab/clock-deck/pkg/widgets"
)

var (
	version = "0.1.0"
	commit  = "dev"
	date    = "unknown"
)

func main() {
	var (
		configPath = flag.String("config", "", "Path to configuration file")
		startView  = flag.String("view", "", "Card to open on launch (home|alarm|stopwatch|timer|weather)")
		runBanner  = flag.Bool("banner", false, "Print a single clock frame and exit")
		termWidth  = flag.Int("term-width", 0, "Terminal width override for -banner (0 = auto-detect)")
		themeName  = flag.String("theme", "", "Color theme name")
		listThemes = flag.Bool("list-themes", false, "List available themes and exit")
		noWeather  = flag.Bool("no-weather", false, "Disable the weather service for this run")
		verbose    = flag.Bool("verbose", false, "Enable verbose logging")
		showVer    = flag.Bool("version", false, "Print version and exit")
	)
	flag.Parse()

	if *showVer {
		fmt.Printf("clock-deck %s (%s) built %s\n", version, commit, date)
		os.Exit(0)
	}

	if *listThemes {
		fmt.Println(strings.Join(theme.Names(), "\n"))
		os.Exit(0)
	}

	// Load configuration
	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.LoadFromFile(*configPath)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Flag overrides on top of file and env
	if *startView != "" {
		cfg.Deck.StartView = *startView
	}
	if *themeName != "" {
		cfg.Theme.Name = *themeName
	}
	if *noWeather {
		cfg.Weather.Enabled = false
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	theme.SetCurrent(cfg.Theme.Name)

	logger, closeLog, err := setupLogging(cfg, *verbose)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up logging: %v\n", err)
		os.Exit(1)
	}
	defer closeLog()

	store, err := cache.NewStore(cfg.General.CacheDir)
	if err != nil {
		logger.Warn("cache unavailable, running without it", "dir", cfg.General.CacheDir, "error", err)
		store = nil
	}

	if *runBanner {
		runBannerMode(cfg, store, *termWidth)
		return
	}

	runDeck(cfg, store, logger)
}

// setupLogging writes structured logs to stderr, and to the configured
// log file when one is set.
func setupLogging(cfg *config.Config, verbose bool) (*slog.Logger, func(), error) {
	level := cfg.General.SlogLevel()
	if verbose {
		level = slog.LevelDebug
	}

	w := io.Writer(os.Stderr)
	closeLog := func() {}
	if cfg.General.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.General.LogFile), 0755); err != nil {
			return nil, nil, err
		}
		f, err := os.OpenFile(cfg.General.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		w = io.MultiWriter(os.Stderr, f)
		closeLog = func() { f.Close() }
	}

	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger, closeLog, nil
}

// runBannerMode prints one non-interactive clock frame. Weather comes
// from the cache only; the banner never fetches.
func runBannerMode(cfg *config.Config, store *cache.Store, widthOverride int) {
	width := widthOverride
	if width <= 0 {
		if w, _, err := term.GetSize(os.Stdout.Fd()); err == nil {
			width = w
		}
	}
	color := isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	fmt.Print(banner.Render(banner.Options{
		Width:    width,
		Color:    color,
		Clock:    clock.System(),
		Store:    store,
		CacheTTL: cfg.Weather.CacheTTL.Duration,
	}))
}

// runDeck launches the interactive TUI.
func runDeck(cfg *config.Config, store *cache.Store, logger *slog.Logger) {
	clk := clock.System()
	zones := zone.New()

	var wxClient weather.Client
	var wxLocator weather.Locator
	if cfg.Weather.Enabled {
		wxClient = weather.NewOpenWeather(weather.OpenWeatherConfig{
			APIKey: cfg.Weather.APIKey,
			Logger: logger,
		})
		if cfg.Weather.Pinned() {
			wxLocator = weather.FixedLocator(weather.Location{
				Latitude:  cfg.Weather.Latitude,
				Longitude: cfg.Weather.Longitude,
				City:      cfg.Weather.City,
			})
		} else {
			wxLocator = weather.CachedLocator(weather.NewIPLocator(weather.IPLocatorConfig{}), store)
		}
	}

	notifier := cue.New(termenv.NewOutput(os.Stdout))

	m := app.NewModel(cfg, notifier, zones,
		widgets.NewHomeWidget(clk, cfg.Deck.SecondTick.Duration),
		widgets.NewAlarmWidget(clk, cfg.Deck.SecondTick.Duration),
		widgets.NewStopwatchWidget(clk, cfg.Deck.StopwatchTick.Duration),
		widgets.NewTimerWidget(clk, cfg.Deck.SecondTick.Duration, cfg.Countdown.PresetDurations(), zones),
		widgets.NewWeatherWidget(wxClient, wxLocator, store, cfg.Weather.CacheTTL.Duration),
	)

	logger.Info("starting deck", "view", cfg.Deck.StartView, "theme", cfg.Theme.Name,
		"weather", cfg.Weather.Enabled, "version", version)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error("deck error", "error", err)
		os.Exit(1)
	}
}
