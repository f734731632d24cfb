// Package main is the entry point for the tasklist terminal application.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/hy4ri/tasklist/internal/config"
	"github.com/hy4ri/tasklist/internal/export"
	"github.com/hy4ri/tasklist/internal/i18n"
	"github.com/hy4ri/tasklist/internal/logging"
	"github.com/hy4ri/tasklist/internal/storage"
	"github.com/hy4ri/tasklist/internal/task"
	"github.com/hy4ri/tasklist/internal/theme"
	"github.com/hy4ri/tasklist/internal/tui"
	"github.com/hy4ri/tasklist/internal/view"
)

const version = "0.1.0"

const helpText = `tasklist - Personal task list for the terminal

USAGE:
    tasklist [OPTIONS]

OPTIONS:
    -h, --help            Show this help message
    -v, --version         Show version information
    --init                Create a template config file
    --config PATH         Use the config file at PATH
    --ephemeral           Keep tasks in memory only (nothing is saved)
    --list                Print the task list and exit
    --export-html PATH    Write the task list as an HTML page and exit

CONFIGURATION:
    Config file: ~/.config/tasklist/config.yaml
    Data:        $XDG_DATA_HOME/tasklist (default ~/.local/share/tasklist)

KEYBINDINGS:
    Navigation:
        j/k         Move down/up
        g/G         Go to top/bottom

    Task Actions:
        a           Add new task (form stays open; esc closes)
        e, Enter    Edit selected task
        x, Space    Mark done/pending
        d           Delete task (asks for confirmation)
        y           Copy task to clipboard

    Dialogs:
        Tab         Next field
        Enter       Save (Ctrl+S from the description)
        y/n         Confirm/cancel deletion
        Esc         Cancel

    Other:
        t           Toggle light/dark theme
        ?           Show help
        q           Quit
`

const configTemplate = `# tasklist configuration
# Location: ~/.config/tasklist/config.yaml

storage:
  # "file" (JSON, shared safely between instances), "bolt" or "memory"
  backend: file
  # Leave empty for $XDG_DATA_HOME/tasklist/tasks.json (tasks.db for bolt)
  path: ""

ui:
  # "es" or "en"
  locale: es
  # Optional TOML file overriding individual strings of the locale
  messages_file: ""
  # "light" or "dark"; empty follows the terminal background.
  # Pressing t in the app stores a choice that takes precedence.
  theme: ""
  # Go time layout for creation times
  date_format: "02/01/2006, 15:04:05"
  # Seconds a status message stays visible
  feedback_seconds: 3
  # Mirror status messages as desktop notifications
  desktop_notifications: false

log:
  # debug, info, warn or error
  level: info
  # Leave empty for $XDG_DATA_HOME/tasklist/tasklist.log
  file: ""
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Define flags
	var (
		showHelp    bool
		showVersion bool
		initConfig  bool
		configPath  string
		ephemeral   bool
		listTasks   bool
		exportHTML  string
	)

	flag.BoolVar(&showHelp, "help", false, "Show help message")
	flag.BoolVar(&showHelp, "h", false, "Show help message (shorthand)")
	flag.BoolVar(&showVersion, "version", false, "Show version")
	flag.BoolVar(&showVersion, "v", false, "Show version (shorthand)")
	flag.BoolVar(&initConfig, "init", false, "Create template config file")
	flag.StringVar(&configPath, "config", "", "Config file path")
	flag.BoolVar(&ephemeral, "ephemeral", false, "Keep tasks in memory only")
	flag.BoolVar(&listTasks, "list", false, "Print the task list and exit")
	flag.StringVar(&exportHTML, "export-html", "", "Write the task list as HTML to this path and exit")

	flag.Usage = func() {
		fmt.Print(helpText)
	}

	flag.Parse()

	// Handle flags
	if showHelp {
		fmt.Print(helpText)
		return nil
	}

	if showVersion {
		fmt.Printf("tasklist version %s\n", version)
		return nil
	}

	if initConfig {
		return createConfigTemplate(configPath)
	}

	cfg, err := loadConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if ephemeral {
		cfg.Storage.Backend = storage.BackendMemory
	}

	msgs, err := i18n.LoadWithOverrides(cfg.UI.Locale, cfg.UI.MessagesFile)
	if err != nil {
		return fmt.Errorf("failed to load messages: %w", err)
	}

	switch {
	case listTasks:
		return runList(cfg, msgs, os.Stdout)
	case exportHTML != "":
		return runExport(cfg, msgs, exportHTML, os.Stdout)
	}

	// Normal application flow
	return runApp(cfg, msgs)
}

func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Load()
	}
	return config.LoadFile(path)
}

// createConfigTemplate creates a template configuration file.
func createConfigTemplate(path string) error {
	if path == "" {
		var err error
		path, err = config.ConfigPath()
		if err != nil {
			return fmt.Errorf("failed to get config path: %w", err)
		}
	}

	// Check if config already exists
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("Config file already exists: %s\n", path)
		fmt.Print("Overwrite? [y/N]: ")

		var response string
		fmt.Scanln(&response)

		if response != "y" && response != "Y" {
			fmt.Println("Aborted.")
			return nil
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write template
	if err := os.WriteFile(path, []byte(configTemplate), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	fmt.Printf("Config file created: %s\n", path)
	return nil
}

// openLogger opens the log file named by cfg. Logging problems are not
// fatal; the app runs with a discarding logger and a nil closer instead.
func openLogger(cfg *config.Config) (*log.Logger, io.Closer) {
	path, err := cfg.LogPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), nil
	}

	opts := logging.DefaultOptions()
	opts.Level = cfg.Log.Level
	logger, closer, err := logging.OpenFile(path, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return logging.Discard(), nil
	}
	return logger, closer
}

// openedStore is an open backend and the task collection loaded from it.
type openedStore struct {
	kv    storage.KV
	tasks *task.Store

	// loadErr is set when the saved collection could not be read. tasks is
	// still usable and starts empty.
	loadErr error
}

// openStore opens the configured backend and loads the task collection.
// A load failure is reported in loadErr, not as the returned error.
func openStore(cfg *config.Config, logger *log.Logger) (*openedStore, error) {
	path, err := cfg.StoragePath()
	if err != nil {
		return nil, err
	}

	kv, err := storage.Open(cfg.Storage.Backend, path)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage: %w", err)
	}
	if f, ok := kv.(*storage.File); ok {
		f.SetLogger(logger)
	}
	logger.Info("storage opened", "backend", cfg.Storage.Backend, "path", path)

	store, loadErr := task.Open(kv,
		task.WithDateLayout(cfg.UI.DateFormat),
		task.WithLogger(logger),
	)
	return &openedStore{kv: kv, tasks: store, loadErr: loadErr}, nil
}

// runList prints the collection as plain text.
func runList(cfg *config.Config, msgs i18n.Messages, w io.Writer) error {
	st, err := openStore(cfg, logging.Discard())
	if err != nil {
		return err
	}
	defer st.kv.Close()
	if st.loadErr != nil {
		return st.loadErr
	}

	list := view.Project(st.tasks.List(), msgs)
	fmt.Fprintf(w, "%s (%s)\n", msgs.AppTitle, list.Count)
	if list.Empty {
		fmt.Fprintln(w, list.Placeholder)
		return nil
	}
	for _, item := range list.Items {
		mark := "[ ]"
		if item.Completed {
			mark = "[x]"
		}
		fmt.Fprintf(w, "%s %s  (%s %s)\n", mark, item.RawTitle, msgs.CreatedPrefix, item.CreatedAt)
		if item.HasDescription {
			fmt.Fprintf(w, "    %s\n", item.RawDescription)
		}
	}
	return nil
}

// runExport writes the collection as an HTML page.
func runExport(cfg *config.Config, msgs i18n.Messages, path string, w io.Writer) error {
	st, err := openStore(cfg, logging.Discard())
	if err != nil {
		return err
	}
	defer st.kv.Close()
	if st.loadErr != nil {
		return st.loadErr
	}

	th, err := theme.New(st.kv, cfg.UI.Theme, func() bool { return false })
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer f.Close()

	page := export.Page{
		Lang:  cfg.UI.Locale,
		Theme: th.Current(),
		Title: msgs.AppTitle,
		List:  view.Project(st.tasks.List(), msgs),
	}
	if err := export.HTML(f, page, msgs.CreatedPrefix); err != nil {
		return err
	}
	fmt.Fprintf(w, msgs.Exported+"\n", page.List.Count, path)
	return f.Close()
}

// runApp starts the main TUI application.
func runApp(cfg *config.Config, msgs i18n.Messages) error {
	logger, logCloser := openLogger(cfg)
	if logCloser != nil {
		defer logCloser.Close()
	}

	st, err := openStore(cfg, logger)
	if err != nil {
		return err
	}
	defer st.kv.Close()

	th, err := theme.New(st.kv, cfg.UI.Theme, nil)
	if err != nil {
		logger.Warn("theme preference unavailable", "err", err)
	}

	var watcher *storage.Watcher
	if f, ok := st.kv.(*storage.File); ok {
		watcher, err = storage.Watch(f.Path())
		if err != nil {
			logger.Warn("live reload disabled", "err", err)
		} else {
			defer watcher.Close()
		}
	}

	app := tui.NewApp(tui.Deps{
		Store:    st.tasks,
		Theme:    th,
		Messages: msgs,
		Config:   cfg,
		Logger:   logger,
		Watcher:  watcher,
		LoadErr:  st.loadErr,
	})
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run TUI: %w", err)
	}

	return nil
}
