package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/billie-coop/scribe/internal/config"
	"github.com/billie-coop/scribe/internal/logging"
	"github.com/billie-coop/scribe/internal/tui"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "scribe [file]",
		Short: "Terminal code editor with live preview",
		Long: `scribe - Edit a file in the terminal with a live preview.

Markdown files preview rendered; other files preview syntax highlighted.
The preview follows your edits once typing pauses for the debounce interval.

Keys:
  ctrl+s  save          ctrl+q  quit
  ctrl+p  preview       ctrl+o  switch pane
  ctrl+t  language      ctrl+g  theme

Settings come from .scribe/config.json in the current directory; flags
override them for one session.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE:         runEdit,
	}

	addEditorFlags(root)
	root.AddCommand(newConfigCmd())
	return root
}

func addEditorFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("lang", "l", "", "Language id (default: detect from file name)")
	cmd.Flags().Duration("debounce", 0, "Delay before the preview follows edits (0 = immediate)")
	cmd.Flags().String("theme", "", "Theme: scribe, midnight, paper")
	cmd.Flags().Bool("line-numbers", true, "Show line numbers")
	cmd.Flags().Bool("minimap", false, "Show the minimap column")
	cmd.Flags().Bool("preview", true, "Show the preview pane")
	cmd.Flags().Bool("autosave", false, "Save after every debounced change")
	cmd.Flags().Bool("read-only", false, "Open without allowing edits")
	cmd.Flags().String("log-file", "", "Write JSON logs to this file")
	cmd.Flags().Bool("debug", false, "Log at debug level")
}

// applyFlags overrides config values with flags the user actually set.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("debounce") {
		d, _ := flags.GetDuration("debounce")
		if d < 0 {
			return fmt.Errorf("--debounce must be >= 0, got %s", d)
		}
		cfg.DebounceMS = int(d.Milliseconds())
	}
	if flags.Changed("theme") {
		cfg.Theme, _ = flags.GetString("theme")
	}
	if flags.Changed("line-numbers") {
		cfg.LineNumbers, _ = flags.GetBool("line-numbers")
	}
	if flags.Changed("minimap") {
		cfg.Minimap, _ = flags.GetBool("minimap")
	}
	if flags.Changed("preview") {
		cfg.Preview, _ = flags.GetBool("preview")
	}
	if flags.Changed("autosave") {
		cfg.Autosave, _ = flags.GetBool("autosave")
	}
	if flags.Changed("log-file") {
		cfg.LogFile, _ = flags.GetString("log-file")
	}
	if flags.Changed("debug") {
		cfg.Debug, _ = flags.GetBool("debug")
	}
	return cfg.Validate()
}

func loadConfig() (*config.Manager, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}
	manager := config.NewManager(wd)
	if err := manager.Load(); err != nil {
		return nil, err
	}
	return manager, nil
}

func runEdit(cmd *cobra.Command, args []string) error {
	manager, err := loadConfig()
	if err != nil {
		return err
	}
	cfg := manager.Get()
	if err := applyFlags(cmd, cfg); err != nil {
		return err
	}

	if cfg.LogFile != "" {
		l, err := logging.NewFileLogger(cfg.LogFile, cfg.Debug)
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "warning: logging disabled: %v\n", err)
		} else {
			logging.SetLogger(l)
			defer l.Sync()
		}
	}

	var path string
	if len(args) == 1 {
		if path, err = filepath.Abs(args[0]); err != nil {
			return fmt.Errorf("invalid path %q: %w", args[0], err)
		}
	}

	lang, _ := cmd.Flags().GetString("lang")
	readOnly, _ := cmd.Flags().GetBool("read-only")

	model, err := tui.New(tui.Options{
		Path:     path,
		Language: lang,
		ReadOnly: readOnly,
		Config:   cfg,
	})
	if err != nil {
		return err
	}
	defer model.Close()

	log := logging.Named("cli")
	log.Info("starting", zap.String("path", path), zap.String("language", model.Language()))

	p := tea.NewProgram(model, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Error("program exited with error", zap.Error(err))
		return err
	}
	return nil
}
