// Package cli wires the travelcheck command tree.
package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/travelcheck/internal/config"
	"github.com/idilsaglam/travelcheck/internal/logging"
	"github.com/idilsaglam/travelcheck/internal/session"
	"github.com/idilsaglam/travelcheck/internal/store"
	"github.com/idilsaglam/travelcheck/internal/tui"
	"github.com/idilsaglam/travelcheck/internal/ui"
	"github.com/idilsaglam/travelcheck/internal/view"
)

// Set by the linker.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ErrNotTerminal is returned when the interactive list has no terminal.
var ErrNotTerminal = errors.New("stdin is not a terminal; use `travelcheck run` to apply a script")

type rootOptions struct {
	verbosity  int
	configPath string
	theme      string
	sort       string
	locale     string
}

// settings is the resolved configuration for one invocation.
type settings struct {
	theme  ui.Theme
	sort   view.SortKey
	config config.Config
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}

	root := &cobra.Command{
		Use:   "travelcheck",
		Short: "Keep track of what to pack for a trip",
		Long: `travelcheck is a packing list for the terminal. Add what you need,
tick items off as you pack them and watch the progress.

Lists live only for the session: nothing is saved when you quit.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// The interactive list owns the terminal, so it only logs to file.
			logging.SetupLogger(opts.verbosity, cmd.Name() != "travelcheck")
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInteractive(opts)
		},
	}

	pf := root.PersistentFlags()
	pf.CountVarP(&opts.verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	pf.StringVar(&opts.configPath, "config", "", "config file (default is $XDG_CONFIG_HOME/travelcheck/config.toml)")
	pf.StringVar(&opts.theme, "theme", "", "color theme: classic, neon or mono")
	pf.StringVar(&opts.sort, "sort", "", "initial sort: oldest, newest, a-z or packed")
	pf.StringVar(&opts.locale, "locale", "", "locale used to sort names, e.g. en, de, sv")

	root.AddCommand(
		newRunCmd(opts),
		newConfigCmd(opts),
		newVersionCmd(),
		newCompletionCmd(),
	)
	return root
}

// Execute runs the command tree and reports errors with the theme.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		ui.Classic().Fail(os.Stderr, err.Error())
		return 1
	}
	return 0
}

// resolve layers flags over the loaded config.
func resolve(opts *rootOptions) (settings, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return settings{}, err
	}
	if opts.theme != "" {
		cfg.Theme = opts.theme
	}
	if opts.sort != "" {
		cfg.Sort = opts.sort
	}
	if opts.locale != "" {
		cfg.Locale = opts.locale
	}
	if err := cfg.Validate(); err != nil {
		return settings{}, err
	}
	t, _ := cfg.ThemeValue()
	k, _ := cfg.SortKey()
	return settings{theme: t, sort: k, config: cfg}, nil
}

func newSession(s settings) (*session.Session, error) {
	tag, err := s.config.Language()
	if err != nil {
		return nil, err
	}
	return session.New(store.New(), view.NewProjector(tag), s.sort), nil
}

func runInteractive(opts *rootOptions) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return ErrNotTerminal
	}
	s, err := resolve(opts)
	if err != nil {
		return err
	}
	sess, err := newSession(s)
	if err != nil {
		return err
	}
	if err := tui.Run(sess, s.theme); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
