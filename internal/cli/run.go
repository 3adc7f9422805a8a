package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/idilsaglam/travelcheck/internal/report"
	"github.com/idilsaglam/travelcheck/internal/script"
	"github.com/idilsaglam/travelcheck/internal/session"
)

func newRunCmd(opts *rootOptions) *cobra.Command {
	var (
		format string
		yes    bool
	)
	cmd := &cobra.Command{
		Use:   "run [file|-]",
		Short: "Apply a script of list events and print the result",
		Long: `Read list events, one per line, and print the final list.

  add [quantity] <name...>   add an item (quantity 1-20, default 1)
  toggle <pos>               mark the item at a position packed/unpacked
  delete <pos>               remove the item at a position
  sort <key>                 oldest, newest, a-z or packed
  clear                      empty the list (needs --yes)

Positions are 1-based in the current sort order. Lines starting
with # are ignored. Reads stdin when no file or "-" is given.`,
		Example: `  printf 'add 3 Socks\nadd Hat\ntoggle 1\n' | travelcheck run
  travelcheck run --format json trip.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			s, err := resolve(opts)
			if err != nil {
				return err
			}
			sess, err := newSession(s)
			if err != nil {
				return err
			}

			in, closeIn, err := openInput(cmd, args)
			if err != nil {
				return err
			}
			defer closeIn()

			// asked only for a non-empty list, which is cleared on yes
			confirm := session.ConfirmFunc(func(prompt string) bool {
				if !yes {
					log.Warn().Msg("clear skipped: pass --yes to confirm")
					return false
				}
				s.theme.OK(cmd.ErrOrStderr(), "list cleared")
				return true
			})
			if err := script.Run(sess, in, confirm); err != nil {
				return err
			}
			return report.Write(cmd.OutOrStdout(), f, sess.Snapshot(), s.theme)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json or yaml")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "confirm clear commands in the script")
	return cmd
}

func openInput(cmd *cobra.Command, args []string) (io.Reader, func(), error) {
	if len(args) == 0 || args[0] == "-" {
		return cmd.InOrStdin(), func() {}, nil
	}
	f, err := os.Open(args[0])
	if err != nil {
		return nil, nil, fmt.Errorf("open script: %w", err)
	}
	return f, func() { _ = f.Close() }, nil
}
