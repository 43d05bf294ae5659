package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/prefs"
	"github.com/alexisbeaulieu97/lumen/internal/theme"
)

func newThemeCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "theme",
		Short: "Show or change the persisted colour theme",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the persisted theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, func(s *theme.Switcher, _ *prefs.Store) (theme.Theme, error) {
				return s.Stored(), nil
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "toggle",
		Short: "Switch between dark and light",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, func(s *theme.Switcher, _ *prefs.Store) (theme.Theme, error) {
				return s.Toggle()
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:       "set <dark|light>",
		Short:     "Persist a specific theme",
		Args:      cobra.ExactArgs(1),
		ValidArgs: []string{theme.Dark.String(), theme.Light.String()},
		RunE: func(cmd *cobra.Command, args []string) error {
			t, err := theme.Parse(args[0], true)
			if err != nil {
				return newCommandError("set theme", fmt.Sprintf("parsing %q", args[0]), err, "Use either 'dark' or 'light'.")
			}
			return runTheme(cmd, flags, func(s *theme.Switcher, _ *prefs.Store) (theme.Theme, error) {
				return t, s.Set(t)
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "reset",
		Short: "Forget the persisted theme and fall back to the default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTheme(cmd, flags, func(_ *theme.Switcher, store *prefs.Store) (theme.Theme, error) {
				return theme.Default, store.Delete(theme.StorageKey)
			})
		},
	})

	return cmd
}

func runTheme(cmd *cobra.Command, flags *rootFlags, action func(*theme.Switcher, *prefs.Store) (theme.Theme, error)) error {
	app, err := newAppContext(cmd, flags, false)
	if err != nil {
		return err
	}
	defer app.Close()

	store, err := app.openPrefs("theme " + cmd.Name())
	if err != nil {
		return err
	}

	app.log.Debug("preferences opened", "path", store.Path())

	switcher := theme.NewSwitcher(store, nil, app.log)
	t, err := action(switcher, store)
	if err != nil {
		return newCommandError("theme "+cmd.Name(), "persisting theme", err, "Check that the preferences file is writable.")
	}

	glyph := theme.PaletteFor(t).Glyph
	if !supportsUnicode(cmd.OutOrStdout()) {
		glyph = ""
	}
	fmt.Fprintln(cmd.OutOrStdout(), strings.TrimSpace(glyph+" "+t.String()))
	return nil
}
