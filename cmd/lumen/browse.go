package main

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/lumen/internal/tui/browser"
)

func newBrowseCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Launch the interactive gallery browser",
		Long:  `Launch the interactive TUI to filter, search and page through the catalog.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(cmd, flags)
		},
	}

	return cmd
}

func runBrowse(cmd *cobra.Command, flags *rootFlags) error {
	app, err := newAppContext(cmd, flags, true)
	if err != nil {
		return err
	}
	defer app.Close()

	c, err := app.loadCatalog("browse")
	if err != nil {
		app.log.Error(err, "catalog load failed")
		return err
	}

	store, err := app.openPrefs("browse")
	if err != nil {
		app.log.Error(err, "preferences unavailable")
		return err
	}

	m := browser.NewModel(c, store, browser.Options{
		Follow:          app.cfg.Lightbox.Follow,
		SlideInterval:   app.cfg.Slider.Interval,
		Autoplay:        app.cfg.Slider.Autoplay,
		RevealThreshold: app.cfg.Reveal.Threshold,
		Logger:          app.log,
	})

	app.log.Info("launching browser", "items", c.Len(), "catalog", c.Name())

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		app.log.Error(err, "browser execution failed")
		return fmt.Errorf("failed to run browser: %w", err)
	}

	app.log.Info("browser closed")
	return nil
}
