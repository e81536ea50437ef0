// Package main provides the chorddepth binary entry point.
// chorddepth shows how far each chord of a progression sits from a tonal
// center on the circle of fifths, and what every open string of an
// instrument contributes to it.
package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/oisee/chorddepth/pkg/progression"
	"github.com/oisee/chorddepth/pkg/tui"
)

const (
	Version = "0.1.0"
	appName = "chorddepth"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "chorddepth [chords...]",
		Short: "Tonal depth analyzer for chord symbols",
		Long: `chorddepth parses chord symbols such as Fm9, C/Bb or G13 and reports,
for each one, the closest major key on the circle of fifths (its depth
relative to the tonal center) and the scale degree of every string of the
selected tuning.

Without a subcommand it starts the interactive view. Chords given as
arguments replace the configured progression.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts, args)
		},
	}

	opts.bind(cmd)
	cmd.Flags().StringVarP(&opts.watch, "watch", "w", "", "Progression file to load and follow for changes")

	cmd.AddCommand(
		analyzeCmd(opts),
		qualitiesCmd(),
		tuningsCmd(opts),
		configCmd(opts),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s\n", appName, Version)
			},
		},
	)

	return cmd
}

func runTUI(ctx context.Context, opts *options, args []string) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	env, err := setup(opts)
	if err != nil {
		return err
	}
	defer env.Close()

	if len(args) > 0 {
		env.Config.Progression = args
	}

	var updates <-chan progression.Update
	if opts.watch != "" {
		chords, err := progression.LoadFile(opts.watch)
		if err != nil {
			return err
		}
		env.Config.Progression = chords

		w, err := progression.NewWatcher(progression.WatcherConfig{
			Path:   opts.watch,
			Logger: env.Logger,
		})
		if err != nil {
			return err
		}
		if err := w.Start(ctx); err != nil {
			return err
		}
		updates = w.Updates()
	}

	model, err := tui.NewModel(env.Config, env.Logger)
	if err != nil {
		return err
	}
	model = model.WithUpdates(updates)

	env.Logger.Info("Starting interactive view",
		"tuning", env.Config.Tuning,
		"center", env.Config.Center,
		"chords", len(env.Config.Progression))

	p := tea.NewProgram(model)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run interface: %w", err)
	}
	return nil
}
