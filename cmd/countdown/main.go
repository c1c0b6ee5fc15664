package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"countdown/internal/bootstrap"
	"countdown/internal/platform/config"
	apperrors "countdown/internal/platform/errors"
	"countdown/internal/ui/theme"
)

// soundTail keeps the process alive long enough for the completion chirp.
const soundTail = 700 * time.Millisecond

// errReported marks a failure the display already showed to the user.
var errReported = errors.New("already reported")

func main() {
	os.Exit(report(os.Stderr, newRootCmd().Execute()))
}

func report(w io.Writer, err error) int {
	if err == nil {
		return 0
	}
	if !errors.Is(err, errReported) {
		_, _ = fmt.Fprintln(w, err)
	}
	return 1
}

func newRootCmd() *cobra.Command {
	var dataDir string

	root := &cobra.Command{
		Use:           "countdown",
		Short:         "Terminal countdown timers",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&dataDir, "data-dir", config.DefaultDataDir(), "directory for preferences, history and logs")

	root.AddCommand(newTUICmd(&dataDir))
	root.AddCommand(newRunCmd(&dataDir))
	root.AddCommand(newPresetsCmd(&dataDir))
	root.AddCommand(newHistoryCmd(&dataDir))
	root.AddCommand(newSoundCmd(&dataDir))
	root.AddCommand(newThemeCmd(&dataDir))
	return root
}

func loadApp(dataDir string, mode bootstrap.Mode, stdout, stderr io.Writer) (*bootstrap.App, error) {
	cfg, err := config.Load(dataDir)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg, mode, stdout, stderr)
}

func newTUICmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the interactive countdown widget",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, bootstrap.ModeTUI, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			return bootstrap.RunTUI(cmd.Context(), app)
		},
	}
}

func newRunCmd(dataDir *string) *cobra.Command {
	var preset int
	var name string

	run := &cobra.Command{
		Use:   "run [when]",
		Short: "Count down to a date, a time or an offset such as 25m",
		Example: "  countdown run 25m --name Tea\n" +
			"  countdown run 2026-12-31 23:59 --name \"New Year\"\n" +
			"  countdown run --preset 15",
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, bootstrap.ModeHeadless, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if _, err := app.CountdownCLI.Start(ctx, strings.Join(args, " "), preset, name); err != nil {
				if _, ok := apperrors.AsValidation(err); ok {
					return errReported
				}
				return err
			}
			select {
			case <-app.Line.Done():
				if app.CountdownCLI.SoundEnabled(ctx) {
					time.Sleep(soundTail)
				}
			case <-ctx.Done():
				return app.CountdownCLI.Reset(context.Background())
			}
			return nil
		},
	}
	run.Flags().IntVar(&preset, "preset", 0, "count down this many minutes")
	run.Flags().StringVar(&name, "name", "", "timer name")
	return run
}

func newPresetsCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "List quick-start presets",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, bootstrap.ModeCommand, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			for i, p := range app.CountdownCLI.Presets(cmd.Context()) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%d  %-18s %dm\n", i+1, p.Name, p.Minutes)
			}
			return nil
		},
	}
}

func newHistoryCmd(dataDir *string) *cobra.Command {
	var limit int

	history := &cobra.Command{
		Use:   "history",
		Short: "Show recently finished timers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*dataDir, bootstrap.ModeCommand, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()
			records, err := app.CountdownCLI.History(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no history")
				return nil
			}
			for _, r := range records {
				kind := "mini"
				if r.Primary {
					kind = "main"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s  %-9s %-4s %s  (target %s)\n",
					r.EndedAt.Local().Format("2006-01-02 15:04:05"),
					r.Outcome,
					kind,
					r.Name,
					r.TargetTime.Local().Format("2006-01-02 15:04"),
				)
			}
			return nil
		},
	}
	history.Flags().IntVar(&limit, "limit", 20, "maximum entries")
	return history
}

func newSoundCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:       "sound [on|off|toggle]",
		Short:     "Show or change the completion sound setting",
		Args:      cobra.MaximumNArgs(1),
		ValidArgs: []string{"on", "off", "toggle"},
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, bootstrap.ModeCommand, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			ctx := cmd.Context()
			enabled := app.CountdownCLI.SoundEnabled(ctx)
			if len(args) == 1 {
				switch args[0] {
				case "on", "off":
					enabled = args[0] == "on"
					err = app.CountdownCLI.SetSound(ctx, enabled)
				case "toggle":
					enabled, err = app.CountdownCLI.ToggleSound(ctx)
				default:
					return fmt.Errorf("unknown sound setting %q", args[0])
				}
				if err != nil {
					return err
				}
			}
			state := "off"
			if enabled {
				state = "on"
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "sound %s\n", state)
			return nil
		},
	}
}

func newThemeCmd(dataDir *string) *cobra.Command {
	return &cobra.Command{
		Use:   "theme [name]",
		Short: "List themes or pick one",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*dataDir, bootstrap.ModeCommand, cmd.OutOrStdout(), cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer app.Close()

			current := app.Preferences.Theme
			if len(args) == 1 {
				out, err := app.PreferencesCLI.SetTheme(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				current = out.Theme
			}
			for _, name := range theme.Names() {
				marker := " "
				if name == current {
					marker = "*"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}
