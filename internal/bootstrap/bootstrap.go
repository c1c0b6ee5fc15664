package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	countdowninadapter "countdown/internal/modules/countdown/adapter/in"
	countdownoutadapter "countdown/internal/modules/countdown/adapter/out"
	countdownout "countdown/internal/modules/countdown/port/out"
	countdownservice "countdown/internal/modules/countdown/service"
	countdownusecase "countdown/internal/modules/countdown/usecase"
	preferencesinadapter "countdown/internal/modules/preferences/adapter/in"
	preferencesoutadapter "countdown/internal/modules/preferences/adapter/out"
	preferencesdto "countdown/internal/modules/preferences/dto"
	preferencesusecase "countdown/internal/modules/preferences/usecase"
	"countdown/internal/platform/clock"
	"countdown/internal/platform/config"
	"countdown/internal/platform/id"
	"countdown/internal/platform/logging"
	"countdown/internal/platform/schedule"
	uiapp "countdown/internal/ui/app"
	"countdown/internal/ui/board"
	"countdown/internal/ui/theme"
)

// Mode selects the display the registry renders into.
type Mode int

const (
	// ModeCommand is for one-shot commands; nothing is drawn.
	ModeCommand Mode = iota
	// ModeHeadless draws the primary countdown as a live terminal line.
	ModeHeadless
	// ModeTUI draws into the board read by the interactive widget.
	ModeTUI
)

type display interface {
	countdownout.Renderer
	countdownoutadapter.Display
}

// App holds everything built at startup. It lives for the whole process.
type App struct {
	Config      config.Config
	Logger      *logrus.Logger
	Preferences preferencesdto.PreferencesOutput

	CountdownCLI   countdowninadapter.CLIHandler
	CountdownTUI   countdowninadapter.TUIHandler
	PreferencesCLI preferencesinadapter.CLIHandler

	// Board is set in ModeTUI, Line in ModeHeadless.
	Board *board.Board
	Line  *countdownoutadapter.LineRenderer

	registry *countdownservice.Registry
	closers  []io.Closer
}

func New(cfg config.Config, mode Mode, stdout, stderr io.Writer) (*App, error) {
	app := &App{Config: cfg}

	logOut := stderr
	if mode != ModeCommand {
		if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		app.closers = append(app.closers, f)
		logOut = f
	}
	app.Logger = logging.NewLogger("countdown", logOut, cfg.LogLevel)

	clk := clock.SystemClock{}
	ids := id.NewTimestamp(clk)
	scheduler := schedule.Real{}

	prefsUC := preferencesusecase.NewInteractor(preferencesoutadapter.NewFileStore(cfg.PrefsPath), theme.Names())
	prefs, err := prefsUC.Get(context.Background())
	if err != nil {
		app.Logger.WithError(err).Warn("load preferences failed, using defaults")
		prefs = preferencesdto.PreferencesOutput{Theme: theme.Default, SoundEnabled: true}
	}
	app.Preferences = prefs

	journal, err := countdownoutadapter.NewSQLiteJournal(cfg.DBPath)
	if err != nil {
		_ = app.Close()
		return nil, fmt.Errorf("new journal: %w", err)
	}
	if c, ok := journal.(io.Closer); ok {
		app.closers = append(app.closers, c)
	}

	var disp display
	switch mode {
	case ModeTUI:
		app.Board = board.New(clk, scheduler, cfg.DialogDismiss, cfg.NotificationTTL)
		disp = app.Board
	case ModeHeadless:
		app.Line = countdownoutadapter.NewLineRenderer(stdout)
		disp = app.Line
	default:
		disp = countdownoutadapter.NewLineRenderer(io.Discard)
	}

	var sound countdownoutadapter.SoundPlayer
	if mode != ModeCommand {
		sound = countdownoutadapter.NewChime(app.Logger)
	}
	effects := countdownoutadapter.NewEffects(sound, disp, app.Logger)

	app.registry = countdownservice.NewRegistry(clk, ids, scheduler, disp, effects, journal, app.Logger, prefs.SoundEnabled)
	countdownUC := countdownusecase.NewInteractor(app.registry, clk, effects, journal, prefsUC, cfg.Presets)

	app.CountdownCLI = countdowninadapter.NewCLIHandler(countdownUC)
	app.CountdownTUI = countdowninadapter.NewTUIHandler(countdownUC)
	app.PreferencesCLI = preferencesinadapter.NewCLIHandler(prefsUC)
	return app, nil
}

// Close stops every running countdown and releases files.
func (a *App) Close() error {
	if a.registry != nil {
		a.registry.Close()
	}
	var first error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i].Close(); err != nil && first == nil {
			first = err
		}
	}
	a.closers = nil
	return first
}

func RunTUI(ctx context.Context, app *App) error {
	if app.Board == nil {
		return fmt.Errorf("tui requires a board display")
	}
	model := uiapp.NewModel(app.CountdownTUI, app.PreferencesCLI, app.Board, app.Preferences.Theme)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	return err
}
