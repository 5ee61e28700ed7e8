// internal/app/app.go
package app

import (
	"github.com/bethropolis/glance/internal/buffer"
	"github.com/bethropolis/glance/internal/config"
	"github.com/bethropolis/glance/internal/core"
	"github.com/bethropolis/glance/internal/dispatch"
	"github.com/bethropolis/glance/internal/event"
	"github.com/bethropolis/glance/internal/input"
	"github.com/bethropolis/glance/internal/logger"
	"github.com/bethropolis/glance/internal/theme"
	"github.com/bethropolis/glance/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App is one viewing session: a buffer, the window showing it and the loop
// that draws it until the user quits.
type App struct {
	state        *core.State
	eventManager *event.Manager
	dispatcher   *dispatch.Dispatcher
	themeManager *theme.Manager
	window       core.WindowID
	filePath     string
	paintOptions tui.PaintOptions
	openScreen   tui.ScreenFactory
}

// NewApp loads filePath, or creates a scratch buffer when it is empty, and
// sets up the session around it. Nothing touches the terminal until Run, so
// a load failure leaves the terminal as it was.
func NewApp(cfg *config.Config, filePath string) (*App, error) {
	if cfg == nil {
		cfg = config.NewDefaultConfig()
	}

	var buf *buffer.TextBuffer
	if filePath == "" {
		buf = buffer.NewScratch()
	} else {
		var err error
		if buf, err = buffer.Open(filePath); err != nil {
			return nil, err
		}
	}

	eventManager := event.NewManager()
	a := &App{
		state:        core.NewState(),
		eventManager: eventManager,
		dispatcher: dispatch.New(dispatch.Config{
			InputProcessor: input.NewProcessor(),
			EventManager:   eventManager,
		}),
		filePath:     filePath,
		paintOptions: tui.PaintOptions{TabWidth: cfg.Editor.TabWidth},
		openScreen:   tui.DefaultScreen,
	}
	a.subscribeEvents()
	a.state.SetEventManager(eventManager)

	themesDir := cfg.Editor.ThemesDir
	if themesDir == "" {
		themesDir = theme.DefaultThemesDir(config.AppName)
	}
	a.themeManager = theme.NewManager(themesDir)
	if cfg.Editor.Theme != "" {
		if err := a.themeManager.SetTheme(cfg.Editor.Theme); err != nil {
			logger.Warnf("App: %v, using '%s'", err, a.themeManager.Current().Name)
		}
	}

	bid := a.state.AddBuffer(buf)
	wid, err := a.state.OpenWindow(bid)
	if err != nil {
		return nil, err
	}
	a.window = wid

	return a, nil
}

// SetScreenFactory replaces the terminal the session draws on.
func (a *App) SetScreenFactory(open tui.ScreenFactory) {
	a.openScreen = open
}

// State returns the session's buffers and windows.
func (a *App) State() *core.State {
	return a.state
}

// EventManager returns the session's event bus.
func (a *App) EventManager() *event.Manager {
	return a.eventManager
}

// Run takes over the terminal and draws the session until the user quits or
// a fatal error occurs. The terminal is restored before Run returns.
func (a *App) Run() error {
	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{FilePath: a.filePath})
	return tui.Run(a.openScreen, a.themeManager.Current(), a.loop)
}

// loop draws, then waits for events until the dispatcher terminates.
func (a *App) loop(t *tui.TUI) error {
	if err := a.draw(t); err != nil {
		return err
	}

	for {
		ev, err := t.PollEvent()
		if err != nil {
			return err
		}

		if _, ok := ev.(*tcell.EventResize); ok {
			t.Sync()
			if err := a.draw(t); err != nil {
				return err
			}
			continue
		}

		if a.dispatcher.Dispatch(ev) == dispatch.StateTerminated {
			logger.Infof("App: exiting")
			return nil
		}
	}
}
