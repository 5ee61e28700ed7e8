package app

import (
	"github.com/bethropolis/glance/internal/event"
	"github.com/bethropolis/glance/internal/logger"
)

// subscribeEvents wires the app's own reactions to session events.
func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeBufferAdded, a.handleBufferAdded)
	a.eventManager.Subscribe(event.TypeWindowClosed, a.handleWindowClosed)
	a.eventManager.Subscribe(event.TypeAppReady, a.handleAppReady)
	a.eventManager.Subscribe(event.TypeAppQuit, a.handleAppQuit)
}

func (a *App) handleBufferAdded(e event.Event) bool {
	if data, ok := e.Data.(event.BufferData); ok {
		if data.FilePath == "" {
			logger.Infof("App: opened scratch buffer %d", data.BufferID)
		} else {
			logger.Infof("App: opened '%s' as buffer %d", data.FilePath, data.BufferID)
		}
	}
	return false
}

// handleWindowClosed moves the app to the state's new active window when
// the one it shows goes away.
func (a *App) handleWindowClosed(e event.Event) bool {
	data, ok := e.Data.(event.WindowData)
	if !ok || uint64(a.window) != data.WindowID {
		return false
	}
	a.window = 0
	if active, found := a.state.ActiveWindow(); found {
		a.window = active.ID
	}
	logger.Debugf("App: window %d closed, now showing %d", data.WindowID, a.window)
	return false
}

func (a *App) handleAppReady(e event.Event) bool {
	logger.Debugf("App: ready")
	return false
}

func (a *App) handleAppQuit(e event.Event) bool {
	logger.Debugf("App: quit received")
	return false
}
