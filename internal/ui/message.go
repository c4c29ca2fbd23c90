package ui

import "espoir/internal/store"

// snapshotMsg carries a published state snapshot into the bubbletea loop.
type snapshotMsg struct {
	state store.AppState
}

// dispatchedMsg reports the settled result of an intent dispatched from the UI.
type dispatchedMsg struct {
	err error
}
