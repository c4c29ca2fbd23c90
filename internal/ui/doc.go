// Package ui implements the terminal movie browser.
//
// The bubbletea [Model] is a thin consumer of the state core: key presses
// become intents dispatched through the container, and published snapshots
// flow back in as messages that refresh the visible lists. The UI itself
// never mutates state.
package ui
