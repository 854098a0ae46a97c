// Package tui provides the interactive now-playing terminal interface.
package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pcmcast-cli/pcmcast/controller"
)

// Options encapsulates the runtime configuration for the terminal user interface.
type Options struct {
	Controller *controller.Controller
	// ShowURLs renders the raw track URI below the title.
	ShowURLs bool
}

// Run initializes and executes the now-playing Bubble Tea application loop.
// It returns when the user quits; playback itself is left to the caller.
func Run(options *Options) error {
	_, err := tea.NewProgram(newBubble(options)).Run()
	return err
}
