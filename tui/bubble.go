// Package tui provides the interactive now-playing terminal interface.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/pcmcast-cli/pcmcast/controller"
	"github.com/pcmcast-cli/pcmcast/util"
)

// transportBubble encapsulates the now-playing view state. The controller is
// the single source of truth; the bubble only holds the latest snapshot of it.
type transportBubble struct {
	controller *controller.Controller
	status     controller.Status

	keymap *transportKeymap

	// components
	spinnerC  spinner.Model
	progressC progress.Model
	helpC     help.Model

	showURLs bool
	lastErr  error

	width, height int
}

func newBubble(options *Options) *transportBubble {
	progressC := progress.New(progress.WithDefaultGradient())
	progressC.ShowPercentage = false

	b := &transportBubble{
		controller: options.Controller,
		status:     options.Controller.Status(),
		keymap:     newTransportKeymap(),
		spinnerC:   spinner.New(spinner.WithSpinner(spinner.Dot)),
		progressC:  progressC,
		helpC:      help.New(),
		showURLs:   options.ShowURLs,
	}

	if w, h, err := util.TerminalSize(); err == nil {
		b.width, b.height = w, h
		b.resize()
	}

	return b
}

func (b *transportBubble) resize() {
	b.progressC.Width = util.Max(b.width-4, 10)
	b.helpC.Width = b.width
}
