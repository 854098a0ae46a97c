// Package tui provides the interactive now-playing terminal interface.
package tui

import (
	"github.com/charmbracelet/bubbles/key"
)

// transportKeymap defines the keyboard interactions of the now-playing view.
type transportKeymap struct {
	playPause,
	stop,
	next, previous,
	seekForward, seekBack,
	repeat,
	quit, forceQuit,
	showHelp key.Binding
}

func newTransportKeymap() *transportKeymap {
	return &transportKeymap{
		playPause: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "pause/resume"),
		),
		stop: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "stop"),
		),
		next: key.NewBinding(
			key.WithKeys("n", "right"),
			key.WithHelp("n", "next track"),
		),
		previous: key.NewBinding(
			key.WithKeys("p", "left"),
			key.WithHelp("p", "prev track"),
		),
		seekForward: key.NewBinding(
			key.WithKeys("L", "shift+right"),
			key.WithHelp("L", "seek +10s"),
		),
		seekBack: key.NewBinding(
			key.WithKeys("H", "shift+left"),
			key.WithHelp("H", "seek -10s"),
		),
		repeat: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "cycle repeat"),
		),
		quit: key.NewBinding(
			key.WithKeys("q", "esc"),
			key.WithHelp("q", "quit"),
		),
		forceQuit: key.NewBinding(
			key.WithKeys("ctrl+c", "ctrl+d"),
			key.WithHelp("ctrl+c", "quit"),
		),
		showHelp: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
	}
}

func (k *transportKeymap) ShortHelp() []key.Binding {
	return []key.Binding{k.playPause, k.next, k.previous, k.repeat, k.quit, k.showHelp}
}

func (k *transportKeymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.playPause, k.stop, k.next, k.previous},
		{k.seekForward, k.seekBack, k.repeat, k.quit},
	}
}
