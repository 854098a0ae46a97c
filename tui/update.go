// Package tui provides the interactive now-playing terminal interface.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pcmcast-cli/pcmcast/controller"
)

// tickMsg drives the periodic controller snapshot refresh.
type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second/2, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (b *transportBubble) Init() tea.Cmd {
	return tea.Batch(tick(), b.spinnerC.Tick)
}

func (b *transportBubble) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		b.width, b.height = msg.Width, msg.Height
		b.resize()
		return b, nil

	case tickMsg:
		b.controller.RefreshState()
		b.status = b.controller.Status()
		return b, tick()

	case spinner.TickMsg:
		var cmd tea.Cmd
		b.spinnerC, cmd = b.spinnerC.Update(msg)
		return b, cmd

	case tea.KeyMsg:
		return b.handleKey(msg)
	}

	return b, nil
}

func (b *transportBubble) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	b.lastErr = nil

	switch {
	case key.Matches(msg, b.keymap.forceQuit), key.Matches(msg, b.keymap.quit):
		return b, tea.Quit

	case key.Matches(msg, b.keymap.playPause):
		switch b.status.State {
		case controller.Playing:
			b.lastErr = b.controller.Pause()
		case controller.Paused:
			b.lastErr = b.controller.Resume()
		}

	case key.Matches(msg, b.keymap.stop):
		b.controller.Stop()

	case key.Matches(msg, b.keymap.next):
		b.lastErr = b.controller.Next()

	case key.Matches(msg, b.keymap.previous):
		b.lastErr = b.controller.Previous()

	case key.Matches(msg, b.keymap.seekForward):
		b.seekRelative(10)

	case key.Matches(msg, b.keymap.seekBack):
		b.seekRelative(-10)

	case key.Matches(msg, b.keymap.repeat):
		b.controller.SetRepeat(nextRepeatMode(b.status.Repeat))

	case key.Matches(msg, b.keymap.showHelp):
		b.helpC.ShowAll = !b.helpC.ShowAll
	}

	b.status = b.controller.Status()
	return b, nil
}

func (b *transportBubble) seekRelative(deltaSeconds int) {
	position := 0
	if update, ok := b.status.Position.Get(); ok {
		position = update.Position
	}

	b.lastErr = b.controller.Seek(position + deltaSeconds)
}

func nextRepeatMode(mode controller.RepeatMode) controller.RepeatMode {
	switch mode {
	case controller.RepeatOff:
		return controller.RepeatOne
	case controller.RepeatOne:
		return controller.RepeatAll
	default:
		return controller.RepeatOff
	}
}
