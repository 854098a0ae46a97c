// Package tui provides the interactive now-playing terminal interface.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
	"github.com/pcmcast-cli/pcmcast/controller"
	"github.com/pcmcast-cli/pcmcast/icon"
	"github.com/pcmcast-cli/pcmcast/style"
	"github.com/pcmcast-cli/pcmcast/util"
)

var paddingStyle = lipgloss.NewStyle().Padding(1, 2)

func (b *transportBubble) View() string {
	lines := []string{
		style.Title("Now Playing"),
		"",
	}

	lines = append(lines, b.viewTrack()...)
	lines = append(lines, "", b.viewTransport(), "")

	if b.lastErr != nil {
		lines = append(lines, style.Faint(b.lastErr.Error()), "")
	}

	lines = append(lines, b.helpC.View(b.keymap))

	return paddingStyle.Render(strings.Join(lines, "\n"))
}

func (b *transportBubble) viewTrack() []string {
	track, ok := b.status.Track.Get()
	if !ok {
		return []string{style.Faint("Nothing queued. Quit and use the play command.")}
	}

	title := track.Title
	if media := b.status.Media; media != nil && media.Title != "" {
		title = media.Title
	}
	if title == "" {
		title = track.URI
	}

	lines := []string{
		fmt.Sprintf("%s %s", icon.Get(icon.Note), style.Bold(b.truncate(title))),
	}

	if media := b.status.Media; media != nil {
		var credit []string
		if artist, ok := media.Artist.Get(); ok {
			credit = append(credit, artist)
		}
		if album, ok := media.Album.Get(); ok {
			credit = append(credit, album)
		}
		if len(credit) > 0 {
			lines = append(lines, style.Faint(b.truncate(strings.Join(credit, " · "))))
		}
	}

	if b.showURLs && title != track.URI {
		lines = append(lines, style.Faint(b.truncate(track.URI)))
	}

	if b.status.QueueLen > 1 {
		lines = append(lines, style.Faint(fmt.Sprintf(
			"Track %d of %d", b.status.QueueIndex+1, b.status.QueueLen,
		)))
	}

	return lines
}

func (b *transportBubble) viewTransport() string {
	stateLine := b.viewState()

	position, hasPosition := b.status.Position.Get()
	duration, hasDuration := b.status.Duration.Get()

	if hasPosition && hasDuration && duration > 0 {
		clock := fmt.Sprintf("%s / %s", util.FormatTime(position.Position), util.FormatTime(duration))
		percent := float64(position.Position) / float64(duration)
		return stateLine + "  " + clock + "\n" + b.progressC.ViewAs(percent)
	}

	if hasPosition {
		// Endless stream or unprobed track, show the raw clock only.
		return stateLine + "  " + util.FormatTime(position.Position)
	}

	if b.status.State == controller.Playing {
		return stateLine + "  " + b.spinnerC.View()
	}

	return stateLine
}

func (b *transportBubble) viewState() string {
	var stateIcon string

	switch b.status.State {
	case controller.Playing:
		stateIcon = icon.Get(icon.Play)
	case controller.Paused:
		stateIcon = icon.Get(icon.Pause)
	default:
		stateIcon = icon.Get(icon.Stop)
	}

	line := fmt.Sprintf("%s %s", stateIcon, util.Capitalize(b.status.State.String()))

	if b.status.Repeat != controller.RepeatOff {
		line += fmt.Sprintf("  %s %s", icon.Get(icon.Repeat), b.status.Repeat)
	}

	return line
}

func (b *transportBubble) truncate(s string) string {
	return truncate.StringWithTail(s, uint(util.Max(b.width-6, 10)), "…")
}
