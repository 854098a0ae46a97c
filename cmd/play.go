// Package cmd implements the command-line interface for pcmcast.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sort"
	"syscall"
	"time"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pcmcast-cli/pcmcast/controller"
	"github.com/pcmcast-cli/pcmcast/history"
	"github.com/pcmcast-cli/pcmcast/icon"
	"github.com/pcmcast-cli/pcmcast/key"
	"github.com/pcmcast-cli/pcmcast/source"
	"github.com/pcmcast-cli/pcmcast/style"
	"github.com/pcmcast-cli/pcmcast/tui"
	"github.com/pcmcast-cli/pcmcast/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.AddCommand(playCmd)

	playCmd.Flags().BoolP("playlist", "p", false, "Treat the media reference as a playlist document")
	playCmd.Flags().StringP("repeat", "r", "off", "Repeat mode: off, one or all")
	playCmd.Flags().BoolP("continue", "c", false, "Pick a track from the listening history")
	playCmd.Flags().Bool("plain", false, "Disable the interactive interface, print progress lines instead")

	playCmd.Flags().String("host", "", "Sink host or socket path")
	lo.Must0(viper.BindPFlag(key.PlayerHost, playCmd.Flags().Lookup("host")))

	playCmd.Flags().String("port", "", "Sink TCP port")
	lo.Must0(viper.BindPFlag(key.PlayerPort, playCmd.Flags().Lookup("port")))

	playCmd.Flags().String("delay", "", "Initial silence inserted before the stream, in milliseconds")
	lo.Must0(viper.BindPFlag(key.PlayerStartDelay, playCmd.Flags().Lookup("delay")))
}

// playCmd streams a track or playlist to the configured PCM sink.
var playCmd = &cobra.Command{
	Use:   "play [media]",
	Short: "Stream a track or playlist to the configured PCM sink",
	Long: `Stream any audio source that the decoder understands to the configured sink.
The media reference may be a local file, a remote URL or an m3u playlist document.`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		CheckDependencies()

		var (
			asPlaylist     = lo.Must(cmd.Flags().GetBool("playlist"))
			plain          = lo.Must(cmd.Flags().GetBool("plain"))
			resumeFromPast = lo.Must(cmd.Flags().GetBool("continue"))
		)

		repeat, err := controller.ParseRepeatMode(lo.Must(cmd.Flags().GetString("repeat")))
		handleErr(err)

		var media string
		if len(args) > 0 {
			media = args[0]
		}

		if media == "" {
			if !resumeFromPast {
				handleErr(errors.New("a media reference is required unless --continue is set"))
			}

			media, err = pickFromHistory()
			handleErr(err)
		}

		mediaType := controller.MediaTypeMusic
		if asPlaylist {
			mediaType = controller.MediaTypePlaylist
		}

		c := controller.FromConfig(source.Direct{})
		c.SetRepeat(repeat)
		defer c.Stop()

		handleErr(c.PlayMedia(context.Background(), mediaType, media))

		if plain || !viper.GetBool(key.TUIEnabled) {
			followPlain(c)
			return
		}

		handleErr(tui.Run(&tui.Options{
			Controller: c,
			ShowURLs:   viper.GetBool(key.TUIShowURLs),
		}))
	},
}

// pickFromHistory offers the listening history as an interactive selection.
func pickFromHistory() (string, error) {
	records, err := history.Get()
	if err != nil {
		return "", err
	}

	if len(records) == 0 {
		return "", errors.New("listening history is empty")
	}

	sorted := lo.Values(records)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PlayedAt.After(sorted[j].PlayedAt)
	})

	labels := lo.Map(sorted, func(r *history.Record, _ int) string {
		return r.String()
	})

	var picked string
	prompt := survey.Select{
		Message: "Continue listening",
		Options: labels,
	}

	if err := survey.AskOne(&prompt, &picked); err != nil {
		return "", err
	}

	for i, label := range labels {
		if label == picked {
			return sorted[i].URI, nil
		}
	}

	return "", errors.New("no track selected")
}

// followPlain blocks until playback finishes, rendering erasable progress
// lines. An interrupt stops playback cleanly before exiting.
func followPlain(c *controller.Controller) {
	interrupts := make(chan os.Signal, 1)
	signal.Notify(interrupts, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(interrupts)

	ticker := time.NewTicker(time.Second / 2)
	defer ticker.Stop()

	erase := func() {}

	for {
		select {
		case <-interrupts:
			erase()
			c.Stop()
			fmt.Printf("%s Stopped\n", icon.Get(icon.Stop))
			return

		case <-ticker.C:
			c.RefreshState()
			status := c.Status()

			if status.State == controller.Idle {
				erase()
				fmt.Printf("%s Done\n", icon.Get(icon.Success))
				return
			}

			erase()
			erase = util.PrintErasable(plainStatusLine(status))
		}
	}
}

func plainStatusLine(status controller.Status) string {
	title := "..."
	if track, ok := status.Track.Get(); ok {
		title = track.Title
		if media := status.Media; media != nil && media.Title != "" {
			title = media.Title
		}
		if title == "" {
			title = track.URI
		}
	}

	stateIcon := icon.Get(icon.Play)
	if status.State == controller.Paused {
		stateIcon = icon.Get(icon.Pause)
	}

	line := fmt.Sprintf("%s %s", stateIcon, title)

	if position, ok := status.Position.Get(); ok {
		line += "  " + util.FormatTime(position.Position)
		if duration, ok := status.Duration.Get(); ok {
			line += style.Faint(" / "+util.FormatTime(duration))
		}
	}

	if status.QueueLen > 1 {
		line += style.Faint(fmt.Sprintf("  [%d/%d]", status.QueueIndex+1, status.QueueLen))
	}

	return line
}
