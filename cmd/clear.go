// Package cmd implements the command-line interface for pcmcast.
package cmd

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/pcmcast-cli/pcmcast/filesystem"
	"github.com/pcmcast-cli/pcmcast/icon"
	"github.com/pcmcast-cli/pcmcast/util"
	"github.com/pcmcast-cli/pcmcast/where"
	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/cobra"
)

// clearTarget defines a filesystem resource eligible for automated cleanup.
type clearTarget struct {
	name     string
	argLong  string
	argShort mo.Option[string]
	location func() string
}

// clearTargets registry of all application artifacts that can be selectively cleared.
var clearTargets = []clearTarget{
	{"cache directory", "cache", mo.Some("c"), where.Cache},
	{"history file", "history", mo.Some("s"), where.History},
	{"metadata cache", "metadata", mo.Some("m"), where.MetadataCache},
	{"log files", "logs", mo.Some("l"), where.Logs},
}

func init() {
	rootCmd.AddCommand(clearCmd)

	for _, target := range clearTargets {
		help := fmt.Sprintf("clear %s", target.name)
		if target.argShort.IsPresent() {
			clearCmd.Flags().BoolP(target.argLong, target.argShort.MustGet(), false, help)
		} else {
			clearCmd.Flags().Bool(target.argLong, false, help)
		}
	}

	clearCmd.Flags().BoolP("force", "f", false, "Skip the confirmation prompt")
}

// clearCmd manages the cleanup of temporary and cached application artifacts.
var clearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Clear temporary and cached application artifacts",
	Run: func(cmd *cobra.Command, args []string) {
		var anyCleared bool

		doClear := func(what string) bool {
			return lo.Must(cmd.Flags().GetBool(what))
		}

		force := lo.Must(cmd.Flags().GetBool("force"))

		for _, target := range clearTargets {
			if !doClear(target.argLong) {
				continue
			}

			if !force {
				confirm := survey.Confirm{
					Message: fmt.Sprintf("Clear the %s?", target.name),
					Default: false,
				}

				var response bool
				handleErr(survey.AskOne(&confirm, &response))

				if !response {
					continue
				}
			}

			anyCleared = true
			e := util.PrintErasable(fmt.Sprintf("%s Clearing %s...", icon.Get(icon.Progress), util.Capitalize(target.name)))
			_ = util.Delete(target.location())
			e()
			fmt.Printf("%s %s cleared\n", icon.Get(icon.Success), util.Capitalize(target.name))
			handleErr(filesystem.API().RemoveAll(target.location()))
		}

		if !anyCleared {
			handleErr(cmd.Help())
		}
	},
}
