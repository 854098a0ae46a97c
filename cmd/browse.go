// Package cmd implements the command-line interface for pcmcast.
package cmd

import (
	"encoding/json"
	"os"

	"github.com/pcmcast-cli/pcmcast/color"
	"github.com/pcmcast-cli/pcmcast/icon"
	"github.com/pcmcast-cli/pcmcast/source"
	"github.com/pcmcast-cli/pcmcast/style"
	"github.com/pcmcast-cli/pcmcast/util"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(browseCmd)

	browseCmd.Flags().StringP("filter", "f", "", "Fuzzy filter for item names")
	browseCmd.Flags().BoolP("json", "j", false, "Format the command output as a JSON object")

	browseCmd.SetOut(os.Stdout)
}

// browseCmd lists playable media under a directory.
var browseCmd = &cobra.Command{
	Use:   "browse [path]",
	Short: "List playable media under a directory",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path := "."
		if len(args) > 0 {
			path = args[0]
		}

		items, err := source.Direct{}.Browse(path)
		handleErr(err)

		if filter := lo.Must(cmd.Flags().GetString("filter")); filter != "" {
			items = source.Filter(items, filter)
		}

		if lo.Must(cmd.Flags().GetBool("json")) {
			encoder := json.NewEncoder(cmd.OutOrStdout())
			encoder.SetIndent("", "  ")
			handleErr(encoder.Encode(items))
			return
		}

		if len(items) == 0 {
			cmd.Println(style.Faint("Nothing playable here"))
			return
		}

		tracks := 0
		for _, item := range items {
			marker := icon.Get(icon.Note)
			name := item.Name
			if item.Dir {
				marker = style.Fg(color.Blue)("▸")
				name = style.Bold(name)
			} else {
				tracks++
			}

			cmd.Printf("%s %s\n", marker, name)
		}

		cmd.Println(style.Faint(util.Quantify(tracks, "track", "tracks")))
	},
}
