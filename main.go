// Package main is the entry point for the pcmcast application.
package main

import (
	"github.com/pcmcast-cli/pcmcast/cmd"
	"github.com/pcmcast-cli/pcmcast/config"
	"github.com/pcmcast-cli/pcmcast/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
