// Package main is the entry point of animedex.
package main

import (
	"github.com/anisan-cli/animedex/cmd"
	"github.com/anisan-cli/animedex/config"
	"github.com/anisan-cli/animedex/log"
	"github.com/samber/lo"
)

func main() {
	lo.Must0(config.Setup())
	lo.Must0(log.Setup())

	cmd.Execute()
}
