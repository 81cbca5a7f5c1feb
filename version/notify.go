package version

import (
	"context"
	"fmt"
	"time"

	"github.com/anisan-cli/animedex/color"
	"github.com/anisan-cli/animedex/constant"
	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/style"
	"github.com/anisan-cli/animedex/util"
	"github.com/spf13/viper"
)

// Notify prints a banner when a newer release exists. Failures are silent.
func Notify() {
	if !viper.GetBool(key.CliVersionCheck) {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	erase := util.PrintErasable(fmt.Sprintf("%s Checking if new version is available...", icon.Get(icon.Progress)))
	version, err := Latest(ctx)
	erase()
	if err != nil {
		return
	}

	if comp, err := Compare(version, constant.Version); err != nil || comp <= 0 {
		return
	}

	fmt.Printf(`
%s New version is available %s %s
%s

`,
		style.Fg(color.Green)("▇▇▇"),
		style.Bold(version),
		style.Faint(fmt.Sprintf("(You're on %s)", constant.Version)),
		style.Faint(constant.ReleasesWeb+version),
	)
}
