// Package cmd implements the command-line interface for animedex.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/anisan-cli/animedex/color"
	"github.com/anisan-cli/animedex/constant"
	"github.com/anisan-cli/animedex/icon"
	"github.com/anisan-cli/animedex/key"
	"github.com/anisan-cli/animedex/log"
	"github.com/anisan-cli/animedex/metrics"
	"github.com/anisan-cli/animedex/style"
	"github.com/anisan-cli/animedex/tui"
	"github.com/anisan-cli/animedex/util"
	"github.com/anisan-cli/animedex/version"
	"github.com/anisan-cli/animedex/where"
	cc "github.com/ivanpirog/coloredcobra"
	"github.com/samber/lo"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	rootCmd.Flags().BoolP("version", "v", false, "Print the application version")

	rootCmd.PersistentFlags().StringP("icons", "I", "", "Set the visual icon variant (e.g., nerd, emoji, squares)")
	lo.Must0(rootCmd.RegisterFlagCompletionFunc("icons", func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		return icon.AvailableVariants(), cobra.ShellCompDirectiveDefault
	}))
	lo.Must0(viper.BindPFlag(key.IconsVariant, rootCmd.PersistentFlags().Lookup("icons")))

	rootCmd.PersistentFlags().String("api", "", "Base endpoint of the anime collection")
	lo.Must0(viper.BindPFlag(key.APIBaseURL, rootCmd.PersistentFlags().Lookup("api")))

	rootCmd.PersistentFlags().Int("timeout", 0, "Request timeout in seconds, 0 waits until cancelled")
	lo.Must0(viper.BindPFlag(key.APITimeout, rootCmd.PersistentFlags().Lookup("timeout")))

	addCatalogFlags(rootCmd, true)

	helpFunc := rootCmd.HelpFunc()
	rootCmd.SetHelpFunc(func(cmd *cobra.Command, args []string) {
		helpFunc(cmd, args)
		version.Notify()
	})

	go func() {
		_ = util.Delete(where.Temp())
	}()
}

// rootCmd opens the interactive catalog browser.
var rootCmd = &cobra.Command{
	Use:   constant.App,
	Short: "Browse the Kitsu anime catalog from the terminal",
	Long: constant.AsciiArtLogo + "\n" +
		style.New().Italic(true).Foreground(color.HiRed).Render("    - Browse the Kitsu anime catalog from the terminal"),
	Example: "  animedex --page 3\n  animedex --continue\n  animedex --limit 20 --record 1",
	Run: func(cmd *cobra.Command, args []string) {
		if cmd.Flags().Changed("version") {
			versionCmd.Run(versionCmd, args)
			return
		}

		params, record, err := startingPoint(cmd)
		handleErr(err)

		handleErr(tui.Run(&tui.Options{Params: params, Record: record}))
	},
}

// Execute runs the command selected by os.Args.
func Execute() {
	if viper.GetBool(key.CliColored) {
		cc.Init(&cc.Config{
			RootCmd:       rootCmd,
			Headings:      cc.HiCyan + cc.Bold + cc.Underline,
			Commands:      cc.HiYellow + cc.Bold,
			Example:       cc.Italic,
			ExecName:      cc.Bold,
			Flags:         cc.Bold,
			FlagsDataType: cc.Italic + cc.HiBlue,
		})
	}

	defer flushMetrics()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		flushMetrics()
		os.Exit(1)
	}
}

func flushMetrics() {
	path := viper.GetString(key.MetricsTextfile)
	if path == "" {
		return
	}

	if err := metrics.WriteTextfile(path); err != nil {
		log.Warn("write metrics: ", err)
	}
}

func handleErr(err error) {
	if err != nil {
		log.Error(err)
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", icon.Get(icon.Fail), strings.Trim(err.Error(), " \n"))
		flushMetrics()
		os.Exit(1)
	}
}
