// Package cmd provides the root command and CLI setup for swayscale.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/fribbit/swayscale/internal/adapter"
	"github.com/fribbit/swayscale/internal/controller"
	"github.com/fribbit/swayscale/internal/domain"
	m "github.com/fribbit/swayscale/internal/model"
)

// configPath is where sway keeps its configuration; the leading ~ is
// expanded at run time.
const configPath = "~/.config/sway/config"

var configFS adapter.ConfigFS
var reloader adapter.Reloader
var workflow domain.Workflow
var ui controller.UI

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	configFS = adapter.NewLocalConfigFS()
	reloader = adapter.NewSwayReloader()
	workflow = domain.NewWorkflow(configFS, reloader, ui)
}

var swapFlag bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "swayscale",
		Short: "Manage display scale settings in the sway config",
		Long: `Swayscale edits the scale of your sway outputs through the config file
itself. It reads the displays and permitted scale factors declared in the
"Scale Options" section of ~/.config/sway/config, shows which scale is
currently active, rewrites the matching output lines with your choice and
asks sway to reload.

Without flags it presents the declared scale options to choose from;
with --swap it cycles to the next larger option, wrapping at the top.`,
		Version:      "1.0",
		SilenceUsage: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			return workflow.Run(domain.RunArgs{
				ConfigPath: m.Path(configPath),
				Cycle:      swapFlag,
			})
		},
	}
	cmd.Flags().BoolVarP(&swapFlag, "swap", "s", false, "cycle to the next scale option in ascending order")

	return cmd
}

// Execute runs the root command. This is called by main.main() and is the
// single place that turns an error into a non-zero exit.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
